package leave

import (
	"context"
	"net/http"

	"go-leave/internal/middleware"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Submit(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	h.logger.Debug("http submit leave", zap.String("identity", identity))

	var req SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit leave bind failed", zap.Error(err))
		h.writeServiceError(c, apperror.ErrInvalidInput.WithCause(err))
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), identity, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Decide(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	leaveID := c.Param("id")
	h.logger.Debug("http decide leave", zap.String("identity", identity), zap.String("leave_id", leaveID))

	var req DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http decide leave bind failed", zap.Error(err))
		h.writeServiceError(c, apperror.ErrInvalidInput.WithCause(err))
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), identity, leaveID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), middleware.GetIdentity(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetMine(c *gin.Context) {
	h.list(c, h.service.ListMine)
}

func (h *Handler) GetPending(c *gin.Context) {
	h.list(c, h.service.ListPending)
}

func (h *Handler) GetTeam(c *gin.Context) {
	h.list(c, h.service.ListTeam)
}

func (h *Handler) GetAll(c *gin.Context) {
	h.list(c, h.service.ListAll)
}

type listFunc func(ctx context.Context, identity string) ([]LeaveResponse, error)

func (h *Handler) list(c *gin.Context, fn listFunc) {
	resp, err := fn(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, &response.PaginationMeta{Total: int64(len(resp))})
}
