package access

import (
	"net/http"

	"go-leave/internal/middleware"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	resolver Resolver
	logger   *zap.Logger
}

func NewHandler(resolver Resolver, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("access.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("access.handler")
	}
	return &Handler{resolver: resolver, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("access request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetRole returns "unknown" for identities without an assignment rather than failing.
func (h *Handler) GetRole(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	role, err := h.resolver.ResolveRole(c.Request.Context(), identity)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, RoleResponse{Email: identity, Role: role.String()}, nil)
}

func (h *Handler) GetAllowedLeaveTypes(c *gin.Context) {
	types, err := h.resolver.ResolveAllowedLeaveTypes(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, types, nil)
}

func (h *Handler) GetPermissions(c *gin.Context) {
	resp, err := h.resolver.Permissions(c.Request.Context(), middleware.GetIdentity(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
