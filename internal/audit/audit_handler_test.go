package audit_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/audit"
	mock_audit "go-leave/internal/audit/mock"
	"go-leave/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(svc audit.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/audit", audit.NewHandler(svc).List)
	return r
}

func TestHandler_List(t *testing.T) {
	t.Run("recent with limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_audit.NewMockService(ctrl)
		svc.EXPECT().ListRecent(gomock.Any(), 10).Return([]audit.EntryResponse{{ID: "1", Action: audit.ActionViewAll}}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/admin/audit?limit=10", nil)
		newRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"action":"view_all"`)
		assert.Contains(t, w.Body.String(), `"pageSize":10`)
	})

	t.Run("by leave id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_audit.NewMockService(ctrl)
		svc.EXPECT().ListByLeaveID(gomock.Any(), "LR1").Return([]audit.EntryResponse{}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/admin/audit?leave_id=LR1", nil)
		newRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_audit.NewMockService(ctrl)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/admin/audit?limit=abc", nil)
		newRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_audit.NewMockService(ctrl)
		svc.EXPECT().ListRecent(gomock.Any(), 100).Return(nil, apperror.ErrPersistence.WithCause(errors.New("db down")))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/admin/audit", nil)
		newRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "PERSISTENCE_ERROR")
	})
}
