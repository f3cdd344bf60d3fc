package leave_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"
	mock_leave "go-leave/internal/leave/mock"
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func newRouter(service leave.Service, identity string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	leave.RegisterRoutes(r.Group("/api/v1"), leave.NewHandler(service), nil, func(c *gin.Context) {
		c.Set(middleware.ContextIdentity, identity)
		c.Next()
	})
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Submit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_leave.NewMockService(ctrl)
		svc.EXPECT().Submit(gomock.Any(), "emp1@company.com", leave.SubmitLeaveRequest{
			LeaveType: "Sick Leave", StartDate: "2026-03-11", EndDate: "2026-03-13", Reason: "Flu",
		}).Return(leave.SubmitResult{Success: true, LeaveID: "LR1", Message: "Leave request submitted successfully"}, nil)

		w := serve(newRouter(svc, "emp1@company.com"), http.MethodPost, "/api/v1/leaves",
			`{"leave_type":"Sick Leave","start_date":"2026-03-11","end_date":"2026-03-13","reason":"Flu"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		var res leave.SubmitResult
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, "LR1", res.LeaveID)
		assert.True(t, res.Success)
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_leave.NewMockService(ctrl)

		w := serve(newRouter(svc, "emp1@company.com"), http.MethodPost, "/api/v1/leaves", `{"leave_type":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("overlap maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_leave.NewMockService(ctrl)
		svc.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(leave.SubmitResult{}, leaveerrors.ErrLeaveOverlap)

		w := serve(newRouter(svc, "emp1@company.com"), http.MethodPost, "/api/v1/leaves", `{}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "Leave request overlaps with existing request", env.Error.Message)
	})
}

func TestHandler_Decide(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_leave.NewMockService(ctrl)
		svc.EXPECT().Decide(gomock.Any(), "manager1@company.com", "LR1", leave.DecideLeaveRequest{Decision: "Approved", Comment: "ok"}).
			Return(leave.DecisionResult{Success: true, LeaveID: "LR1", Status: "Approved", Message: "Leave request approved successfully"}, nil)

		w := serve(newRouter(svc, "manager1@company.com"), http.MethodPost, "/api/v1/leaves/LR1/decision",
			`{"decision":"Approved","comment":"ok"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Leave request approved successfully")
	})

	t.Run("invalid state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_leave.NewMockService(ctrl)
		svc.EXPECT().Decide(gomock.Any(), gomock.Any(), "LR1", gomock.Any()).
			Return(leave.DecisionResult{}, leaveerrors.ErrInvalidStatusTransition.WithMessage("Cannot process request in %s status", "Approved"))

		w := serve(newRouter(svc, "manager1@company.com"), http.MethodPost, "/api/v1/leaves/LR1/decision", `{"decision":"Approved"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
		assert.Equal(t, "Cannot process request in Approved status", env.Error.Message)
	})

	t.Run("wrong manager", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_leave.NewMockService(ctrl)
		svc.EXPECT().Decide(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(leave.DecisionResult{}, leaveerrors.ErrNotRequestManager)

		w := serve(newRouter(svc, "manager2@company.com"), http.MethodPost, "/api/v1/leaves/LR1/decision", `{"decision":"Approved"}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_Lists(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_leave.NewMockService(ctrl)
	r := newRouter(svc, "manager1@company.com")

	svc.EXPECT().ListMine(gomock.Any(), "manager1@company.com").Return([]leave.LeaveResponse{{ID: "LR1"}}, nil)
	svc.EXPECT().ListPending(gomock.Any(), "manager1@company.com").Return([]leave.LeaveResponse{{ID: "LR2"}, {ID: "LR3"}}, nil)
	svc.EXPECT().ListTeam(gomock.Any(), "manager1@company.com").Return([]leave.LeaveResponse{}, nil)
	svc.EXPECT().ListAll(gomock.Any(), "manager1@company.com").Return(nil, leaveerrors.ErrUnauthorizedAll)
	svc.EXPECT().GetByID(gomock.Any(), "manager1@company.com", "LR9").Return(leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound)

	w := serve(r, http.MethodGet, "/api/v1/leaves/mine", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/api/v1/leaves/pending", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)

	w = serve(r, http.MethodGet, "/api/v1/leaves/team", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/api/v1/leaves", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Unauthorized to view all requests", decodeEnvelope(t, w.Body.Bytes()).Error.Message)

	w = serve(r, http.MethodGet, "/api/v1/leaves/LR9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
