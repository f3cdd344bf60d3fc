package leavetype_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-leave/internal/audit"
	mock_audit "go-leave/internal/audit/mock"
	"go-leave/internal/leavetype"
	leavetypeerrors "go-leave/internal/leavetype/errors"
	mock_leavetype "go-leave/internal/leavetype/mock"
	"go-leave/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var definitions = []leavetype.LeaveType{
	{ID: "AL", Name: "Annual Leave", MaxDays: 20, RequiresApproval: true, ApplicableRoles: "Employee,Manager,Admin"},
	{ID: "SL", Name: "Sick Leave", MaxDays: 10, ApplicableRoles: "Employee,Manager,Admin"},
}

func TestService_ListDefinitions(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_leavetype.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()
		data, _ := json.Marshal(definitions)
		rmock.ExpectGet(leavetype.DefinitionsCacheKey).SetVal(string(data))

		svc := leavetype.NewService(repo, mock_audit.NewMockService(ctrl), rdb)
		got, err := svc.ListDefinitions(ctx)

		require.NoError(t, err)
		assert.Equal(t, definitions, got)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_leavetype.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()
		data, _ := json.Marshal(definitions)
		rmock.ExpectGet(leavetype.DefinitionsCacheKey).RedisNil()
		rmock.ExpectSet(leavetype.DefinitionsCacheKey, string(data), time.Hour).SetVal("OK")
		repo.EXPECT().FindAll(gomock.Any()).Return(definitions, nil)

		svc := leavetype.NewService(repo, mock_audit.NewMockService(ctrl), rdb)
		got, err := svc.ListDefinitions(ctx)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("no redis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_leavetype.NewMockRepository(ctrl)
		repo.EXPECT().FindAll(gomock.Any()).Return(definitions, nil)

		svc := leavetype.NewService(repo, mock_audit.NewMockService(ctrl), nil)
		got, err := svc.ListDefinitions(ctx)

		require.NoError(t, err)
		assert.Equal(t, definitions, got)
	})

	t.Run("shared load ignores the caller's cancellation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_leavetype.NewMockRepository(ctrl)
		repo.EXPECT().FindAll(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]leavetype.LeaveType, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return definitions, nil
		})

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		svc := leavetype.NewService(repo, mock_audit.NewMockService(ctrl), nil)
		got, err := svc.ListDefinitions(cancelled)

		require.NoError(t, err)
		assert.Equal(t, definitions, got)
	})

	t.Run("store failure surfaces from GetAll as persistence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_leavetype.NewMockRepository(ctrl)
		repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("db down"))

		svc := leavetype.NewService(repo, mock_audit.NewMockService(ctrl), nil)
		_, err := svc.GetAll(ctx)

		assert.True(t, errors.Is(err, apperror.ErrPersistence))
	})
}

func TestService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults approval, invalidates cache and audits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_leavetype.NewMockRepository(ctrl)
		auditSvc := mock_audit.NewMockService(ctrl)
		rdb, rmock := redismock.NewClientMock()

		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, lt *leavetype.LeaveType) error {
			assert.True(t, lt.RequiresApproval)
			assert.Equal(t, "Employee,Manager", lt.ApplicableRoles)
			return nil
		})
		rmock.ExpectDel(leavetype.DefinitionsCacheKey).SetVal(1)
		auditSvc.EXPECT().Record(gomock.Any(), "admin@company.com", audit.ActionLeaveTypeUpdate,
			"Leave type PL (Parental Leave) saved, max 90 days", "").Return(nil)

		svc := leavetype.NewService(repo, auditSvc, rdb)
		resp, err := svc.Upsert(ctx, "admin@company.com", leavetype.UpsertLeaveTypeRequest{
			ID: "PL", Name: "Parental Leave", MaxDays: 90, ApplicableRoles: []string{"employee", "Manager"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Employee", "Manager"}, resp.ApplicableRoles)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_leavetype.NewMockRepository(ctrl)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_leave_types_name"})

		svc := leavetype.NewService(repo, mock_audit.NewMockService(ctrl), nil)
		_, err := svc.Upsert(ctx, "admin@company.com", leavetype.UpsertLeaveTypeRequest{ID: "X", Name: "Sick Leave", MaxDays: 1})

		assert.True(t, errors.Is(err, leavetypeerrors.ErrLeaveTypeNameTaken))
	})
}
