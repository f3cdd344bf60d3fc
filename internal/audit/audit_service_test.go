package audit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-leave/internal/audit"
	mock_audit "go-leave/internal/audit/mock"
	"go-leave/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("appends entry with leave id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_audit.NewMockRepository(ctrl)
		svc := audit.NewService(repo)

		repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *audit.Entry) error {
			assert.NotEqual(t, uuid.Nil, e.ID)
			assert.False(t, e.Timestamp.IsZero())
			assert.Equal(t, time.UTC, e.Timestamp.Location())
			assert.Equal(t, audit.ActionSubmitRequest, e.Action)
			assert.Equal(t, "emp1@company.com", e.ActorEmail)
			require.NotNil(t, e.RelatedLeaveID)
			assert.Equal(t, "LR1", *e.RelatedLeaveID)
			return nil
		})

		err := svc.Record(ctx, "emp1@company.com", audit.ActionSubmitRequest, "New leave request submitted: 3 days of Sick Leave", "LR1")
		assert.NoError(t, err)
	})

	t.Run("empty leave id is stored as null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_audit.NewMockRepository(ctrl)
		svc := audit.NewService(repo)

		repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *audit.Entry) error {
			assert.Nil(t, e.RelatedLeaveID)
			return nil
		})

		assert.NoError(t, svc.Record(ctx, audit.ActorSystem, audit.ActionAccessAttempt, "Unknown user access attempt: x", ""))
	})

	t.Run("append failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_audit.NewMockRepository(ctrl)
		svc := audit.NewService(repo)
		repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		assert.EqualError(t, svc.Record(ctx, "a", audit.ActionWarning, "d", ""), "disk full")
	})
}

func TestService_ListRecent(t *testing.T) {
	ctx := context.Background()
	leaveID := "LR1"
	ts := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default", 0, 100},
		{"custom", 20, 20},
		{"clamped", 5000, 1000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_audit.NewMockRepository(ctrl)
			svc := audit.NewService(repo)
			repo.EXPECT().FindRecent(gomock.Any(), tc.wantLimit).Return([]audit.Entry{
				{ID: uuid.New(), Timestamp: ts, Action: audit.ActionProcessDecision, ActorEmail: "m@company.com", RelatedLeaveID: &leaveID},
			}, nil)

			resp, err := svc.ListRecent(ctx, tc.limit)

			require.NoError(t, err)
			require.Len(t, resp, 1)
			assert.Equal(t, "2026-03-10T09:30:00Z", resp[0].Timestamp)
			assert.Equal(t, &leaveID, resp[0].RelatedLeaveID)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_audit.NewMockRepository(ctrl)
		svc := audit.NewService(repo)
		repo.EXPECT().FindRecent(gomock.Any(), 100).Return(nil, errors.New("db down"))

		_, err := svc.ListRecent(ctx, 0)

		assert.True(t, errors.Is(err, apperror.ErrPersistence))
	})
}
