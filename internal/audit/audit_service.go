package audit

import (
	"context"
	"time"

	"go-leave/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ActorSystem is the actor recorded for entries the service writes on its own behalf.
const ActorSystem = "system"

const (
	ActionAccessAttempt   = "access_attempt"
	ActionAccessWarning   = "access_warning"
	ActionDataError       = "data_error"
	ActionSubmitRequest   = "submit_request"
	ActionProcessDecision = "process_decision"
	ActionWarning         = "warning"
	ActionError           = "error"
	ActionViewRequests    = "view_requests"
	ActionViewPending     = "view_pending"
	ActionViewHistory     = "view_history"
	ActionViewAll         = "view_all"
	ActionUserUpdate      = "user_update"
	ActionLeaveTypeUpdate = "leave_type_update"
	ActionInitialization  = "initialization"
	ActionServerShutdown  = "server_shutdown"
)

const (
	defaultRecentListLimit = 100
	maxRecentListLimit     = 1000
)

//go:generate mockgen -source=audit_service.go -destination=mock/audit_service_mock.go -package=mock
type Service interface {
	// Record appends one entry. leaveID may be empty.
	Record(ctx context.Context, actorEmail, action, details, leaveID string) error
	ListRecent(ctx context.Context, limit int) ([]EntryResponse, error)
	ListByLeaveID(ctx context.Context, leaveID string) ([]EntryResponse, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) Record(ctx context.Context, actorEmail, action, details, leaveID string) error {
	e := &Entry{
		ID:         uuid.New(),
		Timestamp:  s.now().UTC(),
		Action:     action,
		ActorEmail: actorEmail,
		Details:    details,
	}
	if leaveID != "" {
		e.RelatedLeaveID = &leaveID
	}

	s.logger.Info("audit event",
		zap.String("timestamp", e.Timestamp.Format(time.RFC3339)),
		zap.String("action", action),
		zap.String("actor_email", actorEmail),
		zap.String("details", details),
		zap.String("leave_id", leaveID),
	)

	if err := s.repo.Append(ctx, e); err != nil {
		s.logger.Error("audit append failed", zap.String("action", action), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) ListRecent(ctx context.Context, limit int) ([]EntryResponse, error) {
	if limit <= 0 {
		limit = defaultRecentListLimit
	}
	if limit > maxRecentListLimit {
		limit = maxRecentListLimit
	}
	entries, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		s.logger.Error("list recent audit entries failed", zap.Int("limit", limit), zap.Error(err))
		return nil, apperror.ErrPersistence.WithCause(err)
	}
	return mapToListResponse(entries), nil
}

func (s *service) ListByLeaveID(ctx context.Context, leaveID string) ([]EntryResponse, error) {
	entries, err := s.repo.FindByLeaveID(ctx, leaveID)
	if err != nil {
		s.logger.Error("list audit entries by leave failed", zap.String("leave_id", leaveID), zap.Error(err))
		return nil, apperror.ErrPersistence.WithCause(err)
	}
	return mapToListResponse(entries), nil
}

func mapToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:             e.ID.String(),
		Timestamp:      e.Timestamp.Format(time.RFC3339),
		Action:         e.Action,
		ActorEmail:     e.ActorEmail,
		Details:        e.Details,
		RelatedLeaveID: e.RelatedLeaveID,
	}
}

func mapToListResponse(entries []Entry) []EntryResponse {
	resp := make([]EntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = mapToResponse(e)
	}
	return resp
}
