package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-leave/internal/access"
	"go-leave/internal/audit"
	"go-leave/internal/domain"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/notification"
	"go-leave/internal/shared/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, identity string, req SubmitLeaveRequest) (SubmitResult, error)
	Decide(ctx context.Context, identity, leaveID string, req DecideLeaveRequest) (DecisionResult, error)
	GetByID(ctx context.Context, identity, leaveID string) (LeaveResponse, error)
	ListMine(ctx context.Context, identity string) ([]LeaveResponse, error)
	ListPending(ctx context.Context, identity string) ([]LeaveResponse, error)
	ListTeam(ctx context.Context, identity string) ([]LeaveResponse, error)
	ListAll(ctx context.Context, identity string) ([]LeaveResponse, error)
}

type service struct {
	repo     Repository
	resolver access.Resolver
	audit    audit.Service
	notifier notification.Notifier
	ids      *IDAllocator
	loc      *time.Location
	now      func() time.Time
	logger   *zap.Logger
}

// NewService wires the lifecycle. now may be nil (time.Now); loc decides
// which calendar day counts as today and may be nil (UTC).
func NewService(
	repo Repository,
	resolver access.Resolver,
	auditService audit.Service,
	notifier notification.Notifier,
	loc *time.Location,
	now func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &service{
		repo:     repo,
		resolver: resolver,
		audit:    auditService,
		notifier: notifier,
		ids:      NewIDAllocator(repo, now),
		loc:      loc,
		now:      now,
		logger:   l,
	}
}

func (s *service) Submit(ctx context.Context, identity string, req SubmitLeaveRequest) (SubmitResult, error) {
	s.logger.Debug("submit leave requested",
		zap.String("identity", identity),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	if strings.TrimSpace(req.LeaveType) == "" || strings.TrimSpace(req.StartDate) == "" ||
		strings.TrimSpace(req.EndDate) == "" || strings.TrimSpace(req.Reason) == "" {
		return s.rejectSubmit(identity, leaveerrors.ErrMissingFields)
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return s.rejectSubmit(identity, err)
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return s.rejectSubmit(identity, err)
	}
	if startDate.Before(s.today()) {
		return s.rejectSubmit(identity, leaveerrors.ErrStartDateInPast)
	}
	if endDate.Before(startDate) {
		return s.rejectSubmit(identity, leaveerrors.ErrEndBeforeStart)
	}

	user, err := s.resolver.ResolveUser(ctx, identity)
	if err != nil {
		return s.rejectSubmit(identity, err)
	}
	if strings.TrimSpace(user.ManagerEmail) == "" {
		return s.rejectSubmit(identity, leaveerrors.ErrManagerNotFound)
	}

	allowed, err := s.resolver.ResolveAllowedLeaveTypes(ctx, identity)
	if err != nil {
		return s.rejectSubmit(identity, err)
	}
	if !containsLeaveTypeName(allowed, req.LeaveType) {
		return s.rejectSubmit(identity, leaveerrors.ErrInvalidLeaveType)
	}

	// Not atomic with Create: two concurrent submissions can both pass.
	overlap, err := s.repo.HasOverlappingPeriod(ctx, identity, startDate, endDate)
	if err != nil {
		return SubmitResult{}, s.persistenceFailure(ctx, leaveerrors.ErrSaveFailed.WithCause(err),
			fmt.Sprintf("Overlap check failed for %s", identity), "")
	}
	if overlap {
		s.logger.Warn("submit leave overlap detected",
			zap.String("identity", identity),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return SubmitResult{}, leaveerrors.ErrLeaveOverlap
	}

	leaveID, err := s.ids.Allocate(ctx)
	if err != nil {
		return SubmitResult{}, s.persistenceFailure(ctx, err, fmt.Sprintf("Leave ID allocation failed for %s", identity), "")
	}

	l := &LeaveRequest{
		ID:            leaveID,
		EmployeeEmail: identity,
		EmployeeName:  user.DisplayName(),
		ManagerEmail:  user.ManagerEmail,
		LeaveType:     req.LeaveType,
		StartDate:     startDate,
		EndDate:       endDate,
		Reason:        req.Reason,
		SubmittedAt:   s.now().UTC(),
		Status:        StatusPending,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return SubmitResult{}, s.persistenceFailure(ctx, leaveerrors.ErrSaveFailed.WithCause(err),
			fmt.Sprintf("Failed to save leave request %s", leaveID), leaveID)
	}

	stored, err := s.repo.FindByID(ctx, leaveID)
	if err != nil || stored.ID != leaveID || stored.Status != StatusPending {
		if err == nil {
			err = fmt.Errorf("read back mismatch for %s", leaveID)
		}
		return SubmitResult{}, s.persistenceFailure(ctx, leaveerrors.ErrSaveFailed.WithCause(err),
			fmt.Sprintf("Failed to verify leave request %s", leaveID), leaveID)
	}

	days := l.TotalDays()
	details := fmt.Sprintf("New leave request submitted: %d days of %s", days, req.LeaveType)
	if err := s.audit.Record(ctx, identity, audit.ActionSubmitRequest, details, leaveID); err != nil {
		s.logger.Error("submit leave audit failed", zap.String("leave_id", leaveID), zap.Error(err))
		return SubmitResult{}, leaveerrors.ErrAuditFailed.WithCause(err)
	}

	if err := s.notify(ctx, *stored); err != nil {
		s.notifyFailed(ctx, leaveID, fmt.Sprintf("Failed to send notification for %s", leaveID), err)
	}

	s.logger.Info("submit leave success",
		zap.String("leave_id", leaveID),
		zap.String("identity", identity),
		zap.Int("days", days),
	)
	return SubmitResult{
		Success: true,
		LeaveID: leaveID,
		Message: "Leave request submitted successfully",
		Request: mapToResponse(*stored),
	}, nil
}

func (s *service) Decide(ctx context.Context, identity, leaveID string, req DecideLeaveRequest) (DecisionResult, error) {
	s.logger.Debug("decide leave requested",
		zap.String("identity", identity),
		zap.String("leave_id", leaveID),
		zap.String("decision", req.Decision),
	)

	if strings.TrimSpace(leaveID) == "" || strings.TrimSpace(req.Decision) == "" {
		return DecisionResult{}, leaveerrors.ErrMissingFields
	}
	if !IsValidStatus(req.Decision) {
		return DecisionResult{}, leaveerrors.ErrInvalidDecision
	}

	role, err := s.resolver.ResolveRole(ctx, identity)
	if err != nil {
		return DecisionResult{}, err
	}
	if !role.CanDecide() {
		s.logger.Warn("decide leave unauthorized role", zap.String("identity", identity), zap.String("role", role.String()))
		return DecisionResult{}, leaveerrors.ErrUnauthorizedDecision
	}

	l, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DecisionResult{}, leaveerrors.ErrLeaveNotFound
		}
		return DecisionResult{}, s.persistenceFailure(ctx, leaveerrors.ErrUpdateFailed.WithCause(err),
			fmt.Sprintf("Failed to load leave request %s", leaveID), leaveID)
	}

	if !l.Decidable() {
		s.logger.Warn("decide leave invalid state",
			zap.String("leave_id", leaveID),
			zap.String("status", l.Status),
		)
		return DecisionResult{}, leaveerrors.ErrInvalidStatusTransition.WithMessage("Cannot process request in %s status", l.Status)
	}

	if role == domain.RoleManager && l.ManagerEmail != identity {
		s.logger.Warn("decide leave not request manager",
			zap.String("leave_id", leaveID),
			zap.String("identity", identity),
		)
		return DecisionResult{}, leaveerrors.ErrNotRequestManager
	}

	decidedAt := s.now().UTC()
	if err := s.repo.UpdateDecision(ctx, leaveID, req.Decision, req.Comment, decidedAt); err != nil {
		return DecisionResult{}, s.persistenceFailure(ctx, leaveerrors.ErrUpdateFailed.WithCause(err),
			fmt.Sprintf("Failed to update leave request %s", leaveID), leaveID)
	}

	stored, err := s.repo.FindByID(ctx, leaveID)
	if err != nil || stored.Status != req.Decision {
		if err == nil {
			err = fmt.Errorf("status read back %q, want %q", stored.Status, req.Decision)
		}
		return DecisionResult{}, s.persistenceFailure(ctx, leaveerrors.ErrUpdateFailed.WithCause(err),
			fmt.Sprintf("Failed to verify decision on %s", leaveID), leaveID)
	}

	comment := req.Comment
	if comment == "" {
		comment = "None"
	}
	details := fmt.Sprintf("Leave request %s by %s. Comment: %s", req.Decision, role, comment)
	if err := s.audit.Record(ctx, identity, audit.ActionProcessDecision, details, leaveID); err != nil {
		s.logger.Error("decide leave audit failed", zap.String("leave_id", leaveID), zap.Error(err))
		return DecisionResult{}, leaveerrors.ErrAuditFailed.WithCause(err)
	}

	if err := s.notify(ctx, *stored); err != nil {
		s.notifyFailed(ctx, leaveID, fmt.Sprintf("Failed to send notification for decision on %s", leaveID), err)
	}

	s.logger.Info("decide leave success",
		zap.String("leave_id", leaveID),
		zap.String("identity", identity),
		zap.String("decision", req.Decision),
	)
	return DecisionResult{
		Success: true,
		LeaveID: leaveID,
		Status:  req.Decision,
		Message: fmt.Sprintf("Leave request %s successfully", strings.ToLower(req.Decision)),
	}, nil
}

// GetByID is open to the requester, the request's manager and admins.
func (s *service) GetByID(ctx context.Context, identity, leaveID string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("get leave failed", zap.String("leave_id", leaveID), zap.Error(err))
		return LeaveResponse{}, apperror.ErrPersistence.WithCause(err)
	}

	if l.EmployeeEmail != identity && l.ManagerEmail != identity {
		allowed, err := s.resolver.Authorize(ctx, identity, "leave", "read_all")
		if err != nil {
			return LeaveResponse{}, err
		}
		if !allowed {
			return LeaveResponse{}, leaveerrors.ErrNotRequestViewer
		}
	}
	return mapToResponse(*l), nil
}

func (s *service) ListMine(ctx context.Context, identity string) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindByEmployee(ctx, identity)
	if err != nil {
		s.logger.Error("list own leaves failed", zap.String("identity", identity), zap.Error(err))
		return nil, apperror.ErrPersistence.WithCause(err)
	}
	if err := s.recordView(ctx, identity, audit.ActionViewRequests, "My leave requests displayed"); err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) ListPending(ctx context.Context, identity string) ([]LeaveResponse, error) {
	if err := s.authorize(ctx, identity, "read_pending", leaveerrors.ErrUnauthorizedPending); err != nil {
		return nil, err
	}
	leaves, err := s.repo.FindByManager(ctx, identity, StatusPending)
	if err != nil {
		s.logger.Error("list pending leaves failed", zap.String("identity", identity), zap.Error(err))
		return nil, apperror.ErrPersistence.WithCause(err)
	}
	details := fmt.Sprintf("Pending requests displayed (%d requests)", len(leaves))
	if err := s.recordView(ctx, identity, audit.ActionViewPending, details); err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) ListTeam(ctx context.Context, identity string) ([]LeaveResponse, error) {
	if err := s.authorize(ctx, identity, "read_team", leaveerrors.ErrUnauthorizedTeam); err != nil {
		return nil, err
	}
	leaves, err := s.repo.FindByManager(ctx, identity, "")
	if err != nil {
		s.logger.Error("list team leaves failed", zap.String("identity", identity), zap.Error(err))
		return nil, apperror.ErrPersistence.WithCause(err)
	}
	details := fmt.Sprintf("Team history displayed (%d records)", len(leaves))
	if err := s.recordView(ctx, identity, audit.ActionViewHistory, details); err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) ListAll(ctx context.Context, identity string) ([]LeaveResponse, error) {
	if err := s.authorize(ctx, identity, "read_all", leaveerrors.ErrUnauthorizedAll); err != nil {
		return nil, err
	}
	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list all leaves failed", zap.Error(err))
		return nil, apperror.ErrPersistence.WithCause(err)
	}
	details := fmt.Sprintf("All requests displayed (%d records)", len(leaves))
	if err := s.recordView(ctx, identity, audit.ActionViewAll, details); err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) authorize(ctx context.Context, identity, action string, denied *apperror.AppError) error {
	allowed, err := s.resolver.Authorize(ctx, identity, "leave", action)
	if err != nil {
		return err
	}
	if !allowed {
		s.logger.Warn("leave view denied", zap.String("identity", identity), zap.String("action", action))
		return denied
	}
	return nil
}

func (s *service) recordView(ctx context.Context, identity, action, details string) error {
	if err := s.audit.Record(ctx, identity, action, details, ""); err != nil {
		s.logger.Error("view audit failed", zap.String("action", action), zap.Error(err))
		return leaveerrors.ErrAuditFailed.WithCause(err)
	}
	return nil
}

func (s *service) rejectSubmit(identity string, err error) (SubmitResult, error) {
	s.logger.Warn("submit leave validation failed", zap.String("identity", identity), zap.Error(err))
	return SubmitResult{}, err
}

// persistenceFailure logs err and records it as a system error entry before
// handing it back. A failing audit log is only logged here.
func (s *service) persistenceFailure(ctx context.Context, err error, details, leaveID string) error {
	s.logger.Error("leave persistence failure", zap.String("leave_id", leaveID), zap.Error(err))
	if auditErr := s.audit.Record(ctx, audit.ActorSystem, audit.ActionError, fmt.Sprintf("%s: %v", details, err), leaveID); auditErr != nil {
		s.logger.Error("record system error failed", zap.Error(auditErr))
	}
	return err
}

// notify sends the status email to the employee and, while pending, the
// manager's review request. The first failure is returned after all sends.
func (s *service) notify(ctx context.Context, l LeaveRequest) error {
	msgs, err := notification.ComposeLeaveUpdate(notification.LeaveUpdate{
		LeaveID:   l.ID,
		Status:    l.Status,
		LeaveType: l.LeaveType,
		StartDate: l.StartDate,
		EndDate:   l.EndDate,
	}, l.EmployeeEmail, l.ManagerEmail, l.Status == StatusPending)
	if err != nil {
		return err
	}

	var firstErr error
	for _, m := range msgs {
		if err := s.notifier.Send(ctx, m.Recipient, m.Subject, m.HTMLBody); err != nil {
			s.logger.Warn("send notification failed",
				zap.String("leave_id", l.ID),
				zap.String("recipient", m.Recipient),
				zap.Error(err),
			)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (s *service) notifyFailed(ctx context.Context, leaveID, details string, err error) {
	s.logger.Warn("notification failed, continuing", zap.String("leave_id", leaveID), zap.Error(err))
	if auditErr := s.audit.Record(ctx, audit.ActorSystem, audit.ActionWarning, details, leaveID); auditErr != nil {
		s.logger.Error("record notification warning failed", zap.Error(auditErr))
	}
}

// today is the current calendar date in the configured location, as a UTC midnight.
func (s *service) today() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func containsLeaveTypeName(types []access.AllowedLeaveType, name string) bool {
	for _, t := range types {
		if t.Name == name {
			return true
		}
	}
	return false
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:             l.ID,
		EmployeeEmail:  l.EmployeeEmail,
		EmployeeName:   l.EmployeeName,
		ManagerEmail:   l.ManagerEmail,
		LeaveType:      l.LeaveType,
		StartDate:      l.StartDate.Format(dateLayout),
		EndDate:        l.EndDate.Format(dateLayout),
		TotalDays:      l.TotalDays(),
		Reason:         l.Reason,
		SubmittedAt:    l.SubmittedAt.Format(time.RFC3339),
		Status:         l.Status,
		ManagerComment: l.ManagerComment,
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
