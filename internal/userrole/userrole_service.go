package userrole

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-leave/internal/audit"
	"go-leave/internal/domain"
	"go-leave/internal/shared/apperror"
	userroleerrors "go-leave/internal/userrole/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=userrole_service.go -destination=mock/userrole_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]UserRoleResponse, error)
	GetByEmail(ctx context.Context, email string) (UserRoleResponse, error)
	Upsert(ctx context.Context, actorEmail string, req UpsertUserRoleRequest) (UserRoleResponse, error)
}

type service struct {
	repo   Repository
	audit  audit.Service
	logger *zap.Logger
}

func NewService(repo Repository, auditService audit.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("userrole.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("userrole.service")
	}
	return &service{repo: repo, audit: auditService, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]UserRoleResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list user roles failed", zap.Error(err))
		return nil, apperror.ErrPersistence.WithCause(err)
	}
	return mapToListResponse(users), nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (UserRoleResponse, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserRoleResponse{}, userroleerrors.ErrUserRoleNotFound
		}
		s.logger.Error("get user role failed", zap.String("email", email), zap.Error(err))
		return UserRoleResponse{}, apperror.ErrPersistence.WithCause(err)
	}
	return mapToResponse(*u), nil
}

// Upsert overwrites the entry for req.Email. Entries are never deleted.
func (s *service) Upsert(ctx context.Context, actorEmail string, req UpsertUserRoleRequest) (UserRoleResponse, error) {
	role := domain.ParseRole(req.Role)
	if !role.Assignable() {
		return UserRoleResponse{}, userroleerrors.ErrInvalidRole
	}
	email := strings.TrimSpace(req.Email)
	manager := strings.TrimSpace(req.ManagerEmail)
	if manager != "" && strings.EqualFold(manager, email) {
		return UserRoleResponse{}, userroleerrors.ErrSelfManager
	}

	u := &UserRole{
		Email:             email,
		Role:              role.Display(),
		FullName:          strings.TrimSpace(req.FullName),
		ManagerEmail:      manager,
		Department:        strings.TrimSpace(req.Department),
		AllowedLeaveTypes: strings.Join(domain.SplitList(req.AllowedLeaveTypes), ","),
		UpdatedAt:         time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, u); err != nil {
		s.logger.Error("upsert user role failed", zap.String("email", email), zap.Error(err))
		return UserRoleResponse{}, apperror.ErrPersistence.WithCause(err)
	}

	details := fmt.Sprintf("User %s saved as %s", u.Email, u.Role)
	if err := s.audit.Record(ctx, actorEmail, audit.ActionUserUpdate, details, ""); err != nil {
		s.logger.Error("user update audit failed", zap.String("email", email), zap.Error(err))
		return UserRoleResponse{}, apperror.ErrPersistence.WithCause(err)
	}
	s.logger.Info("upsert user role success",
		zap.String("email", u.Email),
		zap.String("role", u.Role),
		zap.String("actor", actorEmail),
	)
	return mapToResponse(*u), nil
}

func mapToResponse(u UserRole) UserRoleResponse {
	resp := UserRoleResponse{
		Email:             u.Email,
		Role:              u.Role,
		FullName:          u.FullName,
		ManagerEmail:      u.ManagerEmail,
		Department:        u.Department,
		AllowedLeaveTypes: u.AllowedLeaveTypeIDs(),
	}
	if !u.UpdatedAt.IsZero() {
		resp.UpdatedAt = u.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(users []UserRole) []UserRoleResponse {
	resp := make([]UserRoleResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp
}
