package leavetype

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-leave/internal/audit"
	"go-leave/internal/domain"
	"go-leave/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefinitionsCacheKey = "leave_types:all"
	definitionsCacheTTL = time.Hour
)

//go:generate mockgen -source=leavetype_service.go -destination=mock/leavetype_service_mock.go -package=mock
type Service interface {
	// ListDefinitions returns every stored definition, valid or not, in store order.
	ListDefinitions(ctx context.Context) ([]LeaveType, error)
	GetAll(ctx context.Context) ([]LeaveTypeResponse, error)
	Upsert(ctx context.Context, actorEmail string, req UpsertLeaveTypeRequest) (LeaveTypeResponse, error)
}

type service struct {
	repo   Repository
	audit  audit.Service
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, auditService audit.Service, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{
		repo:   repo,
		audit:  auditService,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) ListDefinitions(ctx context.Context) ([]LeaveType, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, DefinitionsCacheKey).Result(); err == nil {
			var types []LeaveType
			if json.Unmarshal([]byte(cached), &types) == nil {
				return types, nil
			}
		}
	}

	// Shared by every waiting caller, so one caller's cancellation must not fail the rest.
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(DefinitionsCacheKey, func() (interface{}, error) {
		types, err := s.repo.FindAll(loadCtx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(types); err == nil {
				if err := s.rdb.Set(loadCtx, DefinitionsCacheKey, string(data), definitionsCacheTTL).Err(); err != nil {
					s.logger.Warn("cache leave types failed", zap.Error(err))
				}
			}
		}
		return types, nil
	})
	if err != nil {
		s.logger.Error("list leave types failed", zap.Error(err))
		return nil, err
	}

	return v.([]LeaveType), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.ListDefinitions(ctx)
	if err != nil {
		return nil, apperror.ErrPersistence.WithCause(err)
	}
	return mapToListResponse(types), nil
}

func (s *service) Upsert(ctx context.Context, actorEmail string, req UpsertLeaveTypeRequest) (LeaveTypeResponse, error) {
	requiresApproval := true
	if req.RequiresApproval != nil {
		requiresApproval = *req.RequiresApproval
	}
	roles := make([]string, 0, len(req.ApplicableRoles))
	for _, r := range req.ApplicableRoles {
		roles = append(roles, domain.ParseRole(r).Display())
	}

	t := &LeaveType{
		ID:               strings.TrimSpace(req.ID),
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		MaxDays:          req.MaxDays,
		RequiresApproval: requiresApproval,
		ApplicableRoles:  strings.Join(roles, ","),
		UpdatedAt:        time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, t); err != nil {
		s.logger.Error("upsert leave type failed", zap.String("leave_type_id", t.ID), zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, DefinitionsCacheKey).Err(); err != nil {
			s.logger.Warn("invalidate leave types cache failed", zap.Error(err))
		}
	}

	details := fmt.Sprintf("Leave type %s (%s) saved, max %d days", t.ID, t.Name, t.MaxDays)
	if err := s.audit.Record(ctx, actorEmail, audit.ActionLeaveTypeUpdate, details, ""); err != nil {
		s.logger.Error("leave type update audit failed", zap.String("leave_type_id", t.ID), zap.Error(err))
		return LeaveTypeResponse{}, apperror.ErrPersistence.WithCause(err)
	}
	return mapToResponse(*t), nil
}

func mapToResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:               t.ID,
		Name:             t.Name,
		Description:      t.Description,
		MaxDays:          t.MaxDays,
		RequiresApproval: t.RequiresApproval,
		ApplicableRoles:  domain.SplitList(t.ApplicableRoles),
	}
}

func mapToListResponse(types []LeaveType) []LeaveTypeResponse {
	resp := make([]LeaveTypeResponse, len(types))
	for i, t := range types {
		resp[i] = mapToResponse(t)
	}
	return resp
}
