package rbac

import (
	"sort"
	"sync"

	"go-leave/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsFor(role domain.Role) ([]Permission, error)
	ListPolicies() ([]RolePermissionsResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		enforcer: enforcer,
		logger:   l,
	}
}

// Enforce never allows a role that is not assignable, including the
// unknown and error sentinels.
func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	if !req.Role.Assignable() {
		s.logger.Debug("rbac enforce denied non assignable role",
			zap.String("role", req.Role.String()),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
		)
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role.String(), req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role.String()),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role.String()),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsFor(role domain.Role) ([]Permission, error) {
	if !role.Assignable() {
		return []Permission{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.enforcer.GetImplicitPermissionsForUser(role.String())
	if err != nil {
		s.logger.Error("rbac list permissions failed", zap.String("role", role.String()), zap.Error(err))
		return nil, err
	}

	perms := make([]Permission, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		perms = append(perms, Permission{Resource: row[1], Action: row[2]})
	}
	sort.Slice(perms, func(i, j int) bool {
		if perms[i].Resource != perms[j].Resource {
			return perms[i].Resource < perms[j].Resource
		}
		return perms[i].Action < perms[j].Action
	})
	return perms, nil
}

func (s *service) ListPolicies() ([]RolePermissionsResponse, error) {
	roles := []domain.Role{domain.RoleEmployee, domain.RoleManager, domain.RoleAdmin}
	resp := make([]RolePermissionsResponse, 0, len(roles))
	for _, role := range roles {
		perms, err := s.PermissionsFor(role)
		if err != nil {
			return nil, err
		}
		resp = append(resp, RolePermissionsResponse{Role: role.Display(), Permissions: perms})
	}
	return resp, nil
}
