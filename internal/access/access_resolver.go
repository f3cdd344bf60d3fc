package access

import (
	"context"
	"errors"
	"fmt"

	accesserrors "go-leave/internal/access/errors"
	"go-leave/internal/audit"
	"go-leave/internal/domain"
	"go-leave/internal/leavetype"
	"go-leave/internal/rbac"
	"go-leave/internal/userrole"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Resolver answers who an identity is and what it may do.
//
//go:generate mockgen -source=access_resolver.go -destination=mock/access_resolver_mock.go -package=mock
type Resolver interface {
	// ResolveRole returns RoleUnknown with a nil error for identities without
	// an entry, and RoleError with a non-nil error when the store fails.
	ResolveRole(ctx context.Context, identity string) (domain.Role, error)
	// ResolveUser returns ErrIdentityNotFound for identities without an entry.
	ResolveUser(ctx context.Context, identity string) (*userrole.UserRole, error)
	// ResolveAllowedLeaveTypes lists the definitions the identity may request,
	// in store order. An empty result is not an error.
	ResolveAllowedLeaveTypes(ctx context.Context, identity string) ([]AllowedLeaveType, error)
	Authorize(ctx context.Context, identity, resource, action string) (bool, error)
	Permissions(ctx context.Context, identity string) (PermissionsResponse, error)
}

type resolver struct {
	users      userrole.Repository
	leaveTypes leavetype.Service
	rbac       rbac.Service
	audit      audit.Service
	logger     *zap.Logger
}

func NewResolver(
	users userrole.Repository,
	leaveTypes leavetype.Service,
	rbacService rbac.Service,
	auditService audit.Service,
	logger ...*zap.Logger,
) Resolver {
	l := zap.L().Named("access.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("access.resolver")
	}
	return &resolver{
		users:      users,
		leaveTypes: leaveTypes,
		rbac:       rbacService,
		audit:      auditService,
		logger:     l,
	}
}

// record writes a system audit entry. A failed append is logged only: the
// resolver never grants more because the audit log is down.
func (r *resolver) record(ctx context.Context, action, details string) {
	if err := r.audit.Record(ctx, audit.ActorSystem, action, details, ""); err != nil {
		r.logger.Warn("audit record failed", zap.String("action", action), zap.Error(err))
	}
}

func (r *resolver) ResolveUser(ctx context.Context, identity string) (*userrole.UserRole, error) {
	u, err := r.users.FindByEmail(ctx, identity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accesserrors.ErrIdentityNotFound
		}
		r.logger.Error("user role lookup failed", zap.String("identity", identity), zap.Error(err))
		r.record(ctx, audit.ActionError, fmt.Sprintf("Role lookup failed for %s: %v", identity, err))
		return nil, accesserrors.ErrRoleLookupFailed.WithCause(err)
	}
	return u, nil
}

func (r *resolver) ResolveRole(ctx context.Context, identity string) (domain.Role, error) {
	u, err := r.ResolveUser(ctx, identity)
	if err != nil {
		if errors.Is(err, accesserrors.ErrIdentityNotFound) {
			r.logger.Warn("unknown user access attempt", zap.String("identity", identity))
			r.record(ctx, audit.ActionAccessAttempt, fmt.Sprintf("Unknown user access attempt: %s", identity))
			return domain.RoleUnknown, nil
		}
		return domain.RoleError, err
	}
	return u.NormalizedRole(), nil
}

func (r *resolver) ResolveAllowedLeaveTypes(ctx context.Context, identity string) ([]AllowedLeaveType, error) {
	u, err := r.ResolveUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	definitions, err := r.leaveTypes.ListDefinitions(ctx)
	if err != nil {
		r.logger.Error("leave type lookup failed", zap.String("identity", identity), zap.Error(err))
		r.record(ctx, audit.ActionError, fmt.Sprintf("Leave type lookup failed for %s: %v", identity, err))
		return nil, accesserrors.ErrLeaveTypeLookupFailed.WithCause(err)
	}

	role := u.NormalizedRole()
	allowed := make([]AllowedLeaveType, 0, len(definitions))
	for _, t := range definitions {
		if !t.AppliesTo(role) && !u.AllowsLeaveType(t.ID) {
			continue
		}
		if !t.Valid() {
			r.logger.Warn("invalid leave type definition", zap.String("leave_type_id", t.ID))
			r.record(ctx, audit.ActionDataError, fmt.Sprintf("Invalid leave type data found for type %s", t.ID))
			continue
		}
		allowed = append(allowed, AllowedLeaveType{
			ID:               t.ID,
			Name:             t.Name,
			Description:      t.Description,
			MaxDays:          t.MaxDays,
			RequiresApproval: t.RequiresApproval,
			Department:       u.Department,
		})
	}

	if len(allowed) == 0 {
		r.record(ctx, audit.ActionAccessWarning, fmt.Sprintf("No leave types available for user %s", identity))
	}
	return allowed, nil
}

// Authorize resolves the identity's role and checks it against the role policy.
// Unknown identities are denied without an error.
func (r *resolver) Authorize(ctx context.Context, identity, resource, action string) (bool, error) {
	role, err := r.ResolveRole(ctx, identity)
	if err != nil {
		return false, err
	}
	return r.rbac.Enforce(domain.EnforceRequest{Role: role, Resource: resource, Action: action})
}

func (r *resolver) Permissions(ctx context.Context, identity string) (PermissionsResponse, error) {
	role, err := r.ResolveRole(ctx, identity)
	if err != nil {
		return PermissionsResponse{}, err
	}
	perms, err := r.rbac.PermissionsFor(role)
	if err != nil {
		return PermissionsResponse{}, err
	}
	return PermissionsResponse{Email: identity, Role: role.String(), Permissions: perms}, nil
}
