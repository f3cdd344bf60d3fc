package access_test

import (
	"context"
	"errors"
	"testing"

	"go-leave/internal/access"
	accesserrors "go-leave/internal/access/errors"
	"go-leave/internal/audit"
	mock_audit "go-leave/internal/audit/mock"
	"go-leave/internal/domain"
	"go-leave/internal/leavetype"
	mock_leavetype "go-leave/internal/leavetype/mock"
	"go-leave/internal/rbac"
	"go-leave/internal/rbac/infra"
	"go-leave/internal/userrole"
	mock_userrole "go-leave/internal/userrole/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type deps struct {
	users      *mock_userrole.MockRepository
	leaveTypes *mock_leavetype.MockService
	audit      *mock_audit.MockService
}

func setup(t *testing.T) (deps, access.Resolver) {
	ctrl := gomock.NewController(t)
	d := deps{
		users:      mock_userrole.NewMockRepository(ctrl),
		leaveTypes: mock_leavetype.NewMockService(ctrl),
		audit:      mock_audit.NewMockService(ctrl),
	}
	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)
	return d, access.NewResolver(d.users, d.leaveTypes, rbac.NewService(enforcer), d.audit)
}

var demoTypes = []leavetype.LeaveType{
	{ID: "AL", Name: "Annual Leave", MaxDays: 20, RequiresApproval: true, ApplicableRoles: "Employee,Manager,Admin"},
	{ID: "SL", Name: "Sick Leave", MaxDays: 10, RequiresApproval: false, ApplicableRoles: "Employee,Manager,Admin"},
	{ID: "PL", Name: "Parental Leave", MaxDays: 90, ApplicableRoles: ""},
	{ID: "SAB", Name: "Sabbatical", MaxDays: 180, ApplicableRoles: "Admin"},
}

func TestResolver_ResolveRole(t *testing.T) {
	ctx := context.Background()

	t.Run("known user role is normalized", func(t *testing.T) {
		d, r := setup(t)
		d.users.EXPECT().FindByEmail(gomock.Any(), "mgr@example.com").
			Return(&userrole.UserRole{Email: "mgr@example.com", Role: "Manager"}, nil)

		role, err := r.ResolveRole(ctx, "mgr@example.com")

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleManager, role)
	})

	t.Run("unknown user is audited", func(t *testing.T) {
		d, r := setup(t)
		d.users.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
		d.audit.EXPECT().
			Record(gomock.Any(), audit.ActorSystem, audit.ActionAccessAttempt, "Unknown user access attempt: ghost@example.com", "").
			Return(nil)

		role, err := r.ResolveRole(ctx, "ghost@example.com")

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleUnknown, role)
	})

	t.Run("lookup is exact", func(t *testing.T) {
		d, r := setup(t)
		d.users.EXPECT().FindByEmail(gomock.Any(), "MGR@example.com").Return(nil, gorm.ErrRecordNotFound)
		d.audit.EXPECT().Record(gomock.Any(), audit.ActorSystem, audit.ActionAccessAttempt, gomock.Any(), "").Return(nil)

		role, err := r.ResolveRole(ctx, "MGR@example.com")

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleUnknown, role)
	})

	t.Run("store failure yields error role", func(t *testing.T) {
		d, r := setup(t)
		d.users.EXPECT().FindByEmail(gomock.Any(), "mgr@example.com").Return(nil, errors.New("connection refused"))
		d.audit.EXPECT().Record(gomock.Any(), audit.ActorSystem, audit.ActionError, gomock.Any(), "").Return(nil)

		role, err := r.ResolveRole(ctx, "mgr@example.com")

		assert.Equal(t, domain.RoleError, role)
		assert.ErrorIs(t, err, accesserrors.ErrRoleLookupFailed)
	})
}

func TestResolver_ResolveAllowedLeaveTypes(t *testing.T) {
	ctx := context.Background()

	t.Run("role match and explicit allowance in store order", func(t *testing.T) {
		d, r := setup(t)
		d.users.EXPECT().FindByEmail(gomock.Any(), "emp@example.com").Return(&userrole.UserRole{
			Email: "emp@example.com", Role: "Employee", Department: "Engineering", AllowedLeaveTypes: "PL, AL",
		}, nil)
		d.leaveTypes.EXPECT().ListDefinitions(gomock.Any()).Return(demoTypes, nil)

		types, err := r.ResolveAllowedLeaveTypes(ctx, "emp@example.com")

		assert.NoError(t, err)
		require.Len(t, types, 3)
		assert.Equal(t, "AL", types[0].ID)
		assert.Equal(t, "SL", types[1].ID)
		assert.Equal(t, "PL", types[2].ID)
		for _, lt := range types {
			assert.Equal(t, "Engineering", lt.Department)
		}
	})

	t.Run("ALL grants every definition once", func(t *testing.T) {
		d, r := setup(t)
		d.users.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(&userrole.UserRole{
			Email: "admin@example.com", Role: "Admin", AllowedLeaveTypes: "ALL",
		}, nil)
		d.leaveTypes.EXPECT().ListDefinitions(gomock.Any()).Return(demoTypes, nil)

		types, err := r.ResolveAllowedLeaveTypes(ctx, "admin@example.com")

		assert.NoError(t, err)
		assert.Len(t, types, len(demoTypes))
	})

	t.Run("invalid definitions are skipped and audited", func(t *testing.T) {
		d, r := setup(t)
		d.users.EXPECT().FindByEmail(gomock.Any(), "emp@example.com").Return(&userrole.UserRole{
			Email: "emp@example.com", Role: "Employee",
		}, nil)
		d.leaveTypes.EXPECT().ListDefinitions(gomock.Any()).Return([]leavetype.LeaveType{
			{ID: "BAD", Name: "Broken", MaxDays: 0, ApplicableRoles: "Employee"},
			{ID: "AL", Name: "Annual Leave", MaxDays: 20, ApplicableRoles: "Employee"},
		}, nil)
		d.audit.EXPECT().
			Record(gomock.Any(), audit.ActorSystem, audit.ActionDataError, "Invalid leave type data found for type BAD", "").
			Return(nil)

		types, err := r.ResolveAllowedLeaveTypes(ctx, "emp@example.com")

		assert.NoError(t, err)
		require.Len(t, types, 1)
		assert.Equal(t, "AL", types[0].ID)
	})

	t.Run("empty result is a warning", func(t *testing.T) {
		d, r := setup(t)
		d.users.EXPECT().FindByEmail(gomock.Any(), "emp@example.com").Return(&userrole.UserRole{
			Email: "emp@example.com", Role: "Employee",
		}, nil)
		d.leaveTypes.EXPECT().ListDefinitions(gomock.Any()).Return([]leavetype.LeaveType{demoTypes[3]}, nil)
		d.audit.EXPECT().
			Record(gomock.Any(), audit.ActorSystem, audit.ActionAccessWarning, "No leave types available for user emp@example.com", "").
			Return(nil)

		types, err := r.ResolveAllowedLeaveTypes(ctx, "emp@example.com")

		assert.NoError(t, err)
		assert.NotNil(t, types)
		assert.Empty(t, types)
	})

	t.Run("leave type store failure is audited", func(t *testing.T) {
		d, r := setup(t)
		d.users.EXPECT().FindByEmail(gomock.Any(), "emp@example.com").Return(&userrole.UserRole{
			Email: "emp@example.com", Role: "Employee",
		}, nil)
		d.leaveTypes.EXPECT().ListDefinitions(gomock.Any()).Return(nil, errors.New("db down"))
		d.audit.EXPECT().
			Record(gomock.Any(), audit.ActorSystem, audit.ActionError, "Leave type lookup failed for emp@example.com: db down", "").
			Return(nil)

		types, err := r.ResolveAllowedLeaveTypes(ctx, "emp@example.com")

		assert.ErrorIs(t, err, accesserrors.ErrLeaveTypeLookupFailed)
		assert.Nil(t, types)
	})

	t.Run("identity not found", func(t *testing.T) {
		d, r := setup(t)
		d.users.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		types, err := r.ResolveAllowedLeaveTypes(ctx, "ghost@example.com")

		assert.ErrorIs(t, err, accesserrors.ErrIdentityNotFound)
		assert.Nil(t, types)
	})
}

func TestResolver_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("manager may read pending", func(t *testing.T) {
		d, r := setup(t)
		d.users.EXPECT().FindByEmail(gomock.Any(), "mgr@example.com").
			Return(&userrole.UserRole{Email: "mgr@example.com", Role: "manager"}, nil)

		ok, err := r.Authorize(ctx, "mgr@example.com", "leave", "read_pending")

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("employee may not read all", func(t *testing.T) {
		d, r := setup(t)
		d.users.EXPECT().FindByEmail(gomock.Any(), "emp@example.com").
			Return(&userrole.UserRole{Email: "emp@example.com", Role: "Employee"}, nil)

		ok, err := r.Authorize(ctx, "emp@example.com", "leave", "read_all")

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown identity is denied", func(t *testing.T) {
		d, r := setup(t)
		d.users.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
		d.audit.EXPECT().Record(gomock.Any(), audit.ActorSystem, audit.ActionAccessAttempt, gomock.Any(), "").Return(nil)

		ok, err := r.Authorize(ctx, "ghost@example.com", "profile", "read")

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store failure is never authorized", func(t *testing.T) {
		d, r := setup(t)
		d.users.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(nil, errors.New("timeout"))
		d.audit.EXPECT().Record(gomock.Any(), audit.ActorSystem, audit.ActionError, gomock.Any(), "").Return(nil)

		ok, err := r.Authorize(ctx, "admin@example.com", "leave", "read_all")

		assert.Error(t, err)
		assert.False(t, ok)
	})
}

func TestResolver_Permissions(t *testing.T) {
	d, r := setup(t)
	d.users.EXPECT().FindByEmail(gomock.Any(), "emp@example.com").
		Return(&userrole.UserRole{Email: "emp@example.com", Role: "Employee"}, nil)

	resp, err := r.Permissions(context.Background(), "emp@example.com")

	assert.NoError(t, err)
	assert.Equal(t, "employee", resp.Role)
	assert.Contains(t, resp.Permissions, rbac.Permission{Resource: "leave", Action: "submit"})
	assert.NotContains(t, resp.Permissions, rbac.Permission{Resource: "leave", Action: "decide"})
}
