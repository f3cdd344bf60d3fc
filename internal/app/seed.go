package app

import (
	"context"
	"fmt"
	"time"

	"go-leave/internal/audit"
	"go-leave/internal/leavetype"
	"go-leave/internal/userrole"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var demoUsers = []userrole.UserRole{
	{Email: "admin@company.com", Role: "Admin", Department: "Administration", AllowedLeaveTypes: userrole.AllLeaveTypes},
	{Email: "manager1@company.com", Role: "Manager", Department: "Engineering", AllowedLeaveTypes: "SL,VAC,PL,TL"},
	{Email: "manager2@company.com", Role: "Manager", Department: "Marketing", AllowedLeaveTypes: "SL,VAC,PL"},
	{Email: "emp1@company.com", Role: "Employee", ManagerEmail: "manager1@company.com", Department: "Engineering", AllowedLeaveTypes: "SL,VAC,TL"},
	{Email: "emp2@company.com", Role: "Employee", ManagerEmail: "manager1@company.com", Department: "Engineering", AllowedLeaveTypes: "SL,VAC,PL"},
	{Email: "emp3@company.com", Role: "Employee", ManagerEmail: "manager2@company.com", Department: "Marketing", AllowedLeaveTypes: "SL,VAC"},
}

var demoLeaveTypes = []leavetype.LeaveType{
	{ID: "SL", Name: "Sick Leave", Description: "Medical and health-related leave", MaxDays: 12, RequiresApproval: true, ApplicableRoles: "Admin,Manager,Employee"},
	{ID: "VAC", Name: "Vacation", Description: "Annual vacation leave", MaxDays: 20, RequiresApproval: true, ApplicableRoles: "Admin,Manager,Employee"},
	{ID: "PL", Name: "Personal Leave", Description: "Personal time off", MaxDays: 5, RequiresApproval: true, ApplicableRoles: "Admin,Manager,Employee"},
	{ID: "TL", Name: "Training Leave", Description: "Professional development", MaxDays: 10, RequiresApproval: true, ApplicableRoles: "Admin,Manager,Employee"},
}

// Seeder upserts the demo role assignments and leave types. Existing
// leave requests and audit entries are left alone.
type Seeder struct {
	users      userrole.Repository
	leaveTypes leavetype.Repository
	audit      audit.Service
	rdb        *redis.Client
	logger     *zap.Logger
}

func NewSeeder(
	users userrole.Repository,
	leaveTypes leavetype.Repository,
	auditService audit.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		users:      users,
		leaveTypes: leaveTypes,
		audit:      auditService,
		rdb:        rdb,
		logger:     logger.Named("app.seed"),
	}
}

func (s *Seeder) Seed(ctx context.Context) error {
	now := time.Now().UTC()

	for _, u := range demoUsers {
		u.UpdatedAt = now
		if err := s.users.Upsert(ctx, &u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
	}
	for _, t := range demoLeaveTypes {
		t.UpdatedAt = now
		if err := s.leaveTypes.Upsert(ctx, &t); err != nil {
			return fmt.Errorf("seed leave type %s: %w", t.ID, err)
		}
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, leavetype.DefinitionsCacheKey).Err(); err != nil {
			s.logger.Warn("invalidate leave types cache failed", zap.Error(err))
		}
	}

	if err := s.audit.Record(ctx, audit.ActorSystem, audit.ActionInitialization, "Test data initialized", ""); err != nil {
		return fmt.Errorf("record initialization: %w", err)
	}
	s.logger.Info("demo data seeded",
		zap.Int("users", len(demoUsers)),
		zap.Int("leave_types", len(demoLeaveTypes)),
	)
	return nil
}
