package leave

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindByEmployee(ctx context.Context, employeeEmail string) ([]LeaveRequest, error)
	// FindByManager returns every request managed by managerEmail; status "" means any status.
	FindByManager(ctx context.Context, managerEmail, status string) ([]LeaveRequest, error)
	FindAll(ctx context.Context) ([]LeaveRequest, error)
	Count(ctx context.Context) (int64, error)
	ExistsID(ctx context.Context, id string) (bool, error)
	UpdateDecision(ctx context.Context, id, status, comment string, decidedAt time.Time) error
	// HasOverlappingPeriod checks inclusive ranges against every non rejected request.
	HasOverlappingPeriod(ctx context.Context, employeeEmail string, startDate, endDate time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

// FindByID returns gorm.ErrRecordNotFound for unknown ids.
func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeEmail string) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Where("employee_email = ?", employeeEmail).
		Order("submitted_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByManager(ctx context.Context, managerEmail, status string) ([]LeaveRequest, error) {
	db := r.db.WithContext(ctx).
		Where("manager_email = ?", managerEmail)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var leaves []LeaveRequest
	err := db.Order("submitted_at DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Order("submitted_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Count(&count).Error
	return count, err
}

func (r *repository) ExistsID(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdateDecision(ctx context.Context, id, status, comment string, decidedAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          status,
			"manager_comment": comment,
			"decided_at":      decidedAt,
			"updated_at":      time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, employeeEmail string, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("employee_email = ?", employeeEmail).
		Where("status <> ?", StatusRejected).
		Where("start_date <= ? AND end_date >= ?", endDate, startDate).
		Count(&count).Error
	return count > 0, err
}
