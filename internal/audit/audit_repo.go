package audit

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	FindRecent(ctx context.Context, limit int) ([]Entry, error)
	FindByLeaveID(ctx context.Context, leaveID string) ([]Entry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Append(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindRecent(ctx context.Context, limit int) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (r *repository) FindByLeaveID(ctx context.Context, leaveID string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("related_leave_id = ?", leaveID).
		Order("timestamp ASC").
		Find(&entries).Error
	return entries, err
}
