package userrole

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=userrole_repo.go -destination=mock/userrole_repo_mock.go -package=mock
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*UserRole, error)
	FindAll(ctx context.Context) ([]UserRole, error)
	Upsert(ctx context.Context, u *UserRole) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindByEmail returns gorm.ErrRecordNotFound when the email has no entry.
func (r *repository) FindByEmail(ctx context.Context, email string) (*UserRole, error) {
	var u UserRole
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAll(ctx context.Context) ([]UserRole, error) {
	var users []UserRole
	err := r.db.WithContext(ctx).
		Order("email ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) Upsert(ctx context.Context, u *UserRole) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"role", "full_name", "manager_email", "department", "allowed_leave_types", "updated_at",
			}),
		}).
		Create(u).Error
}
