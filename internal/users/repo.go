package users

import (
	"context"

	"gorm.io/gorm"

	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
	"github.com/imakhan79/Grocery-Mart/pkg/enums"
)

// Repository exposes persistence helpers for mock users.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByID(ctx context.Context, id string) (*models.User, error)
	FirstByRole(ctx context.Context, role enums.UserRole) (*models.User, error)
	AddLoyaltyPoints(ctx context.Context, userID string, points int) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a users repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repositoryImpl) FirstByRole(ctx context.Context, role enums.UserRole) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("created_at ASC, id ASC").
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repositoryImpl) AddLoyaltyPoints(ctx context.Context, userID string, points int) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", points)).Error
}
