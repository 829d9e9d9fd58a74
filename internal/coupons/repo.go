package coupons

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
)

// Repository exposes persistence helpers for coupons and the per-user
// applied-coupon marker.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByCode(ctx context.Context, code string) (*models.Coupon, error)
	List(ctx context.Context) ([]models.Coupon, error)
	Create(ctx context.Context, coupon *models.Coupon) error
	Delete(ctx context.Context, code string) (bool, error)
	SetActive(ctx context.Context, active *models.ActiveCoupon) error
	ClearActive(ctx context.Context, userID string) error
	ActiveCouponFor(ctx context.Context, userID string) (*models.Coupon, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a coupons repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

// FindByCode matches codes case-insensitively; "fresh20" resolves FRESH20.
func (r *repositoryImpl) FindByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.db.WithContext(ctx).
		Where("UPPER(code) = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&coupon).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *repositoryImpl) List(ctx context.Context) ([]models.Coupon, error) {
	var coupons []models.Coupon
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *repositoryImpl) Create(ctx context.Context, coupon *models.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

func (r *repositoryImpl) Delete(ctx context.Context, code string) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.Coupon{}, "code = ?", code)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SetActive replaces whatever coupon the user had applied before.
func (r *repositoryImpl) SetActive(ctx context.Context, active *models.ActiveCoupon) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"coupon_code", "applied_at"}),
		}).
		Create(active).Error
}

func (r *repositoryImpl) ClearActive(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Delete(&models.ActiveCoupon{}, "user_id = ?", userID).Error
}

// ActiveCouponFor returns the coupon currently applied to the user's cart,
// or nil when no coupon is active.
func (r *repositoryImpl) ActiveCouponFor(ctx context.Context, userID string) (*models.Coupon, error) {
	var active models.ActiveCoupon
	err := r.db.WithContext(ctx).First(&active, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var coupon models.Coupon
	err = r.db.WithContext(ctx).First(&coupon, "code = ?", active.CouponCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}
