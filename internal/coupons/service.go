package coupons

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
	"github.com/imakhan79/Grocery-Mart/pkg/enums"
	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
)

// SubtotalProvider reports the current cart subtotal for a user. Implemented
// by the cart service; kept as a local interface so coupons stay decoupled
// from cart internals.
type SubtotalProvider interface {
	Subtotal(ctx context.Context, userID string) (decimal.Decimal, error)
}

// AuditRecorder captures admin-side mutations for the audit trail.
type AuditRecorder interface {
	Record(ctx context.Context, adminID, action, target string) error
}

// Service defines coupon application and admin management operations.
type Service interface {
	Apply(ctx context.Context, userID, code string) (*models.Coupon, error)
	Active(ctx context.Context, userID string) (*models.Coupon, error)
	Remove(ctx context.Context, userID string) error
	List(ctx context.Context) ([]models.Coupon, error)
	Create(ctx context.Context, adminID string, input CreateCouponInput) (*models.Coupon, error)
	Delete(ctx context.Context, adminID, code string) error
}

// CreateCouponInput carries the fields an admin supplies for a new coupon.
type CreateCouponInput struct {
	Code     string           `json:"code" validate:"required"`
	Discount decimal.Decimal  `json:"discount" validate:"required"`
	Type     enums.CouponType `json:"type" validate:"required"`
	MinCart  decimal.Decimal  `json:"minCart"`
}

type service struct {
	repo      Repository
	subtotals SubtotalProvider
	audit     AuditRecorder
}

// NewService wires coupon dependencies.
func NewService(repo Repository, subtotals SubtotalProvider, audit AuditRecorder) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "coupons repository required")
	}
	if subtotals == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "subtotal provider required")
	}
	if audit == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "audit recorder required")
	}
	return &service{repo: repo, subtotals: subtotals, audit: audit}, nil
}

// Apply attaches a coupon to the user's cart, replacing any previously
// applied coupon. Codes match case-insensitively and coupons never stack.
func (s *service) Apply(ctx context.Context, userID, code string) (*models.Coupon, error) {
	if strings.TrimSpace(code) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "coupon code required")
	}

	coupon, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "invalid coupon code")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up coupon")
	}

	subtotal, err := s.subtotals.Subtotal(ctx, userID)
	if err != nil {
		return nil, err
	}
	if subtotal.LessThan(coupon.MinCart) {
		return nil, pkgerrors.New(
			pkgerrors.CodeValidation,
			fmt.Sprintf("cart subtotal below coupon minimum of %s", coupon.MinCart.StringFixed(2)),
		)
	}

	active := &models.ActiveCoupon{
		UserID:     userID,
		CouponCode: coupon.Code,
		AppliedAt:  time.Now().UTC(),
	}
	if err := s.repo.SetActive(ctx, active); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "apply coupon")
	}
	return coupon, nil
}

func (s *service) Active(ctx context.Context, userID string) (*models.Coupon, error) {
	coupon, err := s.repo.ActiveCouponFor(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load active coupon")
	}
	return coupon, nil
}

func (s *service) Remove(ctx context.Context, userID string) error {
	if err := s.repo.ClearActive(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove coupon")
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]models.Coupon, error) {
	coupons, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list coupons")
	}
	return coupons, nil
}

func (s *service) Create(ctx context.Context, adminID string, input CreateCouponInput) (*models.Coupon, error) {
	if adminID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "coupon code required")
	}
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid coupon type")
	}
	if !input.Discount.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "discount must be positive")
	}
	if input.MinCart.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "minimum cart must not be negative")
	}

	if existing, err := s.repo.FindByCode(ctx, code); err == nil && existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "coupon code already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check coupon code")
	}

	coupon := &models.Coupon{
		Code:     code,
		Discount: input.Discount,
		Type:     input.Type,
		MinCart:  input.MinCart,
	}
	if err := s.repo.Create(ctx, coupon); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create coupon")
	}

	if err := s.audit.Record(ctx, adminID, "coupon.create", coupon.Code); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record audit entry")
	}
	return coupon, nil
}

func (s *service) Delete(ctx context.Context, adminID, code string) error {
	if adminID == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "coupon code required")
	}

	deleted, err := s.repo.Delete(ctx, code)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete coupon")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "coupon not found")
	}

	if err := s.audit.Record(ctx, adminID, "coupon.delete", code); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record audit entry")
	}
	return nil
}
