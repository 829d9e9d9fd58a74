package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
	"github.com/imakhan79/Grocery-Mart/pkg/enums"
	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
)

// DeliveryFee is the flat fee added to every non-empty cart.
var DeliveryFee = decimal.NewFromInt(2)

// ProductSource looks up catalog entries when adding lines. Implemented by
// the catalog repository.
type ProductSource interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

// CouponSource reports the coupon currently applied to a user's cart, nil
// when none. Implemented by the coupons repository.
type CouponSource interface {
	ActiveCouponFor(ctx context.Context, userID string) (*models.Coupon, error)
}

// Notifier pushes in-app notifications. Implemented by the notifications
// service.
type Notifier interface {
	Notify(ctx context.Context, userID string, kind enums.NotificationType, title, message string) error
}

// Service defines cart operations.
type Service interface {
	Add(ctx context.Context, userID string, input AddItemInput) (*Summary, error)
	SetQuantity(ctx context.Context, userID string, lineID uuid.UUID, quantity int) (*Summary, error)
	Remove(ctx context.Context, userID string, lineID uuid.UUID) (*Summary, error)
	Clear(ctx context.Context, userID string) error
	Fetch(ctx context.Context, userID string) (*Summary, error)
	Subtotal(ctx context.Context, userID string) (decimal.Decimal, error)
}

// AddItemInput carries one add-to-cart request.
type AddItemInput struct {
	ProductID              string                        `json:"productId" validate:"required"`
	VariantID              *string                       `json:"variantId"`
	Quantity               int                           `json:"quantity"`
	SubstitutionPreference *enums.SubstitutionPreference `json:"substitutionPreference"`
}

// Summary is the priced view of a cart returned by every cart endpoint.
type Summary struct {
	Items       []models.CartItem `json:"items"`
	Coupon      *models.Coupon    `json:"coupon,omitempty"`
	Subtotal    decimal.Decimal   `json:"subtotal"`
	Discount    decimal.Decimal   `json:"discount"`
	DeliveryFee decimal.Decimal   `json:"deliveryFee"`
	Total       decimal.Decimal   `json:"total"`
}

type service struct {
	repo     Repository
	products ProductSource
	coupons  CouponSource
	notifier Notifier
}

// NewService wires cart dependencies.
func NewService(repo Repository, products ProductSource, coupons CouponSource, notifier Notifier) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "cart repository required")
	}
	if products == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "product source required")
	}
	if coupons == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "coupon source required")
	}
	if notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifier required")
	}
	return &service{repo: repo, products: products, coupons: coupons, notifier: notifier}, nil
}

// Add puts a product in the cart. Adding the same product and variant again
// bumps the existing line's quantity instead of creating a duplicate.
func (s *service) Add(ctx context.Context, userID string, input AddItemInput) (*Summary, error) {
	if strings.TrimSpace(input.ProductID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	product, err := s.products.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}

	if input.VariantID != nil {
		if !variantExists(product, *input.VariantID) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown variant for product")
		}
	}

	substitution := enums.SubstitutionReplaceNearest
	if input.SubstitutionPreference != nil {
		if !input.SubstitutionPreference.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid substitution preference")
		}
		substitution = *input.SubstitutionPreference
	}

	existing, err := s.repo.FindLine(ctx, userID, input.ProductID, input.VariantID)
	switch {
	case err == nil:
		if err := s.repo.SetQuantity(ctx, existing.ID, existing.Quantity+quantity); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "bump cart line")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		line := &models.CartItem{
			ID:                     uuid.New(),
			UserID:                 userID,
			ProductID:              product.ID,
			VariantID:              input.VariantID,
			Quantity:               quantity,
			SubstitutionPreference: substitution,
		}
		if err := s.repo.Create(ctx, line); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cart line")
		}
	default:
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find cart line")
	}

	if err := s.notifier.Notify(ctx, userID, enums.NotificationTypeSystem, "Added to Cart", fmt.Sprintf("%s added.", product.Name)); err != nil {
		return nil, err
	}
	return s.Fetch(ctx, userID)
}

// SetQuantity sets a line's quantity outright. Zero or below removes the line.
func (s *service) SetQuantity(ctx context.Context, userID string, lineID uuid.UUID, quantity int) (*Summary, error) {
	line, err := s.repo.FindLineByID(ctx, userID, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart line")
	}

	if quantity <= 0 {
		if err := s.repo.DeleteLine(ctx, line.ID); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove cart line")
		}
	} else {
		if err := s.repo.SetQuantity(ctx, line.ID, quantity); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart line")
		}
	}
	return s.Fetch(ctx, userID)
}

func (s *service) Remove(ctx context.Context, userID string, lineID uuid.UUID) (*Summary, error) {
	line, err := s.repo.FindLineByID(ctx, userID, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart line")
	}
	if err := s.repo.DeleteLine(ctx, line.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove cart line")
	}
	return s.Fetch(ctx, userID)
}

func (s *service) Clear(ctx context.Context, userID string) error {
	if err := s.repo.ClearByUser(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

// Fetch prices the cart: subtotal of all lines, any active coupon's
// discount, the flat delivery fee, and the resulting total.
func (s *service) Fetch(ctx context.Context, userID string) (*Summary, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart lines")
	}

	subtotal := sumLines(items)

	coupon, err := s.coupons.ActiveCouponFor(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load active coupon")
	}

	discount := decimal.Zero
	if coupon != nil {
		discount = couponDiscount(coupon, subtotal)
	}

	fee := decimal.Zero
	if len(items) > 0 {
		fee = DeliveryFee
	}

	return &Summary{
		Items:       items,
		Coupon:      coupon,
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee).Sub(discount),
	}, nil
}

func (s *service) Subtotal(ctx context.Context, userID string) (decimal.Decimal, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list cart lines")
	}
	return sumLines(items), nil
}

// LineUnitPrice resolves the price a line is charged at: the chosen
// variant's price when one is set, otherwise the base product price.
func LineUnitPrice(item models.CartItem) decimal.Decimal {
	if item.VariantID != nil {
		for _, variant := range item.Product.Variants {
			if variant.ID == *item.VariantID {
				return variant.Price
			}
		}
	}
	return item.Product.Price
}

func sumLines(items []models.CartItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(LineUnitPrice(item).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

func couponDiscount(coupon *models.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	switch coupon.Type {
	case enums.CouponTypePercentage:
		return subtotal.Mul(coupon.Discount).Div(decimal.NewFromInt(100))
	case enums.CouponTypeFixed:
		return coupon.Discount
	default:
		return decimal.Zero
	}
}

func variantExists(product *models.Product, variantID string) bool {
	for _, variant := range product.Variants {
		if variant.ID == variantID {
			return true
		}
	}
	return false
}
