package orders

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/imakhan79/Grocery-Mart/internal/cart"
	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
	"github.com/imakhan79/Grocery-Mart/pkg/enums"
	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
	"github.com/imakhan79/Grocery-Mart/pkg/metrics"
)

// CartSource reads and drains the cart at checkout. Implemented by the cart
// service.
type CartSource interface {
	Fetch(ctx context.Context, userID string) (*cart.Summary, error)
	Clear(ctx context.Context, userID string) error
}

// CouponClearer detaches the applied coupon once it is consumed by checkout.
// Implemented by the coupons service.
type CouponClearer interface {
	Remove(ctx context.Context, userID string) error
}

// LoyaltyLedger credits loyalty points. Implemented by the users repository.
type LoyaltyLedger interface {
	AddLoyaltyPoints(ctx context.Context, userID string, points int) error
}

// Notifier pushes in-app notifications. Implemented by the notifications
// service.
type Notifier interface {
	Notify(ctx context.Context, userID string, kind enums.NotificationType, title, message string) error
}

// AuditRecorder captures admin-side mutations for the audit trail.
type AuditRecorder interface {
	Record(ctx context.Context, adminID, action, target string) error
}

// Service defines checkout and fulfillment operations.
type Service interface {
	Place(ctx context.Context, userID string, input PlaceOrderInput) (*models.Order, error)
	Get(ctx context.Context, userID, orderID string) (*models.Order, error)
	ListMine(ctx context.Context, userID string) ([]models.Order, error)
	ListAll(ctx context.Context, status *enums.OrderStatus) ([]models.Order, error)
	UpdateStatus(ctx context.Context, adminID, orderID string, next enums.OrderStatus) (*models.Order, error)
	PartnerQueue(ctx context.Context) ([]models.Order, error)
	PartnerOrders(ctx context.Context, partnerID string) ([]models.Order, error)
	Accept(ctx context.Context, partnerID, orderID string) (*models.Order, error)
	Deliver(ctx context.Context, partnerID, orderID string) (*models.Order, error)
}

// PlaceOrderInput carries one checkout request.
type PlaceOrderInput struct {
	Address       string              `json:"address" validate:"required"`
	TimeSlot      *string             `json:"timeSlot"`
	PaymentMethod enums.PaymentMethod `json:"paymentMethod" validate:"required"`
}

type service struct {
	repo    Repository
	carts   CartSource
	coupons CouponClearer
	loyalty LoyaltyLedger

	notifier Notifier
	audit    AuditRecorder
	metrics  *metrics.APIMetrics
}

// NewService wires order dependencies.
func NewService(
	repo Repository,
	carts CartSource,
	coupons CouponClearer,
	loyalty LoyaltyLedger,
	notifier Notifier,
	audit AuditRecorder,
	apiMetrics *metrics.APIMetrics,
) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "orders repository required")
	}
	if carts == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "cart source required")
	}
	if coupons == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "coupon clearer required")
	}
	if loyalty == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "loyalty ledger required")
	}
	if notifier == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifier required")
	}
	if audit == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "audit recorder required")
	}
	return &service{
		repo:     repo,
		carts:    carts,
		coupons:  coupons,
		loyalty:  loyalty,
		notifier: notifier,
		audit:    audit,
		metrics:  apiMetrics,
	}, nil
}

// Place checks out the current cart: the priced summary is frozen into an
// order, the cart and applied coupon are drained, and loyalty points are
// credited for the whole total.
func (s *service) Place(ctx context.Context, userID string, input PlaceOrderInput) (*models.Order, error) {
	if strings.TrimSpace(input.Address) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "delivery address required")
	}
	if !input.PaymentMethod.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}

	summary, err := s.carts.Fetch(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(summary.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	order := &models.Order{
		ID:            newOrderID(),
		UserID:        userID,
		Status:        enums.OrderStatusPlaced,
		Subtotal:      summary.Subtotal,
		Discount:      summary.Discount,
		DeliveryFee:   summary.DeliveryFee,
		Total:         summary.Total,
		Address:       input.Address,
		TimeSlot:      input.TimeSlot,
		PaymentMethod: input.PaymentMethod,
		PlacedAt:      time.Now().UTC(),
	}
	if summary.Coupon != nil {
		code := summary.Coupon.Code
		order.CouponCode = &code
	}
	for _, line := range summary.Items {
		order.Items = append(order.Items, models.OrderItem{
			ID:                     uuid.New(),
			OrderID:                order.ID,
			ProductID:              line.ProductID,
			ProductName:            line.Product.Name,
			UnitPrice:              cart.LineUnitPrice(line),
			Quantity:               line.Quantity,
			VariantID:              line.VariantID,
			SubstitutionPreference: line.SubstitutionPreference,
		})
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}
	if err := s.carts.Clear(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.coupons.Remove(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.loyalty.AddLoyaltyPoints(ctx, userID, int(order.Total.IntPart())); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "credit loyalty points")
	}
	if err := s.notifier.Notify(ctx, userID, enums.NotificationTypeOrder,
		"Order Placed!", fmt.Sprintf("Your order %s is confirmed.", order.ID)); err != nil {
		return nil, err
	}

	s.metrics.IncOrderPlaced()
	return order, nil
}

func (s *service) Get(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return order, nil
}

func (s *service) ListMine(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return orders, nil
}

func (s *service) ListAll(ctx context.Context, status *enums.OrderStatus) ([]models.Order, error) {
	if status != nil && !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status filter")
	}
	orders, err := s.repo.ListAll(ctx, status)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return orders, nil
}

// UpdateStatus moves an order through fulfillment on behalf of an admin.
// Re-asserting the current status is a no-op; backward moves and moves out
// of a terminal status are rejected.
func (s *service) UpdateStatus(ctx context.Context, adminID, orderID string, next enums.OrderStatus) (*models.Order, error) {
	if adminID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "admin identity missing")
	}
	if !next.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status")
	}

	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status == next {
		return order, nil
	}
	if !CanTransition(order.Status, next) {
		return nil, pkgerrors.New(
			pkgerrors.CodeStateConflict,
			fmt.Sprintf("order cannot move from %s to %s", order.Status, next),
		)
	}

	order.Status = next
	if err := s.repo.Save(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}

	if err := s.notifyStatus(ctx, order); err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, adminID, "order.status", order.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record audit entry")
	}
	return order, nil
}

func (s *service) PartnerQueue(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.ListUnassigned(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list unassigned orders")
	}
	return orders, nil
}

func (s *service) PartnerOrders(ctx context.Context, partnerID string) ([]models.Order, error) {
	orders, err := s.repo.ListByPartner(ctx, partnerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list partner orders")
	}
	return orders, nil
}

// Accept assigns an unclaimed order to the calling delivery partner and
// moves it out for delivery.
func (s *service) Accept(ctx context.Context, partnerID, orderID string) (*models.Order, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.DeliveryPartnerID != nil && *order.DeliveryPartnerID != partnerID {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "order already claimed by another partner")
	}
	if !CanTransition(order.Status, enums.OrderStatusOutForDelivery) {
		return nil, pkgerrors.New(
			pkgerrors.CodeStateConflict,
			fmt.Sprintf("order cannot move from %s to %s", order.Status, enums.OrderStatusOutForDelivery),
		)
	}

	order.DeliveryPartnerID = &partnerID
	order.Status = enums.OrderStatusOutForDelivery
	if err := s.repo.Save(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "claim order")
	}

	if err := s.notifyStatus(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Deliver completes an order the calling partner previously accepted.
func (s *service) Deliver(ctx context.Context, partnerID, orderID string) (*models.Order, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.DeliveryPartnerID == nil || *order.DeliveryPartnerID != partnerID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "order is not assigned to you")
	}
	if !CanTransition(order.Status, enums.OrderStatusDelivered) {
		return nil, pkgerrors.New(
			pkgerrors.CodeStateConflict,
			fmt.Sprintf("order cannot move from %s to %s", order.Status, enums.OrderStatusDelivered),
		)
	}

	order.Status = enums.OrderStatusDelivered
	if err := s.repo.Save(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "complete order")
	}

	if err := s.notifyStatus(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *service) load(ctx context.Context, orderID string) (*models.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) notifyStatus(ctx context.Context, order *models.Order) error {
	return s.notifier.Notify(ctx, order.UserID, enums.NotificationTypeOrder,
		"Order Update", fmt.Sprintf("Order %s is now %s.", order.ID, order.Status))
}

func newOrderID() string {
	return fmt.Sprintf("ORD-%05d", rand.Intn(100000))
}
