package orders

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/imakhan79/Grocery-Mart/internal/cart"
	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
	"github.com/imakhan79/Grocery-Mart/pkg/enums"
	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}))
	return db
}

type stubCartSource struct {
	summary *cart.Summary
	cleared []string
}

func (s *stubCartSource) Fetch(ctx context.Context, userID string) (*cart.Summary, error) {
	return s.summary, nil
}

func (s *stubCartSource) Clear(ctx context.Context, userID string) error {
	s.cleared = append(s.cleared, userID)
	return nil
}

type stubCouponClearer struct {
	removed []string
}

func (s *stubCouponClearer) Remove(ctx context.Context, userID string) error {
	s.removed = append(s.removed, userID)
	return nil
}

type stubLoyaltyLedger struct {
	credits map[string]int
}

func (s *stubLoyaltyLedger) AddLoyaltyPoints(ctx context.Context, userID string, points int) error {
	if s.credits == nil {
		s.credits = map[string]int{}
	}
	s.credits[userID] += points
	return nil
}

type recordedNotification struct {
	userID  string
	kind    enums.NotificationType
	title   string
	message string
}

type stubNotifier struct {
	sent []recordedNotification
}

func (s *stubNotifier) Notify(ctx context.Context, userID string, kind enums.NotificationType, title, message string) error {
	s.sent = append(s.sent, recordedNotification{userID: userID, kind: kind, title: title, message: message})
	return nil
}

type stubAudit struct {
	entries []string
}

func (s *stubAudit) Record(ctx context.Context, adminID, action, target string) error {
	s.entries = append(s.entries, action+":"+target)
	return nil
}

func checkoutSummary() *cart.Summary {
	code := "FRESH20"
	return &cart.Summary{
		Items: []models.CartItem{{
			ID:        uuid.New(),
			UserID:    "u2",
			ProductID: "p1",
			Product: models.Product{
				ID:    "p1",
				Name:  "Organic Bananas",
				Price: decimal.RequireFromString("2.99"),
			},
			Quantity:               2,
			SubstitutionPreference: enums.SubstitutionReplaceNearest,
		}},
		Coupon:      &models.Coupon{Code: code, Discount: decimal.NewFromInt(20), Type: enums.CouponTypePercentage},
		Subtotal:    decimal.RequireFromString("30.00"),
		Discount:    decimal.RequireFromString("6.00"),
		DeliveryFee: decimal.NewFromInt(2),
		Total:       decimal.RequireFromString("26.00"),
	}
}

func newTestService(t *testing.T, db *gorm.DB, carts CartSource) (Service, *stubCouponClearer, *stubLoyaltyLedger, *stubNotifier, *stubAudit) {
	t.Helper()

	coupons := &stubCouponClearer{}
	loyalty := &stubLoyaltyLedger{}
	notifier := &stubNotifier{}
	audit := &stubAudit{}

	svc, err := NewService(NewRepository(db), carts, coupons, loyalty, notifier, audit, nil)
	require.NoError(t, err)
	return svc, coupons, loyalty, notifier, audit
}

func TestPlaceOrderFreezesCartAndDrainsState(t *testing.T) {
	db := newTestDB(t)
	carts := &stubCartSource{summary: checkoutSummary()}
	svc, coupons, loyalty, notifier, _ := newTestService(t, db, carts)

	order, err := svc.Place(context.Background(), "u2", PlaceOrderInput{
		Address:       "12 Main St",
		PaymentMethod: enums.PaymentMethodCOD,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"))
	assert.Equal(t, enums.OrderStatusPlaced, order.Status)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("26.00")))
	require.NotNil(t, order.CouponCode)
	assert.Equal(t, "FRESH20", *order.CouponCode)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Organic Bananas", order.Items[0].ProductName)
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("2.99")))

	assert.Equal(t, []string{"u2"}, carts.cleared)
	assert.Equal(t, []string{"u2"}, coupons.removed)
	assert.Equal(t, 26, loyalty.credits["u2"])

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Order Placed!", notifier.sent[0].title)
	assert.Contains(t, notifier.sent[0].message, order.ID)
	assert.Equal(t, enums.NotificationTypeOrder, notifier.sent[0].kind)

	persisted, err := svc.Get(context.Background(), "u2", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, persisted.ID)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	db := newTestDB(t)
	carts := &stubCartSource{summary: &cart.Summary{}}
	svc, _, _, _, _ := newTestService(t, db, carts)

	_, err := svc.Place(context.Background(), "u2", PlaceOrderInput{
		Address:       "12 Main St",
		PaymentMethod: enums.PaymentMethodCOD,
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestUpdateStatusNotifiesAndAudits(t *testing.T) {
	db := newTestDB(t)
	carts := &stubCartSource{summary: checkoutSummary()}
	svc, _, _, notifier, audit := newTestService(t, db, carts)

	order, err := svc.Place(context.Background(), "u2", PlaceOrderInput{
		Address:       "12 Main St",
		PaymentMethod: enums.PaymentMethodCard,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), "u1", order.ID, enums.OrderStatusPacked)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPacked, updated.Status)

	last := notifier.sent[len(notifier.sent)-1]
	assert.Equal(t, "Order Update", last.title)
	assert.Contains(t, last.message, "PACKED")
	assert.Contains(t, audit.entries, "order.status:"+order.ID)
}

func TestUpdateStatusRejectsBackwardMove(t *testing.T) {
	db := newTestDB(t)
	carts := &stubCartSource{summary: checkoutSummary()}
	svc, _, _, _, _ := newTestService(t, db, carts)

	order, err := svc.Place(context.Background(), "u2", PlaceOrderInput{
		Address:       "12 Main St",
		PaymentMethod: enums.PaymentMethodCOD,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), "u1", order.ID, enums.OrderStatusDelivered)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), "u1", order.ID, enums.OrderStatusPacked)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())
}

func TestPartnerAcceptAndDeliver(t *testing.T) {
	db := newTestDB(t)
	carts := &stubCartSource{summary: checkoutSummary()}
	svc, _, _, notifier, _ := newTestService(t, db, carts)

	order, err := svc.Place(context.Background(), "u2", PlaceOrderInput{
		Address:       "12 Main St",
		PaymentMethod: enums.PaymentMethodWallet,
	})
	require.NoError(t, err)

	queue, err := svc.PartnerQueue(context.Background())
	require.NoError(t, err)
	require.Len(t, queue, 1)

	accepted, err := svc.Accept(context.Background(), "u3", order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusOutForDelivery, accepted.Status)
	require.NotNil(t, accepted.DeliveryPartnerID)
	assert.Equal(t, "u3", *accepted.DeliveryPartnerID)

	queue, err = svc.PartnerQueue(context.Background())
	require.NoError(t, err)
	assert.Empty(t, queue)

	_, err = svc.Deliver(context.Background(), "someone-else", order.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeForbidden, pkgerrors.As(err).Code())

	delivered, err := svc.Deliver(context.Background(), "u3", order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusDelivered, delivered.Status)

	last := notifier.sent[len(notifier.sent)-1]
	assert.Contains(t, last.message, "DELIVERED")

	mine, err := svc.PartnerOrders(context.Background(), "u3")
	require.NoError(t, err)
	require.Len(t, mine, 1)
}

func TestGetHidesOtherUsersOrders(t *testing.T) {
	db := newTestDB(t)
	carts := &stubCartSource{summary: checkoutSummary()}
	svc, _, _, _, _ := newTestService(t, db, carts)

	order, err := svc.Place(context.Background(), "u2", PlaceOrderInput{
		Address:       "12 Main St",
		PaymentMethod: enums.PaymentMethodCOD,
	})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "u9", order.ID)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
