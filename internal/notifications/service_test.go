package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

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

	require.NoError(t, db.AutoMigrate(&models.Notification{}))
	return db
}

func newNotificationsService(t *testing.T, db *gorm.DB) Service {
	t.Helper()

	svc, err := NewService(NewRepository(db))
	require.NoError(t, err)
	return svc
}

func seedFeed(t *testing.T, db *gorm.DB, userID string, n int) {
	t.Helper()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&models.Notification{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      enums.NotificationTypeSystem,
			Title:     "Added to Cart",
			Message:   "Organic Bananas added.",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}
}

func TestNotifyAndUnreadCount(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationsService(t, db)

	err := svc.Notify(context.Background(), "u2", enums.NotificationTypeOrder, "Order Placed!", "Your order ORD-00042 is confirmed.")
	require.NoError(t, err)
	err = svc.Notify(context.Background(), "u2", enums.NotificationTypeSystem, "Added to Cart", "Whole Milk added.")
	require.NoError(t, err)

	count, err := svc.UnreadCount(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = svc.UnreadCount(context.Background(), "u9")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNotifyRejectsInvalidType(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationsService(t, db)

	err := svc.Notify(context.Background(), "u2", enums.NotificationType("SHOUT"), "t", "m")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestListPaginatesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationsService(t, db)
	seedFeed(t, db, "u2", 5)

	page, err := svc.List(context.Background(), ListParams{UserID: "u2", Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.NotNil(t, page.NextCursor)
	assert.True(t, page.Items[0].CreatedAt.After(page.Items[1].CreatedAt))

	page2, err := svc.List(context.Background(), ListParams{UserID: "u2", Limit: 2, Cursor: *page.NextCursor})
	require.NoError(t, err)
	require.Len(t, page2.Items, 2)
	require.NotNil(t, page2.NextCursor)
	assert.True(t, page.Items[1].CreatedAt.After(page2.Items[0].CreatedAt))

	page3, err := svc.List(context.Background(), ListParams{UserID: "u2", Limit: 2, Cursor: *page2.NextCursor})
	require.NoError(t, err)
	require.Len(t, page3.Items, 1)
	assert.Nil(t, page3.NextCursor)
}

func TestListRejectsGarbageCursor(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationsService(t, db)

	_, err := svc.List(context.Background(), ListParams{UserID: "u2", Cursor: "not-a-cursor"})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestListUnreadOnlyFiltersReadRows(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationsService(t, db)
	seedFeed(t, db, "u2", 3)

	page, err := svc.List(context.Background(), ListParams{UserID: "u2"})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	require.NoError(t, svc.MarkRead(context.Background(), "u2", page.Items[0].ID.String()))

	page, err = svc.List(context.Background(), ListParams{UserID: "u2", UnreadOnly: true})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationsService(t, db)
	seedFeed(t, db, "u2", 1)

	page, err := svc.List(context.Background(), ListParams{UserID: "u2"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	err = svc.MarkRead(context.Background(), "u9", page.Items[0].ID.String())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	err = svc.MarkRead(context.Background(), "u2", uuid.NewString())
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
