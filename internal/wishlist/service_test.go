package wishlist

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
)

type dbProductSource struct {
	db *gorm.DB
}

func (s *dbProductSource) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.WishlistItem{}))
	require.NoError(t, db.Create(&models.Product{
		ID:       "p1",
		Name:     "Organic Bananas",
		Price:    decimal.RequireFromString("2.99"),
		Category: "Fruits & Vegetables",
	}).Error)
	require.NoError(t, db.Create(&models.Product{
		ID:       "p2",
		Name:     "Whole Milk",
		Price:    decimal.RequireFromString("3.49"),
		Category: "Dairy & Eggs",
	}).Error)

	svc, err := NewService(NewRepository(db), &dbProductSource{db: db})
	require.NoError(t, err)
	return svc, db
}

func TestToggleFlipsSavedState(t *testing.T) {
	svc, _ := newTestService(t)

	saved, err := svc.Toggle(context.Background(), "u2", "p1")
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = svc.Toggle(context.Background(), "u2", "p1")
	require.NoError(t, err)
	assert.False(t, saved)

	products, err := svc.List(context.Background(), "u2")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestToggleRejectsUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Toggle(context.Background(), "u2", "p404")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestListIsPerUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Toggle(context.Background(), "u2", "p1")
	require.NoError(t, err)
	_, err = svc.Toggle(context.Background(), "u5", "p2")
	require.NoError(t, err)

	products, err := svc.List(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestListSkipsDeletedProducts(t *testing.T) {
	svc, db := newTestService(t)

	_, err := svc.Toggle(context.Background(), "u2", "p1")
	require.NoError(t, err)
	_, err = svc.Toggle(context.Background(), "u2", "p2")
	require.NoError(t, err)

	require.NoError(t, db.Delete(&models.Product{}, "id = ?", "p2").Error)

	products, err := svc.List(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}
