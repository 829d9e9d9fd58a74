package seed

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
	"github.com/imakhan79/Grocery-Mart/pkg/enums"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.User{},
		&models.Coupon{},
	))
	return db
}

func TestRunLoadsDemoSnapshot(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Run(context.Background(), db))

	var categories, products, variants, users, coupons int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.ProductVariant{}).Count(&variants).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Coupon{}).Count(&coupons).Error)

	assert.Equal(t, int64(8), categories)
	assert.Equal(t, int64(8), products)
	assert.Equal(t, int64(2), variants)
	assert.Equal(t, int64(4), users)
	assert.Equal(t, int64(2), coupons)
}

func TestRunSeedsKnownFixtures(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Run(context.Background(), db))

	var bananas models.Product
	require.NoError(t, db.Preload("Variants").First(&bananas, "id = ?", "p1").Error)
	assert.Equal(t, "Organic Bananas", bananas.Name)
	assert.True(t, bananas.Price.Equal(decimal.RequireFromString("2.99")))
	require.NotNil(t, bananas.Nutrition)
	assert.Equal(t, "89", bananas.Nutrition.Calories)
	require.Len(t, bananas.Variants, 2)

	var customer models.User
	require.NoError(t, db.First(&customer, "id = ?", "u2").Error)
	assert.Equal(t, enums.UserRoleCustomer, customer.Role)
	assert.Equal(t, 120, customer.LoyaltyPoints)

	var coupon models.Coupon
	require.NoError(t, db.First(&coupon, "code = ?", "FRESH20").Error)
	assert.Equal(t, enums.CouponTypePercentage, coupon.Type)
	assert.True(t, coupon.MinCart.Equal(decimal.NewFromInt(30)))
}
