package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
	pkgerrors "github.com/imakhan79/Grocery-Mart/pkg/errors"
)

type stubAudit struct {
	entries []string
}

func (s *stubAudit) Record(ctx context.Context, adminID, action, target string) error {
	s.entries = append(s.entries, action+":"+target)
	return nil
}

func newTestService(t *testing.T) (Service, *stubAudit) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.ProductVariant{}, &models.Category{}))

	seeded := []models.Product{
		{ID: "p1", Name: "Organic Bananas", Price: decimal.RequireFromString("2.99"), Category: "Fruits & Vegetables", Stock: 100},
		{ID: "p2", Name: "Whole Milk", Price: decimal.RequireFromString("3.49"), Category: "Dairy & Eggs", Stock: 60},
		{ID: "p3", Name: "Banana Bread", Price: decimal.RequireFromString("5.99"), Category: "Bakery", Stock: 12},
	}
	for i := range seeded {
		require.NoError(t, db.Create(&seeded[i]).Error)
	}
	require.NoError(t, db.Create(&models.Category{ID: "1", Name: "Fruits & Vegetables", Slug: "fruits-vegetables"}).Error)
	require.NoError(t, db.Create(&models.Category{ID: "2", Name: "Dairy & Eggs", Slug: "dairy-eggs"}).Error)

	audit := &stubAudit{}
	svc, err := NewService(NewRepository(db), audit)
	require.NoError(t, err)
	return svc, audit
}

func TestListFiltersByQueryAndCategory(t *testing.T) {
	svc, _ := newTestService(t)

	products, err := svc.List(context.Background(), ListParams{Query: "banana"})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p3", products[1].ID)

	products, err = svc.List(context.Background(), ListParams{Query: "banana", Category: "Bakery"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p3", products[0].ID)

	// Query also matches category names.
	products, err = svc.List(context.Background(), ListParams{Query: "dairy"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p2", products[0].ID)
}

func TestGetUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "p404")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestCategories(t *testing.T) {
	svc, _ := newTestService(t)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "fruits-vegetables", categories[0].Slug)
}

func TestCreateAssignsIDAndAudits(t *testing.T) {
	svc, audit := newTestService(t)

	product, err := svc.Create(context.Background(), "u1", CreateProductInput{
		Name:     "Avocado",
		Price:    decimal.RequireFromString("1.99"),
		Category: "Fruits & Vegetables",
		Stock:    40,
		Tags:     []string{"fresh"},
		Dietary:  []string{"vegan"},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(product.ID, "p-"))
	assert.Contains(t, audit.entries, "product.create:"+product.ID)

	got, err := svc.Get(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Avocado", got.Name)
	assert.Equal(t, []string{"fresh"}, []string(got.Tags))
}

func TestCreateRequiresAdminIdentity(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), "", CreateProductInput{
		Name:     "Avocado",
		Price:    decimal.RequireFromString("1.99"),
		Category: "Fruits & Vegetables",
	})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeUnauthorized, pkgerrors.As(err).Code())
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	svc, audit := newTestService(t)

	stock := 0
	price := decimal.RequireFromString("3.25")
	product, err := svc.Update(context.Background(), "u1", "p2", UpdateProductInput{
		Price: &price,
		Stock: &stock,
	})
	require.NoError(t, err)
	assert.Equal(t, "Whole Milk", product.Name)
	assert.True(t, product.Price.Equal(price))
	assert.Equal(t, 0, product.Stock)
	assert.Contains(t, audit.entries, "product.update:p2")
}

func TestUpdateRejectsNegativePrice(t *testing.T) {
	svc, _ := newTestService(t)

	price := decimal.RequireFromString("-1")
	_, err := svc.Update(context.Background(), "u1", "p2", UpdateProductInput{Price: &price})
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestDeleteAuditsAndReportsMissing(t *testing.T) {
	svc, audit := newTestService(t)

	require.NoError(t, svc.Delete(context.Background(), "u1", "p3"))
	assert.Contains(t, audit.entries, "product.delete:p3")

	err := svc.Delete(context.Background(), "u1", "p3")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}
