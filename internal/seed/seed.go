// Package seed loads the demo dataset at boot. The store is in-memory, so
// every start begins from this fixed snapshot.
package seed

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/imakhan79/Grocery-Mart/pkg/db/models"
	dbtypes "github.com/imakhan79/Grocery-Mart/pkg/db/types"
	"github.com/imakhan79/Grocery-Mart/pkg/enums"
)

// Run inserts the demo categories, products, users, and coupons.
func Run(ctx context.Context, db *gorm.DB) error {
	var err error
	err = multierr.Append(err, db.WithContext(ctx).Create(categories()).Error)
	err = multierr.Append(err, db.WithContext(ctx).Create(products()).Error)
	err = multierr.Append(err, db.WithContext(ctx).Create(users()).Error)
	err = multierr.Append(err, db.WithContext(ctx).Create(coupons()).Error)
	return err
}

func categories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Fruits & Veg", Slug: "fruits-veg", Image: "https://images.unsplash.com/photo-1610832958506-aa56368176cf?w=200&h=200&fit=crop"},
		{ID: "2", Name: "Dairy & Eggs", Slug: "dairy", Image: "https://images.unsplash.com/photo-1628088062854-d1870b4553ad?w=200&h=200&fit=crop"},
		{ID: "3", Name: "Bakery", Slug: "bakery", Image: "https://images.unsplash.com/photo-1509440159596-0249088772ff?w=200&h=200&fit=crop"},
		{ID: "4", Name: "Meat & Seafood", Slug: "meat", Image: "https://images.unsplash.com/photo-1607623814075-e51df1bdc822?w=200&h=200&fit=crop"},
		{ID: "5", Name: "Pantry", Slug: "pantry", Image: "https://images.unsplash.com/photo-1542838132-92c53300491e?w=200&h=200&fit=crop"},
		{ID: "6", Name: "Beverages", Slug: "beverages", Image: "https://images.unsplash.com/photo-1527661591475-527312dd65f5?w=200&h=200&fit=crop"},
		{ID: "7", Name: "Snacks", Slug: "snacks", Image: "https://images.unsplash.com/photo-1599490659223-e15392d536d3?w=200&h=200&fit=crop"},
		{ID: "8", Name: "Organic", Slug: "organic", Image: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=200&h=200&fit=crop"},
	}
}

func products() []models.Product {
	return []models.Product{
		{
			ID:          "p1",
			Name:        "Organic Bananas",
			Description: "Fresh organic bananas from sustainable farms.",
			Price:       decimal.RequireFromString("2.99"),
			Unit:        "1kg",
			Category:    "Fruits & Veg",
			SubCategory: "Fruits",
			Brand:       "NatureFirst",
			Image:       "https://images.unsplash.com/photo-1571771894821-ad9b58866602?w=300&h=300&fit=crop",
			Stock:       150, Rating: 4.8, ReviewsCount: 120,
			Tags:      dbtypes.StringList{"fresh", "popular"},
			Dietary:   dbtypes.StringList{"vegan"},
			Nutrition: &models.Nutrition{Calories: "89", Fat: "0.3g", Protein: "1.1g", Carbs: "23g"},
			Variants: []models.ProductVariant{
				{ID: "v1", ProductID: "p1", Name: "Standard", Unit: "1kg", Price: decimal.RequireFromString("2.99"), Stock: 100},
				{ID: "v2", ProductID: "p1", Name: "Value Pack", Unit: "5kg", Price: decimal.RequireFromString("12.99"), Stock: 50},
			},
		},
		{
			ID:          "p2",
			Name:        "Whole Milk",
			Description: "Creamy full fat pasteurized milk.",
			Price:       decimal.RequireFromString("1.50"),
			Unit:        "1L",
			Category:    "Dairy & Eggs",
			SubCategory: "Dairy",
			Brand:       "FarmFresh",
			Image:       "https://images.unsplash.com/photo-1563636619-e910019335bd?w=300&h=300&fit=crop",
			Stock:       80, Rating: 4.5, ReviewsCount: 85,
			Tags:    dbtypes.StringList{"daily"},
			Dietary: dbtypes.StringList{"halal"},
		},
		{
			ID:          "p3",
			Name:        "Sourdough Bread",
			Description: "Artisanal sourdough baked daily.",
			Price:       decimal.RequireFromString("4.25"),
			Unit:        "1 Loaf",
			Category:    "Bakery",
			SubCategory: "Breads",
			Brand:       "DailyBake",
			Image:       "https://images.unsplash.com/photo-1585478259715-876acc5be8eb?w=300&h=300&fit=crop",
			Stock:       25, Rating: 4.9, ReviewsCount: 45,
			Tags:    dbtypes.StringList{"artisan"},
			Dietary: dbtypes.StringList{"vegan"},
		},
		{
			ID:          "p4",
			Name:        "Chicken Breast",
			Description: "Skinless boneless chicken breast.",
			Price:       decimal.RequireFromString("8.99"),
			Unit:        "500g",
			Category:    "Meat & Seafood",
			SubCategory: "Poultry",
			Brand:       "PrimeCuts",
			Image:       "https://images.unsplash.com/photo-1604503468506-a8da13d82791?w=300&h=300&fit=crop",
			Stock:       40, Rating: 4.6, ReviewsCount: 60,
			Tags:    dbtypes.StringList{"protein"},
			Dietary: dbtypes.StringList{"halal"},
		},
		{
			ID:          "p5",
			Name:        "Extra Virgin Olive Oil",
			Description: "Cold-pressed premium olive oil.",
			Price:       decimal.RequireFromString("12.99"),
			Unit:        "500ml",
			Category:    "Pantry",
			SubCategory: "Oils",
			Brand:       "MedGold",
			Image:       "https://images.unsplash.com/photo-1474979266404-7eaacabc8d0f?w=300&h=300&fit=crop",
			Stock:       100, Rating: 4.7, ReviewsCount: 30,
			Tags:    dbtypes.StringList{"imported"},
			Dietary: dbtypes.StringList{"vegan", "gluten-free"},
		},
		{
			ID:          "p6",
			Name:        "Red Apples",
			Description: "Crispy and sweet Fuji apples.",
			Price:       decimal.RequireFromString("3.49"),
			Unit:        "1kg",
			Category:    "Fruits & Veg",
			SubCategory: "Fruits",
			Brand:       "NatureFirst",
			Image:       "https://images.unsplash.com/photo-1567306226416-28f0efdc88ce?w=300&h=300&fit=crop",
			Stock:       200, Rating: 4.4, ReviewsCount: 200,
			Tags:    dbtypes.StringList{"sweet"},
			Dietary: dbtypes.StringList{"vegan"},
		},
		{
			ID:          "p7",
			Name:        "Greek Yogurt",
			Description: "High protein thick Greek yogurt.",
			Price:       decimal.RequireFromString("2.50"),
			Unit:        "500g",
			Category:    "Dairy & Eggs",
			SubCategory: "Dairy",
			Brand:       "Yogo",
			Image:       "https://images.unsplash.com/photo-1488477181946-6428a0291777?w=300&h=300&fit=crop",
			Stock:       60, Rating: 4.8, ReviewsCount: 110,
			Tags:    dbtypes.StringList{"healthy"},
			Dietary: dbtypes.StringList{"gluten-free"},
		},
		{
			ID:          "p8",
			Name:        "Fresh Spinach",
			Description: "Washed and ready to eat spinach leaves.",
			Price:       decimal.RequireFromString("1.99"),
			Unit:        "200g",
			Category:    "Fruits & Veg",
			SubCategory: "Vegetables",
			Brand:       "GreenField",
			Image:       "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=300&h=300&fit=crop",
			Stock:       120, Rating: 4.3, ReviewsCount: 95,
			Tags:    dbtypes.StringList{"fresh"},
			Dietary: dbtypes.StringList{"vegan"},
		},
	}
}

func users() []models.User {
	return []models.User{
		{ID: "u1", Name: "Admin User", Email: "admin@freshmart.com", Role: enums.UserRoleAdmin, LoyaltyPoints: 500},
		{ID: "u2", Name: "John Customer", Email: "john@gmail.com", Role: enums.UserRoleCustomer, LoyaltyPoints: 120},
		{ID: "u3", Name: "Swift Delivery", Email: "swift@delivery.com", Role: enums.UserRoleDeliveryPartner, LoyaltyPoints: 0},
		{ID: "u4", Name: "Sarah Support", Email: "sarah@freshmart.com", Role: enums.UserRoleSupportAgent, LoyaltyPoints: 0},
	}
}

func coupons() []models.Coupon {
	return []models.Coupon{
		{Code: "FRESH20", Discount: decimal.NewFromInt(20), Type: enums.CouponTypePercentage, MinCart: decimal.NewFromInt(30)},
		{Code: "SAVE10", Discount: decimal.NewFromInt(10), Type: enums.CouponTypeFixed, MinCart: decimal.NewFromInt(50)},
	}
}
