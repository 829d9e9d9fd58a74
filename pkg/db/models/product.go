package models

import (
	"time"

	"github.com/shopspring/decimal"

	dbtypes "github.com/imakhan79/Grocery-Mart/pkg/db/types"
)

// Product is a catalog listing seeded at boot and editable by admins.
type Product struct {
	ID           string             `gorm:"column:id;primaryKey" json:"id"`
	Name         string             `gorm:"column:name;not null" json:"name"`
	Description  string             `gorm:"column:description" json:"description"`
	Price        decimal.Decimal    `gorm:"column:price;type:numeric;not null" json:"price"`
	Unit         string             `gorm:"column:unit" json:"unit"`
	Category     string             `gorm:"column:category;not null" json:"category"`
	SubCategory  string             `gorm:"column:sub_category" json:"subCategory"`
	Brand        string             `gorm:"column:brand" json:"brand"`
	Image        string             `gorm:"column:image" json:"image"`
	Stock        int                `gorm:"column:stock;not null;default:0" json:"stock"`
	Rating       float64            `gorm:"column:rating;not null;default:0" json:"rating"`
	ReviewsCount int                `gorm:"column:reviews_count;not null;default:0" json:"reviewsCount"`
	Tags         dbtypes.StringList `gorm:"column:tags;type:text" json:"tags"`
	Dietary      dbtypes.StringList `gorm:"column:dietary;type:text" json:"dietary"`
	Nutrition    *Nutrition         `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutrition,omitempty"`
	Variants     []ProductVariant   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// Nutrition carries the per-serving label copy shown on product detail.
type Nutrition struct {
	Calories string `gorm:"column:calories" json:"calories"`
	Fat      string `gorm:"column:fat" json:"fat"`
	Protein  string `gorm:"column:protein" json:"protein"`
	Carbs    string `gorm:"column:carbs" json:"carbs"`
}

// ProductVariant is an alternate pack size of a product.
type ProductVariant struct {
	ID        string          `gorm:"column:id;primaryKey" json:"id"`
	ProductID string          `gorm:"column:product_id;not null;index" json:"-"`
	Name      string          `gorm:"column:name;not null" json:"name"`
	Unit      string          `gorm:"column:unit" json:"unit"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric;not null" json:"price"`
	Stock     int             `gorm:"column:stock;not null;default:0" json:"stock"`
}

// Category groups products for browse navigation.
type Category struct {
	ID    string `gorm:"column:id;primaryKey" json:"id"`
	Name  string `gorm:"column:name;not null" json:"name"`
	Slug  string `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Image string `gorm:"column:image" json:"image"`
}
