package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/imakhan79/Grocery-Mart/pkg/enums"
)

// CartItem is one line of a user's in-progress cart.
type CartItem struct {
	ID                     uuid.UUID                    `gorm:"column:id;primaryKey" json:"id"`
	UserID                 string                       `gorm:"column:user_id;not null;index" json:"-"`
	ProductID              string                       `gorm:"column:product_id;not null" json:"-"`
	Product                Product                      `gorm:"foreignKey:ProductID" json:"product"`
	VariantID              *string                      `gorm:"column:variant_id" json:"variantId,omitempty"`
	Quantity               int                          `gorm:"column:quantity;not null" json:"quantity"`
	SubstitutionPreference enums.SubstitutionPreference `gorm:"column:substitution_preference;not null" json:"substitutionPreference"`
	CreatedAt              time.Time                    `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt              time.Time                    `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
