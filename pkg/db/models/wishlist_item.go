package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem marks a product a user has saved. Wishlists survive logout.
type WishlistItem struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;not null;uniqueIndex:idx_wishlist_user_product" json:"-"`
	ProductID string    `gorm:"column:product_id;not null;uniqueIndex:idx_wishlist_user_product" json:"productId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}
