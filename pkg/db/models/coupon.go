package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/imakhan79/Grocery-Mart/pkg/enums"
)

// Coupon is a seeded promotion code.
type Coupon struct {
	Code     string           `gorm:"column:code;primaryKey" json:"code"`
	Discount decimal.Decimal  `gorm:"column:discount;type:numeric;not null" json:"discount"`
	Type     enums.CouponType `gorm:"column:type;not null" json:"type"`
	MinCart  decimal.Decimal  `gorm:"column:min_cart;type:numeric;not null" json:"minCart"`
}

// ActiveCoupon tracks the single coupon currently applied to a user's cart.
// Reapplying replaces the row wholesale; coupons never stack.
type ActiveCoupon struct {
	UserID     string    `gorm:"column:user_id;primaryKey" json:"userId"`
	CouponCode string    `gorm:"column:coupon_code;not null" json:"couponCode"`
	AppliedAt  time.Time `gorm:"column:applied_at;not null" json:"appliedAt"`
}
