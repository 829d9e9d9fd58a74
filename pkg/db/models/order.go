package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/imakhan79/Grocery-Mart/pkg/enums"
)

// Order snapshots a checked-out cart. Items are owned copies, so later
// catalog edits never rewrite order history.
type Order struct {
	ID                string              `gorm:"column:id;primaryKey" json:"id"`
	UserID            string              `gorm:"column:user_id;not null;index" json:"userId"`
	Status            enums.OrderStatus   `gorm:"column:status;not null" json:"status"`
	Subtotal          decimal.Decimal     `gorm:"column:subtotal;type:numeric;not null" json:"subtotal"`
	Discount          decimal.Decimal     `gorm:"column:discount;type:numeric;not null" json:"discount"`
	DeliveryFee       decimal.Decimal     `gorm:"column:delivery_fee;type:numeric;not null" json:"deliveryFee"`
	Total             decimal.Decimal     `gorm:"column:total;type:numeric;not null" json:"total"`
	CouponCode        *string             `gorm:"column:coupon_code" json:"couponCode,omitempty"`
	Address           string              `gorm:"column:address;not null" json:"address"`
	TimeSlot          *string             `gorm:"column:time_slot" json:"timeSlot,omitempty"`
	PaymentMethod     enums.PaymentMethod `gorm:"column:payment_method;not null" json:"paymentMethod"`
	DeliveryPartnerID *string             `gorm:"column:delivery_partner_id" json:"deliveryPartnerId,omitempty"`
	Items             []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	PlacedAt          time.Time           `gorm:"column:placed_at;not null" json:"date"`
	UpdatedAt         time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// OrderItem is the frozen copy of one cart line at checkout time.
type OrderItem struct {
	ID                     uuid.UUID                    `gorm:"column:id;primaryKey" json:"id"`
	OrderID                string                       `gorm:"column:order_id;not null;index" json:"-"`
	ProductID              string                       `gorm:"column:product_id;not null" json:"productId"`
	ProductName            string                       `gorm:"column:product_name;not null" json:"productName"`
	UnitPrice              decimal.Decimal              `gorm:"column:unit_price;type:numeric;not null" json:"unitPrice"`
	Quantity               int                          `gorm:"column:quantity;not null" json:"quantity"`
	VariantID              *string                      `gorm:"column:variant_id" json:"variantId,omitempty"`
	SubstitutionPreference enums.SubstitutionPreference `gorm:"column:substitution_preference;not null" json:"substitutionPreference"`
}
