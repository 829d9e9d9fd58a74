package models

import (
	"time"

	"github.com/imakhan79/Grocery-Mart/pkg/enums"
)

// User is one of the fixed mock identities selectable at login.
type User struct {
	ID            string         `gorm:"column:id;primaryKey" json:"id"`
	Name          string         `gorm:"column:name;not null" json:"name"`
	Email         string         `gorm:"column:email;not null" json:"email"`
	Role          enums.UserRole `gorm:"column:role;not null" json:"role"`
	Phone         *string        `gorm:"column:phone" json:"phone,omitempty"`
	Avatar        *string        `gorm:"column:avatar" json:"avatar,omitempty"`
	LoyaltyPoints int            `gorm:"column:loyalty_points;not null;default:0" json:"loyaltyPoints"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"-"`
}
