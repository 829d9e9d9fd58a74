package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/imakhan79/Grocery-Mart/pkg/enums"
)

// Notification is an in-app message shown newest first.
type Notification struct {
	ID        uuid.UUID              `gorm:"column:id;primaryKey" json:"id"`
	UserID    string                 `gorm:"column:user_id;not null;index" json:"-"`
	Type      enums.NotificationType `gorm:"column:type;not null" json:"type"`
	Title     string                 `gorm:"column:title;not null" json:"title"`
	Message   string                 `gorm:"column:message;not null" json:"message"`
	Read      bool                   `gorm:"column:read;not null;default:false" json:"read"`
	CreatedAt time.Time              `gorm:"column:created_at;not null" json:"time"`
}
