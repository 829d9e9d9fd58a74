package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records one admin-side mutation.
type AuditLog struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey" json:"id"`
	AdminID   string    `gorm:"column:admin_id;not null;index" json:"adminId"`
	Action    string    `gorm:"column:action;not null" json:"action"`
	Target    string    `gorm:"column:target;not null" json:"target"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"timestamp"`
}
