package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/imakhan79/Grocery-Mart/pkg/enums"
)

// SupportTicket is a customer help request. There is no resolution workflow;
// tickets stay OPEN until the process restarts.
type SupportTicket struct {
	ID        string               `gorm:"column:id;primaryKey" json:"id"`
	UserID    string               `gorm:"column:user_id;not null;index" json:"userId"`
	Subject   string               `gorm:"column:subject;not null" json:"subject"`
	Status    enums.TicketStatus   `gorm:"column:status;not null" json:"status"`
	Priority  enums.TicketPriority `gorm:"column:priority;not null" json:"priority"`
	Messages  []TicketMessage      `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE" json:"messages"`
	CreatedAt time.Time            `gorm:"column:created_at;not null" json:"createdAt"`
}

// TicketMessage is one entry in a ticket's conversation thread.
type TicketMessage struct {
	ID        uuid.UUID               `gorm:"column:id;primaryKey" json:"id"`
	TicketID  string                  `gorm:"column:ticket_id;not null;index" json:"-"`
	Role      enums.TicketMessageRole `gorm:"column:role;not null" json:"role"`
	Text      string                  `gorm:"column:text;not null" json:"text"`
	CreatedAt time.Time               `gorm:"column:created_at;not null" json:"time"`
}
