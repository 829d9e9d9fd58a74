package enums

import "fmt"

// TicketStatus tracks a support ticket lifecycle.
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "OPEN"
	TicketStatusResolved TicketStatus = "RESOLVED"
	TicketStatusClosed   TicketStatus = "CLOSED"
)

// TicketPriority ranks support tickets.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
)

// TicketMessageRole marks who authored a ticket message.
type TicketMessageRole string

const (
	TicketMessageRoleUser  TicketMessageRole = "USER"
	TicketMessageRoleAgent TicketMessageRole = "AGENT"
)

var validTicketStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusResolved,
	TicketStatusClosed,
}

// IsValid checks whether the given status matches the canonical enum.
func (s TicketStatus) IsValid() bool {
	for _, candidate := range validTicketStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseTicketStatus converts raw strings into TicketStatus.
func ParseTicketStatus(value string) (TicketStatus, error) {
	for _, candidate := range validTicketStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ticket status %q", value)
}
