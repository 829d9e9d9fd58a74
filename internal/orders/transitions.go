package orders

import "github.com/imakhan79/Grocery-Mart/pkg/enums"

// statusRank orders the forward fulfillment pipeline. CANCELLED sits outside
// the pipeline and is handled separately.
var statusRank = map[enums.OrderStatus]int{
	enums.OrderStatusPlaced:         0,
	enums.OrderStatusPacked:         1,
	enums.OrderStatusOutForDelivery: 2,
	enums.OrderStatusDelivered:      3,
}

// CanTransition reports whether an order may move from current to next.
// Forward moves may skip stages (PLACED straight to DELIVERED is allowed),
// backward moves are rejected, and CANCELLED is reachable from any
// non-terminal status. Setting the same status again is a no-op and allowed.
func CanTransition(current, next enums.OrderStatus) bool {
	if current == next {
		return true
	}
	if current.IsTerminal() {
		return false
	}
	if next == enums.OrderStatusCancelled {
		return true
	}

	currentRank, ok := statusRank[current]
	if !ok {
		return false
	}
	nextRank, ok := statusRank[next]
	if !ok {
		return false
	}
	return nextRank > currentRank
}
