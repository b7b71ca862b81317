package models

import "time"

// OrderStatus tracks a shopping order through its lifecycle.
type OrderStatus string

const (
	OrderPlanned   OrderStatus = "planned"
	OrderOrdered   OrderStatus = "ordered"
	OrderReceived  OrderStatus = "received"
	OrderCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPlanned: {OrderOrdered, OrderReceived, OrderCancelled},
	OrderOrdered: {OrderReceived, OrderCancelled},
}

// Valid reports whether s is a known status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPlanned, OrderOrdered, OrderReceived, OrderCancelled:
		return true
	}
	return false
}

// CanMoveTo reports whether an order in status s may transition to next.
// Re-applying the current status is allowed so notes can be updated.
func (s OrderStatus) CanMoveTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ShoppingOrder is a supplier's shopping-list section confirmed as an order.
type ShoppingOrder struct {
	ID           string             `bson:"_id" json:"id"`
	Supplier     string             `bson:"supplier" json:"supplier"`
	PlannedItems []ShoppingListItem `bson:"planned_items" json:"planned_items"`
	Status       OrderStatus        `bson:"status" json:"status"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	TotalCost    float64            `bson:"total_cost" json:"total_cost"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// OrderInput creates a shopping order. Empty PlannedItems means "use the
// supplier's current shopping-list section".
type OrderInput struct {
	Supplier     string             `json:"supplier" binding:"required"`
	PlannedItems []ShoppingListItem `json:"planned_items"`
	Notes        string             `json:"notes"`
}
