package models

import "time"

// PurchaseEntry records an actual buy made against a session.
type PurchaseEntry struct {
	ID              string    `bson:"_id" json:"id"`
	SessionID       string    `bson:"session_id" json:"session_id"`
	ItemID          string    `bson:"item_id" json:"item_id"`
	PlannedQuantity int       `bson:"planned_quantity" json:"planned_quantity"`
	ActualQuantity  int       `bson:"actual_quantity" json:"actual_quantity"`
	CostPerUnit     float64   `bson:"cost_per_unit" json:"cost_per_unit"`
	TotalCost       float64   `bson:"total_cost" json:"total_cost"`
	Supplier        string    `bson:"supplier" json:"supplier"`
	PurchaseDate    time.Time `bson:"purchase_date" json:"purchase_date"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
}

// PurchaseInput is the create/replace payload for purchases. TotalCost is stored
// as given.
type PurchaseInput struct {
	SessionID       string  `json:"session_id" binding:"required"`
	ItemID          string  `json:"item_id" binding:"required"`
	PlannedQuantity int     `json:"planned_quantity" binding:"gte=0"`
	ActualQuantity  int     `json:"actual_quantity" binding:"gte=0"`
	CostPerUnit     float64 `json:"cost_per_unit" binding:"gte=0"`
	TotalCost       float64 `json:"total_cost" binding:"gte=0"`
	Supplier        string  `json:"supplier"`
	Notes           string  `json:"notes"`
}
