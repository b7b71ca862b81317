package models

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrSupplierNotFound = errors.New("supplier not found in shopping list")

	// ErrNoStockCounts is returned when a session snapshot is requested but no
	// stock counts exist yet.
	ErrNoStockCounts = errors.New("no stock counts to save")

	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrInvalidCategory = errors.New("unknown item category")
)
