// Package repository declares the storage contracts used by the services.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

// ErrNotFound is returned when a keyed lookup matches no record.
var ErrNotFound = errors.New("record not found")

// MapNotFound replaces ErrNotFound with target and wraps any other error with op.
func MapNotFound(err error, target error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return target
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// ItemRepository stores the catalog.
type ItemRepository interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id string) (models.Item, error)
	CreateItem(ctx context.Context, item models.Item) error
	ReplaceItem(ctx context.Context, item models.Item) error
	DeleteItem(ctx context.Context, id string) error
	ReplaceCatalog(ctx context.Context, items []models.Item) error
}

// StockCountRepository stores the current count of every item.
type StockCountRepository interface {
	ListStockCounts(ctx context.Context) ([]models.StockCount, error)
	GetStockCount(ctx context.Context, itemID string) (models.StockCount, error)
	UpsertStockCount(ctx context.Context, count models.StockCount) (models.StockCount, error)
	DeleteStockCount(ctx context.Context, itemID string) error
	ClearStockCounts(ctx context.Context) error
}

// SessionRepository stores stock sessions.
type SessionRepository interface {
	// CreateSession deactivates every other session before storing the new one.
	CreateSession(ctx context.Context, session models.StockSession) error
	ListSessions(ctx context.Context) ([]models.StockSession, error)
	GetSession(ctx context.Context, id string) (models.StockSession, error)
	GetActiveSession(ctx context.Context) (models.StockSession, error)
}

// HistoryRepository stores the per-session stock snapshots.
type HistoryRepository interface {
	// AppendSnapshot adds rows to the history log. History is never rewritten.
	AppendSnapshot(ctx context.Context, rows []models.StockSnapshot) error
	// ListSnapshot returns the rows sharing the newest snapshot_date of sessionID.
	ListSnapshot(ctx context.Context, sessionID string) ([]models.StockSnapshot, error)
	// CountSnapshot counts every history row of sessionID.
	CountSnapshot(ctx context.Context, sessionID string) (int64, error)
}

// PurchaseRepository stores purchase entries.
type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase models.PurchaseEntry) error
	GetPurchase(ctx context.Context, id string) (models.PurchaseEntry, error)
	ListPurchases(ctx context.Context) ([]models.PurchaseEntry, error)
	ListPurchasesBySessions(ctx context.Context, sessionIDs ...string) ([]models.PurchaseEntry, error)
	ReplacePurchase(ctx context.Context, purchase models.PurchaseEntry) error
	DeletePurchase(ctx context.Context, id string) error
}

// OrderRepository stores shopping orders.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order models.ShoppingOrder) error
	GetOrder(ctx context.Context, id string) (models.ShoppingOrder, error)
	ListOrders(ctx context.Context) ([]models.ShoppingOrder, error)
	ReplaceOrder(ctx context.Context, order models.ShoppingOrder) error
}

// Store is the full storage surface of the application.
type Store interface {
	ItemRepository
	StockCountRepository
	SessionRepository
	HistoryRepository
	PurchaseRepository
	OrderRepository
	Close(ctx context.Context) error
}
