// Package memory is an in-process implementation of repository.Store used by
// tests and by STORAGE_DRIVER=memory for local runs without MongoDB.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mamadbah2/barstock/internal/domain/models"
	"github.com/mamadbah2/barstock/internal/repository"
)

// Store keeps every collection in slices guarded by a single lock. Slices
// keep insertion order, which is the catalog order the reports rely on.
type Store struct {
	mu        sync.RWMutex
	items     []models.Item
	counts    []models.StockCount
	sessions  []models.StockSession
	history   []models.StockSnapshot
	purchases []models.PurchaseEntry
	orders    []models.ShoppingOrder
}

var _ repository.Store = (*Store)(nil)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Close is a no-op.
func (s *Store) Close(context.Context) error { return nil }

func (s *Store) ListItems(context.Context) ([]models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Item{}, s.items...), nil
}

func (s *Store) GetItem(_ context.Context, id string) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.Item{}, repository.ErrNotFound
}

func (s *Store) CreateItem(_ context.Context, item models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return nil
}

func (s *Store) ReplaceItem(_ context.Context, item models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) DeleteItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) ReplaceCatalog(_ context.Context, items []models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.Item{}, items...)
	return nil
}

func (s *Store) ListStockCounts(context.Context) ([]models.StockCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.StockCount{}, s.counts...), nil
}

func (s *Store) GetStockCount(_ context.Context, itemID string) (models.StockCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.counts {
		if c.ItemID == itemID {
			return c, nil
		}
	}
	return models.StockCount{}, repository.ErrNotFound
}

// UpsertStockCount keeps the identifier of an existing count for the item.
func (s *Store) UpsertStockCount(_ context.Context, count models.StockCount) (models.StockCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.counts {
		if s.counts[i].ItemID == count.ItemID {
			count.ID = s.counts[i].ID
			s.counts[i] = count
			return count, nil
		}
	}
	s.counts = append(s.counts, count)
	return count, nil
}

func (s *Store) DeleteStockCount(_ context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.counts[:0]
	for _, c := range s.counts {
		if c.ItemID != itemID {
			kept = append(kept, c)
		}
	}
	s.counts = kept
	return nil
}

func (s *Store) ClearStockCounts(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts = nil
	return nil
}

func (s *Store) CreateSession(_ context.Context, session models.StockSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		s.sessions[i].IsActive = false
	}
	s.sessions = append(s.sessions, session)
	return nil
}

func (s *Store) ListSessions(context.Context) ([]models.StockSession, error) {
	s.mu.RLock()
	out := append([]models.StockSession{}, s.sessions...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SessionDate.After(out[j].SessionDate)
	})
	return out, nil
}

func (s *Store) GetSession(_ context.Context, id string) (models.StockSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ss := range s.sessions {
		if ss.ID == id {
			return ss, nil
		}
	}
	return models.StockSession{}, repository.ErrNotFound
}

func (s *Store) GetActiveSession(context.Context) (models.StockSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ss := range s.sessions {
		if ss.IsActive {
			return ss, nil
		}
	}
	return models.StockSession{}, repository.ErrNotFound
}

func (s *Store) AppendSnapshot(_ context.Context, rows []models.StockSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, rows...)
	return nil
}

func (s *Store) ListSnapshot(_ context.Context, sessionID string) ([]models.StockSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var newest time.Time
	for _, h := range s.history {
		if h.SessionID == sessionID && h.SnapshotDate.After(newest) {
			newest = h.SnapshotDate
		}
	}
	out := []models.StockSnapshot{}
	for _, h := range s.history {
		if h.SessionID == sessionID && h.SnapshotDate.Equal(newest) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *Store) CountSnapshot(_ context.Context, sessionID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, h := range s.history {
		if h.SessionID == sessionID {
			n++
		}
	}
	return n, nil
}

func (s *Store) CreatePurchase(_ context.Context, purchase models.PurchaseEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = append(s.purchases, purchase)
	return nil
}

func (s *Store) GetPurchase(_ context.Context, id string) (models.PurchaseEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.purchases {
		if p.ID == id {
			return p, nil
		}
	}
	return models.PurchaseEntry{}, repository.ErrNotFound
}

func (s *Store) ListPurchases(context.Context) ([]models.PurchaseEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.PurchaseEntry{}, s.purchases...), nil
}

func (s *Store) ListPurchasesBySessions(_ context.Context, sessionIDs ...string) ([]models.PurchaseEntry, error) {
	wanted := make(map[string]bool, len(sessionIDs))
	for _, id := range sessionIDs {
		wanted[id] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.PurchaseEntry{}
	for _, p := range s.purchases {
		if wanted[p.SessionID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Store) ReplacePurchase(_ context.Context, purchase models.PurchaseEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.purchases {
		if s.purchases[i].ID == purchase.ID {
			s.purchases[i] = purchase
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) DeletePurchase(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.purchases {
		if s.purchases[i].ID == id {
			s.purchases = append(s.purchases[:i], s.purchases[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) CreateOrder(_ context.Context, order models.ShoppingOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	return nil
}

func (s *Store) GetOrder(_ context.Context, id string) (models.ShoppingOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.ShoppingOrder{}, repository.ErrNotFound
}

func (s *Store) ListOrders(context.Context) ([]models.ShoppingOrder, error) {
	s.mu.RLock()
	out := append([]models.ShoppingOrder{}, s.orders...)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) ReplaceOrder(_ context.Context, order models.ShoppingOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			s.orders[i] = order
			return nil
		}
	}
	return repository.ErrNotFound
}
