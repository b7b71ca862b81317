// Package repotest holds the behaviour every repository.Store backend must share.
package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/barstock/internal/domain/models"
	"github.com/mamadbah2/barstock/internal/repository"
)

// Run exercises newStore against the shared storage contract. newStore must
// return an empty store on every call.
func Run(t *testing.T, newStore func(t *testing.T) repository.Store) {
	t.Run("items", func(t *testing.T) { testItems(t, newStore(t)) })
	t.Run("stock counts", func(t *testing.T) { testStockCounts(t, newStore(t)) })
	t.Run("sessions", func(t *testing.T) { testSessions(t, newStore(t)) })
	t.Run("history", func(t *testing.T) { testHistory(t, newStore(t)) })
	t.Run("purchases", func(t *testing.T) { testPurchases(t, newStore(t)) })
	t.Run("orders", func(t *testing.T) { testOrders(t, newStore(t)) })
}

func item(id, name string) models.Item {
	return models.ItemInput{
		Name: name, Category: models.CategoryBeer, UnitsPerCase: 12,
		MinStock: 24, MaxStock: 96, PrimarySupplier: "Singha99", CostPerUnit: 45,
	}.ToItem(id)
}

func testItems(t *testing.T, store repository.Store) {
	ctx := context.Background()

	require.NoError(t, store.CreateItem(ctx, item("i1", "Big Leo")))
	require.NoError(t, store.CreateItem(ctx, item("i2", "Small Leo")))

	got, err := store.GetItem(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, "Big Leo", got.Name)

	_, err = store.GetItem(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	renamed := item("i1", "Big Leo (can)")
	require.NoError(t, store.ReplaceItem(ctx, renamed))
	got, err = store.GetItem(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, "Big Leo (can)", got.Name)
	assert.ErrorIs(t, store.ReplaceItem(ctx, item("nope", "x")), repository.ErrNotFound)

	require.NoError(t, store.DeleteItem(ctx, "i2"))
	assert.ErrorIs(t, store.DeleteItem(ctx, "i2"), repository.ErrNotFound)

	require.NoError(t, store.ReplaceCatalog(ctx, []models.Item{item("c1", "Red Bull"), item("c2", "Soda Water")}))
	items, err := store.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "c1", items[0].ID)
	assert.Equal(t, "c2", items[1].ID)
}

func testStockCounts(t *testing.T, store repository.Store) {
	ctx := context.Background()

	first, err := store.UpsertStockCount(ctx, models.StockCount{
		ID: "s1", ItemID: "i1", LocationCounts: models.LocationCounts{MainBar: 5}, TotalCount: 5, CountDate: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", first.ID)

	second, err := store.UpsertStockCount(ctx, models.StockCount{
		ID: "s2", ItemID: "i1", LocationCounts: models.LocationCounts{MainBar: 7, Lobby: 1}, TotalCount: 8, CountDate: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, "s1", second.ID, "upsert keeps the stored identifier")
	assert.Equal(t, 8, second.TotalCount)

	got, err := store.GetStockCount(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Lobby)

	_, err = store.GetStockCount(ctx, "i2")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = store.UpsertStockCount(ctx, models.StockCount{ID: "s3", ItemID: "i2", TotalCount: 3})
	require.NoError(t, err)
	counts, err := store.ListStockCounts(ctx)
	require.NoError(t, err)
	assert.Len(t, counts, 2)

	require.NoError(t, store.DeleteStockCount(ctx, "i2"))
	assert.ErrorIs(t, store.DeleteStockCount(ctx, "i2"), repository.ErrNotFound)

	require.NoError(t, store.ClearStockCounts(ctx))
	counts, err = store.ListStockCounts(ctx)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func testSessions(t *testing.T, store repository.Store) {
	ctx := context.Background()
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	_, err := store.GetActiveSession(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, store.CreateSession(ctx, models.StockSession{ID: "a", SessionName: "Monday", SessionDate: base, IsActive: true, SessionType: models.SessionFullCount}))
	require.NoError(t, store.CreateSession(ctx, models.StockSession{ID: "b", SessionName: "Friday", SessionDate: base.Add(96 * time.Hour), IsActive: true, SessionType: models.SessionFullCount}))

	active, err := store.GetActiveSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", active.ID)

	first, err := store.GetSession(ctx, "a")
	require.NoError(t, err)
	assert.False(t, first.IsActive)

	sessions, err := store.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "b", sessions[0].ID, "newest first")

	_, err = store.GetSession(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func testHistory(t *testing.T, store repository.Store) {
	ctx := context.Background()
	first := time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)
	second := first.Add(90 * time.Minute)
	snap := func(id, itemID string, at time.Time) models.StockSnapshot {
		return models.StockSnapshot{ID: id, SessionID: "s1", ItemID: itemID, TotalCount: 4, SnapshotDate: at}
	}

	rows, err := store.ListSnapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, rows)

	require.NoError(t, store.AppendSnapshot(ctx, []models.StockSnapshot{snap("h1", "i1", first), snap("h2", "i2", first)}))
	require.NoError(t, store.AppendSnapshot(ctx, []models.StockSnapshot{snap("h3", "i1", second)}))

	rows, err = store.ListSnapshot(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "h3", rows[0].ID)

	// earlier saves stay in the log
	n, err := store.CountSnapshot(ctx, "s1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	n, err = store.CountSnapshot(ctx, "other")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func testPurchases(t *testing.T, store repository.Store) {
	ctx := context.Background()
	entry := func(id, sessionID string, qty int) models.PurchaseEntry {
		return models.PurchaseEntry{ID: id, SessionID: sessionID, ItemID: "i1", ActualQuantity: qty, PurchaseDate: time.Now().UTC()}
	}

	require.NoError(t, store.CreatePurchase(ctx, entry("p1", "s1", 12)))
	require.NoError(t, store.CreatePurchase(ctx, entry("p2", "s2", 24)))
	require.NoError(t, store.CreatePurchase(ctx, entry("p3", "s3", 6)))

	got, err := store.ListPurchasesBySessions(ctx, "s1", "s2")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	updated := entry("p1", "s1", 10)
	require.NoError(t, store.ReplacePurchase(ctx, updated))
	p1, err := store.GetPurchase(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, p1.ActualQuantity)
	assert.ErrorIs(t, store.ReplacePurchase(ctx, entry("nope", "s1", 1)), repository.ErrNotFound)

	require.NoError(t, store.DeletePurchase(ctx, "p3"))
	assert.ErrorIs(t, store.DeletePurchase(ctx, "p3"), repository.ErrNotFound)

	all, err := store.ListPurchases(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func testOrders(t *testing.T, store repository.Store) {
	ctx := context.Background()
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.CreateOrder(ctx, models.ShoppingOrder{ID: "o1", Supplier: "Makro", Status: models.OrderPlanned, CreatedAt: base}))
	require.NoError(t, store.CreateOrder(ctx, models.ShoppingOrder{ID: "o2", Supplier: "Singha99", Status: models.OrderPlanned, CreatedAt: base.Add(time.Hour)}))

	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[0].ID, "newest first")

	require.NoError(t, store.ReplaceOrder(ctx, models.ShoppingOrder{ID: "o1", Supplier: "Makro", Status: models.OrderOrdered, CreatedAt: base}))
	o1, err := store.GetOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderOrdered, o1.Status)

	_, err = store.GetOrder(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, store.ReplaceOrder(ctx, models.ShoppingOrder{ID: "nope"}), repository.ErrNotFound)
}
