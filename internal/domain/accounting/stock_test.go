package accounting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

func TestTotalStock(t *testing.T) {
	l := models.LocationCounts{MainBar: 100, BeerBar: 50, Lobby: 25, StorageRoom: 75}
	assert.Equal(t, 250, TotalStock(l))

	swapped := models.LocationCounts{MainBar: 75, BeerBar: 25, Lobby: 50, StorageRoom: 100}
	assert.Equal(t, TotalStock(l), TotalStock(swapped))

	l.Lobby = 0
	assert.Equal(t, 225, TotalStock(l))
}

func TestNeedToBuy(t *testing.T) {
	assert.Equal(t, 120, NeedToBuy(80, 200))
	assert.Equal(t, 0, NeedToBuy(200, 200))
	assert.Equal(t, 0, NeedToBuy(250, 200))
	// min above max is accepted input
	assert.Equal(t, 0, NeedToBuy(10, 0))

	for current := 0; current <= 50; current++ {
		for maxStock := 0; maxStock <= 50; maxStock++ {
			need := NeedToBuy(current, maxStock)
			assert.GreaterOrEqual(t, need, 0)
			if current >= maxStock {
				assert.Zero(t, need)
			}
		}
	}
}

func TestIsBelowMinimum(t *testing.T) {
	assert.True(t, IsBelowMinimum(25, 30))
	assert.False(t, IsBelowMinimum(30, 30))
	assert.False(t, IsBelowMinimum(31, 30))
}

func TestQuickRestockBoundary(t *testing.T) {
	items := []models.Item{
		{ID: "low", Name: "Low", CategoryName: "Beer", MinStock: 30, PrimarySupplier: "Makro"},
		{ID: "edge", Name: "Edge", CategoryName: "Beer", MinStock: 30, PrimarySupplier: "Makro"},
		{ID: "missing", Name: "Missing", CategoryName: "Mixers", MinStock: 1, PrimarySupplier: "Singha99"},
	}
	counts := []models.StockCount{
		{ItemID: "low", LocationCounts: models.LocationCounts{MainBar: 20, Lobby: 5}},
		{ItemID: "edge", LocationCounts: models.LocationCounts{StorageRoom: 30}},
	}

	low := QuickRestock(items, counts)

	assert.Equal(t, []models.LowStockItem{
		{ItemID: "low", ItemName: "Low", CurrentStock: 25, MinStock: 30, Category: "Beer", PrimarySupplier: "Makro"},
		{ItemID: "missing", ItemName: "Missing", CurrentStock: 0, MinStock: 1, Category: "Mixers", PrimarySupplier: "Singha99"},
	}, low)
}

func TestQuickRestockIgnoresStoredTotal(t *testing.T) {
	items := []models.Item{{ID: "a", MinStock: 10}}
	counts := []models.StockCount{{ItemID: "a", TotalCount: 100, LocationCounts: models.LocationCounts{MainBar: 3}}}

	low := QuickRestock(items, counts)
	if assert.Len(t, low, 1) {
		assert.Equal(t, 3, low[0].CurrentStock)
	}
}
