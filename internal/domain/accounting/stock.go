package accounting

import "github.com/mamadbah2/barstock/internal/domain/models"

// TotalStock sums the four location counts.
func TotalStock(l models.LocationCounts) int {
	return l.MainBar + l.BeerBar + l.Lobby + l.StorageRoom
}

// NeedToBuy is the unit deficit against the maximum stock, never negative.
func NeedToBuy(currentTotal, maxStock int) int {
	if need := maxStock - currentTotal; need > 0 {
		return need
	}
	return 0
}

// IsBelowMinimum reports whether the stock is strictly under the minimum.
func IsBelowMinimum(currentTotal, minStock int) bool {
	return currentTotal < minStock
}

// currentStock indexes counts by item, recomputing each total from its locations.
func currentStock(counts []models.StockCount) map[string]int {
	out := make(map[string]int, len(counts))
	for _, c := range counts {
		out[c.ItemID] = TotalStock(c.LocationCounts)
	}
	return out
}
