package accounting

import "github.com/mamadbah2/barstock/internal/domain/models"

// QuickRestock lists every item strictly below its minimum stock.
func QuickRestock(items []models.Item, counts []models.StockCount) []models.LowStockItem {
	stock := currentStock(counts)

	low := []models.LowStockItem{}
	for _, item := range items {
		current := stock[item.ID]
		if !IsBelowMinimum(current, item.MinStock) {
			continue
		}
		low = append(low, models.LowStockItem{
			ItemID:          item.ID,
			ItemName:        item.Name,
			CurrentStock:    current,
			MinStock:        item.MinStock,
			Category:        item.CategoryName,
			PrimarySupplier: item.PrimarySupplier,
		})
	}
	return low
}
