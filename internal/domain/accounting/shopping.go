package accounting

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

// BuildShoppingList computes what to buy for every item below its maximum
// stock and groups the lines by primary supplier. Items without a count are
// treated as empty. Suppliers and lines follow catalog order.
func BuildShoppingList(items []models.Item, counts []models.StockCount) models.ShoppingList {
	stock := currentStock(counts)

	var list models.ShoppingList
	positions := make(map[string]int)
	totals := make(map[string]decimal.Decimal)

	for _, item := range items {
		current := stock[item.ID]
		need := NeedToBuy(current, item.MaxStock)
		if need == 0 {
			continue
		}

		calc := caseBreakdown(need, item.UnitsPerCase)
		cost := EstimateCost(item, need, calc)

		line := models.ShoppingListItem{
			ItemID:          item.ID,
			ItemName:        item.Name,
			Category:        item.CategoryName,
			CurrentStock:    current,
			MinStock:        item.MinStock,
			MaxStock:        item.MaxStock,
			NeedToBuy:       need,
			UnitsPerCase:    item.UnitsPerCase,
			CaseCalculation: calc,
			CostPerUnit:     item.CostPerUnit,
			CostPerCase:     item.CostPerCase,
			EstimatedCost:   toFloat(cost),
			Supplier:        item.PrimarySupplier,
		}

		pos, ok := positions[item.PrimarySupplier]
		if !ok {
			pos = len(list.Suppliers)
			positions[item.PrimarySupplier] = pos
			list.Suppliers = append(list.Suppliers, models.SupplierList{Supplier: item.PrimarySupplier})
		}
		list.Suppliers[pos].Items = append(list.Suppliers[pos].Items, line)
		totals[item.PrimarySupplier] = totals[item.PrimarySupplier].Add(cost)
	}

	for i := range list.Suppliers {
		list.Suppliers[i].TotalCost = toFloat(totals[list.Suppliers[i].Supplier])
	}
	return list
}

// EstimateCost prices a purchase by the case when a case price is configured
// and at least one case is bought, otherwise by the unit.
func EstimateCost(item models.Item, need int, calc models.CaseCalculation) decimal.Decimal {
	if item.CostPerCase > 0 && calc.CasesToBuy > 0 {
		return decimal.NewFromInt(int64(calc.CasesToBuy)).Mul(money(item.CostPerCase)).Round(2)
	}
	return decimal.NewFromInt(int64(need)).Mul(money(item.CostPerUnit)).Round(2)
}

// RenderSupplierText renders one supplier section as plain text for pasting
// into a chat: one bullet per line followed by the total.
func RenderSupplierText(section models.SupplierList) string {
	var b strings.Builder
	total := decimal.Zero

	for _, line := range section.Items {
		cost := money(line.EstimatedCost)
		total = total.Add(cost)

		quantity := line.CaseCalculation.DisplayText
		if quantity == "" {
			quantity = fmt.Sprintf("%d units", line.NeedToBuy)
		}
		fmt.Fprintf(&b, "• %s: %s - %s\n", line.ItemName, quantity, cost.StringFixed(2))
	}

	fmt.Fprintf(&b, "Total: %s", total.StringFixed(2))
	return b.String()
}
