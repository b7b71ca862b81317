package accounting

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

// ComparisonInput carries everything needed to account usage between two sessions.
// Purchases must already be restricted to the two sessions.
type ComparisonInput struct {
	Items         []models.Item
	Opening       models.StockSession
	Closing       models.StockSession
	OpeningCounts []models.StockSnapshot
	ClosingCounts []models.StockSnapshot
	Purchases     []models.PurchaseEntry
}

// CompareSessions computes per-item usage as opening + purchases - closing.
// Negative usage is reported as is and contributes nothing to the total cost.
// Items with neither usage nor purchases are left out.
func CompareSessions(in ComparisonInput) models.SessionComparison {
	opening := snapshotTotals(in.OpeningCounts)
	closing := snapshotTotals(in.ClosingCounts)
	purchased := PurchasedQuantities(in.Purchases)

	result := models.SessionComparison{
		Session1:        in.Opening,
		Session2:        in.Closing,
		PeriodDays:      PeriodDays(in.Opening.SessionDate, in.Closing.SessionDate),
		ItemComparisons: []models.ItemComparison{},
	}

	total := decimal.Zero
	for _, item := range in.Items {
		bought := purchased[item.ID]
		usage := Usage(opening[item.ID], bought, closing[item.ID])
		if usage == 0 && bought == 0 {
			continue
		}

		cost := UsageCost(usage, item.CostPerUnit)
		total = total.Add(cost)

		result.ItemComparisons = append(result.ItemComparisons, models.ItemComparison{
			ItemID:          item.ID,
			ItemName:        item.Name,
			Category:        item.CategoryName,
			OpeningStock:    opening[item.ID],
			PurchasesMade:   bought,
			ClosingStock:    closing[item.ID],
			CalculatedUsage: usage,
			CostPerUnit:     item.CostPerUnit,
			UsageCost:       toFloat(cost),
		})
	}

	result.TotalUsageCost = toFloat(total)
	return result
}

// Usage applies the conservation formula.
func Usage(opening, purchases, closing int) int {
	return opening + purchases - closing
}

// UsageCost prices positive usage; zero or negative usage costs nothing.
func UsageCost(usage int, costPerUnit float64) decimal.Decimal {
	if usage <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(usage)).Mul(money(costPerUnit)).Round(2)
}

// PurchasedQuantities sums the actual quantity bought per item across all rows.
func PurchasedQuantities(purchases []models.PurchaseEntry) map[string]int {
	out := make(map[string]int, len(purchases))
	for _, p := range purchases {
		out[p.ItemID] += p.ActualQuantity
	}
	return out
}

// PeriodDays is the number of whole days from one session to the other,
// floored, so a reversed pair yields a negative period.
func PeriodDays(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}

func snapshotTotals(rows []models.StockSnapshot) map[string]int {
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.ItemID] = TotalStock(r.LocationCounts)
	}
	return out
}
