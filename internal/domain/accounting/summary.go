package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

const topItemsLimit = 5

// SummarizeUsage condenses a comparison into category totals, the most
// expensive items and the items whose usage came out negative.
func SummarizeUsage(cmp models.SessionComparison) models.UsageSummary {
	summary := models.UsageSummary{
		OpeningSession:    cmp.Session1.SessionName,
		ClosingSession:    cmp.Session2.SessionName,
		PeriodDays:        cmp.PeriodDays,
		ItemsAnalyzed:     len(cmp.ItemComparisons),
		TotalUsageCost:    cmp.TotalUsageCost,
		CategoryBreakdown: []models.CategoryUsage{},
		TopItems:          []models.ItemComparison{},
		Discrepancies:     []models.ItemComparison{},
	}

	positions := make(map[string]int)
	costs := make(map[string]decimal.Decimal)
	for _, ic := range cmp.ItemComparisons {
		pos, ok := positions[ic.Category]
		if !ok {
			pos = len(summary.CategoryBreakdown)
			positions[ic.Category] = pos
			summary.CategoryBreakdown = append(summary.CategoryBreakdown, models.CategoryUsage{Category: ic.Category})
		}
		summary.CategoryBreakdown[pos].Items++
		summary.CategoryBreakdown[pos].Usage += ic.CalculatedUsage
		costs[ic.Category] = costs[ic.Category].Add(money(ic.UsageCost))

		if ic.CalculatedUsage < 0 {
			summary.Discrepancies = append(summary.Discrepancies, ic)
		}
		if ic.UsageCost > 0 {
			summary.TopItems = append(summary.TopItems, ic)
		}
	}
	for i := range summary.CategoryBreakdown {
		summary.CategoryBreakdown[i].UsageCost = toFloat(costs[summary.CategoryBreakdown[i].Category])
	}

	sort.SliceStable(summary.TopItems, func(i, j int) bool {
		return summary.TopItems[i].UsageCost > summary.TopItems[j].UsageCost
	})
	if len(summary.TopItems) > topItemsLimit {
		summary.TopItems = summary.TopItems[:topItemsLimit]
	}

	return summary
}
