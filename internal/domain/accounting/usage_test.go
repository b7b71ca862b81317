package accounting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

func snapshot(sessionID, itemID string, total int) models.StockSnapshot {
	return models.StockSnapshot{SessionID: sessionID, ItemID: itemID, LocationCounts: models.LocationCounts{MainBar: total}, TotalCount: total}
}

func comparisonFixture() ComparisonInput {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return ComparisonInput{
		Items: []models.Item{
			{ID: "chang", Name: "Big Chang", CategoryName: "Beer", CostPerUnit: 44},
			{ID: "coke", Name: "Big Coke", CategoryName: "Mixers", CostPerUnit: 12},
			{ID: "idle", Name: "Idle", CategoryName: "Mixers", CostPerUnit: 5},
		},
		Opening: models.StockSession{ID: "s1", SessionName: "Opening", SessionDate: start},
		Closing: models.StockSession{ID: "s2", SessionName: "Closing", SessionDate: start.Add(7*24*time.Hour + time.Hour)},
		OpeningCounts: []models.StockSnapshot{
			snapshot("s1", "chang", 100),
			snapshot("s1", "coke", 100),
			snapshot("s1", "idle", 10),
		},
		ClosingCounts: []models.StockSnapshot{
			snapshot("s2", "chang", 80),
			snapshot("s2", "coke", 120),
			snapshot("s2", "idle", 10),
		},
		Purchases: []models.PurchaseEntry{
			{SessionID: "s1", ItemID: "chang", ActualQuantity: 30},
			{SessionID: "s2", ItemID: "chang", ActualQuantity: 20},
		},
	}
}

func TestCompareSessions(t *testing.T) {
	cmp := CompareSessions(comparisonFixture())

	assert.Equal(t, 7, cmp.PeriodDays)
	require.Len(t, cmp.ItemComparisons, 2)

	chang := cmp.ItemComparisons[0]
	assert.Equal(t, "chang", chang.ItemID)
	assert.Equal(t, 100, chang.OpeningStock)
	assert.Equal(t, 50, chang.PurchasesMade)
	assert.Equal(t, 80, chang.ClosingStock)
	assert.Equal(t, 70, chang.CalculatedUsage)
	assert.Equal(t, 70*44.0, chang.UsageCost)

	coke := cmp.ItemComparisons[1]
	assert.Equal(t, -20, coke.CalculatedUsage)
	assert.Zero(t, coke.UsageCost)

	assert.Equal(t, 3080.0, cmp.TotalUsageCost)
}

func TestCompareSessionsReversedOrderIsNotSwapped(t *testing.T) {
	in := comparisonFixture()
	in.Opening, in.Closing = in.Closing, in.Opening
	in.OpeningCounts, in.ClosingCounts = in.ClosingCounts, in.OpeningCounts

	cmp := CompareSessions(in)

	assert.Equal(t, -8, cmp.PeriodDays)
	assert.Equal(t, "s2", cmp.Session1.ID)
	assert.Equal(t, 80+50-100, cmp.ItemComparisons[0].CalculatedUsage)
}

func TestCompareSessionsMissingSnapshotsCountAsZero(t *testing.T) {
	in := comparisonFixture()
	in.ClosingCounts = nil

	cmp := CompareSessions(in)

	for _, ic := range cmp.ItemComparisons {
		assert.Zero(t, ic.ClosingStock)
		assert.Equal(t, ic.OpeningStock+ic.PurchasesMade, ic.CalculatedUsage)
	}
	assert.Len(t, cmp.ItemComparisons, 3)
}

func TestUsageConservation(t *testing.T) {
	for opening := 0; opening <= 30; opening += 3 {
		for purchases := 0; purchases <= 30; purchases += 5 {
			for closing := 0; closing <= 60; closing += 7 {
				assert.Equal(t, opening+purchases-closing, Usage(opening, purchases, closing))
			}
		}
	}
	assert.Equal(t, 70, Usage(100, 50, 80))
	assert.Equal(t, -20, Usage(100, 0, 120))
}

func TestUsageCost(t *testing.T) {
	assert.Equal(t, "3080", UsageCost(70, 44).String())
	assert.True(t, UsageCost(-20, 44).IsZero())
	assert.True(t, UsageCost(0, 44).IsZero())
}

func TestPurchasedQuantitiesSumsRows(t *testing.T) {
	got := PurchasedQuantities([]models.PurchaseEntry{
		{ItemID: "a", ActualQuantity: 10},
		{ItemID: "a", ActualQuantity: 15},
		{ItemID: "b", ActualQuantity: 1},
	})
	assert.Equal(t, map[string]int{"a": 25, "b": 1}, got)
}

func TestPeriodDays(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, PeriodDays(base, base.Add(23*time.Hour)))
	assert.Equal(t, 1, PeriodDays(base, base.Add(25*time.Hour)))
	assert.Equal(t, -1, PeriodDays(base.Add(time.Hour), base))
}

func TestSummarizeUsage(t *testing.T) {
	in := comparisonFixture()
	in.Items = append(in.Items, models.Item{ID: "rum", Name: "Rum", CategoryName: "Thai Alcohol", CostPerUnit: 100})
	in.OpeningCounts = append(in.OpeningCounts, snapshot("s1", "rum", 5))

	summary := SummarizeUsage(CompareSessions(in))

	assert.Equal(t, "Opening", summary.OpeningSession)
	assert.Equal(t, "Closing", summary.ClosingSession)
	assert.Equal(t, 3, summary.ItemsAnalyzed)
	assert.Equal(t, 3580.0, summary.TotalUsageCost)

	require.Len(t, summary.CategoryBreakdown, 3)
	assert.Equal(t, models.CategoryUsage{Category: "Beer", Items: 1, Usage: 70, UsageCost: 3080}, summary.CategoryBreakdown[0])
	assert.Equal(t, models.CategoryUsage{Category: "Mixers", Items: 1, Usage: -20, UsageCost: 0}, summary.CategoryBreakdown[1])

	require.Len(t, summary.TopItems, 2)
	assert.Equal(t, "chang", summary.TopItems[0].ItemID)
	assert.Equal(t, "rum", summary.TopItems[1].ItemID)

	require.Len(t, summary.Discrepancies, 1)
	assert.Equal(t, "coke", summary.Discrepancies[0].ItemID)
}
