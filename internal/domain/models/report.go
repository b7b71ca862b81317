package models

// ItemComparison is the usage of one item between two sessions.
type ItemComparison struct {
	ItemID          string  `json:"item_id"`
	ItemName        string  `json:"item_name"`
	Category        string  `json:"category"`
	OpeningStock    int     `json:"opening_stock"`
	PurchasesMade   int     `json:"purchases_made"`
	ClosingStock    int     `json:"closing_stock"`
	CalculatedUsage int     `json:"calculated_usage"`
	CostPerUnit     float64 `json:"cost_per_unit"`
	UsageCost       float64 `json:"usage_cost"`
}

// SessionComparison is the usage report between an opening and a closing session.
type SessionComparison struct {
	Session1        StockSession     `json:"session1"`
	Session2        StockSession     `json:"session2"`
	PeriodDays      int              `json:"period_days"`
	ItemComparisons []ItemComparison `json:"item_comparisons"`
	TotalUsageCost  float64          `json:"total_usage_cost"`
}

// CategoryUsage aggregates usage cost per catalog category.
type CategoryUsage struct {
	Category  string  `json:"category"`
	Items     int     `json:"items"`
	Usage     int     `json:"usage"`
	UsageCost float64 `json:"usage_cost"`
}

// UsageSummary condenses a SessionComparison for the usage-summary report.
type UsageSummary struct {
	OpeningSession    string           `json:"opening_session"`
	ClosingSession    string           `json:"closing_session"`
	PeriodDays        int              `json:"period_days"`
	ItemsAnalyzed     int              `json:"items_analyzed"`
	TotalUsageCost    float64          `json:"total_usage_cost"`
	CategoryBreakdown []CategoryUsage  `json:"category_breakdown"`
	TopItems          []ItemComparison `json:"top_items"`
	Discrepancies     []ItemComparison `json:"discrepancies"`
}
