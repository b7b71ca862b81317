package reporting

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// RestockAlertText renders the low-stock list for a chat message. The boolean
// is false when nothing is below minimum.
func (s *Service) RestockAlertText(ctx context.Context) (string, bool, error) {
	low, err := s.QuickRestock(ctx)
	if err != nil {
		return "", false, err
	}
	if len(low) == 0 {
		return "All items are at or above minimum stock.", false, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Restock alert (%s): %d items below minimum\n", s.now().Format(dateLayout), len(low))
	for _, item := range low {
		fmt.Fprintf(&b, "• %s: %d/%d (%s)\n", item.ItemName, item.CurrentStock, item.MinStock, item.PrimarySupplier)
	}
	return strings.TrimSuffix(b.String(), "\n"), true, nil
}

// SuppliersText lists every supplier with something to buy and its estimated total.
func (s *Service) SuppliersText(ctx context.Context) (string, error) {
	list, err := s.ShoppingList(ctx)
	if err != nil {
		return "", err
	}
	if len(list.Suppliers) == 0 {
		return "Nothing to buy, every item is at maximum stock.", nil
	}

	var b strings.Builder
	b.WriteString("Suppliers to visit:")
	for _, section := range list.Suppliers {
		fmt.Fprintf(&b, "\n• %s: %d items - %s", section.Supplier, len(section.Items), decimal.NewFromFloat(section.TotalCost).StringFixed(2))
	}
	return b.String(), nil
}

// ShoppingText renders one supplier's shopping list with a heading.
func (s *Service) ShoppingText(ctx context.Context, supplier string) (string, error) {
	text, err := s.SupplierText(ctx, supplier)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Shopping list - %s\n%s", supplier, text), nil
}

// WeeklyUsageText renders the usage summary for a chat message.
func (s *Service) WeeklyUsageText(ctx context.Context) (string, error) {
	summary, err := s.UsageSummary(ctx)
	if errors.Is(err, ErrNotEnoughSessions) {
		return NotEnoughSessionsMessage, nil
	}
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Usage report: %s to %s (%d days)\n", summary.OpeningSession, summary.ClosingSession, summary.PeriodDays)
	fmt.Fprintf(&b, "Total usage cost: %s\n", decimal.NewFromFloat(summary.TotalUsageCost).StringFixed(2))

	for _, cat := range summary.CategoryBreakdown {
		fmt.Fprintf(&b, "• %s: %d units, %s\n", cat.Category, cat.Usage, decimal.NewFromFloat(cat.UsageCost).StringFixed(2))
	}

	if len(summary.TopItems) > 0 {
		b.WriteString("Top items:\n")
		for i, item := range summary.TopItems {
			fmt.Fprintf(&b, "%d. %s: %d used, %s\n", i+1, item.ItemName, item.CalculatedUsage, decimal.NewFromFloat(item.UsageCost).StringFixed(2))
		}
	}

	if len(summary.Discrepancies) > 0 {
		b.WriteString("Check counts (negative usage):\n")
		for _, item := range summary.Discrepancies {
			fmt.Fprintf(&b, "• %s: %d\n", item.ItemName, item.CalculatedUsage)
		}
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
