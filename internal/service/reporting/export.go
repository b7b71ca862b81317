package reporting

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/domain/models"
)

const (
	usageWriteRange  = "Usage!A:J"
	usageHeaderRange = "Usage!A1:J1"
)

var usageHeader = []interface{}{
	"Opening Session", "Closing Session", "Period Days", "Item", "Category",
	"Opening Stock", "Purchases", "Closing Stock", "Usage", "Usage Cost",
}

// ExportSessionComparison appends the comparison of id1 and id2 to the usage
// sheet, one row per item, and returns the number of item rows written. The
// header row is written first when the sheet is empty.
func (s *Service) ExportSessionComparison(ctx context.Context, id1, id2 string) (int, error) {
	if s.sheets == nil {
		return 0, ErrExportDisabled
	}

	cmp, err := s.SessionComparison(ctx, id1, id2)
	if err != nil {
		return 0, err
	}

	existing, err := s.sheets.ReadRange(ctx, usageHeaderRange)
	if err != nil {
		return 0, fmt.Errorf("read usage header: %w", err)
	}

	rows := usageRows(cmp)
	if len(existing) == 0 {
		rows = append([][]interface{}{usageHeader}, rows...)
	}

	if err := s.sheets.AppendRows(ctx, usageWriteRange, rows); err != nil {
		return 0, fmt.Errorf("export usage: %w", err)
	}

	s.logger.Info("session comparison exported",
		zap.String("opening", cmp.Session1.ID),
		zap.String("closing", cmp.Session2.ID),
		zap.Int("rows", len(cmp.ItemComparisons)))
	return len(cmp.ItemComparisons), nil
}

func usageRows(cmp models.SessionComparison) [][]interface{} {
	rows := make([][]interface{}, 0, len(cmp.ItemComparisons))
	for _, ic := range cmp.ItemComparisons {
		rows = append(rows, []interface{}{
			cmp.Session1.SessionName,
			cmp.Session2.SessionName,
			cmp.PeriodDays,
			ic.ItemName,
			ic.Category,
			ic.OpeningStock,
			ic.PurchasesMade,
			ic.ClosingStock,
			ic.CalculatedUsage,
			ic.UsageCost,
		})
	}
	return rows
}
