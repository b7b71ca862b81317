// Package reporting builds the shopping list, restock and usage reports.
package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/domain/accounting"
	"github.com/mamadbah2/barstock/internal/domain/models"
	"github.com/mamadbah2/barstock/internal/repository"
	"github.com/mamadbah2/barstock/internal/repository/sheets"
)

// ErrNotEnoughSessions is returned by UsageSummary until two sessions have
// saved counts.
var ErrNotEnoughSessions = errors.New("not enough sessions with saved counts")

// NotEnoughSessionsMessage is what users see in place of a usage summary
// when UsageSummary fails with ErrNotEnoughSessions.
const NotEnoughSessionsMessage = "Need at least 2 sessions with saved counts to generate a usage report"

// ErrExportDisabled is returned by ExportSessionComparison when no spreadsheet is configured.
var ErrExportDisabled = errors.New("spreadsheet export is not configured")

// Store is the persistence needed by the reporting service.
type Store interface {
	repository.ItemRepository
	repository.StockCountRepository
	repository.SessionRepository
	repository.HistoryRepository
	repository.PurchaseRepository
}

// Service exposes the reports served over HTTP and WhatsApp.
type Service struct {
	store  Store
	sheets sheets.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new reporting service instance. sheetsRepo may be nil,
// which disables the spreadsheet export.
func NewService(store Store, sheetsRepo sheets.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, sheets: sheetsRepo, logger: logger, now: time.Now}
}

func (s *Service) catalogAndCounts(ctx context.Context) ([]models.Item, []models.StockCount, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list items: %w", err)
	}
	counts, err := s.store.ListStockCounts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list stock counts: %w", err)
	}
	return items, counts, nil
}

// ShoppingList returns what to buy, grouped by primary supplier.
func (s *Service) ShoppingList(ctx context.Context) (models.ShoppingList, error) {
	items, counts, err := s.catalogAndCounts(ctx)
	if err != nil {
		return models.ShoppingList{}, err
	}
	return accounting.BuildShoppingList(items, counts), nil
}

// SupplierSection returns the shopping-list section of one supplier.
func (s *Service) SupplierSection(ctx context.Context, supplier string) (models.SupplierList, error) {
	list, err := s.ShoppingList(ctx)
	if err != nil {
		return models.SupplierList{}, err
	}
	section, ok := list.Supplier(supplier)
	if !ok {
		return models.SupplierList{}, models.ErrSupplierNotFound
	}
	return section, nil
}

// SupplierText renders the supplier's section as plain text.
func (s *Service) SupplierText(ctx context.Context, supplier string) (string, error) {
	section, err := s.SupplierSection(ctx, supplier)
	if err != nil {
		return "", err
	}
	return accounting.RenderSupplierText(section), nil
}

// QuickRestock lists the items strictly below their minimum stock.
func (s *Service) QuickRestock(ctx context.Context) ([]models.LowStockItem, error) {
	items, counts, err := s.catalogAndCounts(ctx)
	if err != nil {
		return nil, err
	}
	return accounting.QuickRestock(items, counts), nil
}

// SessionComparison accounts usage from the opening session id1 to the closing session id2.
func (s *Service) SessionComparison(ctx context.Context, id1, id2 string) (models.SessionComparison, error) {
	opening, err := s.store.GetSession(ctx, id1)
	if err != nil {
		return models.SessionComparison{}, repository.MapNotFound(err, models.ErrSessionNotFound, "get opening session")
	}
	closing, err := s.store.GetSession(ctx, id2)
	if err != nil {
		return models.SessionComparison{}, repository.MapNotFound(err, models.ErrSessionNotFound, "get closing session")
	}
	return s.compare(ctx, opening, closing)
}

func (s *Service) compare(ctx context.Context, opening, closing models.StockSession) (models.SessionComparison, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return models.SessionComparison{}, fmt.Errorf("list items: %w", err)
	}
	openingCounts, err := s.store.ListSnapshot(ctx, opening.ID)
	if err != nil {
		return models.SessionComparison{}, fmt.Errorf("load opening snapshot: %w", err)
	}
	closingCounts, err := s.store.ListSnapshot(ctx, closing.ID)
	if err != nil {
		return models.SessionComparison{}, fmt.Errorf("load closing snapshot: %w", err)
	}
	purchases, err := s.store.ListPurchasesBySessions(ctx, opening.ID, closing.ID)
	if err != nil {
		return models.SessionComparison{}, fmt.Errorf("load purchases: %w", err)
	}

	return accounting.CompareSessions(accounting.ComparisonInput{
		Items:         items,
		Opening:       opening,
		Closing:       closing,
		OpeningCounts: openingCounts,
		ClosingCounts: closingCounts,
		Purchases:     purchases,
	}), nil
}

// UsageSummary summarizes usage between the two most recent sessions that
// have saved counts, older to newer.
func (s *Service) UsageSummary(ctx context.Context) (models.UsageSummary, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return models.UsageSummary{}, fmt.Errorf("list sessions: %w", err)
	}

	var saved []models.StockSession
	for _, session := range sessions {
		n, err := s.store.CountSnapshot(ctx, session.ID)
		if err != nil {
			return models.UsageSummary{}, fmt.Errorf("count snapshot of %s: %w", session.ID, err)
		}
		if n == 0 {
			continue
		}
		saved = append(saved, session)
		if len(saved) == 2 {
			break
		}
	}
	if len(saved) < 2 {
		return models.UsageSummary{}, ErrNotEnoughSessions
	}

	cmp, err := s.compare(ctx, saved[1], saved[0])
	if err != nil {
		return models.UsageSummary{}, err
	}
	return accounting.SummarizeUsage(cmp), nil
}
