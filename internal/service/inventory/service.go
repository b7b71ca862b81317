// Package inventory manages the item catalog and the current stock counts.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/domain/accounting"
	"github.com/mamadbah2/barstock/internal/domain/models"
	"github.com/mamadbah2/barstock/internal/events"
	"github.com/mamadbah2/barstock/internal/repository"
)

// Store is the persistence needed by the inventory service.
type Store interface {
	repository.ItemRepository
	repository.StockCountRepository
}

// Service implements catalog and stock-count operations.
type Service struct {
	store     Store
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

// NewService wires a new inventory service.
func NewService(store Store, publisher events.Publisher, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *Service) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *Service) GetItem(ctx context.Context, id string) (models.Item, error) {
	item, err := s.store.GetItem(ctx, id)
	return item, repository.MapNotFound(err, models.ErrItemNotFound, "get item")
}

func (s *Service) CreateItem(ctx context.Context, in models.ItemInput) (models.Item, error) {
	if !in.Category.Valid() {
		return models.Item{}, models.ErrInvalidCategory
	}

	item := in.ToItem(s.newID())
	if err := s.store.CreateItem(ctx, item); err != nil {
		return models.Item{}, fmt.Errorf("create item: %w", err)
	}

	s.logger.Info("item created", zap.String("item_id", item.ID), zap.String("name", item.Name))
	return item, nil
}

// UpdateItem replaces every field of the item.
func (s *Service) UpdateItem(ctx context.Context, id string, in models.ItemInput) (models.Item, error) {
	if !in.Category.Valid() {
		return models.Item{}, models.ErrInvalidCategory
	}

	item := in.ToItem(id)
	if err := s.store.ReplaceItem(ctx, item); err != nil {
		return models.Item{}, repository.MapNotFound(err, models.ErrItemNotFound, "update item")
	}
	return item, nil
}

// DeleteItem removes the item together with its stock count.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	if err := s.store.DeleteItem(ctx, id); err != nil {
		return repository.MapNotFound(err, models.ErrItemNotFound, "delete item")
	}
	if err := s.store.DeleteStockCount(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("delete stock count of %s: %w", id, err)
	}

	s.logger.Info("item deleted", zap.String("item_id", id))
	return nil
}

func (s *Service) ListStockCounts(ctx context.Context) ([]models.StockCount, error) {
	counts, err := s.store.ListStockCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stock counts: %w", err)
	}
	return counts, nil
}

// GetStockCount returns the stored count, or an all-zero count for an item
// that was never counted.
func (s *Service) GetStockCount(ctx context.Context, itemID string) (models.StockCount, error) {
	count, err := s.store.GetStockCount(ctx, itemID)
	if errors.Is(err, repository.ErrNotFound) {
		return models.StockCount{ItemID: itemID}, nil
	}
	if err != nil {
		return models.StockCount{}, fmt.Errorf("get stock count: %w", err)
	}
	return count, nil
}

// CreateStockCount overwrites the count of an item.
func (s *Service) CreateStockCount(ctx context.Context, in models.StockCountInput) (models.StockCount, error) {
	item, err := s.GetItem(ctx, in.ItemID)
	if err != nil {
		return models.StockCount{}, err
	}
	return s.saveCount(ctx, item, in.Locations(), in.CountedBy)
}

// UpdateStockCount applies a partial update; absent fields keep their stored
// value, or zero when the item has no count yet.
func (s *Service) UpdateStockCount(ctx context.Context, itemID string, upd models.StockCountUpdate) (models.StockCount, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return models.StockCount{}, err
	}

	existing, err := s.GetStockCount(ctx, itemID)
	if err != nil {
		return models.StockCount{}, err
	}

	countedBy := upd.CountedBy
	if countedBy == "" {
		countedBy = existing.CountedBy
	}
	return s.saveCount(ctx, item, upd.Apply(existing.LocationCounts), countedBy)
}

// RecordCaseCount stores a count given as cases plus singles per location.
func (s *Service) RecordCaseCount(ctx context.Context, itemID string, in models.CaseCountInput) (models.StockCount, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return models.StockCount{}, err
	}

	for _, cs := range []models.CaseSingles{in.MainBar, in.BeerBar, in.Lobby, in.StorageRoom} {
		if cs.Cases < 0 || cs.Singles < 0 {
			return models.StockCount{}, models.ErrInvalidQuantity
		}
	}

	loc := models.LocationCounts{
		MainBar:     accounting.UnitsFromCases(in.MainBar, item.UnitsPerCase),
		BeerBar:     accounting.UnitsFromCases(in.BeerBar, item.UnitsPerCase),
		Lobby:       accounting.UnitsFromCases(in.Lobby, item.UnitsPerCase),
		StorageRoom: accounting.UnitsFromCases(in.StorageRoom, item.UnitsPerCase),
	}
	return s.saveCount(ctx, item, loc, in.CountedBy)
}

func (s *Service) saveCount(ctx context.Context, item models.Item, loc models.LocationCounts, countedBy string) (models.StockCount, error) {
	if loc.MainBar < 0 || loc.BeerBar < 0 || loc.Lobby < 0 || loc.StorageRoom < 0 {
		return models.StockCount{}, models.ErrInvalidQuantity
	}

	count := models.StockCount{
		ID:             s.newID(),
		ItemID:         item.ID,
		LocationCounts: loc,
		TotalCount:     accounting.TotalStock(loc),
		CountDate:      s.now().UTC(),
		CountedBy:      countedBy,
	}

	stored, err := s.store.UpsertStockCount(ctx, count)
	if err != nil {
		return models.StockCount{}, fmt.Errorf("save stock count: %w", err)
	}

	if accounting.IsBelowMinimum(stored.TotalCount, item.MinStock) {
		s.publish(ctx, events.StockLow, models.LowStockItem{
			ItemID:          item.ID,
			ItemName:        item.Name,
			CurrentStock:    stored.TotalCount,
			MinStock:        item.MinStock,
			Category:        item.CategoryName,
			PrimarySupplier: item.PrimarySupplier,
		})
	}
	return stored, nil
}

// SeedDemoCatalog replaces the catalog with the demo catalog and clears every count.
func (s *Service) SeedDemoCatalog(ctx context.Context) ([]models.Item, error) {
	inputs := models.DemoCatalog()
	items := make([]models.Item, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, in.ToItem(s.newID()))
	}

	if err := s.store.ReplaceCatalog(ctx, items); err != nil {
		return nil, fmt.Errorf("replace catalog: %w", err)
	}
	if err := s.store.ClearStockCounts(ctx); err != nil {
		return nil, fmt.Errorf("clear stock counts: %w", err)
	}

	s.logger.Info("demo catalog loaded", zap.Int("items", len(items)))
	return items, nil
}

func (s *Service) publish(ctx context.Context, eventType string, payload any) {
	if err := s.publisher.Publish(ctx, eventType, payload); err != nil {
		s.logger.Warn("failed to publish event", zap.String("type", eventType), zap.Error(err))
	}
}
