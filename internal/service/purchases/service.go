// Package purchases records what was actually bought against a session.
package purchases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/domain/models"
	"github.com/mamadbah2/barstock/internal/events"
	"github.com/mamadbah2/barstock/internal/repository"
)

// Store is the persistence needed by the purchase service.
type Store interface {
	repository.PurchaseRepository
	repository.SessionRepository
	repository.ItemRepository
}

// Service implements purchase operations.
type Service struct {
	store     Store
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

// NewService wires a new purchase service.
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

// Create records a purchase for an existing session and item.
func (s *Service) Create(ctx context.Context, in models.PurchaseInput) (models.PurchaseEntry, error) {
	if err := s.validate(ctx, in); err != nil {
		return models.PurchaseEntry{}, err
	}

	entry := toEntry(s.newID(), s.now().UTC(), in)
	if err := s.store.CreatePurchase(ctx, entry); err != nil {
		return models.PurchaseEntry{}, fmt.Errorf("create purchase: %w", err)
	}

	s.logger.Info("purchase recorded",
		zap.String("purchase_id", entry.ID),
		zap.String("session_id", entry.SessionID),
		zap.String("item_id", entry.ItemID),
		zap.Int("quantity", entry.ActualQuantity))

	if err := s.publisher.Publish(ctx, events.PurchaseRecorded, entry); err != nil {
		s.logger.Warn("failed to publish event", zap.String("type", events.PurchaseRecorded), zap.Error(err))
	}
	return entry, nil
}

func (s *Service) Get(ctx context.Context, id string) (models.PurchaseEntry, error) {
	entry, err := s.store.GetPurchase(ctx, id)
	return entry, repository.MapNotFound(err, models.ErrPurchaseNotFound, "get purchase")
}

func (s *Service) List(ctx context.Context) ([]models.PurchaseEntry, error) {
	entries, err := s.store.ListPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return entries, nil
}

func (s *Service) ListBySession(ctx context.Context, sessionID string) ([]models.PurchaseEntry, error) {
	entries, err := s.store.ListPurchasesBySessions(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list purchases of session %s: %w", sessionID, err)
	}
	return entries, nil
}

// Update replaces the purchase, keeping its identifier and purchase date.
func (s *Service) Update(ctx context.Context, id string, in models.PurchaseInput) (models.PurchaseEntry, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return models.PurchaseEntry{}, err
	}
	if err := s.validate(ctx, in); err != nil {
		return models.PurchaseEntry{}, err
	}

	entry := toEntry(existing.ID, existing.PurchaseDate, in)
	if err := s.store.ReplacePurchase(ctx, entry); err != nil {
		return models.PurchaseEntry{}, repository.MapNotFound(err, models.ErrPurchaseNotFound, "update purchase")
	}
	return entry, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return repository.MapNotFound(s.store.DeletePurchase(ctx, id), models.ErrPurchaseNotFound, "delete purchase")
}

func (s *Service) validate(ctx context.Context, in models.PurchaseInput) error {
	if in.PlannedQuantity < 0 || in.ActualQuantity < 0 || in.CostPerUnit < 0 || in.TotalCost < 0 {
		return models.ErrInvalidQuantity
	}
	if _, err := s.store.GetSession(ctx, in.SessionID); err != nil {
		return repository.MapNotFound(err, models.ErrSessionNotFound, "get session")
	}
	if _, err := s.store.GetItem(ctx, in.ItemID); err != nil {
		return repository.MapNotFound(err, models.ErrItemNotFound, "get item")
	}
	return nil
}

func toEntry(id string, at time.Time, in models.PurchaseInput) models.PurchaseEntry {
	return models.PurchaseEntry{
		ID:              id,
		SessionID:       in.SessionID,
		ItemID:          in.ItemID,
		PlannedQuantity: in.PlannedQuantity,
		ActualQuantity:  in.ActualQuantity,
		CostPerUnit:     in.CostPerUnit,
		TotalCost:       in.TotalCost,
		Supplier:        in.Supplier,
		PurchaseDate:    at,
		Notes:           in.Notes,
	}
}
