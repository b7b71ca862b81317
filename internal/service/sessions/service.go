// Package sessions manages stock sessions and their snapshots.
package sessions

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

// Store is the persistence needed by the session service.
type Store interface {
	repository.SessionRepository
	repository.HistoryRepository
	repository.StockCountRepository
}

// CountsSaved is the payload of the session.counts_saved event.
type CountsSaved struct {
	SessionID   string `json:"session_id"`
	SessionName string `json:"session_name"`
	Count       int    `json:"count"`
}

// Service implements session operations.
type Service struct {
	store     Store
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

// NewService wires a new session service.
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

// CreateSession stores a new active session; every other session becomes inactive.
func (s *Service) CreateSession(ctx context.Context, in models.StockSessionInput) (models.StockSession, error) {
	sessionType := in.SessionType
	if sessionType == "" {
		sessionType = models.SessionFullCount
	}

	session := models.StockSession{
		ID:          s.newID(),
		SessionName: in.SessionName,
		SessionDate: s.now().UTC(),
		IsActive:    true,
		SessionType: sessionType,
		Notes:       in.Notes,
	}

	if err := s.store.CreateSession(ctx, session); err != nil {
		return models.StockSession{}, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("session started", zap.String("session_id", session.ID), zap.String("name", session.SessionName))
	return session, nil
}

// ListSessions returns every session, newest first.
func (s *Service) ListSessions(ctx context.Context) ([]models.StockSession, error) {
	sessions, err := s.store.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *Service) GetSession(ctx context.Context, id string) (models.StockSession, error) {
	session, err := s.store.GetSession(ctx, id)
	return session, repository.MapNotFound(err, models.ErrSessionNotFound, "get session")
}

// CurrentSession returns the active session, or nil when there is none.
func (s *Service) CurrentSession(ctx context.Context) (*models.StockSession, error) {
	session, err := s.store.GetActiveSession(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active session: %w", err)
	}
	return &session, nil
}

// SaveCounts snapshots every current stock count into the session history and
// returns the number of rows written. Saving again appends a newer snapshot that supersedes the earlier one in reports.
func (s *Service) SaveCounts(ctx context.Context, sessionID string) (int, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	counts, err := s.store.ListStockCounts(ctx)
	if err != nil {
		return 0, fmt.Errorf("list stock counts: %w", err)
	}
	if len(counts) == 0 {
		return 0, models.ErrNoStockCounts
	}

	taken := s.now().UTC()
	rows := make([]models.StockSnapshot, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, models.StockSnapshot{
			ID:             s.newID(),
			SessionID:      session.ID,
			ItemID:         c.ItemID,
			LocationCounts: c.LocationCounts,
			TotalCount:     accounting.TotalStock(c.LocationCounts),
			CountDate:      c.CountDate,
			CountedBy:      c.CountedBy,
			SnapshotDate:   taken,
		})
	}

	if err := s.store.AppendSnapshot(ctx, rows); err != nil {
		return 0, fmt.Errorf("save snapshot: %w", err)
	}

	s.logger.Info("session counts saved", zap.String("session_id", session.ID), zap.Int("count", len(rows)))

	payload := CountsSaved{SessionID: session.ID, SessionName: session.SessionName, Count: len(rows)}
	if err := s.publisher.Publish(ctx, events.SessionCountsSaved, payload); err != nil {
		s.logger.Warn("failed to publish event", zap.String("type", events.SessionCountsSaved), zap.Error(err))
	}
	return len(rows), nil
}
