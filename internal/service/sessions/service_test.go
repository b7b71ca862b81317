package sessions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/barstock/internal/domain/models"
	"github.com/mamadbah2/barstock/internal/events"
	"github.com/mamadbah2/barstock/internal/events/eventstest"
	"github.com/mamadbah2/barstock/internal/repository/memory"
)

type fixture struct {
	svc      *Service
	store    *memory.Store
	recorder *eventstest.Recorder
	clock    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store:    memory.NewStore(),
		recorder: &eventstest.Recorder{},
		clock:    time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(f.store, f.recorder, nil)

	seq := 0
	f.svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	f.svc.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) count(t *testing.T, itemID string, loc models.LocationCounts) {
	t.Helper()
	_, err := f.store.UpsertStockCount(context.Background(), models.StockCount{ID: "c-" + itemID, ItemID: itemID, LocationCounts: loc, TotalCount: 999})
	require.NoError(t, err)
}

func TestCreateSessionKeepsSingleActive(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.svc.CreateSession(ctx, models.StockSessionInput{SessionName: "Monday"})
	require.NoError(t, err)
	assert.True(t, first.IsActive)
	assert.Equal(t, models.SessionFullCount, first.SessionType)

	f.clock = f.clock.Add(24 * time.Hour)
	second, err := f.svc.CreateSession(ctx, models.StockSessionInput{SessionName: "Tuesday", SessionType: models.SessionQuickRestock})
	require.NoError(t, err)

	current, err := f.svc.CurrentSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, second.ID, current.ID)

	list, err := f.svc.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Tuesday", list[0].SessionName)
	assert.False(t, list[1].IsActive)
}

func TestCurrentSessionNilWhenNone(t *testing.T) {
	f := newFixture(t)

	current, err := f.svc.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestSaveCountsAppendsSnapshots(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	session, err := f.svc.CreateSession(ctx, models.StockSessionInput{SessionName: "Opening"})
	require.NoError(t, err)

	f.count(t, "chang", models.LocationCounts{MainBar: 10, StorageRoom: 24})
	f.count(t, "coke", models.LocationCounts{Lobby: 4})

	n, err := f.svc.SaveCounts(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err := f.store.ListSnapshot(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 34, rows[0].TotalCount)
	assert.Equal(t, session.ID, rows[0].SessionID)

	f.clock = f.clock.Add(time.Hour)
	f.count(t, "chang", models.LocationCounts{MainBar: 6})
	n, err = f.svc.SaveCounts(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err = f.store.ListSnapshot(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, f.clock, row.SnapshotDate)
	}

	total, err := f.store.CountSnapshot(ctx, session.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)

	assert.Equal(t, []string{events.SessionCountsSaved, events.SessionCountsSaved}, f.recorder.Types())
	saved, ok := f.recorder.Events()[0].Payload.(CountsSaved)
	require.True(t, ok)
	assert.Equal(t, CountsSaved{SessionID: session.ID, SessionName: "Opening", Count: 2}, saved)
}

func TestSaveCountsErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.SaveCounts(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)

	session, err := f.svc.CreateSession(ctx, models.StockSessionInput{SessionName: "Empty"})
	require.NoError(t, err)

	_, err = f.svc.SaveCounts(ctx, session.ID)
	assert.ErrorIs(t, err, models.ErrNoStockCounts)
	assert.Empty(t, f.recorder.Types())
}
