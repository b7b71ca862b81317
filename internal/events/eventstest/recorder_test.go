package eventstest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/barstock/internal/events"
)

func TestRecorderKeepsOrder(t *testing.T) {
	r := &Recorder{}
	ctx := context.Background()

	assert.NoError(t, r.Publish(ctx, events.PurchaseRecorded, map[string]int{"qty": 12}))
	assert.NoError(t, r.Publish(ctx, events.StockLow, "big-leo"))

	assert.Equal(t, []string{events.PurchaseRecorded, events.StockLow}, r.Types())
	recorded := r.Events()
	assert.Len(t, recorded, 2)
	assert.Equal(t, "big-leo", recorded[1].Payload)
	assert.False(t, recorded[0].OccurredAt.IsZero())
}
