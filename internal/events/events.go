// Package events publishes domain events so other systems can react to stock
// changes without polling the API.
package events

import (
	"context"
	"time"
)

// Routing keys of the published events.
const (
	SessionCountsSaved = "session.counts_saved"
	PurchaseRecorded   = "purchase.recorded"
	StockLow           = "stock.low"
)

// Event is the envelope written to the broker.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Publisher delivers events. Callers treat failures as non-fatal.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
