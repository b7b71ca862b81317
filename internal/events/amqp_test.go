package events

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	publishErr error
	isClosed   bool
	closed     int
	published  []amqp.Publishing
	keys       []string
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) IsClosed() bool { return f.isClosed }

func (f *fakeChannel) Close() error {
	f.closed++
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// dialSequence hands out channels in order and counts the dials.
func dialSequence(channels ...*fakeChannel) (dialFunc, *int) {
	dials := 0
	return func() (amqpChannel, io.Closer, error) {
		ch := channels[dials]
		dials++
		return ch, nopCloser{}, nil
	}, &dials
}

func TestAMQPPublisherReconnectsAfterChannelClosed(t *testing.T) {
	dropped := &fakeChannel{publishErr: amqp.ErrClosed}
	fresh := &fakeChannel{}
	dial, dials := dialSequence(dropped, fresh)

	p, err := newAMQPPublisher("barstock.events", dial, nil)
	require.NoError(t, err)

	require.NoError(t, p.Publish(context.Background(), StockLow, map[string]string{"item_id": "chang"}))

	assert.Equal(t, 2, *dials)
	assert.Equal(t, 1, dropped.closed)
	require.Len(t, fresh.published, 1)
	assert.Equal(t, []string{StockLow}, fresh.keys)

	var event Event
	require.NoError(t, json.Unmarshal(fresh.published[0].Body, &event))
	assert.Equal(t, StockLow, event.Type)
	assert.Equal(t, event.ID, fresh.published[0].MessageId)
	assert.Equal(t, amqp.Persistent, fresh.published[0].DeliveryMode)
}

func TestAMQPPublisherRedialsClosedChannelBeforePublishing(t *testing.T) {
	stale := &fakeChannel{isClosed: true}
	fresh := &fakeChannel{}
	dial, dials := dialSequence(stale, fresh)

	p, err := newAMQPPublisher("barstock.events", dial, nil)
	require.NoError(t, err)

	require.NoError(t, p.Publish(context.Background(), PurchaseRecorded, nil))
	assert.Equal(t, 2, *dials)
	assert.Empty(t, stale.published)
	assert.Len(t, fresh.published, 1)
}

func TestAMQPPublisherStopsAfterClose(t *testing.T) {
	ch := &fakeChannel{}
	dial, dials := dialSequence(ch)

	p, err := newAMQPPublisher("barstock.events", dial, nil)
	require.NoError(t, err)
	require.NoError(t, p.Close())

	err = p.Publish(context.Background(), StockLow, nil)
	assert.ErrorIs(t, err, errPublisherClosed)
	assert.Equal(t, 1, *dials)
	assert.Empty(t, ch.published)
}
