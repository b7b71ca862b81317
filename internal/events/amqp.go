package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/mamadbah2/barstock/internal/config"
)

var errPublisherClosed = errors.New("amqp publisher closed")

// amqpChannel is the part of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	IsClosed() bool
	Close() error
}

// dialFunc opens a connection and a channel with the exchange declared.
type dialFunc func() (amqpChannel, io.Closer, error)

// AMQPPublisher publishes JSON events to a durable topic exchange. A channel
// closed by the broker is reopened on the next Publish.
type AMQPPublisher struct {
	dial     dialFunc
	conn     io.Closer
	channel  amqpChannel
	exchange string
	closed   bool
	mu       sync.Mutex
	logger   *zap.Logger
}

var _ Publisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher dials the broker and declares the exchange.
func NewAMQPPublisher(cfg config.RabbitMQConfig, logger *zap.Logger) (*AMQPPublisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return newAMQPPublisher(cfg.Exchange, dialRabbitMQ(cfg, logger), logger)
}

func newAMQPPublisher(exchange string, dial dialFunc, logger *zap.Logger) (*AMQPPublisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &AMQPPublisher{dial: dial, exchange: exchange, logger: logger}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func dialRabbitMQ(cfg config.RabbitMQConfig, logger *zap.Logger) dialFunc {
	return func() (amqpChannel, io.Closer, error) {
		conn, err := amqp.Dial(cfg.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("dial rabbitmq: %w", err)
		}

		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, nil, fmt.Errorf("open rabbitmq channel: %w", err)
		}

		if err := ch.ExchangeDeclare(
			cfg.Exchange,
			amqp.ExchangeTopic,
			true,  // durable
			false, // autoDelete
			false, // internal
			false, // noWait
			nil,
		); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
		}

		// A graceful Close delivers no error; anything else means the broker dropped us.
		closes := ch.NotifyClose(make(chan *amqp.Error, 1))
		go func() {
			if amqpErr, ok := <-closes; ok && amqpErr != nil {
				logger.Error("rabbitmq channel closed", zap.String("exchange", cfg.Exchange), zap.Error(amqpErr))
			}
		}()

		return ch, conn, nil
	}
}

// Publish sends a persistent message routed by eventType.
func (p *AMQPPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	event := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", eventType, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         eventType,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return errPublisherClosed
	}

	err = p.publishLocked(ctx, eventType, msg)
	if errors.Is(err, amqp.ErrClosed) {
		p.logger.Warn("rabbitmq channel lost, reconnecting", zap.String("type", eventType))
		p.disconnect()
		err = p.publishLocked(ctx, eventType, msg)
	}
	if err != nil {
		return err
	}

	p.logger.Debug("event published", zap.String("type", eventType), zap.String("id", event.ID))
	return nil
}

func (p *AMQPPublisher) publishLocked(ctx context.Context, eventType string, msg amqp.Publishing) error {
	if p.channel == nil || p.channel.IsClosed() {
		p.disconnect()
		if err := p.connect(); err != nil {
			return fmt.Errorf("reconnect rabbitmq: %w", err)
		}
	}
	if err := p.channel.PublishWithContext(ctx, p.exchange, eventType, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	return nil
}

func (p *AMQPPublisher) connect() error {
	ch, conn, err := p.dial()
	if err != nil {
		return err
	}
	p.channel, p.conn = ch, conn
	return nil
}

// disconnect drops the current channel and connection, ignoring close errors.
func (p *AMQPPublisher) disconnect() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.channel, p.conn = nil, nil
}

// Close closes the channel and the connection. Publish fails afterwards.
func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.channel == nil {
		return nil
	}
	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		p.channel, p.conn = nil, nil
		return fmt.Errorf("close rabbitmq channel: %w", err)
	}
	err := p.conn.Close()
	p.channel, p.conn = nil, nil
	return err
}
