package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fieldops/internal/shared/logger"
)

// Operation represents the kind of mutation a change event describes
type Operation string

const (
	OperationInsert Operation = "insert"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// ChangeEvent is published after every successful repository mutation so all
// connected instances and clients converge on the same state. Events carry no
// row data: consumers refresh the whole table, which keeps replays idempotent.
type ChangeEvent struct {
	Table     string    `json:"table"`
	Operation Operation `json:"operation"`
	Timestamp int64     `json:"timestamp"`
}

// ChangeEventHandler is a callback function for handling change events
type ChangeEventHandler func(ctx context.Context, event ChangeEvent)

// ChangePublisher defines the interface for publishing change events
type ChangePublisher interface {
	Publish(ctx context.Context, table string, operation Operation) error
}

// ChangeSubscriber defines the interface for subscribing to change events
type ChangeSubscriber interface {
	Subscribe(ctx context.Context, handler ChangeEventHandler) error
}

const changeFeedChannel = "fieldops:changefeed"

// RedisChangeFeed implements both ChangePublisher and ChangeSubscriber using
// Redis Pub/Sub for cross-instance event distribution
type RedisChangeFeed struct {
	client *redis.Client
	logger logger.Interface
}

// NewRedisChangeFeed creates a new Redis-based change feed
func NewRedisChangeFeed(client *redis.Client, logger logger.Interface) *RedisChangeFeed {
	return &RedisChangeFeed{
		client: client,
		logger: logger,
	}
}

// Publish publishes a change event for the given table
func (f *RedisChangeFeed) Publish(ctx context.Context, table string, operation Operation) error {
	event := ChangeEvent{
		Table:     table,
		Operation: operation,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := f.client.Publish(ctx, changeFeedChannel, data).Err(); err != nil {
		f.logger.Error("failed to publish change event",
			"table", event.Table,
			"operation", event.Operation,
			"error", err,
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	f.logger.Debug("change event published",
		"table", event.Table,
		"operation", event.Operation,
	)
	return nil
}

// Subscribe subscribes to change events and calls the handler for each event.
// Blocks until ctx is cancelled.
func (f *RedisChangeFeed) Subscribe(ctx context.Context, handler ChangeEventHandler) error {
	pubsub := f.client.Subscribe(ctx, changeFeedChannel)
	defer pubsub.Close()

	// Wait for subscription confirmation
	_, err := pubsub.Receive(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	f.logger.Info("subscribed to change feed",
		"channel", changeFeedChannel,
	)

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("change feed subscriber stopped",
				"reason", ctx.Err(),
			)
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				f.logger.Warn("change feed channel closed")
				return nil
			}

			var event ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				f.logger.Warn("failed to unmarshal change event",
					"payload", msg.Payload,
					"error", err,
				)
				continue
			}

			// Handle event in background goroutine to avoid blocking the event loop
			go handler(context.Background(), event)
		}
	}
}
