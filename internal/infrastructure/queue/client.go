package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"waterpolo-backend/internal/config"
)

// Client enqueues storage housekeeping tasks for cmd/worker.
type Client struct {
	client *asynq.Client
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// EnqueueHeadshotDelete schedules a retry for a headshot deletion that
// failed inline. Best-effort housekeeping: the caller never blocks on it.
func (c *Client) EnqueueHeadshotDelete(ctx context.Context, key string) error {
	payload, err := json.Marshal(HeadshotDeletePayload{Key: key})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TypeHeadshotDelete, payload)

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueStorage),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeHeadshotDelete, err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
