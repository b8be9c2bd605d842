package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"waterpolo-backend/internal/infrastructure/queue"
)

// HeadshotDeleter is the storage slice the retry handler needs.
type HeadshotDeleter interface {
	Delete(ctx context.Context, key string) error
}

// DeleteHeadshotHandler retries headshot deletions that failed inline during
// a roster edit. Asynq redelivers on error, so returning the failure is
// enough to get another attempt.
type DeleteHeadshotHandler struct {
	storage HeadshotDeleter
}

func NewDeleteHeadshotHandler(storage HeadshotDeleter) *DeleteHeadshotHandler {
	return &DeleteHeadshotHandler{storage: storage}
}

func (h *DeleteHeadshotHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload queue.HeadshotDeletePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal headshot delete payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().Str("key", payload.Key).Msg("retrying headshot delete")

	if err := h.storage.Delete(ctx, payload.Key); err != nil {
		log.Error().Err(err).Str("key", payload.Key).Msg("headshot delete retry failed")
		return fmt.Errorf("delete headshot %s: %w", payload.Key, err)
	}

	return nil
}
