package job

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"waterpolo-backend/internal/domains/roster/repository"
	"waterpolo-backend/internal/infrastructure/storage"
)

// SweepStorage is the storage slice the nightly sweep needs.
type SweepStorage interface {
	ListKeys(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, key string) error
}

// SweepOrphansHandler removes bucket objects no roster row references.
// Orphans accumulate when inline deletes fail past their retries or an
// upload succeeds but the following insert does not.
type SweepOrphansHandler struct {
	repo    repository.Repository
	storage SweepStorage
}

func NewSweepOrphansHandler(repo repository.Repository, store SweepStorage) *SweepOrphansHandler {
	return &SweepOrphansHandler{repo: repo, storage: store}
}

func (h *SweepOrphansHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	urls, err := h.repo.ListHeadshotURLs(ctx)
	if err != nil {
		return fmt.Errorf("list referenced headshots: %w", err)
	}

	referenced := make(map[string]struct{}, len(urls))
	for _, url := range urls {
		if key := storage.KeyFromURL(url); key != "" {
			referenced[key] = struct{}{}
		}
	}

	keys, err := h.storage.ListKeys(ctx)
	if err != nil {
		return fmt.Errorf("list bucket objects: %w", err)
	}

	var removed, failed int
	for _, key := range keys {
		if _, ok := referenced[key]; ok {
			continue
		}
		if err := h.storage.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to delete orphaned headshot")
			failed++
			continue
		}
		removed++
	}

	log.Info().
		Int("scanned", len(keys)).
		Int("removed", removed).
		Int("failed", failed).
		Msg("headshot orphan sweep finished")

	if failed > 0 {
		return fmt.Errorf("sweep left %d orphans behind", failed)
	}

	return nil
}
