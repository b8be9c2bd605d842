package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"waterpolo-backend/internal/domains/roster/model"
)

// HeadshotStorage is the slice of object storage the roster needs.
// Satisfied by storage.MinIOStorage.
type HeadshotStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// TaskEnqueuer schedules background retries for failed asset deletions.
// Satisfied by queue.Client.
type TaskEnqueuer interface {
	EnqueueHeadshotDelete(ctx context.Context, key string) error
}

// Service implements the roster editor workflow. The ordering rules matter:
// a failed upload aborts the whole operation before any row is touched, while
// a failed deletion of an old asset never blocks the row change.
type Service interface {
	// ListBySeason returns the roster for one season ordered by cap number.
	ListBySeason(ctx context.Context, seasonID uuid.UUID) ([]*model.Player, error)

	// GetByID returns one entry.
	// Errors: model.ErrPlayerNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*model.Player, error)

	// Create adds an entry, uploading the headshot first if one was given.
	// Errors: validation.Errors, model.ErrInvalidImage, model.ErrUploadFailed
	Create(ctx context.Context, req *model.CreatePlayerRequest, upload *model.HeadshotUpload) (*model.Player, error)

	// Update replaces an entry. A replacement headshot retires the old asset
	// best-effort, then uploads the new one before the row is written.
	// Errors: validation.Errors, model.ErrPlayerNotFound, model.ErrInvalidImage, model.ErrUploadFailed
	Update(ctx context.Context, id uuid.UUID, req *model.UpdatePlayerRequest, upload *model.HeadshotUpload) (*model.Player, error)

	// Delete removes an entry and retires its headshot best-effort.
	// Errors: model.ErrPlayerNotFound
	Delete(ctx context.Context, id uuid.UUID) error

	// ExportSeason renders one season's roster as an .xlsx workbook.
	ExportSeason(ctx context.Context, seasonID uuid.UUID) (*excelize.File, error)
}
