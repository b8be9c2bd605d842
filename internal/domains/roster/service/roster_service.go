package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"waterpolo-backend/internal/domains/roster/model"
	"waterpolo-backend/internal/domains/roster/repository"
	"waterpolo-backend/internal/infrastructure/storage"
	"waterpolo-backend/pkg/logger"
)

type rosterService struct {
	repo      repository.Repository
	storage   HeadshotStorage
	processor *storage.ImageProcessor
	enqueuer  TaskEnqueuer
}

func NewRosterService(
	repo repository.Repository,
	headshots HeadshotStorage,
	processor *storage.ImageProcessor,
	enqueuer TaskEnqueuer,
) Service {
	return &rosterService{
		repo:      repo,
		storage:   headshots,
		processor: processor,
		enqueuer:  enqueuer,
	}
}

func (s *rosterService) ListBySeason(ctx context.Context, seasonID uuid.UUID) ([]*model.Player, error) {
	return s.repo.ListBySeason(ctx, seasonID)
}

func (s *rosterService) GetByID(ctx context.Context, id uuid.UUID) (*model.Player, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *rosterService) Create(ctx context.Context, req *model.CreatePlayerRequest, upload *model.HeadshotUpload) (*model.Player, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	player := req.ToEntity()

	// Upload before insert so a storage failure leaves no half-created
	// entry behind.
	if upload != nil {
		url, err := s.uploadHeadshot(ctx, upload)
		if err != nil {
			return nil, err
		}
		player.HeadshotURL = url
	}

	created, err := s.repo.Create(ctx, player)
	if err != nil {
		return nil, err
	}

	logger.Info("roster entry created", map[string]interface{}{
		"player_id": created.ID.String(),
		"season_id": created.RosterYearID.String(),
	})

	return created, nil
}

func (s *rosterService) Update(ctx context.Context, id uuid.UUID, req *model.UpdatePlayerRequest, upload *model.HeadshotUpload) (*model.Player, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upload != nil {
		// Retire the old asset first. Failure here is logged and retried in
		// the background but never blocks the edit.
		s.retireHeadshot(ctx, existing.HeadshotURL)

		url, err := s.uploadHeadshot(ctx, upload)
		if err != nil {
			return nil, err
		}
		existing.HeadshotURL = url
	}

	req.Apply(existing)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	logger.Info("roster entry updated", map[string]interface{}{
		"player_id": updated.ID.String(),
	})

	return updated, nil
}

func (s *rosterService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.retireHeadshot(ctx, existing.HeadshotURL)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("roster entry deleted", map[string]interface{}{
		"player_id": id.String(),
	})

	return nil
}

// uploadHeadshot validates, normalizes and stores an image, returning its
// public URL.
func (s *rosterService) uploadHeadshot(ctx context.Context, upload *model.HeadshotUpload) (string, error) {
	if err := s.processor.Validate(upload.Data); err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidImage, err)
	}

	data, err := s.processor.Normalize(upload.Data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidImage, err)
	}

	key := storage.ObjectName(upload.Filename)
	url, err := s.storage.Upload(ctx, key, data, s.processor.ContentType(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrUploadFailed, err)
	}

	return url, nil
}

// retireHeadshot deletes an old asset best-effort. When the inline delete
// fails the key goes to the background queue so the bucket converges anyway.
func (s *rosterService) retireHeadshot(ctx context.Context, headshotURL string) {
	key := storage.KeyFromURL(headshotURL)
	if key == "" {
		return
	}

	err := s.storage.Delete(ctx, key)
	if err == nil {
		return
	}

	logger.Warn("inline headshot delete failed, queueing retry", map[string]interface{}{
		"key":   key,
		"error": err.Error(),
	})

	if err := s.enqueuer.EnqueueHeadshotDelete(ctx, key); err != nil {
		logger.Error("failed to enqueue headshot delete", err)
	}
}
