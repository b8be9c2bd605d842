package job

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterpolo-backend/internal/domains/roster/model"
)

type stubRepo struct {
	urls []string
	err  error
}

func (s *stubRepo) ListHeadshotURLs(context.Context) ([]string, error) { return s.urls, s.err }

func (s *stubRepo) ListBySeason(context.Context, uuid.UUID) ([]*model.Player, error) {
	return nil, nil
}
func (s *stubRepo) GetByID(context.Context, uuid.UUID) (*model.Player, error) {
	return nil, model.ErrPlayerNotFound
}
func (s *stubRepo) Create(_ context.Context, p *model.Player) (*model.Player, error) { return p, nil }
func (s *stubRepo) Update(_ context.Context, p *model.Player) (*model.Player, error) { return p, nil }
func (s *stubRepo) Delete(context.Context, uuid.UUID) error                          { return nil }

type stubSweepStorage struct {
	keys    []string
	deleted []string
	failOn  string
}

func (s *stubSweepStorage) ListKeys(context.Context) ([]string, error) { return s.keys, nil }

func (s *stubSweepStorage) Delete(_ context.Context, key string) error {
	if key == s.failOn {
		return errors.New("bucket unavailable")
	}
	s.deleted = append(s.deleted, key)
	return nil
}

func TestSweepRemovesOnlyOrphans(t *testing.T) {
	repo := &stubRepo{urls: []string{
		"http://storage.test/headshots/kept-a.jpg",
		"http://storage.test/headshots/kept-b.png",
	}}
	store := &stubSweepStorage{keys: []string{"kept-a.jpg", "kept-b.png", "orphan-1.jpg", "orphan-2.png"}}

	h := NewSweepOrphansHandler(repo, store)
	require.NoError(t, h.ProcessTask(context.Background(), nil))

	assert.ElementsMatch(t, []string{"orphan-1.jpg", "orphan-2.png"}, store.deleted)
}

func TestSweepReportsFailures(t *testing.T) {
	repo := &stubRepo{}
	store := &stubSweepStorage{
		keys:   []string{"orphan-1.jpg", "orphan-2.png"},
		failOn: "orphan-2.png",
	}

	h := NewSweepOrphansHandler(repo, store)
	err := h.ProcessTask(context.Background(), nil)

	assert.Error(t, err, "a partial sweep should be retried")
	assert.Equal(t, []string{"orphan-1.jpg"}, store.deleted)
}

func TestSweepWithEmptyBucket(t *testing.T) {
	h := NewSweepOrphansHandler(&stubRepo{}, &stubSweepStorage{})
	assert.NoError(t, h.ProcessTask(context.Background(), nil))
}
