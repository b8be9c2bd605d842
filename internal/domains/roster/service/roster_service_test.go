package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterpolo-backend/internal/domains/roster/model"
	"waterpolo-backend/internal/infrastructure/storage"
)

type fakeRosterRepo struct {
	players map[uuid.UUID]*model.Player
}

func newFakeRosterRepo() *fakeRosterRepo {
	return &fakeRosterRepo{players: make(map[uuid.UUID]*model.Player)}
}

func (f *fakeRosterRepo) ListBySeason(_ context.Context, seasonID uuid.UUID) ([]*model.Player, error) {
	var out []*model.Player
	for _, p := range f.players {
		if p.RosterYearID == seasonID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRosterRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakeRosterRepo) Create(_ context.Context, p *model.Player) (*model.Player, error) {
	stored := *p
	f.players[p.ID] = &stored
	return &stored, nil
}

func (f *fakeRosterRepo) Update(_ context.Context, p *model.Player) (*model.Player, error) {
	if _, ok := f.players[p.ID]; !ok {
		return nil, model.ErrPlayerNotFound
	}
	stored := *p
	f.players[p.ID] = &stored
	return &stored, nil
}

func (f *fakeRosterRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.players[id]; !ok {
		return model.ErrPlayerNotFound
	}
	delete(f.players, id)
	return nil
}

func (f *fakeRosterRepo) ListHeadshotURLs(_ context.Context) ([]string, error) {
	var urls []string
	for _, p := range f.players {
		if p.HeadshotURL != "" {
			urls = append(urls, p.HeadshotURL)
		}
	}
	return urls, nil
}

type fakeHeadshotStorage struct {
	objects    map[string][]byte
	uploads    []string
	deletes    []string
	failUpload bool
	failDelete bool
}

func newFakeHeadshotStorage() *fakeHeadshotStorage {
	return &fakeHeadshotStorage{objects: make(map[string][]byte)}
}

func (f *fakeHeadshotStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if f.failUpload {
		return "", errors.New("bucket unavailable")
	}
	f.objects[key] = data
	f.uploads = append(f.uploads, key)
	return fmt.Sprintf("http://storage.test/headshots/%s", key), nil
}

func (f *fakeHeadshotStorage) Delete(_ context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	if f.failDelete {
		return errors.New("bucket unavailable")
	}
	delete(f.objects, key)
	return nil
}

type fakeEnqueuer struct {
	keys []string
}

func (f *fakeEnqueuer) EnqueueHeadshotDelete(_ context.Context, key string) error {
	f.keys = append(f.keys, key)
	return nil
}

func newTestService(repo *fakeRosterRepo, store *fakeHeadshotStorage, enq *fakeEnqueuer) Service {
	return NewRosterService(repo, store, storage.NewImageProcessor(5*1024*1024, 1200), enq)
}

func testJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for x := 0; x < 40; x++ {
		for y := 0; y < 40; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 6), G: uint8(y * 6), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func validCreateRequest(seasonID uuid.UUID) *model.CreatePlayerRequest {
	return &model.CreatePlayerRequest{
		Name:           "Alex Rivera",
		Number:         7,
		Position:       "Driver",
		GraduationYear: "2027",
		Hometown:       "San Diego, CA",
		Major:          "Biology",
		RosterYearID:   seasonID,
	}
}

func updateRequestFrom(p *model.Player) *model.UpdatePlayerRequest {
	return &model.UpdatePlayerRequest{
		Name:           p.Name,
		Number:         p.Number,
		Position:       p.Position,
		GraduationYear: p.GraduationYear,
		Hometown:       p.Hometown,
		Major:          p.Major,
		IsStaff:        p.IsStaff,
		RosterYearID:   p.RosterYearID,
	}
}

func TestCreateWithHeadshot(t *testing.T) {
	repo := newFakeRosterRepo()
	store := newFakeHeadshotStorage()
	svc := newTestService(repo, store, &fakeEnqueuer{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest(uuid.New()), &model.HeadshotUpload{
		Data:     testJPEG(t),
		Filename: "rivera.JPG",
	})
	require.NoError(t, err)

	assert.Len(t, store.uploads, 1)
	assert.True(t, strings.HasSuffix(store.uploads[0], ".jpg"), "extension should be preserved lowercase")
	assert.Equal(t, fmt.Sprintf("http://storage.test/headshots/%s", store.uploads[0]), created.HeadshotURL)
	assert.Contains(t, repo.players, created.ID)
}

func TestCreateWithoutHeadshot(t *testing.T) {
	repo := newFakeRosterRepo()
	store := newFakeHeadshotStorage()
	svc := newTestService(repo, store, &fakeEnqueuer{})

	created, err := svc.Create(context.Background(), validCreateRequest(uuid.New()), nil)
	require.NoError(t, err)

	assert.Empty(t, created.HeadshotURL)
	assert.Empty(t, store.uploads)
}

func TestCreateAbortsWhenUploadFails(t *testing.T) {
	repo := newFakeRosterRepo()
	store := newFakeHeadshotStorage()
	store.failUpload = true
	svc := newTestService(repo, store, &fakeEnqueuer{})

	_, err := svc.Create(context.Background(), validCreateRequest(uuid.New()), &model.HeadshotUpload{
		Data:     testJPEG(t),
		Filename: "rivera.jpg",
	})

	assert.ErrorIs(t, err, model.ErrUploadFailed)
	assert.Empty(t, repo.players, "no row should be written when the upload fails")
}

func TestCreateRejectsNonImagePayload(t *testing.T) {
	repo := newFakeRosterRepo()
	store := newFakeHeadshotStorage()
	svc := newTestService(repo, store, &fakeEnqueuer{})

	_, err := svc.Create(context.Background(), validCreateRequest(uuid.New()), &model.HeadshotUpload{
		Data:     []byte("#!/bin/sh\necho not a picture"),
		Filename: "rivera.jpg",
	})

	assert.ErrorIs(t, err, model.ErrInvalidImage)
	assert.Empty(t, store.uploads)
	assert.Empty(t, repo.players)
}

func TestCreateValidatesRequest(t *testing.T) {
	repo := newFakeRosterRepo()
	svc := newTestService(repo, newFakeHeadshotStorage(), &fakeEnqueuer{})

	req := validCreateRequest(uuid.New())
	req.Position = ""

	_, err := svc.Create(context.Background(), req, nil)

	var verr validation.Errors
	assert.ErrorAs(t, err, &verr)
	assert.Empty(t, repo.players)
}

func TestCreateAcceptsFreeTextPositionAndYear(t *testing.T) {
	repo := newFakeRosterRepo()
	svc := newTestService(repo, newFakeHeadshotStorage(), &fakeEnqueuer{})

	req := validCreateRequest(uuid.New())
	req.Position = "2-Meter Offense"
	req.GraduationYear = "2025 (grad)"

	created, err := svc.Create(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, "2-Meter Offense", created.Position)
	assert.Equal(t, "2025 (grad)", created.GraduationYear)
}

func TestStaffEntrySkipsAthleteChecks(t *testing.T) {
	repo := newFakeRosterRepo()
	svc := newTestService(repo, newFakeHeadshotStorage(), &fakeEnqueuer{})

	req := &model.CreatePlayerRequest{
		Name:         "Coach Daniels",
		IsStaff:      true,
		RosterYearID: uuid.New(),
	}

	created, err := svc.Create(context.Background(), req, nil)
	require.NoError(t, err)

	resp := created.ToResponse()
	assert.True(t, resp.IsStaff)
	assert.Nil(t, resp.Number)
	assert.Nil(t, resp.Position)
	assert.Nil(t, resp.GraduationYear)
}

func TestUpdateReplacesHeadshot(t *testing.T) {
	repo := newFakeRosterRepo()
	store := newFakeHeadshotStorage()
	svc := newTestService(repo, store, &fakeEnqueuer{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest(uuid.New()), &model.HeadshotUpload{
		Data:     testJPEG(t),
		Filename: "old.jpg",
	})
	require.NoError(t, err)
	oldKey := store.uploads[0]

	req := updateRequestFrom(created)
	req.Major = "Chemistry"

	updated, err := svc.Update(ctx, created.ID, req, &model.HeadshotUpload{
		Data:     testJPEG(t),
		Filename: "new.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{oldKey}, store.deletes)
	assert.NotEqual(t, created.HeadshotURL, updated.HeadshotURL)
	assert.Equal(t, "Chemistry", updated.Major)
	assert.Len(t, store.objects, 1, "old object should be gone")
}

func TestUpdateSucceedsWhenOldAssetDeleteFails(t *testing.T) {
	repo := newFakeRosterRepo()
	store := newFakeHeadshotStorage()
	enq := &fakeEnqueuer{}
	svc := newTestService(repo, store, enq)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest(uuid.New()), &model.HeadshotUpload{
		Data:     testJPEG(t),
		Filename: "old.jpg",
	})
	require.NoError(t, err)
	oldKey := store.uploads[0]

	store.failDelete = true

	updated, err := svc.Update(ctx, created.ID, updateRequestFrom(created), &model.HeadshotUpload{
		Data:     testJPEG(t),
		Filename: "new.jpg",
	})
	require.NoError(t, err, "a failed asset delete must not block the edit")

	assert.Equal(t, []string{oldKey}, enq.keys, "failed delete should queue a retry")
	assert.NotEqual(t, created.HeadshotURL, updated.HeadshotURL)
}

func TestUpdateAbortsRowWhenUploadFails(t *testing.T) {
	repo := newFakeRosterRepo()
	store := newFakeHeadshotStorage()
	svc := newTestService(repo, store, &fakeEnqueuer{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest(uuid.New()), nil)
	require.NoError(t, err)

	store.failUpload = true
	req := updateRequestFrom(created)
	req.Major = "Chemistry"

	_, err = svc.Update(ctx, created.ID, req, &model.HeadshotUpload{
		Data:     testJPEG(t),
		Filename: "new.jpg",
	})
	assert.ErrorIs(t, err, model.ErrUploadFailed)

	current, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Biology", current.Major, "row must stay untouched when the upload fails")
}

func TestUpdateWithoutNewImageKeepsHeadshot(t *testing.T) {
	repo := newFakeRosterRepo()
	store := newFakeHeadshotStorage()
	svc := newTestService(repo, store, &fakeEnqueuer{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest(uuid.New()), &model.HeadshotUpload{
		Data:     testJPEG(t),
		Filename: "keep.jpg",
	})
	require.NoError(t, err)

	req := updateRequestFrom(created)
	req.Number = 11

	updated, err := svc.Update(ctx, created.ID, req, nil)
	require.NoError(t, err)

	assert.Equal(t, created.HeadshotURL, updated.HeadshotURL)
	assert.Equal(t, 11, updated.Number)
	assert.Empty(t, store.deletes)
}

func TestUpdateMissingEntry(t *testing.T) {
	svc := newTestService(newFakeRosterRepo(), newFakeHeadshotStorage(), &fakeEnqueuer{})

	req := &model.UpdatePlayerRequest{
		Name:           "Alex Rivera",
		Number:         7,
		Position:       "Driver",
		GraduationYear: "2027",
		RosterYearID:   uuid.New(),
	}
	_, err := svc.Update(context.Background(), uuid.New(), req, nil)
	assert.ErrorIs(t, err, model.ErrPlayerNotFound)
}

func TestDeleteRemovesRowAndAsset(t *testing.T) {
	repo := newFakeRosterRepo()
	store := newFakeHeadshotStorage()
	svc := newTestService(repo, store, &fakeEnqueuer{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest(uuid.New()), &model.HeadshotUpload{
		Data:     testJPEG(t),
		Filename: "gone.jpg",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	assert.Empty(t, repo.players)
	assert.Empty(t, store.objects)
}

func TestDeleteSucceedsWhenAssetDeleteFails(t *testing.T) {
	repo := newFakeRosterRepo()
	store := newFakeHeadshotStorage()
	enq := &fakeEnqueuer{}
	svc := newTestService(repo, store, enq)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest(uuid.New()), &model.HeadshotUpload{
		Data:     testJPEG(t),
		Filename: "stuck.jpg",
	})
	require.NoError(t, err)

	store.failDelete = true

	require.NoError(t, svc.Delete(ctx, created.ID), "a stuck asset must not block row deletion")
	assert.Empty(t, repo.players)
	assert.Len(t, enq.keys, 1)
}

func TestDeleteEntryWithoutHeadshot(t *testing.T) {
	repo := newFakeRosterRepo()
	store := newFakeHeadshotStorage()
	svc := newTestService(repo, store, &fakeEnqueuer{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest(uuid.New()), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, store.deletes, "no asset delete should be attempted for an empty URL")
}
