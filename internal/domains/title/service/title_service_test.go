package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publishing-backend/internal/domains/title"
)

type fakeTitleRepo struct {
	byID map[uuid.UUID]*title.Title
}

func newFakeTitleRepo() *fakeTitleRepo {
	return &fakeTitleRepo{byID: map[uuid.UUID]*title.Title{}}
}

func (r *fakeTitleRepo) Create(ctx context.Context, t *title.Title) error {
	copied := *t
	r.byID[t.ID] = &copied
	return nil
}

func (r *fakeTitleRepo) FindByID(ctx context.Context, id uuid.UUID) (*title.Title, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, title.ErrTitleNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTitleRepo) List(ctx context.Context, f title.Filter) ([]title.Title, int, error) {
	matched := []title.Title{}
	for _, t := range r.byID {
		if f.AuthorID != nil && t.AuthorID != *f.AuthorID {
			continue
		}
		if f.Category != nil && t.Category != *f.Category {
			continue
		}
		if f.IsActive != nil && t.IsActive != *f.IsActive {
			continue
		}
		if f.IsFeatured != nil && t.IsFeatured != *f.IsFeatured {
			continue
		}
		matched = append(matched, *t)
	}

	total := len(matched)
	if f.Offset >= total {
		return []title.Title{}, total, nil
	}
	end := f.Offset + f.Limit
	if end > total {
		end = total
	}
	return matched[f.Offset:end], total, nil
}

func (r *fakeTitleRepo) ListAll(ctx context.Context) ([]title.Title, error) {
	out := []title.Title{}
	for _, t := range r.byID {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTitleRepo) Update(ctx context.Context, t *title.Title) error {
	if _, ok := r.byID[t.ID]; !ok {
		return title.ErrTitleNotFound
	}
	copied := *t
	r.byID[t.ID] = &copied
	return nil
}

func (r *fakeTitleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return title.ErrTitleNotFound
	}
	delete(r.byID, id)
	return nil
}

func createRequest(authorID uuid.UUID) title.CreateRequest {
	return title.CreateRequest{
		Title:       "Work",
		AuthorID:    authorID.String(),
		Image:       "/work.webp",
		Description: "d",
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	repo := newFakeTitleRepo()
	svc := NewTitleService(repo)

	created, err := svc.Create(context.Background(), createRequest(uuid.New()))
	require.NoError(t, err)
	assert.Equal(t, title.CategoryBooks, created.Category)
	assert.True(t, created.IsActive)
	assert.False(t, created.PublishDate.IsZero())
	assert.NotNil(t, created.Tags)
}

func TestListFiltersByActive(t *testing.T) {
	repo := newFakeTitleRepo()
	svc := NewTitleService(repo)
	ctx := context.Background()

	authorID := uuid.New()
	_, err := svc.Create(ctx, createRequest(authorID))
	require.NoError(t, err)

	inactive := false
	req := createRequest(authorID)
	req.Title = "Hidden"
	req.IsActive = &inactive
	hidden, err := svc.Create(ctx, req)
	require.NoError(t, err)

	res, err := svc.List(ctx, title.ListRequest{IsActive: "true", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Titles, 1)
	assert.NotEqual(t, hidden.ID, res.Titles[0].ID)

	// Flip the flag and re-query: the listing reflects the change
	// immediately.
	active := true
	_, err = svc.Update(ctx, hidden.ID, title.UpdateRequest{IsActive: &active})
	require.NoError(t, err)

	res, err = svc.List(ctx, title.ListRequest{IsActive: "true", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
}

func TestListPagination(t *testing.T) {
	repo := newFakeTitleRepo()
	svc := NewTitleService(repo)
	ctx := context.Background()

	authorID := uuid.New()
	for i := 0; i < 5; i++ {
		req := createRequest(authorID)
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	res, err := svc.List(ctx, title.ListRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 3, res.Pages)
	assert.Len(t, res.Titles, 2)
}

func TestUpdatePartial(t *testing.T) {
	repo := newFakeTitleRepo()
	svc := NewTitleService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest(uuid.New()))
	require.NoError(t, err)

	newTitle := "Renamed"
	updated, err := svc.Update(ctx, created.ID, title.UpdateRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, created.Category, updated.Category)
}

func TestGetMissing(t *testing.T) {
	svc := NewTitleService(newFakeTitleRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, title.ErrTitleNotFound)
}

func TestDelete(t *testing.T) {
	repo := newFakeTitleRepo()
	svc := NewTitleService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, createRequest(uuid.New()))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), title.ErrTitleNotFound)
}
