package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publishing-backend/internal/domains/banner"
)

type fakeBannerRepo struct {
	byID map[uuid.UUID]*banner.Banner
}

func newFakeBannerRepo() *fakeBannerRepo {
	return &fakeBannerRepo{byID: map[uuid.UUID]*banner.Banner{}}
}

func (r *fakeBannerRepo) Create(ctx context.Context, b *banner.Banner) error {
	copied := *b
	r.byID[b.ID] = &copied
	return nil
}

func (r *fakeBannerRepo) FindByID(ctx context.Context, id uuid.UUID) (*banner.Banner, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, banner.ErrBannerNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBannerRepo) ListActive(ctx context.Context, bannerType *banner.Type, limit int, now time.Time) ([]banner.Banner, error) {
	out := []banner.Banner{}
	for _, b := range r.byID {
		if !b.IsActive || b.StartDate.After(now) {
			continue
		}
		if b.EndDate != nil && !b.EndDate.After(now) {
			continue
		}
		if bannerType != nil && b.Type != *bannerType {
			continue
		}
		if len(out) < limit {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBannerRepo) Update(ctx context.Context, b *banner.Banner) error {
	if _, ok := r.byID[b.ID]; !ok {
		return banner.ErrBannerNotFound
	}
	copied := *b
	r.byID[b.ID] = &copied
	return nil
}

func (r *fakeBannerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return banner.ErrBannerNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeBannerRepo) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for _, b := range r.byID {
		if b.IsActive && b.EndDate != nil && b.EndDate.Before(now) {
			b.IsActive = false
			n++
		}
	}
	return n, nil
}

// fakeCache records Set/DeletePattern traffic.
type fakeCache struct {
	entries        map[string][]byte
	deletePatterns []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *fakeCache) DeletePattern(ctx context.Context, pattern string) error {
	c.deletePatterns = append(c.deletePatterns, pattern)
	c.entries = map[string][]byte{}
	return nil
}

func (c *fakeCache) Ping(ctx context.Context) error { return nil }

func TestCreateAppliesDefaults(t *testing.T) {
	repo := newFakeBannerRepo()
	svc := NewBannerService(repo, newFakeCache())

	b, err := svc.Create(context.Background(), banner.CreateRequest{
		Type:       banner.TypePromotional,
		Title:      "Sale",
		Image:      "/sale.webp",
		ButtonLink: "/titles",
	})
	require.NoError(t, err)
	assert.Equal(t, "Learn More", b.ButtonText)
	assert.Equal(t, "#ffffff", b.BackgroundColor)
	assert.Equal(t, "#000000", b.TextColor)
	assert.True(t, b.IsActive)
	assert.Equal(t, banner.DefaultSettings(), b.Settings)
}

func TestCreateFeaturedWithoutContentFails(t *testing.T) {
	svc := NewBannerService(newFakeBannerRepo(), newFakeCache())

	_, err := svc.Create(context.Background(), banner.CreateRequest{
		Type:       banner.TypeFeaturedAuthor,
		Title:      "Spotlight",
		Image:      "/a.webp",
		ButtonLink: "/authors",
	})
	var verrs validation.Errors
	assert.ErrorAs(t, err, &verrs)
}

func TestUpdateKeepsContentInvariant(t *testing.T) {
	repo := newFakeBannerRepo()
	svc := NewBannerService(repo, newFakeCache())
	ctx := context.Background()

	b, err := svc.Create(ctx, banner.CreateRequest{
		Type:       banner.TypePromotional,
		Title:      "Sale",
		Image:      "/sale.webp",
		ButtonLink: "/titles",
	})
	require.NoError(t, err)

	// Switching a plain banner to featured without a content reference
	// must fail.
	featured := banner.TypeFeaturedTitle
	_, err = svc.Update(ctx, b.ID, banner.UpdateRequest{Type: &featured})
	var verrs validation.Errors
	assert.ErrorAs(t, err, &verrs)

	id := uuid.NewString()
	model := banner.ContentModelTitle
	updated, err := svc.Update(ctx, b.ID, banner.UpdateRequest{
		Type:         &featured,
		ContentID:    &id,
		ContentModel: &model,
	})
	require.NoError(t, err)
	assert.Equal(t, featured, updated.Type)
	require.NotNil(t, updated.ContentID)
	assert.Equal(t, id, updated.ContentID.String())
}

func TestListActiveCachesAndMutationsInvalidate(t *testing.T) {
	repo := newFakeBannerRepo()
	cache := newFakeCache()
	svc := NewBannerService(repo, cache)
	ctx := context.Background()

	created, err := svc.Create(ctx, banner.CreateRequest{
		Type:       banner.TypePromotional,
		Title:      "Sale",
		Image:      "/sale.webp",
		ButtonLink: "/titles",
	})
	require.NoError(t, err)

	first, err := svc.ListActive(ctx, banner.ListRequest{})
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.NotEmpty(t, cache.entries)

	// Serve from cache even though the store changed underneath.
	delete(repo.byID, created.ID)
	cached, err := svc.ListActive(ctx, banner.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	// A mutation flushes the cached listings.
	patterns := len(cache.deletePatterns)
	recreated, err := svc.Create(ctx, banner.CreateRequest{
		Type:       banner.TypeAnnouncement,
		Title:      "News",
		Image:      "/news.webp",
		ButtonLink: "/news",
	})
	require.NoError(t, err)
	assert.Greater(t, len(cache.deletePatterns), patterns)

	fresh, err := svc.ListActive(ctx, banner.ListRequest{})
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, recreated.ID, fresh[0].ID)
}

func TestListActiveRejectsUnknownType(t *testing.T) {
	svc := NewBannerService(newFakeBannerRepo(), newFakeCache())

	_, err := svc.ListActive(context.Background(), banner.ListRequest{Type: "billboard"})
	var verrs validation.Errors
	assert.ErrorAs(t, err, &verrs)
}

func TestDeactivateExpired(t *testing.T) {
	repo := newFakeBannerRepo()
	svc := NewBannerService(repo, newFakeCache())
	ctx := context.Background()

	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(time.Hour)

	expired, err := svc.Create(ctx, banner.CreateRequest{
		Type: banner.TypePromotional, Title: "Old", Image: "/o.webp", ButtonLink: "/", EndDate: &past,
	})
	require.NoError(t, err)
	live, err := svc.Create(ctx, banner.CreateRequest{
		Type: banner.TypePromotional, Title: "New", Image: "/n.webp", ButtonLink: "/", EndDate: &future,
	})
	require.NoError(t, err)

	n, err := repo.DeactivateExpired(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.False(t, repo.byID[expired.ID].IsActive)
	assert.True(t, repo.byID[live.ID].IsActive)
}
