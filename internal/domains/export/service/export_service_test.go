package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"publishing-backend/internal/domains/author"
	"publishing-backend/internal/domains/title"
)

type fakeAuthorRepo struct {
	authors []author.Author
}

func (r *fakeAuthorRepo) Create(ctx context.Context, a *author.Author) error { return nil }

func (r *fakeAuthorRepo) FindByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return nil, author.ErrAuthorNotFound
}

func (r *fakeAuthorRepo) FindByEmail(ctx context.Context, email string) (*author.Author, error) {
	return nil, author.ErrAuthorNotFound
}

func (r *fakeAuthorRepo) List(ctx context.Context, activeOnly bool) ([]author.Author, error) {
	out := []author.Author{}
	for _, a := range r.authors {
		if activeOnly && !a.IsActive {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAuthorRepo) Update(ctx context.Context, a *author.Author) error { return nil }
func (r *fakeAuthorRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }

func (r *fakeAuthorRepo) SetVisibilityAll(ctx context.Context, isActive bool) (int64, error) {
	return 0, nil
}

type fakeTitleRepo struct {
	titles []title.Title
}

func (r *fakeTitleRepo) Create(ctx context.Context, t *title.Title) error { return nil }

func (r *fakeTitleRepo) FindByID(ctx context.Context, id uuid.UUID) (*title.Title, error) {
	return nil, title.ErrTitleNotFound
}

func (r *fakeTitleRepo) List(ctx context.Context, f title.Filter) ([]title.Title, int, error) {
	return r.titles, len(r.titles), nil
}

func (r *fakeTitleRepo) ListAll(ctx context.Context) ([]title.Title, error) {
	return r.titles, nil
}

func (r *fakeTitleRepo) Update(ctx context.Context, t *title.Title) error { return nil }
func (r *fakeTitleRepo) Delete(ctx context.Context, id uuid.UUID) error   { return nil }

func testAuthor(name string, active bool) author.Author {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return author.Author{
		ID:          uuid.New(),
		Name:        name,
		Email:       name + "@x.com",
		IsActive:    active,
		Specialties: []string{"fiction", "essays"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func testTitle(name string, authorID uuid.UUID, active bool) title.Title {
	now := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	return title.Title{
		ID:          uuid.New(),
		Title:       name,
		AuthorID:    authorID,
		Category:    title.CategoryBooks,
		IsActive:    active,
		PublishDate: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestAuthorsExportIncludesInactive(t *testing.T) {
	authors := &fakeAuthorRepo{authors: []author.Author{
		testAuthor("active", true),
		testAuthor("hidden", false),
	}}
	svc := NewExportService(authors, &fakeTitleRepo{})

	rows, err := svc.Authors(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "fiction|essays", rows[0].Specialties)
}

func TestAuthorsWithTitlesOuterJoin(t *testing.T) {
	prolific := testAuthor("prolific", true)
	silent := testAuthor("silent", true)
	authors := &fakeAuthorRepo{authors: []author.Author{prolific, silent}}
	titles := &fakeTitleRepo{titles: []title.Title{
		testTitle("first", prolific.ID, true),
		testTitle("second", prolific.ID, true),
	}}
	svc := NewExportService(authors, titles)

	report, err := svc.AuthorsWithTitles(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, report, 2)

	byName := map[string][]string{}
	for _, entry := range report {
		names := []string{}
		for _, tr := range entry.Titles {
			names = append(names, tr.Title)
		}
		byName[entry.Name] = names
	}

	assert.ElementsMatch(t, []string{"first", "second"}, byName["prolific"])

	// An author with zero titles still appears, with an empty (non-nil)
	// titles slice.
	silentTitles, ok := byName["silent"]
	require.True(t, ok)
	assert.Empty(t, silentTitles)

	for _, entry := range report {
		assert.NotNil(t, entry.Titles)
	}
}

func TestAuthorsWithTitlesZeroTitleAuthorYieldsOneRecord(t *testing.T) {
	silent := testAuthor("silent", true)
	svc := NewExportService(&fakeAuthorRepo{authors: []author.Author{silent}}, &fakeTitleRepo{})

	report, err := svc.AuthorsWithTitles(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, report, 1)

	records := report[0].Records()
	require.Len(t, records, 1)
	// Author columns populated, title columns empty.
	assert.Equal(t, silent.ID.String(), records[0][0])
	assert.Equal(t, "", records[0][4])
	assert.Equal(t, "", records[0][5])
}

func TestAuthorsWithTitlesExcludesInactiveTitles(t *testing.T) {
	a := testAuthor("a", true)
	authors := &fakeAuthorRepo{authors: []author.Author{a}}
	titles := &fakeTitleRepo{titles: []title.Title{
		testTitle("live", a.ID, true),
		testTitle("retired", a.ID, false),
	}}
	svc := NewExportService(authors, titles)

	withInactive, err := svc.AuthorsWithTitles(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, withInactive[0].Titles, 2)

	withoutInactive, err := svc.AuthorsWithTitles(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, withoutInactive[0].Titles, 1)
	assert.Equal(t, "live", withoutInactive[0].Titles[0].Title)
}

func TestTitlesExportShape(t *testing.T) {
	a := testAuthor("a", true)
	tt := testTitle("work", a.ID, true)
	tt.AuthorName = "a"
	svc := NewExportService(&fakeAuthorRepo{}, &fakeTitleRepo{titles: []title.Title{tt}})

	rows, err := svc.Titles(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "work", rows[0].Title)
	assert.Equal(t, "a", rows[0].AuthorName)
	assert.Equal(t, "books", rows[0].Category)
	assert.Equal(t, "2025-03-02", rows[0].PublishDate)
}
