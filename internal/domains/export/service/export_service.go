package service

import (
	"context"

	"publishing-backend/internal/domains/author"
	"publishing-backend/internal/domains/export"
	"publishing-backend/internal/domains/title"
)

type exportService struct {
	authors author.Repository
	titles  title.Repository
}

func NewExportService(authors author.Repository, titles title.Repository) export.Service {
	return &exportService{authors: authors, titles: titles}
}

func (s *exportService) Authors(ctx context.Context) ([]export.AuthorRow, error) {
	authors, err := s.authors.List(ctx, false)
	if err != nil {
		return nil, err
	}

	rows := make([]export.AuthorRow, 0, len(authors))
	for _, a := range authors {
		rows = append(rows, export.NewAuthorRow(a))
	}
	return rows, nil
}

func (s *exportService) Titles(ctx context.Context) ([]export.TitleRow, error) {
	titles, err := s.titles.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]export.TitleRow, 0, len(titles))
	for _, t := range titles {
		rows = append(rows, export.NewTitleRow(t))
	}
	return rows, nil
}

func (s *exportService) AuthorsWithTitles(ctx context.Context, includeInactive bool) ([]export.AuthorWithTitles, error) {
	authors, err := s.authors.List(ctx, false)
	if err != nil {
		return nil, err
	}
	titles, err := s.titles.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Group titles by author in one pass. Authors keep their listing
	// order; titles keep the repository sort order.
	byAuthor := make(map[string][]export.TitleRow, len(authors))
	for _, t := range titles {
		if !includeInactive && !t.IsActive {
			continue
		}
		key := t.AuthorID.String()
		byAuthor[key] = append(byAuthor[key], export.NewTitleRow(t))
	}

	report := make([]export.AuthorWithTitles, 0, len(authors))
	for _, a := range authors {
		id := a.ID.String()
		entry := export.AuthorWithTitles{
			AuthorID:   id,
			Name:       a.Name,
			Email:      a.Email,
			IsActive:   a.IsActive,
			IsFeatured: a.IsFeatured,
			Titles:     byAuthor[id],
		}
		if entry.Titles == nil {
			entry.Titles = []export.TitleRow{}
		}
		report = append(report, entry)
	}
	return report, nil
}
