package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"publishing-backend/internal/domains/title"
)

type titleService struct {
	repo title.Repository
}

func NewTitleService(repo title.Repository) title.Service {
	return &titleService{repo: repo}
}

func (s *titleService) List(ctx context.Context, req title.ListRequest) (*title.ListResponse, error) {
	f, err := req.Filter()
	if err != nil {
		return nil, err
	}

	titles, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pages := 0
	if f.Limit > 0 {
		pages = (total + f.Limit - 1) / f.Limit
	}

	return &title.ListResponse{
		Titles: titles,
		Total:  total,
		Page:   page,
		Pages:  pages,
	}, nil
}

func (s *titleService) Get(ctx context.Context, id uuid.UUID) (*title.Title, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *titleService) Create(ctx context.Context, req title.CreateRequest) (*title.Title, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	authorID, err := uuid.Parse(req.AuthorID)
	if err != nil {
		return nil, title.ErrAuthorNotFound
	}

	category := req.Category
	if category == "" {
		category = title.CategoryBooks
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	publishDate := time.Now()
	if req.PublishDate != nil {
		publishDate = *req.PublishDate
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	t := &title.Title{
		ID:              uuid.New(),
		Title:           req.Title,
		AuthorID:        authorID,
		Category:        category,
		Image:           req.Image,
		Description:     req.Description,
		Priority:        req.Priority,
		IsActive:        isActive,
		IsFeatured:      req.IsFeatured,
		Tags:            tags,
		PublishDate:     publishDate,
		PurchaseLinks:   req.PurchaseLinks,
		Reviews:         req.Reviews,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	// Re-read to pick up the joined author name.
	return s.repo.FindByID(ctx, t.ID)
}

func (s *titleService) Update(ctx context.Context, id uuid.UUID, req title.UpdateRequest) (*title.Title, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(t, req)

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *titleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func applyUpdate(t *title.Title, req title.UpdateRequest) {
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.AuthorID != nil {
		// Validated upstream; an unparseable id never reaches here.
		if id, err := uuid.Parse(*req.AuthorID); err == nil {
			t.AuthorID = id
		}
	}
	if req.Category != nil {
		t.Category = *req.Category
	}
	if req.Image != nil {
		t.Image = *req.Image
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		t.IsFeatured = *req.IsFeatured
	}
	if req.Tags != nil {
		t.Tags = *req.Tags
	}
	if req.PublishDate != nil {
		t.PublishDate = *req.PublishDate
	}
	if req.PurchaseLinks != nil {
		t.PurchaseLinks = *req.PurchaseLinks
	}
	if req.Reviews != nil {
		t.Reviews = *req.Reviews
	}
	if req.MetaTitle != nil {
		t.MetaTitle = req.MetaTitle
	}
	if req.MetaDescription != nil {
		t.MetaDescription = req.MetaDescription
	}
}
