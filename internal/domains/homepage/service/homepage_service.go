package service

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"publishing-backend/internal/domains/homepage"
	"publishing-backend/pkg/cache"
	"publishing-backend/pkg/logger"
)

const (
	cacheTTL        = 5 * time.Minute
	cachePatternAll = "homepage:*"
)

type homepageService struct {
	contents homepage.Repository
	cache    cache.Cache
}

func NewHomepageService(contents homepage.Repository, c cache.Cache) homepage.Service {
	return &homepageService{contents: contents, cache: c}
}

func (s *homepageService) ListActive(ctx context.Context) ([]homepage.Content, error) {
	return s.listActive(ctx, nil, "homepage:active")
}

func (s *homepageService) ListActiveByType(ctx context.Context, contentType homepage.Type) ([]homepage.Content, error) {
	if !contentType.IsValid() {
		return nil, validation.Errors{"type": fmt.Errorf("Invalid content type")}
	}
	key := fmt.Sprintf("homepage:active:%s", contentType)
	return s.listActive(ctx, &contentType, key)
}

func (s *homepageService) listActive(ctx context.Context, contentType *homepage.Type, key string) ([]homepage.Content, error) {
	var cached []homepage.Content
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	blocks, err := s.contents.ListActive(ctx, contentType, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, blocks, cacheTTL); err != nil {
			logger.Error("homepage cache set failed", err)
		}
	}
	return blocks, nil
}

func (s *homepageService) Get(ctx context.Context, id uuid.UUID) (*homepage.Content, error) {
	return s.contents.FindByID(ctx, id)
}

func (s *homepageService) Create(ctx context.Context, req homepage.CreateRequest) (*homepage.Content, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	c := &homepage.Content{
		ID:        uuid.New(),
		Type:      req.Type,
		Title:     req.Title,
		Subtitle:  req.Subtitle,
		Content:   req.Content,
		IsActive:  true,
		Priority:  req.Priority,
		StartDate: now,
		Settings:  homepage.DefaultSettings(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if req.StartDate != nil {
		c.StartDate = *req.StartDate
	}
	c.EndDate = req.EndDate
	if req.Settings != nil {
		c.Settings = *req.Settings
	}

	if err := s.contents.Create(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return c, nil
}

func (s *homepageService) Update(ctx context.Context, id uuid.UUID, req homepage.UpdateRequest) (*homepage.Content, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.contents.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(c, req)
	c.UpdatedAt = time.Now().UTC()

	if err := s.contents.Update(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return c, nil
}

func (s *homepageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.contents.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *homepageService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, cachePatternAll); err != nil {
		logger.Error("homepage cache invalidation failed", err)
	}
}

func applyUpdate(c *homepage.Content, req homepage.UpdateRequest) {
	if req.Type != nil {
		c.Type = *req.Type
	}
	if req.Title != nil {
		c.Title = *req.Title
	}
	if req.Subtitle != nil {
		c.Subtitle = *req.Subtitle
	}
	if len(req.Content) > 0 {
		c.Content = req.Content
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if req.Priority != nil {
		c.Priority = *req.Priority
	}
	if req.StartDate != nil {
		c.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		c.EndDate = req.EndDate
	}
	if req.Settings != nil {
		c.Settings = *req.Settings
	}
}
