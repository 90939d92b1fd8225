package service

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"publishing-backend/internal/domains/banner"
	"publishing-backend/pkg/cache"
	"publishing-backend/pkg/logger"
)

const (
	cacheTTL          = 5 * time.Minute
	cachePatternAll   = "banners:*"
	defaultButtonText = "Learn More"
	defaultBackground = "#ffffff"
	defaultTextColor  = "#000000"
)

type bannerService struct {
	banners banner.Repository
	cache   cache.Cache
}

func NewBannerService(banners banner.Repository, c cache.Cache) banner.Service {
	return &bannerService{banners: banners, cache: c}
}

func (s *bannerService) ListActive(ctx context.Context, req banner.ListRequest) ([]banner.Banner, error) {
	var bannerType *banner.Type
	if req.Type != "" {
		t := banner.Type(req.Type)
		if !t.IsValid() {
			return nil, validation.Errors{"type": fmt.Errorf("Invalid banner type")}
		}
		bannerType = &t
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 5
	}
	if limit > 20 {
		limit = 20
	}

	key := fmt.Sprintf("banners:active:%s:%d", req.Type, limit)
	var cached []banner.Banner
	if s.cache != nil {
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	banners, err := s.banners.ListActive(ctx, bannerType, limit, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, banners, cacheTTL); err != nil {
			logger.Error("banner cache set failed", err)
		}
	}
	return banners, nil
}

func (s *bannerService) Get(ctx context.Context, id uuid.UUID) (*banner.Banner, error) {
	return s.banners.FindByID(ctx, id)
}

func (s *bannerService) Create(ctx context.Context, req banner.CreateRequest) (*banner.Banner, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b := &banner.Banner{
		ID:              uuid.New(),
		Type:            banner.TypePromotional,
		Title:           req.Title,
		Subtitle:        req.Subtitle,
		Description:     req.Description,
		Image:           req.Image,
		ImageFile:       req.ImageFile,
		ButtonText:      defaultButtonText,
		ButtonLink:      req.ButtonLink,
		ContentModel:    req.ContentModel,
		IsActive:        true,
		Priority:        req.Priority,
		StartDate:       now,
		BackgroundColor: defaultBackground,
		TextColor:       defaultTextColor,
		Settings:        banner.DefaultSettings(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if req.Type != "" {
		b.Type = req.Type
	}
	if req.ButtonText != "" {
		b.ButtonText = req.ButtonText
	}
	if req.BackgroundColor != "" {
		b.BackgroundColor = req.BackgroundColor
	}
	if req.TextColor != "" {
		b.TextColor = req.TextColor
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	if req.StartDate != nil {
		b.StartDate = *req.StartDate
	}
	b.EndDate = req.EndDate
	if req.Settings != nil {
		b.Settings = *req.Settings
	}
	if req.ContentID != nil {
		id, err := uuid.Parse(*req.ContentID)
		if err != nil {
			return nil, validation.Errors{"contentId": fmt.Errorf("Invalid content ID format")}
		}
		b.ContentID = &id
	}

	if err := s.banners.Create(ctx, b); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return b, nil
}

func (s *bannerService) Update(ctx context.Context, id uuid.UUID, req banner.UpdateRequest) (*banner.Banner, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.banners.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(b, req)

	// A featured banner must keep its content reference after the
	// patch is applied.
	if b.Type.RequiresContent() && (b.ContentID == nil || b.ContentModel == nil) {
		return nil, validation.Errors{
			"contentId": fmt.Errorf("contentId and contentModel are required for featured banners"),
		}
	}

	b.UpdatedAt = time.Now().UTC()
	if err := s.banners.Update(ctx, b); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return b, nil
}

func (s *bannerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.banners.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *bannerService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, cachePatternAll); err != nil {
		logger.Error("banner cache invalidation failed", err)
	}
}

func applyUpdate(b *banner.Banner, req banner.UpdateRequest) {
	if req.Type != nil {
		b.Type = *req.Type
	}
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Subtitle != nil {
		b.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Image != nil {
		b.Image = *req.Image
	}
	if req.ImageFile != nil {
		b.ImageFile = req.ImageFile
	}
	if req.ButtonText != nil {
		b.ButtonText = *req.ButtonText
	}
	if req.ButtonLink != nil {
		b.ButtonLink = *req.ButtonLink
	}
	if req.ContentID != nil {
		if id, err := uuid.Parse(*req.ContentID); err == nil {
			b.ContentID = &id
		}
	}
	if req.ContentModel != nil {
		b.ContentModel = req.ContentModel
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	if req.Priority != nil {
		b.Priority = *req.Priority
	}
	if req.StartDate != nil {
		b.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		b.EndDate = req.EndDate
	}
	if req.BackgroundColor != nil {
		b.BackgroundColor = *req.BackgroundColor
	}
	if req.TextColor != nil {
		b.TextColor = *req.TextColor
	}
	if req.Settings != nil {
		b.Settings = *req.Settings
	}
}
