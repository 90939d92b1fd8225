package job

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"publishing-backend/internal/domains/banner"
	"publishing-backend/pkg/logger"
)

// ================================================
// DEACTIVATE EXPIRED BANNERS JOB HANDLER
// ================================================

type DeactivateExpiredBannersHandler struct {
	banners banner.Repository
}

func NewDeactivateExpiredBannersHandler(banners banner.Repository) *DeactivateExpiredBannersHandler {
	return &DeactivateExpiredBannersHandler{banners: banners}
}

func (h *DeactivateExpiredBannersHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	logger.Info("Starting DeactivateExpiredBanners job", nil)
	modified, err := h.banners.DeactivateExpired(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("deactivate expired banners: %w", err)
	}
	logger.Info("Completed DeactivateExpiredBanners job", map[string]interface{}{
		"modified_count": modified,
	})
	return nil
}
