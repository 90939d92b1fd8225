package job

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"publishing-backend/internal/domains/homepage"
	"publishing-backend/pkg/logger"
)

// ================================================
// DEACTIVATE EXPIRED HOMEPAGE CONTENT JOB HANDLER
// ================================================

type DeactivateExpiredContentHandler struct {
	contents homepage.Repository
}

func NewDeactivateExpiredContentHandler(contents homepage.Repository) *DeactivateExpiredContentHandler {
	return &DeactivateExpiredContentHandler{contents: contents}
}

func (h *DeactivateExpiredContentHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	logger.Info("Starting DeactivateExpiredContent job", nil)
	modified, err := h.contents.DeactivateExpired(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("deactivate expired homepage content: %w", err)
	}
	logger.Info("Completed DeactivateExpiredContent job", map[string]interface{}{
		"modified_count": modified,
	})
	return nil
}
