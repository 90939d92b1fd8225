package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"publishing-backend/internal/domains/homepage"
	"publishing-backend/internal/shared/response"
	"publishing-backend/pkg/logger"
)

type HomepageHandler struct {
	service homepage.Service
}

func NewHomepageHandler(service homepage.Service) *HomepageHandler {
	return &HomepageHandler{service: service}
}

// List handles GET /api/homepage, returning content in its active window.
func (h *HomepageHandler) List(c *gin.Context) {
	blocks, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// ListByType handles GET /api/homepage/type/:type.
func (h *HomepageHandler) ListByType(c *gin.Context) {
	blocks, err := h.service.ListActiveByType(c.Request.Context(), homepage.Type(c.Param("type")))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}

// Get handles GET /api/homepage/:id (admin)
func (h *HomepageHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	block, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// Create handles POST /api/homepage (admin)
func (h *HomepageHandler) Create(c *gin.Context) {
	var req homepage.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	block, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

// Update handles PUT /api/homepage/:id (admin)
func (h *HomepageHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req homepage.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	block, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// Delete handles DELETE /api/homepage/:id (admin)
func (h *HomepageHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Content deleted")
}

func (h *HomepageHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *HomepageHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ValidationErrors(c, verrs)
	case errors.Is(err, homepage.ErrContentNotFound):
		response.NotFound(c, "Content not found")
	default:
		logger.Error("homepage handler error", err)
		response.InternalServerError(c, "Server error")
	}
}
