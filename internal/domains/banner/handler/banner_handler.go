package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"publishing-backend/internal/domains/banner"
	"publishing-backend/internal/shared/response"
	"publishing-backend/pkg/logger"
)

type BannerHandler struct {
	service banner.Service
}

func NewBannerHandler(service banner.Service) *BannerHandler {
	return &BannerHandler{service: service}
}

// List handles GET /api/banners, returning banners in their active window.
func (h *BannerHandler) List(c *gin.Context) {
	var req banner.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	banners, err := h.service.ListActive(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, banners)
}

// Get handles GET /api/banners/:id (admin)
func (h *BannerHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Create handles POST /api/banners (admin)
func (h *BannerHandler) Create(c *gin.Context) {
	var req banner.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// Update handles PUT /api/banners/:id (admin)
func (h *BannerHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req banner.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Delete handles DELETE /api/banners/:id (admin)
func (h *BannerHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Banner deleted")
}

func (h *BannerHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid banner ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *BannerHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ValidationErrors(c, verrs)
	case errors.Is(err, banner.ErrBannerNotFound):
		response.NotFound(c, "Banner not found")
	default:
		logger.Error("banner handler error", err)
		response.InternalServerError(c, "Server error")
	}
}
