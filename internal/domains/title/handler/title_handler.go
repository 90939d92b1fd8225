package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"publishing-backend/internal/domains/title"
	"publishing-backend/internal/shared/response"
	"publishing-backend/pkg/logger"
)

type TitleHandler struct {
	service title.Service
}

func NewTitleHandler(service title.Service) *TitleHandler {
	return &TitleHandler{service: service}
}

// List handles GET /api/titles with filtering and pagination.
func (h *TitleHandler) List(c *gin.Context) {
	var req title.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get handles GET /api/titles/:id
func (h *TitleHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Create handles POST /api/titles (admin)
func (h *TitleHandler) Create(c *gin.Context) {
	var req title.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// Update handles PUT /api/titles/:id (admin)
func (h *TitleHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req title.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /api/titles/:id (admin)
func (h *TitleHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Title deleted")
}

func (h *TitleHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid title ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *TitleHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ValidationErrors(c, verrs)
	case errors.Is(err, title.ErrTitleNotFound):
		response.NotFound(c, "Title not found")
	case errors.Is(err, title.ErrAuthorNotFound):
		response.BadRequest(c, "Referenced author not found")
	case errors.Is(err, title.ErrInvalidCategory):
		response.BadRequest(c, "Invalid category")
	default:
		logger.Error("title handler error", err)
		response.InternalServerError(c, "Server error")
	}
}
