package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"publishing-backend/internal/domains/author"
	"publishing-backend/internal/shared/middleware"
	"publishing-backend/internal/shared/response"
	"publishing-backend/pkg/logger"
)

// AuthorHandler serves the author CRUD routes and the auth endpoints
// (register/login/profile), which live on the same domain.
type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// ========================================
// AUTH ENDPOINTS
// ========================================

// Register handles POST /api/auth/register
func (h *AuthorHandler) Register(c *gin.Context) {
	var req author.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Login handles POST /api/auth/login
func (h *AuthorHandler) Login(c *gin.Context) {
	var req author.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Profile handles GET /api/auth/profile (authenticated guard).
func (h *AuthorHandler) Profile(c *gin.Context) {
	a, ok := middleware.AuthorFromContext(c)
	if !ok {
		response.Unauthorized(c, "Token is not valid")
		return
	}
	c.JSON(http.StatusOK, gin.H{"author": a})
}

// ========================================
// CRUD ENDPOINTS
// ========================================

// List handles GET /api/authors, returning active authors only.
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context(), false)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, authors)
}

// ListAll handles GET /api/authors/all (admin), including inactive authors.
func (h *AuthorHandler) ListAll(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context(), true)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, authors)
}

// Get handles GET /api/authors/:id
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Create handles POST /api/authors (admin)
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// Update handles PUT /api/authors/:id (admin)
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req author.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Delete handles DELETE /api/authors/:id (admin)
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Author deleted")
}

// BulkVisibility handles POST /api/authors/bulk/visibility (admin)
func (h *AuthorHandler) BulkVisibility(c *gin.Context) {
	var req author.BulkVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "isActive boolean is required")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, "isActive boolean is required")
		return
	}

	modified, err := h.service.SetVisibilityAll(c.Request.Context(), *req.IsActive)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Visibility updated",
		"matched":  modified,
		"modified": modified,
	})
}

// ========================================
// HELPERS
// ========================================

func (h *AuthorHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ValidationErrors(c, verrs)
	case errors.Is(err, author.ErrEmailAlreadyExists):
		response.BadRequest(c, "Author already exists")
	case errors.Is(err, author.ErrInvalidCredentials):
		response.BadRequest(c, "Invalid credentials")
	case errors.Is(err, author.ErrAuthorNotFound):
		response.NotFound(c, "Author not found")
	default:
		logger.Error("author handler error", err)
		response.InternalServerError(c, "Server error")
	}
}
