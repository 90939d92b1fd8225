package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"publishing-backend/internal/domains/author"
	"publishing-backend/internal/shared/response"
	"publishing-backend/pkg/jwt"
)

// ContextAuthorKey is where the guards store the authenticated author.
const ContextAuthorKey = "author"

// Auth is the authenticated guard: bearer token → verify → load the
// author record. Every verification failure is a uniform 401; the
// client learns nothing beyond "not valid". One store lookup per
// request, deliberately uncached.
func Auth(tm *jwt.Manager, authors author.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, ok := authenticate(c, tm, authors)
		if !ok {
			return
		}

		c.Set(ContextAuthorKey, a)
		c.Next()
	}
}

// AdminAuth is the authenticated guard plus an admin role check.
// Verification failures stay 401; a valid non-admin identity gets 403.
func AdminAuth(tm *jwt.Manager, authors author.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, ok := authenticate(c, tm, authors)
		if !ok {
			return
		}

		if !a.IsAdmin() {
			response.Forbidden(c, "Access denied. Admin only.")
			c.Abort()
			return
		}

		c.Set(ContextAuthorKey, a)
		c.Next()
	}
}

// AuthorFromContext retrieves the author a guard attached to the request.
func AuthorFromContext(c *gin.Context) (*author.Author, bool) {
	v, exists := c.Get(ContextAuthorKey)
	if !exists {
		return nil, false
	}
	a, ok := v.(*author.Author)
	return a, ok
}

func authenticate(c *gin.Context, tm *jwt.Manager, authors author.Repository) (*author.Author, bool) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		response.Unauthorized(c, "No token, authorization denied")
		c.Abort()
		return nil, false
	}

	claims, err := tm.Validate(token)
	if err != nil {
		response.Unauthorized(c, "Token is not valid")
		c.Abort()
		return nil, false
	}

	id, err := uuid.Parse(claims.AuthorID)
	if err != nil {
		response.Unauthorized(c, "Token is not valid")
		c.Abort()
		return nil, false
	}

	a, err := authors.FindByID(c.Request.Context(), id)
	if err != nil {
		response.Unauthorized(c, "Token is not valid")
		c.Abort()
		return nil, false
	}

	a.Sanitize()
	return a, true
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
