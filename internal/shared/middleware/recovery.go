package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"publishing-backend/internal/shared/response"
)

// Recovery converts panics into a generic 500. Details stay in the
// server log only.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("request_id", c.GetString("request_id")).
					Interface("error", err).
					Msg("Panic recovered")

				response.Message(c, http.StatusInternalServerError, "Something went wrong!")
				c.Abort()
			}
		}()

		c.Next()
	}
}
