package response

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// The API error envelope is {"message": string}, or {"errors": [...]}
// for field-level validation failures. Successful responses return the
// resource payload directly.

type messageBody struct {
	Message string `json:"message"`
}

// FieldError is one entry of a validation error response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorsBody struct {
	Errors []FieldError `json:"errors"`
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, messageBody{Message: message})
}

// ValidationErrors renders a 400 with field-level messages. Ozzo errors
// expand into one entry per field; anything else becomes a single
// {"message"} body.
func ValidationErrors(c *gin.Context, err error) {
	var verrs validation.Errors
	ok := false
	if e, is := err.(validation.Errors); is {
		verrs, ok = e, true
	}
	if !ok {
		Message(c, http.StatusBadRequest, err.Error())
		return
	}

	fields := make([]FieldError, 0, len(verrs))
	for name, ferr := range verrs {
		fields = append(fields, FieldError{Field: name, Message: ferr.Error()})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })

	c.JSON(http.StatusBadRequest, errorsBody{Errors: fields})
}

func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Message(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Message(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Message(c, http.StatusInternalServerError, message)
}
