package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/sofra/backend/internal/service"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error             string   `json:"error"`
	InvalidCategories []string `json:"invalid_categories,omitempty"`
}

const internalServerError = "Internal Server Error"

// ErrorHandler turns errors recorded with c.Error, and panics, into JSON error responses.
// Client errors keep their message. Anything else is logged and answered with a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("Error: panic serving %s %s [%s]: %v", c.Request.Method, c.Request.URL.Path, c.GetString("request_id"), r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: internalServerError})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		status, body := errorResponse(c.Errors.Last().Err)
		if status == http.StatusInternalServerError {
			log.Printf("Error: %s %s [%s]: %v", c.Request.Method, c.Request.URL.Path, c.GetString("request_id"), c.Errors.String())
		}
		c.JSON(status, body)
	}
}

func errorResponse(err error) (int, ErrorResponse) {
	var invalid *service.InvalidCategoryError
	switch {
	case errors.As(err, &invalid):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error(), InvalidCategories: invalid.Values}
	case service.IsInvalidInput(err):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error()}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: internalServerError}
	}
}
