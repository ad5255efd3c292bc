package api

import (
	"errors"
	"net/http"

	"acoach/coach-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the failure payload. Details and Code are only present when
// the underlying error carries them (storage errors do).
type ErrorBody struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

const msgAuthRequired = "Authentication required"

// respondError maps a business or storage error onto the envelope.
// Everything lands on 400: authentication has its own helper, and 404/405
// come from the router alone.
func respondError(c *gin.Context, err error) {
	var storageErr *repository.StorageError
	if errors.As(err, &storageErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
			Message: storageErr.Message,
			Details: storageErr.Details,
			Code:    storageErr.Code,
		}})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
		Message: err.Error(),
		Details: err.Error(),
	}})
}

func respondAuthRequired(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: ErrorBody{
		Message: msgAuthRequired,
	}})
}

func respondBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
		Message: message,
		Details: message,
	}})
}
