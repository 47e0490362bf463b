package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	if traceID, ok := c.Get("trace_id"); ok {
		if s, ok := traceID.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP responses.
// Batch-fetch provider failures come back as 502 so clients know a retry
// of the whole pass is the recovery path.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Wizard session not found")
	case errors.Is(err, ErrLocationNotFound):
		RespondError(c, http.StatusNotFound, "Location not found in draft")
	case errors.Is(err, ErrInvalidStep):
		RespondError(c, http.StatusConflict, "Operation not valid for the current step")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrImageSearchUnavailable):
		RespondError(c, http.StatusBadGateway, "Image search failed, retry the batch")
	case errors.Is(err, ErrIntroductionUnavailable):
		RespondError(c, http.StatusBadGateway, "Introduction generation failed, retry the batch")
	case errors.Is(err, ErrMappingUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "Mapping provider unavailable")
	case errors.Is(err, ErrExportFailed):
		log.Printf("Export error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Document export failed")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
