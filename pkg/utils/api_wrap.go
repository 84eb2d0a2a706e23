package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDOf(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDOf(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDOf(c),
	})
}

// HandleServiceError maps flow errors onto HTTP statuses. Validation messages
// are returned to the caller as-is; provider failures are logged and replaced
// by a generic message.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnknownDistrict):
		RespondError(c, http.StatusBadRequest, capitalize(err.Error()))
	case errors.Is(err, ErrImageGenerationUnsupported):
		RespondError(c, http.StatusNotImplemented, "Image generation is not available")
	case errors.Is(err, ErrUnexpectedBehaviorOfAI):
		logger.Warn("AI returned an unusable response", zap.String("trace_id", traceIDOf(c)), zap.Error(err))
		RespondError(c, http.StatusBadGateway, "The AI guide returned an unexpected answer, please try again")
	case errors.Is(err, ErrAIServiceUnavailable):
		logger.Error("AI service call failed", zap.String("trace_id", traceIDOf(c)), zap.Error(err))
		RespondError(c, http.StatusBadGateway, "The AI guide is unavailable right now, please try again")
	default:
		logger.Error("Unknown error", zap.String("trace_id", traceIDOf(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
