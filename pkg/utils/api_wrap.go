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

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError is the one place service errors become HTTP statuses.
func HandleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrQuotaExceeded):
		RespondError(c, http.StatusForbidden, "Monthly generation limit reached. Please upgrade your plan.")
	case errors.Is(err, ErrValidationFailed):
		RespondError(c, http.StatusUnprocessableEntity, detail(err, ErrValidationFailed))
	case errors.Is(err, ErrGenerationFailed):
		logger.Warn("generation failed", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusBadGateway, "Content generation failed, please try again")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrInvalidPlan):
		RespondError(c, http.StatusBadRequest, "Unknown subscription plan")
	case errors.Is(err, ErrInvalidProfile):
		RespondError(c, http.StatusBadRequest, detail(err, ErrInvalidProfile))
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrDatabaseError):
		logger.Error("database error", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logger.Error("unhandled service error", zap.String("trace_id", traceID(c)), zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// detail strips the sentinel prefix from a wrapped error so the caller sees the specific reason.
func detail(err, sentinel error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return rest
	}
	return msg
}
