package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justradojko/intellij-community/internal/locator"
	"github.com/justradojko/intellij-community/pkg/logger"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorHandler provides centralized error handling middleware
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()

			statusCode := determineStatusCode(err.Err, c.Writer.Status())

			errorResp := ErrorResponse{
				Error: err.Err.Error(),
				Code:  determineErrorCode(err.Err, statusCode),
			}

			logError(log, statusCode, err.Err, c)

			// A handler that already rendered its own body keeps it.
			if c.Writer.Written() {
				return
			}
			c.JSON(statusCode, errorResp)
			return
		}

		// If no errors but status indicates error, ensure proper error format
		if c.Writer.Status() >= 400 && !c.Writer.Written() {
			statusCode := c.Writer.Status()
			errorResp := ErrorResponse{
				Error: http.StatusText(statusCode),
				Code:  determineErrorCodeFromStatus(statusCode),
			}

			if errorMsg, exists := c.Get("error_message"); exists {
				if msg, ok := errorMsg.(string); ok {
					errorResp.Error = msg
				}
			}

			log.Warn("HTTP Error Response",
				"status", statusCode,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
				"error", errorResp.Error,
			)

			c.JSON(statusCode, errorResp)
		}
	}
}

// determineStatusCode maps locator sentinels to their status. Other errors
// keep the error status the handler already set, or become a 500.
func determineStatusCode(err error, current int) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, locator.ErrEmptyPath):
		return http.StatusBadRequest
	case errors.Is(err, locator.ErrNotFound):
		return http.StatusNotFound
	case current >= 400:
		return current
	default:
		return http.StatusInternalServerError
	}
}

// determineErrorCode creates a machine-readable error code
func determineErrorCode(err error, statusCode int) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, locator.ErrEmptyPath):
		return "INVALID_REQUEST"
	case errors.Is(err, locator.ErrNotFound):
		return "NOT_FOUND"
	default:
		return determineErrorCodeFromStatus(statusCode)
	}
}

// determineErrorCodeFromStatus creates error code from HTTP status
func determineErrorCodeFromStatus(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return "INVALID_REQUEST"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusInternalServerError:
		return "INTERNAL_ERROR"
	case http.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "UNKNOWN_ERROR"
	}
}

// logError logs errors with appropriate level
func logError(log logger.Logger, statusCode int, err error, c *gin.Context) {
	fields := []interface{}{
		"status", statusCode,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"client_ip", c.ClientIP(),
		"error", err.Error(),
	}

	if requestID := c.GetString(RequestIDKey); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}

	switch {
	case statusCode >= 500:
		log.Error("HTTP Error", fields...)
	case statusCode >= 400:
		log.Warn("HTTP Error", fields...)
	default:
		log.Info("HTTP Error", fields...)
	}
}
