package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/justradojko/intellij-community/internal/locator"
	"github.com/justradojko/intellij-community/pkg/logger"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var logOutput strings.Builder
	testLogger := logger.NewWithWriter("debug", &logOutput)

	tests := []struct {
		name           string
		setupError     func(*gin.Context)
		expectedStatus int
		expectedBody   string
		expectLog      bool
	}{
		{
			name:           "no error - should not modify response",
			setupError:     func(c *gin.Context) {},
			expectedStatus: http.StatusOK,
			expectedBody:   "",
			expectLog:      false,
		},
		{
			name: "empty path - bad request",
			setupError: func(c *gin.Context) {
				_ = c.Error(locator.ErrEmptyPath)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request: file path is required","code":"INVALID_REQUEST"}`,
			expectLog:      true,
		},
		{
			name: "wrapped not found",
			setupError: func(c *gin.Context) {
				_ = c.Error(fmt.Errorf("%w: src/missing.go", locator.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"file not found: src/missing.go","code":"NOT_FOUND"}`,
			expectLog:      true,
		},
		{
			name: "status set by handler is kept",
			setupError: func(c *gin.Context) {
				c.Status(http.StatusServiceUnavailable)
				_ = c.Error(errors.New("project is closed"))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"project is closed","code":"SERVICE_UNAVAILABLE"}`,
			expectLog:      true,
		},
		{
			name: "internal server error",
			setupError: func(c *gin.Context) {
				_ = c.Error(errors.New("disk on fire"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"disk on fire","code":"INTERNAL_ERROR"}`,
			expectLog:      true,
		},
		{
			name: "handler body is kept",
			setupError: func(c *gin.Context) {
				c.JSON(http.StatusNotFound, gin.H{"error": "custom"})
				_ = c.Error(locator.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"custom"}`,
			expectLog:      true,
		},
		{
			name: "bare status gets a body",
			setupError: func(c *gin.Context) {
				c.Status(http.StatusMethodNotAllowed)
			},
			expectedStatus: http.StatusMethodNotAllowed,
			expectedBody:   `{"error":"Method Not Allowed","code":"METHOD_NOT_ALLOWED"}`,
			expectLog:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logOutput.Reset()

			router := gin.New()
			router.Use(ErrorHandler(testLogger))
			router.GET("/test", func(c *gin.Context) {
				tt.setupError(c)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, strings.TrimSpace(w.Body.String()))
			}
			if tt.expectLog {
				assert.NotZero(t, logOutput.Len(), "expected log output")
			} else {
				assert.Zero(t, logOutput.Len(), "unexpected log output: %s", logOutput.String())
			}
		})
	}
}

func TestDetermineStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		current  int
		expected int
	}{
		{"nil error", nil, http.StatusOK, http.StatusOK},
		{"empty path sentinel", locator.ErrEmptyPath, http.StatusOK, http.StatusBadRequest},
		{"not found sentinel", fmt.Errorf("%w: a.txt", locator.ErrNotFound), http.StatusOK, http.StatusNotFound},
		{"sentinel wins over status", locator.ErrNotFound, http.StatusBadRequest, http.StatusNotFound},
		{"message text is ignored", errors.New("resource does not exist"), http.StatusOK, http.StatusInternalServerError},
		{"handler status kept", errors.New("busy"), http.StatusServiceUnavailable, http.StatusServiceUnavailable},
		{"unknown error", errors.New("some random error"), http.StatusOK, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, determineStatusCode(tt.err, tt.current))
		})
	}
}

func TestDetermineErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{"nil error", nil, http.StatusOK, ""},
		{"empty path sentinel", locator.ErrEmptyPath, http.StatusBadRequest, "INVALID_REQUEST"},
		{"not found sentinel", locator.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"message text is ignored", errors.New("forbidden"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"falls back to status", errors.New("random error"), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, determineErrorCode(tt.err, tt.status))
		})
	}
}

func TestDetermineErrorCodeFromStatus(t *testing.T) {
	assert.Equal(t, "INVALID_REQUEST", determineErrorCodeFromStatus(http.StatusBadRequest))
	assert.Equal(t, "NOT_FOUND", determineErrorCodeFromStatus(http.StatusNotFound))
	assert.Equal(t, "INTERNAL_ERROR", determineErrorCodeFromStatus(http.StatusInternalServerError))
	assert.Equal(t, "UNKNOWN_ERROR", determineErrorCodeFromStatus(999))
}
