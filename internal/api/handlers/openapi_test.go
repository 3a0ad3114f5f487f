package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justradojko/intellij-community/internal/config"
)

func TestOpenAPIHandler_JSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		basePath string
		want     []string
		notWant  string
	}{
		{"default base path", config.DefaultBasePath, []string{"/api/file", "/api/file/{path}", "/health"}, ""},
		{"custom base path", "/locate", []string{"/locate", "/locate/{path}", "/ready"}, "/api/file"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewOpenAPIHandler(tc.basePath)
			r := gin.New()
			r.GET("/openapi.json", h.GetJSON)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
			require.Equal(t, http.StatusOK, w.Code)

			var doc struct {
				Info  map[string]any            `json:"info"`
				Paths map[string]map[string]any `json:"paths"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
			assert.Equal(t, config.ServiceVersion, doc.Info["version"])
			for _, p := range tc.want {
				assert.Contains(t, doc.Paths, p)
			}
			if tc.notWant != "" {
				assert.NotContains(t, doc.Paths, tc.notWant)
			}
		})
	}
}

func TestOpenAPIHandler_YAML(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewOpenAPIHandler(config.DefaultBasePath)
	r := gin.New()
	r.GET("/openapi.yaml", h.GetYAML)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi: 3.0.3")
}
