package handlers

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	apidocs "github.com/justradojko/intellij-community/api"
	"github.com/justradojko/intellij-community/internal/config"
)

// OpenAPIHandler serves the embedded OpenAPI document adjusted to the
// configured base path.
type OpenAPIHandler struct {
	basePath string

	once sync.Once
	doc  map[string]any
	err  error
}

func NewOpenAPIHandler(basePath string) *OpenAPIHandler {
	return &OpenAPIHandler{basePath: basePath}
}

// GET /openapi.yaml
func (h *OpenAPIHandler) GetYAML(c *gin.Context) {
	doc, err := h.load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "failed to parse openapi.yaml"})
		return
	}
	c.YAML(http.StatusOK, doc)
}

// GET /openapi.json
func (h *OpenAPIHandler) GetJSON(c *gin.Context) {
	doc, err := h.load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "failed to parse openapi.yaml"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *OpenAPIHandler) load() (map[string]any, error) {
	h.once.Do(func() {
		var doc map[string]any
		if err := yaml.Unmarshal(apidocs.OpenAPISpec, &doc); err != nil {
			h.err = err
			return
		}
		if info, ok := doc["info"].(map[string]any); ok {
			info["version"] = config.ServiceVersion
		}
		if paths, ok := doc["paths"].(map[string]any); ok {
			doc["paths"] = rebasePaths(paths, config.DefaultBasePath, h.basePath)
		}
		h.doc = doc
	})
	return h.doc, h.err
}

// rebasePaths moves the locator paths under a non-default base path.
func rebasePaths(paths map[string]any, from, to string) map[string]any {
	if to == "" || to == from {
		return paths
	}
	out := make(map[string]any, len(paths))
	for p, item := range paths {
		if p == from || strings.HasPrefix(p, from+"/") {
			p = to + strings.TrimPrefix(p, from)
		}
		out[p] = item
	}
	return out
}
