package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/justradojko/intellij-community/internal/locator"
	"github.com/justradojko/intellij-community/internal/metrics"
	"github.com/justradojko/intellij-community/internal/models"
	"github.com/justradojko/intellij-community/pkg/logger"
)

// maxBodyBytes caps the POST body read; anything longer is treated as unparsable.
const maxBodyBytes = 64 << 10

// Navigator receives the hint for a located file. It runs after the status
// has been decided and cannot change it.
type Navigator interface {
	Navigate(ctx context.Context, nav models.Navigation) error
}

// LogNavigator records the navigation hint and does nothing else.
type LogNavigator struct {
	logger logger.Logger
}

func NewLogNavigator(log logger.Logger) *LogNavigator {
	if log == nil {
		log = logger.NewNop()
	}
	return &LogNavigator{logger: log}
}

func (n *LogNavigator) Navigate(_ context.Context, nav models.Navigation) error {
	n.logger.Debug("Navigate", "file", nav.File, "line", nav.Line, "column", nav.Column, "excluded", nav.Excluded)
	return nil
}

// Locator is the pipeline the handler feeds.
type Locator interface {
	Locate(ctx context.Context, req models.LocationRequest) locator.Result
}

type FileHandler struct {
	locator   Locator
	navigator Navigator
	logger    logger.Logger
}

func NewFileHandler(loc Locator, nav Navigator, log logger.Logger) *FileHandler {
	if log == nil {
		log = logger.NewNop()
	}
	if nav == nil {
		nav = NewLogNavigator(log)
	}
	return &FileHandler{locator: loc, navigator: nav, logger: log}
}

// GET /api/file?file=<path>&line=<n>&column=<n>
func (h *FileHandler) GetFile(c *gin.Context) {
	req := models.NewLocationRequest(c.Query("file"))
	req.Line = parsePosition(c.Query("line"))
	req.Column = parsePosition(c.Query("column"))
	req.Encoding = models.EncodingQuery
	h.respond(c, req)
}

// POST /api/file with {"file": "...", "line": n, "column": n}
func (h *FileHandler) PostFile(c *gin.Context) {
	req := decodeLocationBody(c.Request.Body)
	req.Encoding = models.EncodingJSON
	h.respond(c, req)
}

// GET /api/file/<path>[:line[:column]]; a bare trailing slash falls back
// to the query form.
func (h *FileHandler) GetFileByPath(c *gin.Context) {
	raw := strings.TrimPrefix(c.Param("path"), "/")
	if raw == "" {
		h.GetFile(c)
		return
	}
	file, line, column := splitPathPosition(raw)

	req := models.NewLocationRequest(file)
	req.Line = line
	req.Column = column
	req.Encoding = models.EncodingPath
	h.respond(c, req)
}

func (h *FileHandler) respond(c *gin.Context, req models.LocationRequest) {
	res := h.locator.Locate(c.Request.Context(), req)

	if res.Outcome != models.OutcomeOK {
		// ErrorHandler renders the body for this status.
		c.Status(res.Outcome.HTTPStatus())
		_ = c.Error(res.Err)
		return
	}

	nav := models.Navigation{
		File:     res.Location.AbsolutePath,
		Line:     res.Request.Line,
		Column:   res.Request.Column,
		Excluded: res.Location.IsExcluded,
	}
	if err := h.navigator.Navigate(c.Request.Context(), nav); err != nil {
		metrics.NavigationErrorsTotal.Inc()
		h.logger.Warn("Navigation failed", "file", nav.File, "error", err)
	}

	c.JSON(http.StatusOK, nav)
}

// parsePosition turns a line/column parameter into a non-negative value or
// models.NoPosition.
func parsePosition(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.NoPosition
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return models.NoPosition
	}
	return n
}

// locationBody accepts numbers or numeric strings for the position fields.
type locationBody struct {
	File   string          `json:"file"`
	Line   json.RawMessage `json:"line"`
	Column json.RawMessage `json:"column"`
}

// decodeLocationBody never fails: an unreadable body yields an empty file.
func decodeLocationBody(body io.Reader) models.LocationRequest {
	req := models.NewLocationRequest("")
	if body == nil {
		return req
	}
	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes+1))
	if err != nil || len(data) > maxBodyBytes || len(bytes.TrimSpace(data)) == 0 {
		return req
	}

	var in locationBody
	if err := json.Unmarshal(data, &in); err != nil {
		return req
	}
	req.File = in.File
	req.Line = rawPosition(in.Line)
	req.Column = rawPosition(in.Column)
	return req
}

func rawPosition(raw json.RawMessage) int {
	if len(raw) == 0 {
		return models.NoPosition
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parsePosition(s)
	}
	return parsePosition(string(raw))
}

// splitPathPosition peels an optional ":line" or ":line:column" suffix off
// a path. A suffix that is not a number stays part of the file name.
func splitPathPosition(raw string) (file string, line, column int) {
	file, line, column = raw, models.NoPosition, models.NoPosition

	head, last, ok := cutNumericSuffix(raw)
	if !ok {
		return
	}
	if head2, prev, ok := cutNumericSuffix(head); ok {
		return head2, prev, last
	}
	return head, last, models.NoPosition
}

func cutNumericSuffix(s string) (string, int, bool) {
	i := strings.LastIndexByte(s, ':')
	if i <= 0 || i == len(s)-1 {
		return s, 0, false
	}
	n, err := strconv.Atoi(s[i+1:])
	if err != nil || n < 0 || strings.ContainsAny(s[i+1:], "+-") {
		return s, 0, false
	}
	return s[:i], n, true
}
