package locator

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/justradojko/intellij-community/internal/metrics"
	"github.com/justradojko/intellij-community/internal/models"
	"github.com/justradojko/intellij-community/internal/project"
	"github.com/justradojko/intellij-community/internal/tracing"
	"github.com/justradojko/intellij-community/pkg/logger"
)

// Result is everything one locate call produced.
type Result struct {
	Request  models.LocationRequest
	Location models.ResolvedLocation
	Outcome  models.Outcome
	// Err is ErrEmptyPath for BadRequest and wraps ErrNotFound for NotFound.
	Err error
}

// Locator runs resolve -> exclusion check -> existence check -> decide.
// It keeps no per-request state and never caches a result.
//
// Thread Safety: Locator is safe for concurrent use.
type Locator struct {
	roots      project.RootProvider
	exclusions project.ExclusionChecker
	stat       StatFunc
	tracer     *tracing.LocateTracer
	logger     logger.Logger
}

// Option customises a Locator.
type Option func(*Locator)

// WithStat replaces os.Stat.
func WithStat(stat StatFunc) Option {
	return func(l *Locator) { l.stat = stat }
}

// WithTracer sets the span source.
func WithTracer(t *tracing.LocateTracer) Option {
	return func(l *Locator) { l.tracer = t }
}

func New(roots project.RootProvider, exclusions project.ExclusionChecker, log logger.Logger, opts ...Option) *Locator {
	if log == nil {
		log = logger.NewNop()
	}
	l := &Locator{
		roots:      roots,
		exclusions: exclusions,
		stat:       os.Stat,
		logger:     log,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.tracer == nil {
		l.tracer = tracing.NewLocateTracer("file-locator")
	}
	return l
}

// Locate decides the outcome for req.
func (l *Locator) Locate(ctx context.Context, req models.LocationRequest) Result {
	_, span := l.tracer.StartLocateSpan(ctx, req.File, string(req.Encoding))
	defer span.End()

	res := Result{Request: req}

	// Emptiness is checked before anything touches the filesystem.
	root, hasRoot := "", false
	if req.File != "" && l.roots != nil {
		root, hasRoot = l.roots.Root()
	}
	absPath, err := Resolve(req.File, root, hasRoot)
	if err != nil {
		res.Err = err
		res.Outcome = Decide(err, res.Location)
		l.finish(span, res, 0, false)
		return res
	}
	res.Request.RelativeToProject = !IsAbsolute(req.File)
	res.Location.AbsolutePath = absPath

	if l.exclusions != nil {
		res.Location.IsExcluded = l.exclusions.IsExcluded(absPath)
	}

	start := time.Now()
	exists, statErr := Exists(l.stat, absPath)
	statTime := time.Since(start)
	res.Location.Exists = exists
	if statErr != nil {
		l.logger.Warn("Stat failed; treating file as missing", "path", absPath, "error", statErr)
		l.tracer.RecordError(span, statErr)
	}

	res.Outcome = Decide(nil, res.Location)
	if res.Outcome == models.OutcomeNotFound {
		res.Err = fmt.Errorf("%w: %s", ErrNotFound, req.File)
	}
	l.finish(span, res, statTime, true)
	return res
}

func (l *Locator) finish(span trace.Span, res Result, statTime time.Duration, statted bool) {
	outcome := res.Outcome.String()
	l.tracer.RecordResolution(span, res.Location.AbsolutePath, res.Location.Exists, res.Location.IsExcluded, outcome)
	metrics.RecordLocate(string(res.Request.Encoding), outcome, statTime, statted, res.Location.Exists && res.Location.IsExcluded)

	l.logger.Debug("Locate finished",
		"file", res.Request.File,
		"encoding", res.Request.Encoding,
		"path", res.Location.AbsolutePath,
		"exists", res.Location.Exists,
		"excluded", res.Location.IsExcluded,
		"outcome", outcome,
	)
}
