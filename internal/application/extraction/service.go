package extraction

import (
	"context"
	"fmt"
	"time"

	"github.com/finch-gen/finch-frontend-api/internal/application/common/slogger"
	"github.com/finch-gen/finch-frontend-api/internal/domain/valueobject"
	"github.com/finch-gen/finch-frontend-api/internal/port/outbound"
)

// Service runs full extraction passes: front-end parse followed by the
// namespace-scoped walk. It owns the metric instruments shared across runs;
// each run gets its own traversal state.
type Service struct {
	frontend outbound.HeaderFrontEnd
	metrics  *extractionMetrics
}

// NewService creates an extraction service on top of the given front end.
func NewService(frontend outbound.HeaderFrontEnd) (*Service, error) {
	metrics, err := newExtractionMetrics()
	if err != nil {
		return nil, fmt.Errorf("init extraction metrics: %w", err)
	}

	return &Service{
		frontend: frontend,
		metrics:  metrics,
	}, nil
}

// ExtractFromHeader parses the header file at path and extracts its binding
// model. On the fatal error tier no partial model is returned.
func (s *Service) ExtractFromHeader(ctx context.Context, path string) (*valueobject.BindingModel, error) {
	root, err := s.frontend.ParseHeader(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("parse header %q: %w", path, err)
	}

	return s.extract(ctx, path, root)
}

// ExtractFromSource parses in-memory header source and extracts its binding
// model. The name is used for diagnostics only.
func (s *Service) ExtractFromSource(ctx context.Context, name string, source []byte) (*valueobject.BindingModel, error) {
	root, err := s.frontend.ParseHeaderSource(ctx, name, source)
	if err != nil {
		return nil, fmt.Errorf("parse header source %q: %w", name, err)
	}

	return s.extract(ctx, name, root)
}

// extract runs the walk over a parsed translation unit.
func (s *Service) extract(
	ctx context.Context,
	headerName string,
	root *outbound.Declaration,
) (*valueobject.BindingModel, error) {
	start := time.Now()

	state := NewTraversalState()
	walker := NewWalker(state).withMetrics(s.metrics)

	if err := walker.Walk(ctx, root); err != nil {
		return nil, fmt.Errorf("walk declarations of %q: %w", headerName, err)
	}

	duration := time.Since(start)
	model := state.Model()
	s.metrics.recordDuration(ctx, duration.Seconds(), model.PackageNamespace)

	slogger.Info(ctx, "binding model extracted", slogger.Fields{
		"header":            headerName,
		"package_namespace": model.PackageNamespace,
		"classes":           len(model.Classes),
		"duration":          duration.String(),
	})

	return model, nil
}
