package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"aac/internal/codec"
	"aac/internal/domain"
	"aac/internal/loader"
	"aac/internal/validate"

	"go.uber.org/zap"
)

// ErrValidation is wrapped by Run when findings fail the run
var ErrValidation = errors.New("validation failed")

// Options tune a Service
type Options struct {
	// Strict makes warnings fail the run
	Strict bool
	// AllowDuplicateIDs accepts data entries sharing an entry ID
	AllowDuplicateIDs bool
}

// Request describes a single run
type Request struct {
	// Path is the definition file to load
	Path string
	// Format selects the exporter; empty validates without exporting
	Format string
	// Out receives the export
	Out io.Writer
}

// Result is what a successful run produced
type Result struct {
	Spec     *loader.Spec
	Fragment *domain.Fragment
	Report   *validate.Report
}

// Service provides the load, validate and export pipeline
type Service struct {
	logger *zap.Logger
	loader *loader.Loader
	opts   Options
}

// New creates a new service. A nil logger discards output.
func New(logger *zap.Logger, opts Options) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		logger: logger.Named("service"),
		loader: loader.New(logger),
		opts:   opts,
	}
}

// Run executes the pipeline for req. The report is returned even when
// validation fails; errors wrapping ErrValidation carry every failing
// finding.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	var exporter codec.Exporter
	if req.Format != "" {
		e, err := codec.ForFormat(req.Format)
		if err != nil {
			return nil, err
		}
		if req.Out == nil {
			return nil, fmt.Errorf("no output for format %s", e.Format())
		}
		exporter = e
	}

	log := s.logger.With(zap.String("file", req.Path))

	spec, err := s.loader.Load(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", req.Path, err)
	}
	report := validate.Spec(spec)
	result := &Result{Spec: spec, Report: report}
	log = log.With(zap.Stringer("report", report.ID))

	if err := ctx.Err(); err != nil {
		return result, err
	}

	fragment := loader.Build(spec)
	result.Fragment = fragment
	report.Merge(validate.Fragment(fragment, validate.Options{
		AllowDuplicateIDs: s.opts.AllowDuplicateIDs,
	}))
	log.Debug("fragment built",
		zap.Int("roots", len(fragment.Roots)),
		zap.Int("entries", fragment.Data.Len()))

	s.logFindings(log, report)

	if err := report.Err(s.opts.Strict); err != nil {
		log.Warn("validation failed",
			zap.Int("errors", report.Count(validate.SeverityError)),
			zap.Int("warnings", report.Count(validate.SeverityWarning)),
			zap.Bool("strict", s.opts.Strict))
		return result, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	if exporter == nil {
		log.Info("validation passed")
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if err := exporter.Export(fragment, req.Out); err != nil {
		return result, fmt.Errorf("failed to export %s: %w", exporter.Format(), err)
	}
	log.Info("exported", zap.String("format", exporter.Format()))

	return result, nil
}

// Normalize loads path with its imports resolved and writes the merged
// definitions back out as a single YAML stream
func (s *Service) Normalize(ctx context.Context, path string, w io.Writer) (*loader.Spec, error) {
	spec, err := s.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return spec, err
	}
	if err := loader.ExportYAML(spec, w); err != nil {
		return spec, err
	}
	s.logger.Info("definitions normalized",
		zap.String("file", path),
		zap.Int("sources", len(spec.Sources())))
	return spec, nil
}

func (s *Service) logFindings(log *zap.Logger, report *validate.Report) {
	for _, f := range report.Findings {
		fields := []zap.Field{
			zap.String("subject", f.Subject),
			zap.String("finding", f.Message),
		}
		if f.Severity == validate.SeverityError {
			log.Error("validation error", fields...)
		} else {
			log.Warn("validation warning", fields...)
		}
	}
}
