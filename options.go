package pixpipe

import "log/slog"

// PipelineOption configures a Pipeline during creation.
//
// Example:
//
//	p := pixpipe.NewPipeline(
//	    pixpipe.WithFilters(filter.Brightness(1.2)),
//	    pixpipe.WithLogger(slog.Default()),
//	)
type PipelineOption func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	filters []Filter
	logger  *slog.Logger
}

// defaultPipelineOptions returns the default pipeline options.
func defaultPipelineOptions() pipelineOptions {
	return pipelineOptions{
		logger: nil, // falls back to the package logger
	}
}

// WithFilters appends filters to the initial filter list.
// Filters without a transformer are skipped and logged at warn level.
func WithFilters(filters ...Filter) PipelineOption {
	return func(o *pipelineOptions) {
		o.filters = append(o.filters, filters...)
	}
}

// WithLogger sets a logger for this pipeline only, overriding the package
// logger configured by SetLogger. Passing nil restores the package logger.
func WithLogger(l *slog.Logger) PipelineOption {
	return func(o *pipelineOptions) {
		o.logger = l
	}
}
