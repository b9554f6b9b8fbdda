package pixpipe

import (
	"fmt"
	"log/slog"
)

// Pipeline is an ordered, append-only sequence of filters.
//
// Filters run in insertion order: filter i sees the output of filter i-1.
// Each pass finishes over the whole buffer before the next one starts.
//
// Thread safety: Pipeline is not safe for concurrent AddFilter calls.
// Apply only reads the filter list.
type Pipeline struct {
	filters []Filter
	logger  *slog.Logger
}

// NewPipeline creates an empty pipeline configured by opts.
//
// Example:
//
//	p := pixpipe.NewPipeline(pixpipe.WithFilters(
//	    filter.Brightness(1.2),
//	    filter.Contrast(1.5),
//	))
//	out := p.Apply(buf)
func NewPipeline(opts ...PipelineOption) *Pipeline {
	o := defaultPipelineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pipeline{logger: o.logger}
	for _, f := range o.filters {
		if err := p.AddFilter(f); err != nil {
			p.log().Warn("pixpipe: skipping filter", slog.String("error", err.Error()))
		}
	}
	return p
}

// AddFilter appends f to the pipeline.
// Returns ErrNilTransformer if f has no transform function.
func (p *Pipeline) AddFilter(f Filter) error {
	if !f.valid() {
		return fmt.Errorf("%w: %q", ErrNilTransformer, f.Name)
	}
	p.filters = append(p.filters, f)
	return nil
}

// Len returns the number of filters.
func (p *Pipeline) Len() int {
	return len(p.filters)
}

// Filters returns a copy of the filters in application order.
func (p *Pipeline) Filters() []Filter {
	out := make([]Filter, len(p.filters))
	copy(out, p.filters)
	return out
}

// Names returns the filter names in application order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.filters))
	for i, f := range p.filters {
		names[i] = f.Name
	}
	return names
}

// Apply runs every filter over a copy of buf and returns the copy.
// buf itself is not modified. The result has the same dimensions as buf;
// with no filters it is pixel-for-pixel equal to buf.
// Returns nil if buf is nil.
func (p *Pipeline) Apply(buf *PixelBuffer) *PixelBuffer {
	if buf == nil {
		return nil
	}
	out := buf.Clone()
	p.ApplyInPlace(out)
	return out
}

// ApplyInPlace runs every filter over buf, overwriting its pixels.
func (p *Pipeline) ApplyInPlace(buf *PixelBuffer) {
	if buf == nil {
		return
	}

	log := p.log()
	for i, f := range p.filters {
		log.Debug("pixpipe: filter pass",
			slog.Int("index", i),
			slog.String("filter", f.Name),
			slog.Int("pixels", len(buf.pixels)))
		applyFilter(f.Transformer, buf.pixels)
	}
}

// applyFilter replaces each pixel with t.Transform of itself.
func applyFilter(t Transformer, pixels []Pixel) {
	for i, px := range pixels {
		pixels[i] = t.Transform(px)
	}
}

// log returns the pipeline logger, falling back to the package logger.
func (p *Pipeline) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return Logger()
}
