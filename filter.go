package pixpipe

// Transformer rewrites a single pixel.
//
// Implementations must be total (defined for every Pixel value) and pure:
// the result may depend only on the input pixel, never on its position or
// on mutable state.
type Transformer interface {
	Transform(p Pixel) Pixel
}

// TransformFunc adapts an ordinary function to the Transformer interface.
type TransformFunc func(p Pixel) Pixel

// Transform calls f(p).
func (f TransformFunc) Transform(p Pixel) Pixel {
	return f(p)
}

// Filter is a named pixel transformation.
// Name is used for diagnostics only; it does not need to be unique.
type Filter struct {
	Name        string
	Transformer Transformer
}

// NewFilter creates a filter from a plain function.
func NewFilter(name string, fn func(Pixel) Pixel) Filter {
	var t Transformer
	if fn != nil {
		t = TransformFunc(fn)
	}
	return Filter{Name: name, Transformer: t}
}

// valid reports whether the filter can be called.
func (f Filter) valid() bool {
	if f.Transformer == nil {
		return false
	}
	if fn, ok := f.Transformer.(TransformFunc); ok && fn == nil {
		return false
	}
	return true
}

// String returns the filter name.
func (f Filter) String() string {
	return f.Name
}
