package filter

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/gogpu/pixpipe"
)

// Registry errors.
var (
	// ErrUnknownFilter is returned when no constructor is registered for a name.
	ErrUnknownFilter = errors.New("filter: unknown filter")

	// ErrMissingParam is returned when a required parameter is absent.
	ErrMissingParam = errors.New("filter: missing parameter")

	// ErrInvalidParam is returned when a parameter is out of range.
	ErrInvalidParam = errors.New("filter: invalid parameter")

	// ErrDuplicateFilter is returned when a name is registered twice.
	ErrDuplicateFilter = errors.New("filter: already registered")
)

// Params holds numeric filter parameters keyed by name.
type Params map[string]float64

// Float returns the named parameter or ErrMissingParam.
func (p Params) Float(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingParam, key)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q = %v", ErrInvalidParam, key, v)
	}
	return v, nil
}

// FloatOr returns the named parameter, or def if it is absent.
func (p Params) FloatOr(key string, def float64) (float64, error) {
	if _, ok := p[key]; !ok {
		return def, nil
	}
	return p.Float(key)
}

// Constructor builds a filter from parameters.
type Constructor func(p Params) (pixpipe.Filter, error)

// Registry maps case-insensitive filter names to constructors.
//
// Thread safety: all methods are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ctors: make(map[string]Constructor),
	}
}

// key normalizes a filter name. "Hue_Rotate" and "hue-rotate" are the same.
// A Caser is stateful, so each call gets its own.
func key(name string) string {
	k := cases.Fold().String(strings.TrimSpace(name))
	return strings.ReplaceAll(k, "_", "-")
}

// Register adds a constructor under name.
// Returns ErrDuplicateFilter if the name is taken.
func (r *Registry) Register(name string, ctor Constructor) error {
	if ctor == nil {
		return fmt.Errorf("%w: %q", pixpipe.ErrNilTransformer, name)
	}
	k := key(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ctors[k]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateFilter, name)
	}
	r.ctors[k] = ctor
	return nil
}

// New builds the filter registered under name.
func (r *Registry) New(name string, p Params) (pixpipe.Filter, error) {
	k := key(name)

	r.mu.RLock()
	ctor, ok := r.ctors[k]
	r.mu.RUnlock()
	if !ok {
		return pixpipe.Filter{}, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}

	f, err := ctor(p)
	if err != nil {
		return pixpipe.Filter{}, fmt.Errorf("filter %s: %w", k, err)
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.ctors))
	for k := range r.ctors {
		names = append(names, k)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// defaultRegistry holds the built-in filters.
var defaultRegistry = newBuiltinRegistry()

// Register adds a constructor to the default registry.
func Register(name string, ctor Constructor) error {
	return defaultRegistry.Register(name, ctor)
}

// New builds a filter from the default registry.
func New(name string, p Params) (pixpipe.Filter, error) {
	return defaultRegistry.New(name, p)
}

// Names lists the filters in the default registry.
func Names() []string {
	return defaultRegistry.Names()
}

// factorFilter adapts a one-factor constructor.
func factorFilter[T float32 | float64](key string, fn func(T) pixpipe.Filter) Constructor {
	return func(p Params) (pixpipe.Filter, error) {
		v, err := p.Float(key)
		if err != nil {
			return pixpipe.Filter{}, err
		}
		return fn(T(v)), nil
	}
}

// fixedFilter adapts a parameterless constructor.
func fixedFilter(fn func() pixpipe.Filter) Constructor {
	return func(Params) (pixpipe.Filter, error) {
		return fn(), nil
	}
}

func newBuiltinRegistry() *Registry {
	r := NewRegistry()

	builtins := map[string]Constructor{
		NameBrightness: factorFilter("factor", Brightness),
		NameContrast:   factorFilter("factor", Contrast),
		NameSaturation: factorFilter("factor", Saturation),
		NameOpacity:    factorFilter("factor", Opacity),
		NameHueRotate:  factorFilter("degrees", HueRotate),
		NameIdentity:   fixedFilter(Identity),
		NameInvert:     fixedFilter(Invert),
		NameGrayscale:  fixedFilter(Grayscale),
		NameSepia:      fixedFilter(Sepia),
		NameGamma: func(p Params) (pixpipe.Filter, error) {
			g, err := p.Float("gamma")
			if err != nil {
				return pixpipe.Filter{}, err
			}
			if g <= 0 {
				return pixpipe.Filter{}, fmt.Errorf("%w: gamma must be positive, got %v", ErrInvalidParam, g)
			}
			return Gamma(g), nil
		},
		NameThreshold: func(p Params) (pixpipe.Filter, error) {
			lvl, err := p.FloatOr("level", 128)
			if err != nil {
				return pixpipe.Filter{}, err
			}
			if lvl < 0 || lvl > 255 {
				return pixpipe.Filter{}, fmt.Errorf("%w: level must be in [0, 255], got %v", ErrInvalidParam, lvl)
			}
			return Threshold(uint8(lvl)), nil
		},
		NameTint: func(p Params) (pixpipe.Filter, error) {
			var ch [4]uint8
			for i, name := range []string{"red", "green", "blue", "alpha"} {
				v, err := p.FloatOr(name, 0)
				if err != nil {
					return pixpipe.Filter{}, err
				}
				ch[i] = pixpipe.ClampChannel(v)
			}
			return Tint(pixpipe.NewPixel(ch[0], ch[1], ch[2], ch[3])), nil
		},
	}

	for name, ctor := range builtins {
		// Names are distinct constants, so registration cannot collide.
		_ = r.Register(name, ctor)
	}
	return r
}
