// Package config loads pipeline definitions.
//
// A pipeline is described in YAML as an ordered list of filters. Every key
// other than "name" is a numeric filter parameter:
//
//	filters:
//	  - name: brightness
//	    factor: 1.2
//	  - name: contrast
//	    factor: 1.5
//	  - name: grayscale
//
// Filters are built through the filter registry, so any name registered
// with filter.Register can be used.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/pixpipe"
	"github.com/gogpu/pixpipe/filter"
)

// Configuration errors.
var (
	// ErrEmptyName is returned when a filter entry has no name.
	ErrEmptyName = errors.New("config: filter name is empty")

	// ErrBadSpec is returned when a command line filter spec cannot be parsed.
	ErrBadSpec = errors.New("config: malformed filter spec")
)

// FilterSpec describes one pipeline stage.
type FilterSpec struct {
	Name   string             `yaml:"name"`
	Params map[string]float64 `yaml:",inline"`
}

// String formats the spec in the form accepted by ParseFilterSpec.
func (s FilterSpec) String() string {
	if len(s.Params) == 0 {
		return s.Name
	}
	keys := make([]string, 0, len(s.Params))
	for k := range s.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(s.Name)
	for i, k := range keys {
		if i == 0 {
			b.WriteByte(':')
		} else {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(s.Params[k], 'g', -1, 64))
	}
	return b.String()
}

// Filter builds the filter described by s.
func (s FilterSpec) Filter() (pixpipe.Filter, error) {
	if strings.TrimSpace(s.Name) == "" {
		return pixpipe.Filter{}, ErrEmptyName
	}
	return filter.New(s.Name, filter.Params(s.Params))
}

// Config is a pipeline definition.
type Config struct {
	Filters []FilterSpec `yaml:"filters"`
}

// Default returns brightness 1.2 followed by contrast 1.5.
func Default() *Config {
	return &Config{
		Filters: []FilterSpec{
			{Name: filter.NameBrightness, Params: map[string]float64{"factor": 1.2}},
			{Name: filter.NameContrast, Params: map[string]float64{"factor": 1.5}},
		},
	}
}

// Parse decodes a YAML pipeline definition.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	for i, s := range c.Filters {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("config: filters[%d]: %w", i, ErrEmptyName)
		}
	}
	return &c, nil
}

// Load reads and parses a YAML pipeline definition from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	pixpipe.Logger().Debug("config: loaded pipeline", "path", path, "filters", len(c.Filters))
	return c, nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Pipeline builds a pipeline holding every filter in c, in order.
// opts are passed to pixpipe.NewPipeline.
func (c *Config) Pipeline(opts ...pixpipe.PipelineOption) (*pixpipe.Pipeline, error) {
	p := pixpipe.NewPipeline(opts...)
	for i, s := range c.Filters {
		f, err := s.Filter()
		if err != nil {
			return nil, fmt.Errorf("config: filters[%d]: %w", i, err)
		}
		if err := p.AddFilter(f); err != nil {
			return nil, fmt.Errorf("config: filters[%d]: %w", i, err)
		}
	}
	return p, nil
}

// ParseFilterSpec parses "name" or "name:key=value,key=value".
func ParseFilterSpec(s string) (FilterSpec, error) {
	name, rest, hasParams := strings.Cut(strings.TrimSpace(s), ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return FilterSpec{}, fmt.Errorf("%w: %q: %w", ErrBadSpec, s, ErrEmptyName)
	}

	spec := FilterSpec{Name: name}
	if !hasParams || strings.TrimSpace(rest) == "" {
		return spec, nil
	}

	spec.Params = make(map[string]float64)
	for _, kv := range strings.Split(rest, ",") {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return FilterSpec{}, fmt.Errorf("%w: %q: expected key=value, got %q", ErrBadSpec, s, kv)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return FilterSpec{}, fmt.Errorf("%w: %q: %w", ErrBadSpec, s, err)
		}
		spec.Params[k] = f
	}
	return spec, nil
}
