package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/pixpipe"
	"github.com/gogpu/pixpipe/filter"
)

const sampleYAML = `
filters:
  - name: brightness
    factor: 1.2
  - name: contrast
    factor: 1.5
  - name: grayscale
  - name: tint
    red: 255
    alpha: 64
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(c.Filters) != 4 {
		t.Fatalf("len(Filters) = %d, want 4", len(c.Filters))
	}

	tests := []struct {
		idx    int
		name   string
		params map[string]float64
	}{
		{0, "brightness", map[string]float64{"factor": 1.2}},
		{1, "contrast", map[string]float64{"factor": 1.5}},
		{2, "grayscale", nil},
		{3, "tint", map[string]float64{"red": 255, "alpha": 64}},
	}
	for _, tt := range tests {
		s := c.Filters[tt.idx]
		if s.Name != tt.name {
			t.Errorf("filters[%d].Name = %q, want %q", tt.idx, s.Name, tt.name)
		}
		if len(s.Params) != len(tt.params) {
			t.Errorf("filters[%d].Params = %v, want %v", tt.idx, s.Params, tt.params)
			continue
		}
		for k, v := range tt.params {
			if s.Params[k] != v {
				t.Errorf("filters[%d].Params[%q] = %v, want %v", tt.idx, k, s.Params[k], v)
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"empty name", "filters:\n  - factor: 2\n", ErrEmptyName},
		{"blank name", "filters:\n  - name: \"  \"\n", ErrEmptyName},
		{"not numeric", "filters:\n  - name: brightness\n    factor: bright\n", nil},
		{"not yaml", "filters: [", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() succeeded")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	p, err := c.Pipeline()
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 0 {
		t.Errorf("Len() = %d, want 0", p.Len())
	}
}

func TestPipeline(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	p, err := c.Pipeline()
	if err != nil {
		t.Fatalf("Pipeline() error = %v", err)
	}

	want := []string{filter.NameBrightness, filter.NameContrast, filter.NameGrayscale, filter.NameTint}
	got := p.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPipelineErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"unknown filter", Config{Filters: []FilterSpec{{Name: "blur"}}}, filter.ErrUnknownFilter},
		{"missing param", Config{Filters: []FilterSpec{{Name: "brightness"}}}, filter.ErrMissingParam},
		{"empty name", Config{Filters: []FilterSpec{{Name: ""}}}, ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.Pipeline(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Pipeline() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	p, err := Default().Pipeline()
	if err != nil {
		t.Fatal(err)
	}

	// Brightness 1.2 then contrast 1.5 on (100, 200, 50).
	buf, _ := pixpipe.NewPixelBuffer(1, 1, pixpipe.NewPixel(100, 200, 50, 255))
	px, _ := p.Apply(buf).GetPixel(0, 0)
	if px != pixpipe.NewPixel(116, 255, 26, 255) {
		t.Errorf("default pipeline = %v, want rgba(116, 255, 26, 255)", px)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	c, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	data, err := c.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error = %v\n%s", err, data)
	}
	if len(back.Filters) != len(c.Filters) {
		t.Fatalf("round trip has %d filters, want %d", len(back.Filters), len(c.Filters))
	}
	for i := range c.Filters {
		if back.Filters[i].String() != c.Filters[i].String() {
			t.Errorf("filters[%d] = %s, want %s", i, back.Filters[i], c.Filters[i])
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(c.Filters) != 4 {
		t.Errorf("len(Filters) = %d, want 4", len(c.Filters))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestParseFilterSpec(t *testing.T) {
	tests := []struct {
		in     string
		name   string
		params map[string]float64
	}{
		{"sepia", "sepia", nil},
		{"  sepia  ", "sepia", nil},
		{"sepia:", "sepia", nil},
		{"brightness:factor=1.3", "brightness", map[string]float64{"factor": 1.3}},
		{"tint:red=255, green = 10,alpha=0.5", "tint", map[string]float64{"red": 255, "green": 10, "alpha": 0.5}},
		{"hue-rotate:degrees=-90", "hue-rotate", map[string]float64{"degrees": -90}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, err := ParseFilterSpec(tt.in)
			if err != nil {
				t.Fatalf("ParseFilterSpec() error = %v", err)
			}
			if s.Name != tt.name {
				t.Errorf("Name = %q, want %q", s.Name, tt.name)
			}
			if len(s.Params) != len(tt.params) {
				t.Fatalf("Params = %v, want %v", s.Params, tt.params)
			}
			for k, v := range tt.params {
				if s.Params[k] != v {
					t.Errorf("Params[%q] = %v, want %v", k, s.Params[k], v)
				}
			}
		})
	}
}

func TestParseFilterSpecErrors(t *testing.T) {
	for _, in := range []string{"", ":factor=1", "brightness:factor", "brightness:=1", "brightness:factor=high", "tint:red=1,"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseFilterSpec(in); !errors.Is(err, ErrBadSpec) {
				t.Errorf("ParseFilterSpec(%q) error = %v, want ErrBadSpec", in, err)
			}
		})
	}
}

func TestFilterSpecString(t *testing.T) {
	s := FilterSpec{Name: "tint", Params: map[string]float64{"red": 255, "alpha": 0.5}}
	if got := s.String(); got != "tint:alpha=0.5,red=255" {
		t.Errorf("String() = %q", got)
	}

	back, err := ParseFilterSpec(s.String())
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != s.String() {
		t.Errorf("ParseFilterSpec(String()) = %s, want %s", back, s)
	}

	if got := (FilterSpec{Name: "invert"}).String(); got != "invert" {
		t.Errorf("String() = %q, want invert", got)
	}
}
