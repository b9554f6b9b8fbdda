package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/pixpipe"
	"github.com/gogpu/pixpipe/codec"
	"github.com/gogpu/pixpipe/config"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"", 0, 0, false},
		{"640x480", 640, 480, false},
		{"1x1", 1, 1, false},
		{"0x10", 0, 0, true},
		{"10x-1", 0, 0, true},
		{"wide", 0, 0, true},
		{"10", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("parseSize(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestFilterFlags(t *testing.T) {
	var f filterFlags
	if err := f.Set("brightness:factor=2"); err != nil {
		t.Fatal(err)
	}
	if err := f.Set("sepia"); err != nil {
		t.Fatal(err)
	}
	if err := f.Set("bad:factor"); !errors.Is(err, config.ErrBadSpec) {
		t.Errorf("Set(bad) error = %v, want ErrBadSpec", err)
	}
	if got := f.String(); got != "brightness:factor=2 sepia" {
		t.Errorf("String() = %q", got)
	}
}

func TestBuildConfig(t *testing.T) {
	cfg, err := buildConfig("", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(filterNames(cfg), ","); got != "brightness:factor=1.2,contrast:factor=1.5" {
		t.Errorf("default config = %s", got)
	}

	path := filepath.Join(t.TempDir(), "p.yaml")
	if err := os.WriteFile(path, []byte("filters:\n  - name: invert\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = buildConfig(path, []config.FilterSpec{{Name: "grayscale"}})
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(filterNames(cfg), ","); got != "invert,grayscale" {
		t.Errorf("merged config = %s, want invert,grayscale", got)
	}

	if _, err := buildConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Error("buildConfig with a missing file succeeded")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	out := filepath.Join(dir, "out.pxz")

	src, _ := pixpipe.NewPixelBuffer(4, 4, pixpipe.NewPixel(100, 200, 50, 255))
	if err := codec.Save(in, src); err != nil {
		t.Fatal(err)
	}

	if err := run(in, out, config.Default(), 0, 0); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got, err := codec.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	px, _ := got.GetPixel(3, 3)
	if px != pixpipe.NewPixel(116, 255, 26, 255) {
		t.Errorf("output pixel = %v, want rgba(116, 255, 26, 255)", px)
	}
}

func TestRunScales(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bmp")
	out := filepath.Join(dir, "out.png")

	src, _ := pixpipe.NewPixelBuffer(4, 4, pixpipe.White)
	if err := codec.Save(in, src); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{Filters: []config.FilterSpec{{Name: "invert"}}}
	if err := run(in, out, cfg, 8, 2); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got, err := codec.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width() != 8 || got.Height() != 2 {
		t.Errorf("output size = %dx%d, want 8x2", got.Width(), got.Height())
	}
}

func TestListFilters(t *testing.T) {
	var out bytes.Buffer
	listFilters(&out)
	for _, name := range []string{"brightness", "contrast", "sepia"} {
		if !strings.Contains(out.String(), name+"\n") {
			t.Errorf("list output missing %q", name)
		}
	}
}
