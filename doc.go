// Package pixpipe applies ordered pipelines of per-pixel filters to RGBA
// images held in memory.
//
// # Overview
//
// An image is a [PixelBuffer]: a row-major slice of packed 32-bit [Pixel]
// values plus its width and height. A [Pipeline] is an ordered list of
// named [Filter] values, each wrapping a pure Pixel → Pixel [Transformer].
// Applying a pipeline runs every filter, in insertion order, over every
// pixel.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/pixpipe"
//	    "github.com/gogpu/pixpipe/filter"
//	)
//
//	buf, err := pixpipe.Decode(raw, width, height)
//	if err != nil {
//	    return err
//	}
//
//	p := pixpipe.NewPipeline()
//	_ = p.AddFilter(filter.Brightness(1.2))
//	_ = p.AddFilter(filter.Contrast(1.5))
//
//	out := p.Apply(buf)
//	encoded := out.RawBytes()
//
// # Pixel Layout
//
// Red occupies the least significant byte of a Pixel and alpha the most
// significant one. Raw byte slices accepted by [Decode] and produced by
// [PixelBuffer.RawBytes] are therefore in R, G, B, A order. Channel values
// are straight (not premultiplied) alpha.
//
// # Architecture
//
// The module is organized into:
//   - pixpipe: Pixel, PixelBuffer, Filter, Pipeline, logging
//   - filter: brightness, contrast, color matrix and lookup table filters,
//     plus a registry that builds filters by name
//   - codec: conversion between PixelBuffer and image files (PNG, JPEG, BMP,
//     TIFF, WebP, zstd-compressed raw pixels)
//   - config: YAML pipeline definitions
//   - cmd/pixfilter: command line front end
//
// The root package has no dependency on image file formats; codec is the
// only place they are handled.
package pixpipe

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
