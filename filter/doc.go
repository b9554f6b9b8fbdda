// Package filter provides pixel filters for pixpipe pipelines.
//
// This package contains:
//   - Brightness and contrast adjustment
//   - Lookup table filters (gamma, threshold, any per-channel function)
//   - Color matrix transformations (grayscale, sepia, invert, hue rotation...)
//   - A registry that builds filters by name from numeric parameters
//
// Every filter returned here is total and pure, as required by
// [pixpipe.Transformer]. Per-channel filters are compiled into a 256-entry
// lookup table at construction, so applying them costs three table reads
// per pixel. Alpha is never modified unless the filter says so.
package filter
