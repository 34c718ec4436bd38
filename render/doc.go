// Package render turns heightmap grids into grayscale images and files.
//
// # What
//
// One pixel per cell: a cell holding a height h becomes the opaque gray
// level 255·h (saturated to [0,255]); an empty cell stays fully
// transparent black, so partially generated grids render with see-through
// holes instead of fake terrain.
//
// # Why
//
// A heightfield is easiest to judge by eye. The renderer reads only the
// public query surface (Size and Get), works on any window of the torus,
// and never triggers generation itself: callers decide what to Gen and
// what to leave lazy.
//
// # Windows
//
//   - Image / Save cover the whole grid.
//   - ImageArea / SaveArea take an inclusive window whose corners are
//     used as given; each cell read wraps individually, so a window may
//     straddle the torus seam and still come out contiguous.
//
// # Formats
//
// Save and SaveArea pick the encoder from the file extension: .png,
// .jpg/.jpeg, .bmp and .tif/.tiff. Anything else yields
// ErrUnsupportedFormat.
//
// # Errors
//
//   - ErrUnsupportedFormat: the path extension names no known encoder.
//
// Complexity: O(area) reads per render; memory O(area) for the pixel
// buffer.
package render
