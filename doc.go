// Package lazyterra is a lazily evaluated diamond-square heightfield:
// a toroidal fractal terrain grid that computes heights on demand,
// cell by cell, instead of filling the whole map up front.
//
// 🚀 What is lazyterra?
//
//	A deterministic, allocation-light terrain library built around one idea:
//		• Ask for any cell and get its height, even on a half-empty map
//		• Every dependency pulled in along the way is stored, never recomputed
//		• One seed phrase pins every height, bit for bit, on every platform
//		• The grid wraps on both axes, so terrain tiles seamlessly
//
// ✨ Why choose lazyterra?
//
//   - Huge maps, tiny bills: only the cells you touch are ever computed
//   - Reproducible worlds: a seed phrase pins the entire terrain
//   - Tunable character: roughness, per-cell hooks and pluggable jitter
//   - Pure core: no I/O, no hidden state in the algorithm
//
// Everything is organized under three subpackages and two binaries:
//
//	heightmap/ - the core grid, the lazy resolver and the eager initializer
//	render/    - grayscale imaging of any map region (PNG, JPEG, BMP, TIFF)
//	hooks/     - ready-made roughness and post-processing hooks (Perlin, OpenSimplex, terracing)
//	cmd/lazyterra       - generate a map from flags and save it as an image
//	cmd/lazyterra-view  - pan around a live map and watch terrain appear (ebiten)
//
// Quick ASCII example:
//
//	    C───s───C        C = corner, seeded at construction
//	    │   d   │        d = diamond cell, blended from the four Cs
//	    s   │   s        s = square cell, blended from d, two Cs and the wrap
//	    │   d   │
//	    C───s───C
//
//	asking for any single s triggers exactly the d and C reads it needs.
//
// Dive into heightmap's package docs for the full contract, determinism
// guarantees and the corner rules.
//
//	go get github.com/katalvlaran/lazyterra/heightmap
package lazyterra
