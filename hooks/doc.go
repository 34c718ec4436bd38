// Package hooks provides ready-made roughness and post-processing hooks
// for heightmap construction.
//
// # What
//
// The core treats roughness modulation and height post-processing as
// injection points and ships only identity defaults. This package stocks
// the common terrain shapes:
//
//   - PerlinRoughness: a smooth Perlin factor field over the base
//     roughness, so one map carries both rolling plains and rugged ridges.
//   - SimplexDetail: fine OpenSimplex surface detail added after the
//     blend.
//   - Terrace: quantizes heights into plateau bands.
//   - Clamp: pins heights into a range; the core itself never clamps.
//   - Chain: composes several post hooks into one.
//
// # Why
//
// Hooks run inside every blend, so they must be pure and cheap. Each
// constructor captures its noise source once and returns a closure safe to
// share across cells of one map.
//
// # Determinism
//
// Both noise-backed hooks key off an explicit int64 seed. Reusing the
// map's own seed keeps the whole pipeline reproducible from a single
// phrase; see heightmap.HashSeed.
//
// Complexity: O(1) per cell for every hook in this package.
package hooks
