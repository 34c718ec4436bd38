// Package heightmap implements a lazily evaluated diamond-square fractal
// heightfield on a toroidal grid.
//
// What:
//
//   - HeightMap stores an odd-sized (2^k+1 per side) grid of optional heights.
//   - Get/Set/Unset read and write single cells; all coordinates wrap.
//   - Gen resolves a cell on demand: an explicit dependency stack walks the
//     diamond-square hierarchy, computes every missing ancestor along the
//     path and stores it, then blends the requested cell.
//   - Regen recomputes a cell from its (possibly stored) dependencies.
//   - Eager strategies (InitDiamondSquare, InitSeed, InitNone) pre-fill the
//     grid at construction down to a chosen level.
//   - Bulk variants (GetArea/SetArea/GenArea and the *All forms) wrap the
//     single-cell operations over inclusive rectangles, row-major.
//
// Why:
//
//   - Game worlds: stream terrain under the camera without paying for the map.
//   - Procedural art: reproducible fractal fields keyed by a seed phrase.
//   - Simulation inputs: cheap deterministic elevation, wrap-around friendly.
//
// Determinism:
//
//   - For a fixed (size, roughness, seed, InitBy, InitLevel) and identity
//     hooks, two instances produce bit-identical grids, lazily or eagerly.
//   - The jitter draw for a cell depends only on the cell coordinate and the
//     map seed, never on generation order.
//
// Corners:
//
//   - The four corner cells are the base of every dependency chain. They are
//     seeded at construction (or set by the caller) and only ever read; the
//     resolver never computes a corner.
//
// Complexity:
//
//   - Get/Set/Unset: O(1).
//   - Gen/Regen: O(L) frames on the dependency stack, L ≤ 2·log2(size-1)+1;
//     each frame performs O(1) work plus one jitter evaluation.
//   - Eager init at level v: O(4^v) cells touched.
//
// Options:
//
//   - WithSeed: seed phrase; its hash keys corners, seed points and jitter.
//   - WithInitLevel / WithInitBy: eager pre-fill depth and strategy.
//   - WithRoughnessHook / WithPostHook / WithJitter: per-cell overrides.
//   - WithEntropy: source of the construction-time random seed when no seed
//     phrase is given.
//
// Errors:
//
//   - ErrCornerUnset: a generation reached a corner that holds no height
//     (possible only under InitNone before the corners are set).
//
// Concurrency: a HeightMap is confined to one goroutine. The resolver runs
// unguarded read-then-write sequences, so concurrent callers must serialize
// access externally.
package heightmap
