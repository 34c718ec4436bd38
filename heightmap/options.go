// Package heightmap provides tunable construction options for HeightMap.
package heightmap

// Option configures HeightMap construction via functional arguments.
// Out-of-range values are clamped, never rejected: New always succeeds.
type Option func(*Options)

// Options holds parameters applied while constructing a HeightMap.
type Options struct {
	// Seed is the phrase whose hash keys corner heights, seed-lattice
	// heights and the per-cell jitter. Empty with hasSeed unset means the
	// entropy source picks a random seed.
	Seed string

	// InitLevel is the eager pre-fill depth, clamped to [0, log2(size-1)].
	// Level 0 under InitDiamondSquare seeds only the corners.
	InitLevel int

	// InitBy selects the eager initialization strategy.
	InitBy InitStrategy

	// RoughnessHook rescales roughness per cell. Defaults to identity.
	RoughnessHook RoughnessFunc

	// PostHook reshapes each blended height before storage. Defaults to
	// identity.
	PostHook PostFunc

	// Jitter derives the per-cell draw seed. Defaults to the built-in
	// residue kernel.
	Jitter JitterFunc

	// hasSeed records that WithSeed was called, so that an explicitly
	// chosen empty phrase still beats the entropy source.
	hasSeed bool

	// entropy supplies the construction-time seed when no phrase is given.
	entropy func() uint64
}

// DefaultOptions returns Options with the documented defaults:
//   - no seed phrase (clock-derived seed)
//   - InitLevel 1, InitBy InitDiamondSquare
//   - identity roughness and post hooks
//   - the built-in jitter kernel.
func DefaultOptions() Options {
	return Options{
		InitLevel:     1,
		InitBy:        InitDiamondSquare,
		RoughnessHook: func(_, _ int, r float64) float64 { return r },
		PostHook:      func(_, _ int, h float64) float64 { return h },
		Jitter:        defaultJitter,
		entropy:       clockEntropy,
	}
}

// WithSeed pins the map to a seed phrase. The same phrase always yields the
// same terrain; see HashSeed for the exact phrase-to-seed mapping.
func WithSeed(seed string) Option {
	return func(o *Options) {
		o.Seed = seed
		o.hasSeed = true
	}
}

// WithInitLevel sets the eager pre-fill depth. Values outside
// [0, log2(size-1)] are clamped at construction.
func WithInitLevel(level int) Option {
	return func(o *Options) {
		o.InitLevel = level
	}
}

// WithInitBy selects the eager initialization strategy. Unknown values fall
// back to InitDiamondSquare.
func WithInitBy(by InitStrategy) Option {
	return func(o *Options) {
		o.InitBy = by
	}
}

// WithRoughnessHook installs a per-cell roughness override. A nil hook
// keeps the identity default.
func WithRoughnessHook(fn RoughnessFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.RoughnessHook = fn
		}
	}
}

// WithPostHook installs a per-cell post-processing hook. A nil hook keeps
// the identity default.
func WithPostHook(fn PostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.PostHook = fn
		}
	}
}

// WithJitter replaces the built-in jitter kernel. The function must be
// pure; a nil function keeps the default.
func WithJitter(fn JitterFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Jitter = fn
		}
	}
}

// WithEntropy replaces the source of the construction-time seed used when
// no seed phrase is given. Useful for reproducing "random" maps in tests.
// A nil source keeps the clock default.
func WithEntropy(fn func() uint64) Option {
	return func(o *Options) {
		if fn != nil {
			o.entropy = fn
		}
	}
}
