package hooks

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/lazyterra/heightmap"
)

// Perlin parameters for the factor field: three octaves, each at half the
// amplitude and twice the frequency of the last. Reads as gentle,
// large-feature variation.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// PerlinRoughness returns a RoughnessFunc multiplying the base roughness
// by a smooth Perlin factor: the noise at (x/scale, y/scale) maps linearly
// onto [min, max]. A non-positive scale falls back to 1; inverted bounds
// swap. The factor stays within [min, max], so the returned roughness
// stays within [roughness·min, roughness·max].
func PerlinRoughness(seed int64, scale, min, max float64) heightmap.RoughnessFunc {
	if scale <= 0 {
		scale = 1
	}
	if min > max {
		min, max = max, min
	}
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)

	return func(x, y int, roughness float64) float64 {
		t := (p.Noise2D(float64(x)/scale, float64(y)/scale) + 1) / 2
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}

		return roughness * (min + (max-min)*t)
	}
}

// SimplexDetail returns a PostFunc adding fine OpenSimplex detail after
// the blend: amplitude·noise(x/scale, y/scale), with the noise in [-1,1].
// A non-positive scale falls back to 1.
func SimplexDetail(seed int64, scale, amplitude float64) heightmap.PostFunc {
	if scale <= 0 {
		scale = 1
	}
	n := opensimplex.New(seed)

	return func(x, y int, h float64) float64 {
		return h + amplitude*n.Eval2(float64(x)/scale, float64(y)/scale)
	}
}

// Terrace returns a PostFunc quantizing heights into equal steps, carving
// plateau bands into the slopes. Fewer than two steps clamps to two.
func Terrace(steps int) heightmap.PostFunc {
	if steps < 2 {
		steps = 2
	}
	n := float64(steps)

	return func(_, _ int, h float64) float64 {
		return math.Floor(h*n) / n
	}
}

// Clamp returns a PostFunc pinning heights into [lo, hi]. The core never
// clamps on its own; installing this hook is how a caller opts in.
// Inverted bounds swap.
func Clamp(lo, hi float64) heightmap.PostFunc {
	if lo > hi {
		lo, hi = hi, lo
	}

	return func(_, _ int, h float64) float64 {
		if h < lo {
			return lo
		}
		if h > hi {
			return hi
		}

		return h
	}
}

// Chain composes post hooks left to right: the first hook sees the raw
// blend, the last one's output is stored. Nil entries are skipped.
func Chain(fns ...heightmap.PostFunc) heightmap.PostFunc {
	return func(x, y int, h float64) float64 {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			h = fn(x, y, h)
		}

		return h
	}
}
