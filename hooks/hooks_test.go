package hooks_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazyterra/heightmap"
	"github.com/katalvlaran/lazyterra/hooks"
)

// TestPerlinRoughness_Bounded samples the factor field across the grid and
// checks the modulated roughness never leaves [r·min, r·max].
func TestPerlinRoughness_Bounded(t *testing.T) {
	hook := hooks.PerlinRoughness(7, 16, 0.5, 1.5)
	const r = 0.2

	for y := -40; y <= 40; y += 3 {
		for x := -40; x <= 40; x += 3 {
			got := hook(x, y, r)
			assert.GreaterOrEqual(t, got, r*0.5, "cell (%d,%d)", x, y)
			assert.LessOrEqual(t, got, r*1.5, "cell (%d,%d)", x, y)
		}
	}
}

// TestPerlinRoughness_DeterministicAndSeeded verifies the hook is a pure
// function of its seed and inputs.
func TestPerlinRoughness_DeterministicAndSeeded(t *testing.T) {
	a := hooks.PerlinRoughness(7, 16, 0.5, 1.5)
	b := hooks.PerlinRoughness(7, 16, 0.5, 1.5)
	c := hooks.PerlinRoughness(8, 16, 0.5, 1.5)

	same, diff := 0, 0
	for i := 1; i <= 32; i++ {
		assert.Equal(t, a(i, 2*i, 0.3), b(i, 2*i, 0.3), "same seed must agree at (%d,%d)", i, 2*i)
		if a(i, 2*i, 0.3) == c(i, 2*i, 0.3) {
			same++
		} else {
			diff++
		}
	}
	assert.Greater(t, diff, same, "a different seed must move most samples")
}

// TestPerlinRoughness_ClampedArguments exercises the never-reject argument
// handling: zero scale and inverted bounds still yield a working hook.
func TestPerlinRoughness_ClampedArguments(t *testing.T) {
	hook := hooks.PerlinRoughness(7, 0, 1.5, 0.5)

	got := hook(3, 4, 0.2)
	assert.GreaterOrEqual(t, got, 0.2*0.5)
	assert.LessOrEqual(t, got, 0.2*1.5)
}

// TestSimplexDetail_BoundedAndDeterministic checks the added detail stays
// within the amplitude and reproduces per seed.
func TestSimplexDetail_BoundedAndDeterministic(t *testing.T) {
	hook := hooks.SimplexDetail(11, 8, 0.05)
	again := hooks.SimplexDetail(11, 8, 0.05)

	for y := 0; y <= 32; y += 5 {
		for x := 0; x <= 32; x += 5 {
			got := hook(x, y, 0.5)
			assert.InDelta(t, 0.5, got, 0.05+1e-12, "cell (%d,%d)", x, y)
			assert.Equal(t, got, again(x, y, 0.5), "cell (%d,%d)", x, y)
		}
	}
}

// TestSimplexDetail_ZeroAmplitude degrades to the identity.
func TestSimplexDetail_ZeroAmplitude(t *testing.T) {
	hook := hooks.SimplexDetail(11, 8, 0)
	assert.Equal(t, 0.37, hook(5, 9, 0.37))
}

// TestTerrace_Quantization pins the plateau arithmetic for four steps and
// the minimum-step clamp.
func TestTerrace_Quantization(t *testing.T) {
	quad := hooks.Terrace(4)
	cases := []struct {
		h, want float64
	}{
		{0, 0},
		{0.1, 0},
		{0.25, 0.25},
		{0.26, 0.25},
		{0.5, 0.5},
		{0.99, 0.75},
		{1, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, quad(0, 0, tc.h), "terrace(4) of %v", tc.h)
	}

	two := hooks.Terrace(0)
	assert.Equal(t, 0.5, two(0, 0, 0.6), "fewer than two steps clamps to two")
}

// TestClamp_Bounds checks pinning on both sides, pass-through inside, and
// swapped bounds.
func TestClamp_Bounds(t *testing.T) {
	clamp := hooks.Clamp(0, 1)
	assert.Equal(t, 0.0, clamp(0, 0, -0.4))
	assert.Equal(t, 1.0, clamp(0, 0, 1.7))
	assert.Equal(t, 0.42, clamp(0, 0, 0.42))

	swapped := hooks.Clamp(1, 0)
	assert.Equal(t, 1.0, swapped(0, 0, 1.7), "inverted bounds must swap")
}

// TestChain_OrderAndNils verifies left-to-right composition with nil
// entries skipped.
func TestChain_OrderAndNils(t *testing.T) {
	inc := func(_, _ int, h float64) float64 { return h + 1 }
	dbl := func(_, _ int, h float64) float64 { return h * 2 }

	assert.Equal(t, 4.0, hooks.Chain(inc, dbl)(0, 0, 1), "(1+1)*2")
	assert.Equal(t, 3.0, hooks.Chain(dbl, inc)(0, 0, 1), "1*2+1")
	assert.Equal(t, 2.0, hooks.Chain(nil, inc, nil)(0, 0, 1))
	assert.Equal(t, 0.25, hooks.Chain()(0, 0, 0.25), "an empty chain is the identity")
}

// TestHooks_EndToEnd drives a full map through a stacked pipeline: Perlin
// roughness modulation, simplex detail, then a clamp. The result must stay
// reproducible and inside the clamp.
func TestHooks_EndToEnd(t *testing.T) {
	build := func() *heightmap.HeightMap {
		seed := int64(heightmap.HashSeed("pipeline"))

		return heightmap.New(17, 0.3,
			heightmap.WithSeed("pipeline"),
			heightmap.WithInitLevel(0),
			heightmap.WithRoughnessHook(hooks.PerlinRoughness(seed, 32, 0.5, 1.5)),
			heightmap.WithPostHook(hooks.Chain(
				hooks.SimplexDetail(seed, 4, 0.03),
				hooks.Clamp(0, 1),
			)))
	}

	a := build()
	cells, err := a.GenAll()
	require.NoError(t, err)
	for _, c := range cells {
		assert.GreaterOrEqual(t, c.Height, 0.0, "cell (%d,%d)", c.X, c.Y)
		assert.LessOrEqual(t, c.Height, 1.0, "cell (%d,%d)", c.X, c.Y)
	}

	b := build()
	_, err = b.GenAll()
	require.NoError(t, err)
	assert.Equal(t, a.GetAll(), b.GetAll(), "the stacked pipeline must stay reproducible")

	spread := make(map[float64]bool)
	for _, c := range cells {
		spread[math.Round(c.Height*1e9)/1e9] = true
	}
	assert.Greater(t, len(spread), 10, "the pipeline must still produce varied terrain")
}
