// Package heightmap - deterministic noise: the jitter kernel, the salted
// string hash behind corner and seed-lattice heights, and the blend that
// combines neighbor averages with jitter.
//
// Goals:
//   - Determinism: same seed and coordinate produce the same bits on every
//     platform; no time-based sources anywhere in the generation path.
//   - Locality: a cell's jitter depends only on (x, y, seed), never on the
//     order in which cells are generated.
//   - Spread: nearby coordinates and nearby seeds decorrelate through
//     residue churn plus a SplitMix64-style avalanche.
package heightmap

import (
	"math"
	"math/rand/v2"
	"strconv"
	"time"
)

const (
	// jitterRounds is how many churn rounds the residue kernel runs.
	jitterRounds = 80
	// jitterScale sits just above the largest possible residue sum, so the
	// final ratio stays in [0,1).
	jitterScale = 1520972.0
)

// Default salts for the phrase-to-seed hash, used when no per-map salts
// apply. Stable across releases: changing them would re-terraform every
// seeded world.
const (
	seedSaltA = 0x16f11fe89b0d677c
	seedSaltB = 0xb480a793d8e6c86c
	seedSaltC = 0x6fe2e5aaf078ebc9
	seedSaltD = 0x14f994a4c5259381
)

// defaultJitter is the built-in JitterFunc: six residues of the coordinate
// churn through 80 rounds keyed by the map seed, the surviving residue sum
// maps into [0,1) as a float, and its bit pattern is folded into the seed.
// Pure integer and float arithmetic; unsigned overflow wraps.
func defaultJitter(xi, yi int, seed uint64) uint64 {
	x := uint64(xi)
	y := uint64(yi)

	xm7 := x % 7
	xm13 := x % 13
	xm1301081 := x % 1301081
	ym8461 := y % 8461
	ym105467 := y % 105467
	ym105943 := y % 105943

	for i := 0; i < jitterRounds; i++ {
		y = x + seed
		x += xm7 + xm13 + xm1301081 + ym8461 + ym105467 + ym105943
		xm7 = x % 7
		xm13 = x % 13
		xm1301081 = x % 1301081
		ym8461 = y % 8461
		ym105467 = y % 105467
		ym105943 = y % 105943
	}

	sum := xm7 + xm13 + xm1301081 + ym8461 + ym105467 + ym105943

	return seed ^ math.Float64bits(float64(sum)/jitterScale)
}

// draw16 seeds a fresh PCG with the combined jitter seed and draws the one
// 16-bit sample backing a cell's jitter term.
func draw16(seed uint64) uint16 {
	return uint16(rand.NewPCG(seed, 0).Uint64())
}

// toUnit rescales a 16-bit sample linearly from [0,65535] onto [0,1].
func toUnit(v uint16) float64 {
	return float64(v) / 65535.0
}

// blend computes a cell's height from its four gathered dependencies:
// plain average, jitter weighted by the (hooked) roughness, then the post
// hook. No clamping here; hooks own the output range.
func (m *HeightMap) blend(x, y int, dep [4]float64) float64 {
	avg := (dep[0] + dep[1] + dep[2] + dep[3]) / 4

	jit := toUnit(draw16(m.jitter(x, y, m.seed)))
	r := m.roughnessHook(x, y, m.roughness)

	return m.postHook(x, y, r*jit+(1-r)*avg)
}

// mix64 is the SplitMix64 avalanche finisher; see Vigna 2014 for the
// constants.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// saltedHash folds key into four salted lanes, byte by byte round-robin,
// then collapses the lanes and the length through mix64. The same key and
// salts hash identically on every platform.
func saltedHash(key string, a, b, c, d uint64) uint64 {
	lanes := [4]uint64{a, b, c, d}
	for i := 0; i < len(key); i++ {
		lane := &lanes[i&3]
		*lane = (*lane ^ uint64(key[i])) * 0x9e3779b97f4a7c15
		*lane ^= *lane >> 32
	}

	x := lanes[0]
	x = mix64(x ^ lanes[1])
	x = mix64(x ^ lanes[2])
	x = mix64(x ^ lanes[3])

	return mix64(x ^ uint64(len(key)))
}

// HashSeed is the phrase-to-seed mapping used by WithSeed. Exposed so that
// collaborators (renderers, hook constructors) can co-seed themselves from
// the same phrase as the map.
func HashSeed(seed string) uint64 {
	return saltedHash(seed, seedSaltA, seedSaltB, seedSaltC, seedSaltD)
}

// salts splits the map seed into the four lane salts of the per-map hash:
// each 16-bit quarter masked in place, high bits kept at their position.
func (m *HeightMap) salts() (a, b, c, d uint64) {
	return m.seed & 0xFFFF,
		m.seed & 0xFFFF0000,
		m.seed & 0xFFFF00000000,
		m.seed & 0xFFFF000000000000
}

// hashAt maps a per-map string key (a corner key or a seed-lattice index)
// onto a height in [0,1] through the salted hash's low 16 bits.
func (m *HeightMap) hashAt(key string) float64 {
	a, b, c, d := m.salts()

	return toUnit(uint16(saltedHash(key, a, b, c, d)))
}

// cornerKey renders a corner coordinate as its hash key, e.g. "8_0".
func cornerKey(x, y int) string {
	return strconv.Itoa(x) + "_" + strconv.Itoa(y)
}

// deriveSeed pushes raw entropy through a SplitMix64 avalanche so that
// closely spaced clock readings still land on well-spread seeds.
func deriveSeed(raw uint64) uint64 {
	return mix64(raw + 0x9e3779b97f4a7c15)
}

// clockEntropy is the default construction-time entropy source.
func clockEntropy() uint64 {
	return uint64(time.Now().UnixNano())
}
