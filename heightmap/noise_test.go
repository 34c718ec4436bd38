package heightmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lazyterra/heightmap"
)

// Reference values below were produced by an independent implementation of
// the same kernels. They pin the bit-level meaning of every stored seed
// phrase: a change that moves them re-terraforms every seeded world.

// TestMix64_Golden pins the avalanche finisher.
func TestMix64_Golden(t *testing.T) {
	assert.Equal(t, uint64(0), heightmap.ExportedMix64(0), "zero is the finisher's fixed point")
	assert.Equal(t, uint64(0x5692161d100b05e5), heightmap.ExportedMix64(1))
}

// TestHashSeed_Golden pins the phrase-to-seed mapping.
func TestHashSeed_Golden(t *testing.T) {
	assert.Equal(t, uint64(0xd1bf6a206113220f), heightmap.HashSeed("qwerty"))
	assert.Equal(t, uint64(0x8bf5ab16de67422e), heightmap.HashSeed(""))
	assert.Equal(t, uint64(0xa143492682899dc5), heightmap.HashSeed("lazyterra"))
}

// TestSaltedHash_Sensitivity verifies that both the key and every salt
// participate in the hash.
func TestSaltedHash_Sensitivity(t *testing.T) {
	base := heightmap.ExportedSaltedHash("0_0", 1, 2, 3, 4)
	assert.Equal(t, uint64(0x2268a9a0d4e344d3), base)
	assert.NotEqual(t, base, heightmap.ExportedSaltedHash("0_0", 5, 2, 3, 4), "a salt change must move the hash")
	assert.NotEqual(t, base, heightmap.ExportedSaltedHash("8_0", 1, 2, 3, 4), "a key change must move the hash")
}

// TestDefaultJitter_Golden pins the residue kernel for two cells of a
// seeded map.
func TestDefaultJitter_Golden(t *testing.T) {
	seed := heightmap.HashSeed("qwerty")
	assert.Equal(t, uint64(0xee594b23b6e5a1eb), heightmap.ExportedDefaultJitter(1, 0, seed))
	assert.Equal(t, uint64(0xee778b59d18c1c43), heightmap.ExportedDefaultJitter(2, 1, seed))
}

// TestDefaultJitter_PureAndLocal verifies the kernel is a pure function of
// (x, y, seed) and that neighboring inputs decorrelate.
func TestDefaultJitter_PureAndLocal(t *testing.T) {
	seed := heightmap.HashSeed("locality")
	first := heightmap.ExportedDefaultJitter(5, 7, seed)

	assert.Equal(t, first, heightmap.ExportedDefaultJitter(5, 7, seed), "same inputs must reproduce the same draw seed")
	assert.NotEqual(t, first, heightmap.ExportedDefaultJitter(6, 7, seed), "x neighbor must decorrelate")
	assert.NotEqual(t, first, heightmap.ExportedDefaultJitter(5, 8, seed), "y neighbor must decorrelate")
	assert.NotEqual(t, first, heightmap.ExportedDefaultJitter(5, 7, seed+1), "seed neighbor must decorrelate")
}

// TestToUnit_Endpoints checks the 16-bit-to-unit rescale at both ends and
// one interior point.
func TestToUnit_Endpoints(t *testing.T) {
	assert.Equal(t, 0.0, heightmap.ExportedToUnit(0))
	assert.Equal(t, 1.0, heightmap.ExportedToUnit(65535))
	assert.Equal(t, 1561.0/65535.0, heightmap.ExportedToUnit(1561))
}

// TestDeriveSeed_Spread pins the entropy avalanche and checks adjacent raw
// readings land far apart.
func TestDeriveSeed_Spread(t *testing.T) {
	assert.Equal(t, uint64(0xbdd732262feb6e95), heightmap.ExportedDeriveSeed(42))
	assert.Equal(t, uint64(0xba69ec90eb4fef88), heightmap.ExportedDeriveSeed(43))
}

// TestDraw16_Deterministic verifies the per-cell sample is a pure function
// of its seed and does not collapse across seeds.
func TestDraw16_Deterministic(t *testing.T) {
	seen := make(map[uint16]bool)
	for s := uint64(0); s < 10; s++ {
		v := heightmap.ExportedDraw16(s)
		assert.Equal(t, v, heightmap.ExportedDraw16(s), "seed %d must redraw identically", s)
		seen[v] = true
	}
	assert.Greater(t, len(seen), 1, "distinct seeds must not collapse to one sample")
}
