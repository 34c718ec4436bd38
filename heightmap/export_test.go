package heightmap

// Test-only bridges into unexported helpers, so the external test package
// can verify the coordinate and noise layers directly.

var (
	ExportedSnapSize      = snapSize
	ExportedStepOf        = stepOf
	ExportedMix64         = mix64
	ExportedSaltedHash    = saltedHash
	ExportedDefaultJitter = defaultJitter
	ExportedDraw16        = draw16
	ExportedToUnit        = toUnit
	ExportedDeriveSeed    = deriveSeed
)

// ExportedWrap forwards to the plain toroidal wrap.
func (m *HeightMap) ExportedWrap(x, y int) (int, int) {
	return m.wrap(x, y)
}

// ExportedWrapSquare forwards to the boundary-nudged wrap.
func (m *HeightMap) ExportedWrapSquare(x, y int) (int, int) {
	return m.wrapSquare(x, y)
}

// ExportedLevels forwards to the refinement-level count.
func (m *HeightMap) ExportedLevels() int {
	return m.levels()
}
