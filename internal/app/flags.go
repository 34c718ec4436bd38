package app

import (
	"flag"
	"log"

	"github.com/katalvlaran/lazyterra/heightmap"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Size      int
	Roughness float64
	Seed      string
	Level     int
	Init      string
	Window    int
	Scale     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Size:      513,
		Roughness: 0.15,
		Level:     1,
		Init:      "diamond-square",
		Window:    129,
		Scale:     4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid side length, snapped to the nearest 2^k+1")
	fs.Float64Var(&c.Roughness, "roughness", c.Roughness, "base roughness, clamped into [0,1]")
	fs.StringVar(&c.Seed, "seed", c.Seed, "seed phrase; empty picks a clock seed")
	fs.IntVar(&c.Level, "level", c.Level, "eager initialization depth")
	fs.StringVar(&c.Init, "init", c.Init, "initialization strategy: diamond-square (ds), seed, none")
	fs.IntVar(&c.Window, "window", c.Window, "viewport side length in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
}

// initBy maps the flag spelling onto a strategy; an unknown spelling keeps
// the diamond-square default.
func (c *Config) initBy() heightmap.InitStrategy {
	switch c.Init {
	case "seed":
		return heightmap.InitSeed
	case "none":
		return heightmap.InitNone
	default:
		return heightmap.InitDiamondSquare
	}
}

// newMap constructs the viewer's map. An empty phrase leaves the seed to
// the clock; under the none strategy the corners are pinned so panning can
// generate anywhere.
func newMap(c *Config, phrase string) *heightmap.HeightMap {
	opts := []heightmap.Option{
		heightmap.WithInitLevel(c.Level),
		heightmap.WithInitBy(c.initBy()),
	}
	if phrase != "" {
		opts = append(opts, heightmap.WithSeed(phrase))
	}

	m := heightmap.New(c.Size, c.Roughness, opts...)
	if c.initBy() == heightmap.InitNone {
		mc := m.MaxCoord()
		for _, xy := range [][2]int{{0, 0}, {mc, 0}, {0, mc}, {mc, mc}} {
			m.Set(xy[0], xy[1], 0.5)
		}
		log.Printf("init none: corners pinned to 0.5")
	}

	return m
}
