package main

import "flag"

// Config represents the command-line parameters for the generator.
type Config struct {
	Size      int
	Roughness float64
	Seed      string
	Level     int
	Init      string
	Out       string
	Perlin    bool
	Terrace   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Size:      513,
		Roughness: 0.15,
		Level:     1,
		Init:      "diamond-square",
		Out:       "heightmap.png",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid side length, snapped to the nearest 2^k+1")
	fs.Float64Var(&c.Roughness, "roughness", c.Roughness, "base roughness, clamped into [0,1]")
	fs.StringVar(&c.Seed, "seed", c.Seed, "seed phrase; empty picks a clock seed")
	fs.IntVar(&c.Level, "level", c.Level, "eager initialization depth")
	fs.StringVar(&c.Init, "init", c.Init, "initialization strategy: diamond-square (ds), seed, none")
	fs.StringVar(&c.Out, "out", c.Out, "output image path (.png .jpg .jpeg .bmp .tif .tiff)")
	fs.BoolVar(&c.Perlin, "perlin", c.Perlin, "modulate roughness with a Perlin factor field")
	fs.IntVar(&c.Terrace, "terrace", c.Terrace, "terrace step count; 0 disables")
}
