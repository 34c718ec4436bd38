// Command lazyterra generates a toroidal diamond-square heightmap and
// writes it out as a grayscale image.
//
// Usage:
//
//	lazyterra -size 513 -roughness 0.15 -seed qwerty -out terrain.png
//	lazyterra -size 1025 -seed alpine -perlin -terrace 12 -out alpine.png
package main

import (
	"flag"
	"log"
	"time"

	"github.com/katalvlaran/lazyterra/heightmap"
	"github.com/katalvlaran/lazyterra/hooks"
	"github.com/katalvlaran/lazyterra/render"
)

func main() {
	cfg := NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	opts := []heightmap.Option{
		heightmap.WithInitLevel(cfg.Level),
		heightmap.WithInitBy(initBy(cfg.Init)),
	}
	if cfg.Seed != "" {
		opts = append(opts, heightmap.WithSeed(cfg.Seed))
	}
	if cfg.Perlin {
		opts = append(opts, heightmap.WithRoughnessHook(
			hooks.PerlinRoughness(noiseSeed(cfg.Seed), 64, 0.5, 1.5)))
	}
	if cfg.Terrace > 0 {
		opts = append(opts, heightmap.WithPostHook(hooks.Terrace(cfg.Terrace)))
	}

	m := heightmap.New(cfg.Size, cfg.Roughness, opts...)
	if initBy(cfg.Init) == heightmap.InitNone {
		pinCorners(m)
	}

	start := time.Now()
	if _, err := m.GenAll(); err != nil {
		log.Fatalf("generate: %v", err)
	}
	log.Printf("generated %d×%d cells in %v (seed %#x)", m.Size(), m.Size(), time.Since(start), m.Seed())

	if err := render.Save(m, cfg.Out); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("wrote %s", cfg.Out)
}

// initBy maps the flag spelling onto a strategy; an unknown spelling keeps
// the diamond-square default.
func initBy(s string) heightmap.InitStrategy {
	switch s {
	case "seed":
		return heightmap.InitSeed
	case "none":
		return heightmap.InitNone
	default:
		return heightmap.InitDiamondSquare
	}
}

// noiseSeed derives the hook seed from the same phrase as the map, or the
// clock when no phrase is given.
func noiseSeed(phrase string) int64 {
	if phrase == "" {
		return time.Now().UnixNano()
	}

	return int64(heightmap.HashSeed(phrase))
}

// pinCorners anchors generation under -init none: lazy resolution needs
// the four corners before any chain can complete.
func pinCorners(m *heightmap.HeightMap) {
	c := m.MaxCoord()
	for _, xy := range [][2]int{{0, 0}, {c, 0}, {0, c}, {c, c}} {
		m.Set(xy[0], xy[1], 0.5)
	}
	log.Printf("init none: corners pinned to 0.5")
}
