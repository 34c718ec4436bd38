//go:build ebiten

// Command lazyterra-view pans a live viewport across a lazily generated
// heightmap torus: terrain materializes as it scrolls into view.
//
// Usage:
//
//	go run -tags ebiten ./cmd/lazyterra-view -seed qwerty -window 129 -scale 4
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/katalvlaran/lazyterra/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game := app.New(cfg)

	ebiten.SetWindowTitle(fmt.Sprintf("lazyterra — seed %#x", game.Seed()))
	ebiten.SetWindowSize(cfg.Window*cfg.Scale, cfg.Window*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
