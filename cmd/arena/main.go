//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"elemental-arena/internal/app"
	"elemental-arena/internal/sims/elemental"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	arenaCfg := elemental.DefaultConfig()
	if cfg.ConfigPath != "" {
		loaded, err := elemental.LoadConfig(cfg.ConfigPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		arenaCfg = loaded
	}

	session := app.NewSession(arenaCfg, cfg.Seed)
	if p, ok := elemental.ParsePayload(cfg.Payload); ok {
		session.SetBrush(p)
	} else {
		log.Fatalf("unknown payload %q", cfg.Payload)
	}
	if cfg.Scenario != "" {
		if err := session.StartScenario(cfg.Scenario); err != nil {
			log.Fatal(err)
		}
	}

	game := app.New(session, cfg.Scale, cfg.PanelWidth)
	size := session.Arena.Size()

	ebiten.SetWindowTitle("elemental arena")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.PanelWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
