//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"roomgen/internal/app"
	"roomgen/internal/config"
	"roomgen/pkg/core"
	_ "roomgen/pkg/gen/cellular"
	_ "roomgen/pkg/gen/walker"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	build := func(seed int64) (core.Generator, error) {
		name, params, err := config.Resolve(cfg.Request(seed, flag.Args()))
		if err != nil {
			return nil, err
		}
		return core.New(name, params)
	}

	game, err := app.New(build, cfg, logger)
	if err != nil {
		logger.Error("start viewer", "err", err)
		os.Exit(1)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("roomgen: " + game.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer stopped", "err", err)
		os.Exit(1)
	}
}
