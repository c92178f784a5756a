//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"roomgen/internal/render"
	"roomgen/internal/ui"
	"roomgen/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Builder constructs a generator for the given seed.
type Builder func(seed int64) (core.Generator, error)

// Game adapts a generator to the ebiten.Game interface and lets the user
// step through its iterations.
type Game struct {
	build   Builder
	gen     core.Generator
	grid    *core.Grid
	painter *render.GridPainter
	hud     *ui.HUD
	timer   *FixedStep
	log     *slog.Logger

	scale    int
	hudWidth int
	playing  bool
	seed     int64
}

// New constructs a Game and produces the first grid.
func New(build Builder, cfg *Config, logger *slog.Logger) (*Game, error) {
	gen, err := build(cfg.Seed)
	if err != nil {
		return nil, err
	}
	size := gen.Size()
	g := &Game{
		build:    build,
		gen:      gen,
		painter:  render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		hud:      ui.NewHUD(gen, cfg.HUDWidth),
		timer:    NewFixedStep(cfg.Rate),
		log:      logger,
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
	g.grid = gen.GenerateGrid()
	return g, nil
}

// Name returns the name of the running generator.
func (g *Game) Name() string { return g.gen.Name() }

// Reseed rebuilds the generator with seed and generates from scratch.
func (g *Game) Reseed(seed int64) {
	gen, err := g.build(seed)
	if err != nil {
		g.log.Error("rebuild generator", "seed", seed, "err", err)
		return
	}
	g.seed = seed
	g.gen = gen
	g.hud.SetGenerator(gen)
	g.grid = gen.GenerateGrid()
	g.log.Info("reseeded", "seed", seed)
}

// Update handles per-frame input and advances the generator.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.playing = !g.playing
		g.timer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.grid = g.gen.NextIteration()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.grid = g.gen.GenerateGrid()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reseed(time.Now().UnixNano())
	}

	if g.playing && g.timer.ShouldStep() {
		g.grid = g.gen.NextIteration()
	}
	g.hud.Update(g.grid, g.seed, g.playing)
	return nil
}

// Draw renders the current grid and the parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.grid, g.scale)
	s := g.gen.Size()
	g.hud.Draw(screen, s.W*g.scale, s.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.gen.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
