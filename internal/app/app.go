//go:build ebiten

package app

import (
	"time"

	"seastate/internal/core"
	"seastate/internal/render"
	"seastate/internal/surface"
	"seastate/internal/ui"
	"seastate/pkg/ocean"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the wave field and surface lattice to the ebiten.Game interface.
type Game struct {
	cfg   ocean.Config
	field *ocean.WaveField
	grid  *surface.Grid

	painter *render.WavePainter
	hud     *ui.HUD
	clock   *core.FixedStep

	simTime  float64
	scale    int
	workers  int
	paused   bool
	tickOnce bool
}

// New constructs a Game around an already generated wave field.
func New(cfg ocean.Config, field *ocean.WaveField, opts *Config) *Game {
	g := &Game{
		cfg:     cfg,
		field:   field,
		grid:    surface.NewGrid(opts.GridW, opts.GridH, opts.Spacing),
		painter: render.NewWavePainter(opts.GridW, opts.GridH),
		hud:     ui.NewHUD(),
		clock:   core.NewFixedStep(opts.TPS),
		scale:   opts.Scale,
		workers: opts.Workers,
	}
	g.hud.SetSnapshot(buildSnapshot(cfg, field))
	g.grid.FillParallel(g.field, 0, g.workers)
	return g
}

// regenerate swaps in a freshly generated field for the given seed. The old
// field keeps serving concurrent readers until the swap completes.
func (g *Game) regenerate(seed int64) {
	cfg := g.cfg
	cfg.Seed = seed
	field, err := ocean.Generate(cfg)
	if err != nil {
		// Config was valid at startup and only the seed changed.
		panic(err)
	}
	g.cfg = cfg
	g.field = field
	g.simTime = 0
	g.hud.SetSnapshot(buildSnapshot(cfg, field))
	g.grid.FillParallel(g.field, 0, g.workers)
}

// Update handles input and advances wave time at the fixed tick rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate(g.cfg.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.regenerate(time.Now().UnixNano())
	}
	g.hud.Update()

	steps := g.clock.Steps()
	if g.paused {
		steps = 0
		if g.tickOnce {
			steps = 1
			g.tickOnce = false
		}
	}
	if steps > 0 {
		g.simTime += float64(steps) * g.clock.DT()
		g.grid.FillParallel(g.field, g.simTime, g.workers)
	}
	return nil
}

// Draw renders the color-mapped surface heights and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid.Heights(), g.field.PeakHeight(), g.scale)
	g.hud.Draw(screen, g.simTime, g.field.PeakHeight(), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.grid.Size()
	return w * g.scale, h * g.scale
}
