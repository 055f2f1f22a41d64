// Package view renders the network animation. It implements ebiten.Game on
// top of the simulation package: Update advances the simulation at the
// fixed tick rate and handles input, Draw paints the latest snapshot and
// never touches simulation state directly.
package view

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/whispem/Neural-Network-View/internal/audio"
	"github.com/whispem/Neural-Network-View/internal/config"
	"github.com/whispem/Neural-Network-View/internal/sim"
)

// View is the window-side half of the application.
type View struct {
	sim *sim.Simulation
	log *log.Logger
	hum *audio.Hum // nil when sonification is off

	// render state
	snap       sim.Snapshot
	pal        palette
	dust       *dustField
	energyHist []float64
	t          float64

	// window size as reported by Layout
	width, height int

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	showMetrics bool
	paused      bool
	lastErr     error
}

// New builds a view for an already constructed simulation. The hum may be
// nil; everything else must be set.
func New(cfg config.Config, s *sim.Simulation, logger *log.Logger, hum *audio.Hum) *View {
	v := &View{
		sim:         s,
		log:         logger,
		hum:         hum,
		pal:         paletteByName(cfg.View.Palette),
		width:       cfg.Window.Width,
		height:      cfg.Window.Height,
		showMetrics: cfg.View.ShowMetrics,
		prevKey:     map[ebiten.Key]bool{},
	}
	seed := cfg.Network.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	v.dust = newDustField(float64(v.width), float64(v.height), cfg.View.DustDensity, seed)
	v.snap = s.Snapshot()
	return v
}

func (v *View) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !v.prevKey[k]
		v.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyM) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		v.showMetrics = !v.showMetrics
	}
	if justPressed(ebiten.KeySpace) {
		v.paused = !v.paused
	}
	if justPressed(ebiten.KeyS) {
		if err := v.saveScreenshot(); err != nil {
			v.lastErr = err
			v.log.Error("screenshot failed", "err", err)
		}
	}

	// Window resizes arrive via Layout; push them into the simulation so
	// the node band follows the canvas.
	if p := v.sim.Params(); float64(v.width) != p.Width || float64(v.height) != p.Height {
		v.sim.Resize(float64(v.width), float64(v.height))
		v.dust.resize(float64(v.width), float64(v.height))
		v.log.Debug("canvas resized", "width", v.width, "height", v.height)
	}

	if !v.paused {
		v.sim.Step()
		v.snap = v.sim.Snapshot()
		v.pushEnergy(v.snap.Metrics.Energy)
		v.dust.step(v.snap.Metrics.Energy)
		if v.hum != nil {
			v.hum.Publish(v.snap.Metrics.Energy, v.snap.Metrics.Flow)
		}
	}

	v.t += 1.0 / 60.0 // Assuming 60 TPS
	return nil
}

func (v *View) Draw(screen *ebiten.Image) {
	v.drawFrame(screen)
	v.drawStatus(screen)
}

// drawFrame paints the full scene. The screenshot path renders through this
// as well, so saved images match the window minus the status line.
func (v *View) drawFrame(dst *ebiten.Image) {
	drawGradient(dst, v.width, v.height, v.t, v.pal)
	v.dust.draw(dst, v.pal)
	v.drawConnections(dst)
	v.drawSignals(dst)
	v.drawNodes(dst)
	if v.showMetrics {
		v.drawDashboard(dst)
	}
}

func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		v.width, v.height = outsideWidth, outsideHeight
	}
	return v.width, v.height
}
