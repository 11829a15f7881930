//go:build ebiten

package ui

import (
	"fmt"

	"groovy-ca/internal/core"
	"groovy-ca/pkg/ca"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws a status line over the running simulation: sim name, tick
// count and the live density of the displayed buffer. Toggled with D.
type Overlay struct {
	sim     core.Sim
	visible bool
	ticks   int
}

// NewOverlay constructs an overlay for the provided simulation.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, visible: true}
}

// Tick records one simulation step for the tick counter.
func (o *Overlay) Tick() { o.ticks++ }

// ResetTicks zeroes the tick counter after a sim reset.
func (o *Overlay) ResetTicks() { o.ticks = 0 }

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.visible = !o.visible
	}
}

// Draw renders the status line.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	status := fmt.Sprintf("%s  t=%d  density=%.3f", o.sim.Name(), o.ticks, ca.Density(o.sim.Cells()))
	if reporter, ok := o.sim.(core.ParameterReporter); ok {
		for _, p := range reporter.Parameters().Params {
			status += fmt.Sprintf("  %s=%s", p.Key, p.Value)
		}
	}
	ebitenutil.DebugPrint(screen, status)
}
