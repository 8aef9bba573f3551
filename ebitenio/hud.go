package ebitenio

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/drawer"
)

const hudInterval = 0.5 // seconds between redraws

// HUD is a debug readout of frame rate and gesture state. It redraws its
// own image every ~0.5 seconds and is drawn in the top-right corner.
type HUD struct {
	img  *ebiten.Image
	last float64
	text string
}

// NewHUD creates a HUD. The image is allocated on first draw.
func NewHUD() *HUD {
	return &HUD{last: hudInterval}
}

// Update accumulates dt seconds and refreshes the readout when due.
func (h *HUD) Update(dt float64, d *drawer.Drawer) {
	h.last += dt
	if h.last < hudInterval {
		return
	}
	h.last = 0
	h.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s", ebiten.ActualFPS(), ebiten.ActualTPS(), gestureText(d))
	if h.img != nil {
		h.redraw()
	}
}

// Draw paints the readout onto dst.
func (h *HUD) Draw(dst *ebiten.Image) {
	if h.img == nil {
		// 140x64 fits four DebugPrint lines.
		h.img = ebiten.NewImage(140, 64)
		h.redraw()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(dst.Bounds().Dx()-h.img.Bounds().Dx()), 0)
	dst.DrawImage(h.img, op)
}

func (h *HUD) redraw() {
	h.img.Clear()
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, h.text)
}

// gestureText summarizes the drawer's recognizer.
func gestureText(d *drawer.Drawer) string {
	sw := d.Swipable()
	trigger := "none"
	if t := sw.Trigger(); t != nil {
		trigger = t.Direction.String()
	}
	return fmt.Sprintf("%s %s\ntrigger: %s", sw.Phase(), sw.Offset(), trigger)
}
