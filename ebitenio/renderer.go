package ebitenio

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/drawer"
	"golang.org/x/image/font/basicfont"
)

const (
	rowHeight   = 36
	textPadding = 12
)

// Renderer paints a Drawer: the overlay at its current opacity and the
// panel translated by the Swipable offset.
type Renderer struct {
	face *text.GoXFace

	Background color.Color
	Panel      color.Color
	Link       color.Color
	Text       color.Color
}

// NewRenderer creates a Renderer with a neutral palette.
func NewRenderer() *Renderer {
	return &Renderer{
		face:       text.NewGoXFace(basicfont.Face7x13),
		Background: color.RGBA{0x23, 0x1e, 0x2d, 0xff},
		Panel:      color.RGBA{0xf4, 0xf4, 0xf4, 0xff},
		Link:       color.RGBA{0xdd, 0xe6, 0xf7, 0xff},
		Text:       color.RGBA{0x20, 0x20, 0x20, 0xff},
	}
}

// DrawLabel draws s at (x, y) in the given color.
func (r *Renderer) DrawLabel(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, r.face, op)
}

// DrawOverlay dims the whole screen by the overlay's opacity.
func (r *Renderer) DrawOverlay(dst *ebiten.Image, o *drawer.Overlay) {
	a := o.Opacity()
	if a <= 0 {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), color.RGBA{A: uint8(a * 255)}, false)
}

// DrawPanel paints the panel box and its children at their laid-out
// rectangles. Children are skipped until the drawer is first opened.
func (r *Renderer) DrawPanel(dst *ebiten.Image, d *drawer.Drawer) {
	p := d.Panel().Rect
	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), r.Panel, false)
	if title := d.Title(); title != "" {
		r.DrawLabel(dst, title, p.X+textPadding, p.Y+textPadding, r.Text)
	}
	if !d.HasBeenOpened() {
		return
	}
	for _, c := range d.Panel().Children() {
		bg := r.Panel
		if c.Link {
			bg = r.Link
		}
		cr := c.Rect
		vector.DrawFilledRect(dst, float32(cr.X), float32(cr.Y), float32(cr.Width), float32(cr.Height-2), bg, false)
		r.DrawLabel(dst, c.Name, cr.X+textPadding, cr.Y+textPadding, r.Text)
	}
}
