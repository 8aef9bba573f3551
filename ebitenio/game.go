package ebitenio

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/drawer"
)

const (
	triggerSize  = 40
	wheelStep    = 24
	pageRows     = 60
	pageRowSpace = 28
)

// Game is a ready-made ebiten.Game hosting one drawer over a scrollable
// page, opened by a menu button in the top-left corner.
type Game struct {
	Drawer   *drawer.Drawer
	Animator *drawer.Animator
	Source   *Source
	Renderer *Renderer

	// HUD is drawn when Debug is set.
	HUD   *HUD
	Debug bool

	// ScreenshotDir receives captures queued by Screenshot.
	ScreenshotDir string
	// QuitAfterScript ends the game once an attached script finishes.
	QuitAfterScript bool

	root    *drawer.Box
	trigger *drawer.Box
	page    *scrollPage
	width   int
	height  int
	script  *drawer.ScriptRunner
	shots   []string
}

// NewGame builds the scene for a width x height window. items become link
// rows inside the drawer.
func NewGame(cfg *drawer.Config, width, height int, items []string) *Game {
	root := drawer.NewBox("root", drawer.Rect{Width: float64(width), Height: float64(height)})
	trigger := drawer.NewBox("menu", drawer.Rect{X: 8, Y: 8, Width: triggerSize, Height: triggerSize})
	panel := drawer.NewBox("panel", drawer.Rect{Height: float64(height)})
	root.AddChild(trigger)
	root.AddChild(panel)
	for _, item := range items {
		row := drawer.NewBox(item, drawer.Rect{})
		row.Link = true
		panel.AddChild(row)
	}

	anim := drawer.NewAnimator(nil)
	page := &scrollPage{max: float64(pageRows*pageRowSpace - height)}
	g := &Game{
		Animator: anim,
		Source:   NewSource(root, nil),
		Renderer: NewRenderer(),
		HUD:      NewHUD(),
		root:     root,
		trigger:  trigger,
		page:     page,
		width:    width,
		height:   height,

		ScreenshotDir: "screenshots",
	}
	g.Drawer = drawer.NewDrawer(panel, anim, cfg, drawer.NewScrollLock(page))
	g.Drawer.Mount(g.Source)
	g.Source.AddListener(drawer.InputClick, false, g.handleClick)
	g.layoutPanel()
	return g
}

// SetScript replays runner one step per frame, with "menu", "panel" and
// "page" as targets. Screenshot steps capture the frame.
func (g *Game) SetScript(runner *drawer.ScriptRunner) {
	runner.OnScreenshot = g.Screenshot
	g.script = runner
}

// ScriptDone reports whether an attached script has finished.
func (g *Game) ScriptDone() bool {
	return g.script == nil || g.script.Done()
}

func (g *Game) scriptTargets() map[string]drawer.Element {
	return map[string]drawer.Element{
		"menu":  g.trigger,
		"panel": g.Drawer.Panel(),
		"page":  g.root,
	}
}

func (g *Game) handleClick(e *drawer.InputEvent) {
	b, _ := e.Target.(*drawer.Box)
	switch {
	case b == nil:
		return
	case g.trigger.Contains(b) && !g.Drawer.IsOpen():
		g.Drawer.Open()
	case g.Drawer.Panel().Contains(b):
		g.Drawer.HandleContentClick(b)
	default:
		g.Drawer.HandleOverlayClick()
	}
}

// layoutPanel places the panel at its resting edge shifted by the current
// offset, so hit testing follows what is drawn.
func (g *Game) layoutPanel() {
	panel := g.Drawer.Panel()
	w := g.Drawer.PanelWidth(float64(g.width))
	x := 0.0
	if g.Drawer.Side() == drawer.PositionRight {
		x = float64(g.width) - w
	}
	x += g.Drawer.Swipable().Offset().Pixels(w)
	panel.Rect = drawer.Rect{X: x, Y: 0, Width: w, Height: float64(g.height)}

	y := float64(triggerSize + 2*textPadding)
	for _, row := range panel.Children() {
		row.Rect = drawer.Rect{X: x, Y: y, Width: w, Height: rowHeight}
		y += rowHeight
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.script != nil && !g.script.Done() {
		g.script.Step(g.Source.Dispatcher, g.scriptTargets())
	} else if g.script != nil && g.QuitAfterScript {
		return ebiten.Termination
	} else {
		g.Source.Poll()
	}
	if !g.page.frozen {
		_, wy := ebiten.Wheel()
		g.page.ScrollTo(g.page.y - wy*wheelStep)
	}
	g.Animator.Update()
	g.layoutPanel()
	if g.Debug {
		g.HUD.Update(1/float64(ebiten.TPS()), g.Drawer)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	r := g.Renderer
	screen.Fill(r.Background)

	top := g.page.y
	if g.page.frozen {
		top = g.page.top
	}
	for i := 0; i < pageRows; i++ {
		y := float64(triggerSize+2*textPadding+i*pageRowSpace) - top
		if y < -pageRowSpace || y > float64(g.height) {
			continue
		}
		r.DrawLabel(screen, fmt.Sprintf("Page row %d", i+1), 2*textPadding, y, color.White)
	}

	t := g.trigger.Rect
	vector.DrawFilledRect(screen, float32(t.X), float32(t.Y), float32(t.Width), float32(t.Height), r.Panel, false)
	r.DrawLabel(screen, "=", t.X+16, t.Y+14, r.Text)

	r.DrawOverlay(screen, g.Drawer.Overlay())
	r.DrawPanel(screen, g.Drawer)
	if g.Debug {
		g.HUD.Draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// scrollPage is the page behind the drawer. It implements drawer.Page.
type scrollPage struct {
	y      float64
	max    float64
	frozen bool
	top    float64
}

func (p *scrollPage) ScrollY() float64 { return p.y }

func (p *scrollPage) ScrollTo(y float64) {
	if y > p.max {
		y = p.max
	}
	if y < 0 {
		y = 0
	}
	p.y = y
}

func (p *scrollPage) Freeze(top float64) {
	p.frozen = true
	p.top = top
}

func (p *scrollPage) Unfreeze() {
	p.frozen = false
}
