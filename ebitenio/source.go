package ebitenio

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/drawer"
)

// Source polls Ebitengine input once per frame and dispatches browser-style
// events: down, move, up, then a click on release. Only the first touch is
// tracked; while a finger is down the mouse is ignored.
type Source struct {
	*drawer.Dispatcher

	root  *drawer.Box
	clock drawer.Clock
	start time.Time

	mouseDown    bool
	lastX, lastY float64

	touching   bool
	touchID    ebiten.TouchID
	touchX     float64
	touchY     float64
	touchIDs   []ebiten.TouchID
	downTarget drawer.Element
}

// NewSource creates a Source that hit-tests against root. A nil clock uses
// drawer.SystemClock.
func NewSource(root *drawer.Box, clock drawer.Clock) *Source {
	if clock == nil {
		clock = drawer.SystemClock{}
	}
	return &Source{
		Dispatcher: drawer.NewDispatcher(),
		root:       root,
		clock:      clock,
		start:      clock.Now(),
	}
}

// Poll reads the current input state and dispatches whatever changed since
// the previous call. Call it once per Update.
func (s *Source) Poll() {
	ts := float64(s.clock.Now().Sub(s.start)) / float64(time.Millisecond)
	s.pollTouch(ts)
	if !s.touching {
		s.pollMouse(ts)
	}
}

// hit returns the element under (x, y). A miss yields a nil interface
// rather than a typed nil *Box.
func (s *Source) hit(x, y float64) drawer.Element {
	if b := s.root.HitTest(x, y); b != nil {
		return b
	}
	return nil
}

func (s *Source) pollMouse(ts float64) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	target := s.hit(x, y)

	switch {
	case pressed && !s.mouseDown:
		s.mouseDown = true
		s.downTarget = target
		s.InjectMouseDown(target, x, y, ts)
	case !pressed && s.mouseDown:
		s.mouseDown = false
		s.InjectMouseUp(target, x, y, ts)
		if target != nil && target == s.downTarget {
			s.InjectClick(target, x, y, ts)
		}
		s.downTarget = nil
	case x != s.lastX || y != s.lastY:
		s.InjectMouseMove(target, x, y, ts)
	}
	s.lastX, s.lastY = x, y
}

func (s *Source) pollTouch(ts float64) {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	if !s.touching {
		if len(s.touchIDs) == 0 {
			return
		}
		s.touching = true
		s.touchID = s.touchIDs[0]
		tx, ty := ebiten.TouchPosition(s.touchID)
		s.touchX, s.touchY = float64(tx), float64(ty)
		s.downTarget = s.hit(s.touchX, s.touchY)
		s.InjectTouchStart(s.downTarget, s.touchX, s.touchY, ts)
		return
	}

	for _, id := range s.touchIDs {
		if id != s.touchID {
			continue
		}
		tx, ty := ebiten.TouchPosition(id)
		x, y := float64(tx), float64(ty)
		if x != s.touchX || y != s.touchY {
			s.touchX, s.touchY = x, y
			s.InjectTouchMove(s.hit(x, y), x, y, ts)
		}
		return
	}

	// Tracked finger lifted.
	s.touching = false
	target := s.hit(s.touchX, s.touchY)
	s.InjectTouchEnd(target, ts)
	if target != nil && target == s.downTarget {
		s.InjectClick(target, s.touchX, s.touchY, ts)
	}
	s.downTarget = nil
}
