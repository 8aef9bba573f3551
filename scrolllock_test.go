package drawer

import "testing"

type fakePage struct {
	y      float64
	frozen bool
	top    float64
}

func (p *fakePage) ScrollY() float64   { return p.y }
func (p *fakePage) ScrollTo(y float64) { p.y = y }
func (p *fakePage) Freeze(top float64) { p.frozen, p.top = true, top }
func (p *fakePage) Unfreeze()          { p.frozen = false }

func TestScrollLock(t *testing.T) {
	page := &fakePage{y: 240}
	l := NewScrollLock(page)

	l.SetLocked(true)
	if !l.Locked() || !page.frozen || page.top != 240 {
		t.Fatalf("locked=%v frozen=%v top=%v, want pinned at 240", l.Locked(), page.frozen, page.top)
	}

	// Scrolling while pinned must be undone on release.
	page.y = 0
	l.SetLocked(true)
	l.SetLocked(false)
	if l.Locked() || page.frozen {
		t.Error("page should be released")
	}
	if page.y != 240 {
		t.Errorf("scroll = %v, want restored to 240", page.y)
	}
}

func TestScrollLockUnlockedNoop(t *testing.T) {
	page := &fakePage{y: 10}
	l := NewScrollLock(page)
	l.SetLocked(false)
	if page.frozen || page.y != 10 {
		t.Error("unlocking an unlocked page should do nothing")
	}
}
