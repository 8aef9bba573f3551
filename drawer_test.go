package drawer

import (
	"testing"
	"time"
)

type drawerFixture struct {
	clock *fakeClock
	anim  *Animator
	src   *Dispatcher
	page  *fakePage
	lock  *ScrollLock
	panel *Box
	d     *Drawer
}

func newDrawerFixture(cfg *Config) *drawerFixture {
	f := &drawerFixture{clock: newFakeClock(), src: NewDispatcher(), page: &fakePage{y: 120}}
	f.anim = NewAnimator(f.clock)
	f.lock = NewScrollLock(f.page)
	root := NewBox("root", Rect{Width: 800, Height: 600})
	f.panel = NewBox("panel", Rect{Width: 300, Height: 600})
	root.AddChild(f.panel)
	f.d = NewDrawer(f.panel, f.anim, cfg, f.lock)
	f.d.Mount(f.src)
	return f
}

func (f *drawerFixture) settle() {
	for i := 0; i < 120 && f.anim.Running() > 0; i++ {
		f.clock.Advance(frameBudget)
		f.anim.Update()
	}
}

func (f *drawerFixture) drag(xs ...float64) {
	ts := 0.0
	f.src.InjectMouseDown(f.panel, xs[0], 300, ts)
	for _, x := range xs[1:] {
		ts += 16
		f.src.InjectMouseMove(f.panel, x, 300, ts)
	}
	f.src.InjectMouseUp(f.panel, xs[len(xs)-1], 300, ts)
}

func TestDrawerStartsClosed(t *testing.T) {
	f := newDrawerFixture(nil)
	d := f.d
	if d.IsOpen() || d.HasBeenOpened() || d.IsMoving() {
		t.Errorf("open=%v opened=%v moving=%v, want all false", d.IsOpen(), d.HasBeenOpened(), d.IsMoving())
	}
	if d.Side() != PositionLeft {
		t.Errorf("side = %v, want left", d.Side())
	}
	if got := d.Swipable().Offset(); got != Percent(-100) {
		t.Errorf("offset = %+v, want -100%%", got)
	}
	if f.panel.Transform != "translate3d(-100%,0,0)" {
		t.Errorf("transform = %q", f.panel.Transform)
	}
	if d.Overlay().Visible() || d.Overlay().Opacity() != 0 {
		t.Error("overlay should start hidden")
	}
}

func TestDrawerOpenClose(t *testing.T) {
	f := newDrawerFixture(nil)
	d := f.d

	d.Open()
	if !d.IsOpen() || !d.HasBeenOpened() {
		t.Fatal("drawer should be open")
	}
	if !d.IsMoving() {
		t.Error("drawer should be moving during the open animation")
	}
	if !f.lock.Locked() || !f.page.frozen {
		t.Error("page should be locked while open")
	}
	if !d.Overlay().Visible() {
		t.Error("overlay should be visible")
	}

	f.settle()
	if got := d.Swipable().Offset(); got != Percent(0) {
		t.Errorf("offset = %+v, want 0%%", got)
	}
	if d.IsMoving() {
		t.Error("drawer should be at rest")
	}
	if d.Overlay().Opacity() != overlayOpacity {
		t.Errorf("overlay opacity = %v, want %v", d.Overlay().Opacity(), overlayOpacity)
	}

	d.Close()
	f.settle()
	if d.IsOpen() {
		t.Error("drawer should be closed")
	}
	if !d.HasBeenOpened() {
		t.Error("HasBeenOpened should stay true")
	}
	if got := d.Swipable().Offset(); got != Percent(-100) {
		t.Errorf("offset = %+v, want -100%%", got)
	}
	if f.lock.Locked() || f.page.y != 120 {
		t.Errorf("locked=%v scroll=%v, want released at 120", f.lock.Locked(), f.page.y)
	}
	if d.Overlay().Opacity() != 0 {
		t.Errorf("overlay opacity = %v, want 0", d.Overlay().Opacity())
	}
}

func TestDrawerToggle(t *testing.T) {
	f := newDrawerFixture(nil)
	f.d.Toggle()
	if !f.d.IsOpen() {
		t.Error("Toggle should open")
	}
	f.d.Toggle()
	if f.d.IsOpen() {
		t.Error("Toggle should close")
	}
}

func TestDrawerSwipeCloses(t *testing.T) {
	f := newDrawerFixture(nil)
	f.d.Open()
	f.settle()

	f.drag(100, 70, 40, 10)
	if f.d.IsOpen() {
		t.Fatal("swiping toward the hidden side should close the drawer")
	}
	if f.lock.Locked() {
		t.Error("scroll lock should be released")
	}
	f.settle()
	if got := f.d.Swipable().Offset(); got != Percent(-100) {
		t.Errorf("offset = %+v, want -100%%", got)
	}
}

func TestDrawerSwipeOtherWayIgnored(t *testing.T) {
	f := newDrawerFixture(nil)
	f.d.Open()
	f.settle()

	f.drag(100, 130, 160, 190)
	if !f.d.IsOpen() {
		t.Error("swiping away from the hidden side should not close")
	}
	f.settle()
	if got := f.d.Swipable().Offset(); !got.IsZero() {
		t.Errorf("offset = %+v, want back at 0", got)
	}
}

func TestDrawerClosedIgnoresDrag(t *testing.T) {
	f := newDrawerFixture(nil)
	f.drag(100, 70, 40, 10)
	if got := f.d.Swipable().Offset(); got != Percent(-100) {
		t.Errorf("offset = %+v, want untouched -100%%", got)
	}
}

func TestDrawerRightSide(t *testing.T) {
	cfg := &Config{Drawer: DefaultDrawerConfig()}
	cfg.Drawer.SlideDirection = "rightToLeft"
	f := newDrawerFixture(cfg)
	if f.d.Side() != PositionRight {
		t.Fatalf("side = %v, want right", f.d.Side())
	}
	if got := f.d.Swipable().Offset(); got != Percent(100) {
		t.Errorf("offset = %+v, want 100%%", got)
	}

	f.d.Open()
	f.settle()
	f.drag(100, 130, 160, 190)
	if f.d.IsOpen() {
		t.Error("swiping right should close a right-hand drawer")
	}
	f.settle()
	if got := f.d.Swipable().Offset(); got != Percent(100) {
		t.Errorf("offset = %+v, want 100%%", got)
	}
}

func TestDrawerOverlayClick(t *testing.T) {
	f := newDrawerFixture(nil)
	f.d.HandleOverlayClick()
	if f.d.IsOpen() {
		t.Fatal("overlay click on a closed drawer should do nothing")
	}
	f.d.Open()
	f.d.HandleOverlayClick()
	if f.d.IsOpen() {
		t.Error("overlay click should close the drawer")
	}
}

func TestDrawerContentClick(t *testing.T) {
	f := newDrawerFixture(nil)
	link := NewBox("home", Rect{})
	link.Link = true
	label := NewBox("label", Rect{})
	link.AddChild(label)
	plain := NewBox("text", Rect{})
	f.panel.AddChild(link)
	f.panel.AddChild(plain)

	f.d.Open()
	f.d.HandleContentClick(plain)
	if !f.d.IsOpen() {
		t.Fatal("click outside a link should keep the drawer open")
	}
	f.d.HandleContentClick(label)
	if f.d.IsOpen() {
		t.Error("click inside a link should close the drawer")
	}
}

func TestDrawerUnmountReleasesLock(t *testing.T) {
	f := newDrawerFixture(nil)
	f.d.Open()
	f.d.Unmount()
	if f.lock.Locked() {
		t.Error("Unmount should release the scroll lock")
	}
	if n := f.src.ListenerCount(InputDown); n != 0 {
		t.Errorf("listeners = %d, want 0", n)
	}
}

func TestDrawerPanelWidth(t *testing.T) {
	w := Px(320)
	tests := []struct {
		name     string
		cfg      DrawerConfig
		viewport float64
		want     float64
	}{
		{"default", DefaultDrawerConfig(), 400, 340},
		{"clamped to max", DefaultDrawerConfig(), 1000, 450},
		{"clamped to min", DefaultDrawerConfig(), 300, 280},
		{"full width", DrawerConfig{IsFullWidth: true, MaxWidth: 450}, 400, 400},
		{"explicit width", DrawerConfig{Width: &w}, 1000, 320},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDrawer(NewBox("panel", Rect{}), nil, &Config{Drawer: tt.cfg}, nil)
			if got := d.PanelWidth(tt.viewport); !approx(got, tt.want, 1e-9) {
				t.Errorf("PanelWidth(%v) = %v, want %v", tt.viewport, got, tt.want)
			}
		})
	}
}

func TestSlideSide(t *testing.T) {
	tests := map[string]Position{
		"":            PositionLeft,
		"horizontal":  PositionLeft,
		"leftToRight": PositionLeft,
		"rightToLeft": PositionRight,
		"diagonal":    PositionLeft,
	}
	for dir, want := range tests {
		if got := slideSide(dir); got != want {
			t.Errorf("slideSide(%q) = %v, want %v", dir, got, want)
		}
	}
}

func TestDrawerPrivateAnimator(t *testing.T) {
	d := NewDrawer(NewBox("panel", Rect{Width: 300, Height: 600}), nil, nil, nil)
	d.Mount(NewDispatcher())
	d.Open()

	anim := d.Animator()
	if anim != d.Swipable().Animator() {
		t.Fatal("panel and drawer should share one animator")
	}
	for i := 0; i < 60 && anim.Running() > 0; i++ {
		time.Sleep(frameBudget)
		anim.Update()
	}
	if got := d.Swipable().Offset(); got != Percent(0) {
		t.Errorf("offset = %+v, want 0%%", got)
	}
	if d.Overlay().Opacity() != overlayOpacity {
		t.Errorf("overlay opacity = %v, want %v", d.Overlay().Opacity(), overlayOpacity)
	}
}
