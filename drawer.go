package drawer

import "log"

// Drawer is the host side of a slide-in panel: it owns the open/closed
// state and feeds it to a Swipable, so a swipe toward the closed side
// closes the drawer.
type Drawer struct {
	cfg     DrawerConfig
	base    Options
	side    Position
	panel   *Box
	swipe   *Swipable
	overlay *Overlay
	locker  ScrollLocker

	isOpen        bool
	hasBeenOpened bool
	isMoving      bool
}

// NewDrawer builds a closed drawer around panel. locker may be nil. A nil
// animator gets a private one, reachable through Animator, that the host
// must Update each frame.
func NewDrawer(panel *Box, animator *Animator, cfg *Config, locker ScrollLocker) *Drawer {
	if cfg == nil {
		cfg = &Config{Drawer: DefaultDrawerConfig()}
	}
	if animator == nil {
		animator = NewAnimator(nil)
	}
	d := &Drawer{
		cfg:     cfg.Drawer,
		base:    cfg.Options(),
		side:    slideSide(cfg.Drawer.SlideDirection),
		panel:   panel,
		overlay: newOverlay(animator),
		locker:  locker,
	}
	d.swipe = NewSwipable(panel, animator, d.swipeOptions())
	return d
}

// slideSide maps a slide direction to the side the drawer hides on.
func slideSide(dir string) Position {
	switch dir {
	case "", "horizontal", "leftToRight":
		return PositionLeft
	case "rightToLeft":
		return PositionRight
	}
	log.Printf("drawer: unknown slide direction %q, using horizontal", dir)
	return PositionLeft
}

func (d *Drawer) swipeOptions() Options {
	o := d.base
	o.OnSwipeLeft = nil
	o.OnSwipeRight = nil
	if d.side == PositionLeft {
		o.OnSwipeLeft = d.Close
	} else {
		o.OnSwipeRight = d.Close
	}
	o.Enabled = d.isOpen
	o.Position = d.side
	if d.isOpen {
		o.Position = PositionCenter
	}
	o.AllowOutsideDrag = true
	userUpdate := d.base.OnUpdateOffset
	o.OnUpdateOffset = func(m Measure) {
		d.isMoving = !(m.IsZero() || m == d.closedOffset())
		if userUpdate != nil {
			userUpdate(m)
		}
	}
	return o
}

func (d *Drawer) closedOffset() Measure {
	if d.side == PositionRight {
		return d.base.PositionRight
	}
	return d.base.PositionLeft
}

// Mount starts listening for gestures on src.
func (d *Drawer) Mount(src EventSource) { d.swipe.Mount(src) }

// Unmount stops listening and releases the scroll lock.
func (d *Drawer) Unmount() {
	d.swipe.Unmount()
	if d.locker != nil {
		d.locker.SetLocked(false)
	}
}

// Open slides the drawer in.
func (d *Drawer) Open() { d.setOpen(true) }

// Close slides the drawer out.
func (d *Drawer) Close() { d.setOpen(false) }

// Toggle flips the open state.
func (d *Drawer) Toggle() { d.setOpen(!d.isOpen) }

func (d *Drawer) setOpen(open bool) {
	if open {
		d.hasBeenOpened = true
	}
	if d.isOpen == open {
		return
	}
	d.isOpen = open
	if d.locker != nil {
		d.locker.SetLocked(open)
	}
	d.overlay.setVisible(open)
	d.swipe.Update(d.swipeOptions())
}

// IsOpen reports whether the drawer is open.
func (d *Drawer) IsOpen() bool { return d.isOpen }

// HasBeenOpened reports whether the drawer was ever opened. Hosts use it to
// defer building the drawer contents.
func (d *Drawer) HasBeenOpened() bool { return d.hasBeenOpened }

// IsMoving reports whether the panel is between resting positions.
func (d *Drawer) IsMoving() bool { return d.isMoving }

// Side returns the side the drawer hides on.
func (d *Drawer) Side() Position { return d.side }

// Title returns the configured header title.
func (d *Drawer) Title() string { return d.cfg.Title }

// Panel returns the panel element.
func (d *Drawer) Panel() *Box { return d.panel }

// Swipable returns the drawer's gesture recognizer.
func (d *Drawer) Swipable() *Swipable { return d.swipe }

// Animator returns the animator shared by the panel and the overlay.
func (d *Drawer) Animator() *Animator { return d.swipe.Animator() }

// Overlay returns the backdrop.
func (d *Drawer) Overlay() *Overlay { return d.overlay }

// HandleOverlayClick closes the drawer when the visible overlay is clicked.
func (d *Drawer) HandleOverlayClick() {
	if d.overlay.Visible() {
		d.Close()
	}
}

// HandleContentClick closes the drawer when target sits inside a link in
// the panel, so navigating to the current page still dismisses it.
func (d *Drawer) HandleContentClick(target *Box) {
	if InsideLink(target, d.panel) {
		d.Close()
	}
}

// PanelWidth resolves the configured width against the viewport width.
func (d *Drawer) PanelWidth(viewport float64) float64 {
	var w float64
	switch {
	case d.cfg.Width != nil:
		w = d.cfg.Width.Pixels(viewport)
	case d.cfg.IsFullWidth:
		w = viewport
	default:
		w = viewport * 0.85
	}
	if d.cfg.MaxWidth > 0 && w > d.cfg.MaxWidth {
		w = d.cfg.MaxWidth
	}
	if w < d.cfg.MinWidth {
		w = d.cfg.MinWidth
	}
	return w
}
