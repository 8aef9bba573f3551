package drawer

// Page is the scrollable document behind the drawer.
type Page interface {
	ScrollY() float64
	ScrollTo(y float64)
	// Freeze pins the page so it no longer scrolls, showing it as if
	// scrolled to top.
	Freeze(top float64)
	Unfreeze()
}

// ScrollLocker suspends page scrolling while the drawer is open.
type ScrollLocker interface {
	SetLocked(locked bool)
}

// ScrollLock pins a Page while locked and restores its scroll position
// afterwards.
type ScrollLock struct {
	page   Page
	locked bool
	saved  float64
}

// NewScrollLock creates an unlocked ScrollLock for page.
func NewScrollLock(page Page) *ScrollLock {
	return &ScrollLock{page: page}
}

// Locked reports whether the page is currently pinned.
func (l *ScrollLock) Locked() bool { return l.locked }

// SetLocked implements ScrollLocker. Repeated calls with the same value are
// no-ops.
func (l *ScrollLock) SetLocked(locked bool) {
	if l.locked == locked {
		return
	}
	l.locked = locked
	if locked {
		l.saved = l.page.ScrollY()
		l.page.Freeze(l.saved)
		return
	}
	l.page.Unfreeze()
	l.page.ScrollTo(l.saved)
}
