// Package drawer is a swipeable slide-in panel for [Ebitengine] games and
// other retained-mode UIs.
//
// The heart of the package is [Swipable], a gesture recognizer that turns
// raw pointer input into a horizontal offset. It tells a drag from a page
// scroll, rubber-bands drags past its bounds, estimates the release speed
// from the last few samples, and either commits a swipe or snaps back.
// Offsets are animated by an [Animator] (built on [gween]), which keeps at
// most one animation per field.
//
// # Quick start
//
//	anim := drawer.NewAnimator(nil)
//	src := drawer.NewDispatcher()
//	panel := drawer.NewBox("panel", drawer.Rect{Width: 320, Height: 480})
//
//	d := drawer.NewDrawer(panel, anim, nil, nil)
//	d.Mount(src)
//	d.Open()
//
//	// each frame
//	anim.Update()
//
// Feed real input into the [Dispatcher] yourself, or use the ebitenio
// package, which polls Ebitengine's mouse and touch state and renders the
// drawer.
//
// # Swipable on its own
//
// A [Swipable] owns no application state. The host supplies the resting
// [Position] through [Options] and flips it from the swipe callbacks:
//
//	var sw *drawer.Swipable
//	opts := drawer.DefaultOptions()
//	opts.OnSwipeLeft = func() {
//		opts.Position = drawer.PositionLeft
//		sw.Update(opts)
//	}
//	sw = drawer.NewSwipable(panel, anim, opts)
//	sw.Mount(src)
//
// # Configuration
//
// [LoadConfig] reads YAML or TOML files; offsets accept numbers (pixels)
// or strings such as "-100%".
//
// # Testing gestures
//
// [Dispatcher] has Inject helpers for mouse and touch sequences, and
// [ScriptRunner] replays JSON gesture scripts one step per frame.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package drawer
