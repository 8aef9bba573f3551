// Package ebitenio binds a drawer.Drawer to Ebitengine: [Source] polls mouse
// and touch state into a drawer.Dispatcher, [Renderer] paints the page,
// overlay and panel, and [Game] wires both into an ebiten.Game.
//
//	g := ebitenio.NewGame(cfg, 640, 480, []string{"Home", "About"})
//	if err := ebiten.RunGame(g); err != nil {
//		log.Fatal(err)
//	}
//
// Set Game.Debug for a [HUD] with frame rate and gesture state. A
// drawer.ScriptRunner attached with Game.SetScript replays recorded
// gestures and can capture screenshots along the way.
package ebitenio
