// Package picket detects interactions that happen outside a region of a
// scene tree, for [Ebitengine] UIs that need press-outside-to-dismiss
// behavior: popups, dropdowns, context panels.
//
// Picket watches the low-level press/release stream of a [Document] and
// tells you when a complete press-then-release gesture began outside a given
// node's subtree. It reconciles pointer, mouse, and touch input into one
// duplicate-free signal, suppresses the synthetic mouse clicks legacy hosts
// echo after touches, and sees through frame nodes (see [NewFrame]) into
// embedded sub-documents.
//
// # Quick start
//
// Build a document, feed it from Ebitengine once per tick, and attach an
// [OutsideDetector] (or use [Layer], which bundles the common
// dismiss-on-outside-press pattern):
//
//	doc := picket.NewDocument()
//	driver := picket.NewEbitenDriver(doc)
//
//	popup := picket.NewNode("popup")
//	popup.X, popup.Y = 200, 120
//	popup.Width, popup.Height = 240, 160
//	doc.Root().AddChild(popup)
//
//	det := picket.NewOutsideDetector(popup)
//	det.OnOutside = func(picket.Event) { popup.Visible = false }
//	det.Attach()
//
// then call driver.Update() from your [ebiten.Game] Update method:
//
//	type Game struct{ driver *picket.EbitenDriver }
//
//	func (g *Game) Update() error         { g.driver.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)  { /* render your nodes */ }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # The detection contract
//
// A detector fires OnOutside at most once per completed gesture, at release
// time, with the release event. Gestures that start inside the region never
// fire no matter where they end; releases with no tracked press never fire;
// non-primary buttons are ignored. Detectors subscribe to the region's
// document and to every document embedded within it, and everything runs
// synchronously on the tick goroutine.
//
// # Rendering
//
// Picket does not render. Nodes carry geometry, visibility, and alpha for
// the host game to draw however it likes; [TweenGroup] (via [gween]) animates
// those fields for dismissal fades. ECS integration lives in picket/ecs
// (via [Donburi] adapter).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package picket
