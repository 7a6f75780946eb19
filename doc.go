// Package spritecache is a sprite and image resource cache with a batched,
// dirty-flag-gated renderer for [Ebitengine].
//
// A [Stage] owns every definition, instance, and image object, and is fed by
// an external command stream (define, update, load, show, hide, rotate).
// Updates may arrive before the definition they reference exists; the stage
// queues them and resolves the queue the moment a matching define lands, so
// out-of-order command streams never drop state.
//
// # Quick start
//
//	stage := spritecache.NewStage(spritecache.StageConfig{})
//
//	grid := make([]int, 32*32)
//	// ... fill grid with brightness levels 0-15 ...
//	stage.DefineSprite(1, grid)
//	stage.UpdateInstance(spritecache.InstanceUpdate{
//		ID: 1, DefinitionID: 1, X: 100, Y: 80, Visible: true,
//	})
//
// Inside an [ebiten.Game]:
//
//	func (g *Game) Update() error        { g.stage.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) {
//		g.stage.RenderSprites(s, screenW, screenH)
//		g.stage.RenderImages(s, screenW, screenH)
//	}
//
// # Rendering model
//
// Sprite definitions are fixed-size indexed-brightness grids. Rasterizing a
// grid into pixels is the expensive step, so the render pass groups visible
// instances by definition, rasterizes each definition at most once (the
// result is cached until the definition is replaced), paints it onto a pooled
// scratch surface, and stamps that surface once per instance. The pass is a
// no-op while the sprite dirty flag is clear.
//
// Image objects are whole raster images loaded asynchronously; they become
// drawable only after their decode completes. Call [Stage.Update] once per
// tick to apply finished loads on the command thread.
//
// [Ebitengine]: https://ebitengine.org
package spritecache
