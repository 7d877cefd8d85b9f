// Package stipple is the editing core of a pixel-art sprite sheet editor for
// [Ebitengine].
//
// Stipple owns the parts of a sprite editor that are easy to get subtly
// wrong: the coordinate mapping between screen, canvas, and sheet pixels,
// click-versus-drag gesture disambiguation, stroke-grouped undo history, and
// clipboard operations that clip correctly at the sheet edges. Window
// chrome, dialogs, and file management live outside the core and talk to it
// through small interfaces.
//
// # Quick start
//
// Create a document with one or more sheets, wrap it in an [Editor], and
// feed it pointer samples from your input layer:
//
//	sheet := stipple.NewSheet("hero", stipple.Sheet128)
//	ed := stipple.NewEditor(stipple.NewDocument(sheet))
//
//	ed.OnCellClick = func(x, y int) { ... }
//	ed.SheetSurface().Pointer.Down(sample)
//
// For a ready-made Ebitengine front end, use [SheetRenderer] together with
// [PointerSource]:
//
//	renderer := stipple.NewSheetRenderer(ed)
//	source := stipple.NewPointerSource(region, ed.CellSurface().Pointer)
//	// in your Update: source.Poll()
//	// in your Draw:   renderer.Draw(screen, stipple.SurfaceCell)
//
// # Coordinate spaces
//
// Four coordinate spaces appear in the API and are never mixed implicitly:
//
//   - screen: raw pointer coordinates from the windowing layer
//   - canvas: drawing surface pixels (screen times the device ratio)
//   - sheet:  logical sheet pixels holding palette indices
//   - cell:   integer CellSize-aligned block coordinates
//
// [Viewport] owns every conversion between them. The device ratio (screen to
// canvas) is deliberately independent of the content zoom scale.
//
// # Undo model
//
// Mutations are grouped into strokes: one continuous pencil drag, one paste,
// one selection move. [History] stores a bounded stack of sheet-tagged
// strokes per document, so undo works across sheet switches without ambient
// shared state.
//
// # Extras
//
// PNG export (via [gg]), image import with palette quantization, an OS
// clipboard bridge, animated viewport scrolling (via [gween]), and an ECS
// event adapter (via [Donburi] in stipple/ecs) round out the core.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/fogleman/gg
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package stipple
