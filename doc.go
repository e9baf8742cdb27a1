// Package scratch implements an interactive scratch-off widget core.
//
// # Overview
//
// scratch erases an opaque overlay image along a pointer path, revealing
// whatever the host application renders beneath it, and fires a one-shot
// callback once a configurable fraction of the overlay has been removed.
// The package is a pure CPU raster core: it owns two pixel buffers (the
// erasable overlay and the brush stamp), turns raw viewport pointer
// coordinates into overlay-local ones, interpolates fast pointer motion so
// strokes stay continuous, and applies the brush with destination-out
// alpha compositing on a fixed frame cadence.
//
// # Quick Start
//
//	import "github.com/gogpu/scratch"
//
//	surfaces, err := scratch.LoadSurfaces("overlay.png", "brush.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	w, err := scratch.New(surfaces.Overlay, surfaces.Brush,
//		scratch.Bounds{X: 0, Y: 0, Width: 512},
//		scratch.WithThreshold(60),
//		scratch.WithRevealFunc(func() { fmt.Println("revealed!") }),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer w.Close()
//
//	// Feed raw pointer events in viewport coordinates:
//	w.PointerDown(scratch.Pt(120, 80))
//	w.PointerMove(scratch.Pt(190, 140))
//	w.PointerUp()
//
//	// Blit the mutated overlay however the host renders:
//	img := w.Snapshot()
//
// Asset fetching, cross-origin negotiation, and display attachment are not
// part of the core. Decoding and scaling helpers live in internal/asset and
// are surfaced through LoadSurfaces; a ready-made display adapter for Fyne
// lives in integration/fynescratch.
//
// # Concurrency
//
// A Widget is safe for concurrent use: pointer events, resize notifications,
// and snapshots may arrive from any goroutine. The paint drain runs on an
// internal frame goroutine until Close is called. Close is idempotent and
// guarantees the frame loop has stopped before it returns.
package scratch
