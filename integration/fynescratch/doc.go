// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fynescratch attaches a scratch widget core to a Fyne window.
//
// The package owns the display plumbing the core treats as an external
// collaborator: it feeds Fyne mouse and drag events into the core as raw
// pointer coordinates, reports layout size changes so the core can correct
// its scale factor, and blits the mutated overlay back through a
// canvas.Raster. The data flow is:
//
//	fyne events -> scratch.Widget (erase) -> Snapshot -> canvas.Raster
//
// # Usage
//
//	surfaces, err := scratch.LoadSurfaces("overlay.png", "brush.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//	card := fynescratch.New(surfaces,
//		scratch.WithThreshold(60),
//		scratch.WithRevealFunc(func() { fmt.Println("won!") }),
//	)
//	defer card.Close()
//
//	win.SetContent(container.NewStack(prize, card))
//
// Place the widget above the content it hides; as the user scratches, the
// overlay turns transparent and the content beneath shows through.
//
// # Thread Safety
//
// Fyne delivers events on its driver goroutine; the core widget is
// internally synchronized, so no extra locking is needed here.
package fynescratch
