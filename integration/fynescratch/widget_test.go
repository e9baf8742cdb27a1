// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynescratch

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/gogpu/scratch"
)

func testSurfaces(t *testing.T) *scratch.Surfaces {
	t.Helper()
	return &scratch.Surfaces{
		Overlay: scratch.NewOpaquePixmap(100, 100, color.RGBA{R: 120, G: 120, B: 120}),
		Brush:   scratch.NewOpaquePixmap(10, 10, color.RGBA{R: 255, G: 255, B: 255}),
	}
}

func mouseEvent(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:       desktop.MouseButtonPrimary,
	}
}

func TestNew(t *testing.T) {
	test.NewApp()
	card, err := New(testSurfaces(t))
	if err != nil {
		t.Fatal(err)
	}
	defer card.Close()

	if card.Core() == nil {
		t.Fatal("Core() returned nil")
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	if _, err := New(testSurfaces(t), scratch.WithThreshold(150)); err == nil {
		t.Error("expected configuration error to pass through")
	}
}

func TestCard_ScratchStroke(t *testing.T) {
	test.NewApp()
	card, err := New(testSurfaces(t), scratch.WithResizeDebounce(5*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer card.Close()

	win := test.NewWindow(card)
	defer win.Close()
	win.Resize(fyne.NewSize(100, 100))

	// Layout reaches the core through a debounce; keep stroking until the
	// scale factor has landed and erasure shows up.
	deadline := time.Now().Add(time.Second)
	for card.Core().Progress() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("no erasure observed before deadline")
		}
		card.MouseDown(mouseEvent(50, 50))
		card.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(60, 60)}})
		card.DragEnd()
		time.Sleep(time.Millisecond)
	}
}

func TestCard_SecondaryButtonIgnored(t *testing.T) {
	test.NewApp()
	card, err := New(testSurfaces(t), scratch.WithResizeDebounce(5*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer card.Close()

	e := mouseEvent(50, 50)
	e.Button = desktop.MouseButtonSecondary
	card.MouseDown(e)
	card.MouseUp(e)

	if got := card.Core().Progress(); got != 0 {
		t.Errorf("Progress() = %v after secondary-button click, want 0", got)
	}
}

func TestCardRenderer_MinSizeKeepsAspect(t *testing.T) {
	test.NewApp()
	card, err := New(&scratch.Surfaces{
		Overlay: scratch.NewOpaquePixmap(200, 100, color.RGBA{}),
		Brush:   scratch.NewOpaquePixmap(10, 10, color.RGBA{}),
	})
	if err != nil {
		t.Fatal(err)
	}
	defer card.Close()

	min := test.WidgetRenderer(card).MinSize()
	if min.Width != 160 || min.Height != 80 {
		t.Errorf("MinSize = %v, want 160x80", min)
	}
}
