// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fynescratch

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/scratch"
)

// Card is a Fyne widget wrapping one scratch-off core instance.
//
// Mouse presses and drags scratch the overlay; touch drags work through the
// same drag path. The widget keeps the core's scale factor in sync with its
// layout size, so the overlay may be displayed at any size without breaking
// pointer-to-pixel mapping.
type Card struct {
	widget.BaseWidget

	core     *scratch.Widget
	dragging bool
}

// interface guards
var (
	_ fyne.Widget       = (*Card)(nil)
	_ fyne.Draggable    = (*Card)(nil)
	_ desktop.Mouseable = (*Card)(nil)
)

// New creates a Card from the given surface pair. Options are passed through
// to the scratch core unchanged.
//
// The core starts with an unknown layout width; no scratching happens until
// Fyne has laid the widget out at least once.
func New(surfaces *scratch.Surfaces, opts ...scratch.Option) (*Card, error) {
	core, err := scratch.New(surfaces.Overlay, surfaces.Brush, scratch.Bounds{}, opts...)
	if err != nil {
		return nil, err
	}
	c := &Card{core: core}
	c.ExtendBaseWidget(c)
	return c, nil
}

// Core returns the underlying scratch widget, e.g. to poll Progress.
func (c *Card) Core() *scratch.Widget {
	return c.core
}

// Close stops the core's frame loop. The widget must not be used afterward.
func (c *Card) Close() {
	c.core.Close()
}

// MouseDown begins a scratch stroke.
func (c *Card) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	c.dragging = true
	c.core.PointerDown(scratch.Pt(float64(e.Position.X), float64(e.Position.Y)))
	c.Refresh()
}

// MouseUp ends a scratch stroke and triggers the reveal check.
func (c *Card) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !c.dragging {
		return
	}
	c.dragging = false
	c.core.PointerUp()
	c.Refresh()
}

// Dragged extends the stroke. On touch devices drags arrive without a prior
// MouseDown, so the first drag event opens the session.
func (c *Card) Dragged(e *fyne.DragEvent) {
	p := scratch.Pt(float64(e.Position.X), float64(e.Position.Y))
	if !c.dragging {
		c.dragging = true
		c.core.PointerDown(p)
	} else {
		c.core.PointerMove(p)
	}
	c.Refresh()
}

// DragEnd ends the stroke and triggers the reveal check.
func (c *Card) DragEnd() {
	if !c.dragging {
		return
	}
	c.dragging = false
	c.core.PointerUp()
	c.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (c *Card) CreateRenderer() fyne.WidgetRenderer {
	r := &cardRenderer{card: c}
	r.raster = canvas.NewRaster(func(w, h int) image.Image {
		return c.core.Snapshot()
	})
	return r
}

type cardRenderer struct {
	card   *Card
	raster *canvas.Raster
}

func (r *cardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *cardRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.card.core.Resize(float64(size.Width))
}

func (r *cardRenderer) MinSize() fyne.Size {
	// Keep the overlay's aspect ratio at a modest default footprint.
	overlay := r.card.core.Overlay()
	const minWidth = 160
	h := float32(minWidth) * float32(overlay.Height()) / float32(overlay.Width())
	return fyne.NewSize(minWidth, h)
}

func (r *cardRenderer) Refresh() {
	canvas.Refresh(r.raster)
}

func (r *cardRenderer) Destroy() {}

// MouseIn implements desktop.Mouseable.
func (c *Card) MouseIn(*desktop.MouseEvent) {}

// MouseOut implements desktop.Mouseable.
func (c *Card) MouseOut() {}

// MouseMoved implements desktop.Mouseable. Hover without a pressed button
// does not scratch.
func (c *Card) MouseMoved(*desktop.MouseEvent) {}
