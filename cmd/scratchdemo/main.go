// Command scratchdemo exercises the scratch-off core headlessly: it builds a
// procedural overlay and brush, drags a pointer diagonally across the card,
// and writes the scratched overlay to a PNG.
package main

import (
	"flag"
	"image/color"
	"log"
	"math"

	"github.com/gogpu/scratch"
)

func main() {
	var (
		width     = flag.Int("width", 512, "overlay width in pixels")
		height    = flag.Int("height", 320, "overlay height in pixels")
		brushSize = flag.Int("brush", 48, "brush diameter in pixels")
		threshold = flag.Float64("threshold", 30, "reveal threshold percentage")
		output    = flag.String("output", "scratched.png", "output file")
	)
	flag.Parse()

	overlay := scratch.NewOpaquePixmap(*width, *height, color.RGBA{R: 0xB0, G: 0xB0, B: 0xB8, A: 0xFF})
	brush := makeRadialBrush(*brushSize)

	revealed := false
	w, err := scratch.New(overlay, brush,
		scratch.Bounds{X: 0, Y: 0, Width: float64(*width)},
		scratch.WithThreshold(*threshold),
		scratch.WithRevealFunc(func() { revealed = true }),
	)
	if err != nil {
		log.Fatalf("Failed to create widget: %v", err)
	}
	defer w.Close()

	// Drag a zig-zag stroke across the card. The interpolator fills in the
	// gaps between these sparse samples.
	w.PointerDown(scratch.Pt(20, 30))
	for i := 1; i <= 12; i++ {
		x := float64(*width) * float64(i) / 12
		y := float64(*height)/2 + float64(*height)/3*math.Sin(float64(i))
		w.PointerMove(scratch.Pt(x, y))
	}
	w.PointerUp()

	log.Printf("Erased %.1f%% of the overlay (threshold %.1f%%, revealed=%v)",
		w.Progress(), *threshold, revealed)

	if err := overlay.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Scratched overlay saved to %s (%dx%d)", *output, *width, *height)
}

// makeRadialBrush builds a circular stamp whose alpha falls off linearly
// from opaque at the center to transparent at the rim.
func makeRadialBrush(size int) *scratch.Pixmap {
	brush := scratch.NewPixmap(size, size)
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			d := math.Sqrt(dx*dx+dy*dy) / r
			if d >= 1 {
				continue
			}
			a := uint8(math.Round(255 * (1 - d)))
			brush.SetPixel(x, y, color.RGBA{R: a, G: a, B: a, A: a})
		}
	}
	return brush
}
