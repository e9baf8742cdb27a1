package scratch

import "math"

// div255 divides x by 255 using fast shift approximation.
//
// Formula: (x + 255) >> 8
//
// This is ~5x faster than integer division. The maximum error is +1 for
// some input values, which is imperceptible in alpha compositing.
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 using fast approximation.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// eraseStamp composites the brush onto the overlay centered at p using the
// Porter-Duff destination-out operator: D' = D * (1 - Sa). Only the brush's
// alpha mask participates; its color channels are ignored. Wherever the
// brush is opaque the overlay becomes fully transparent, partial brush
// alpha erodes the overlay proportionally, and repeated stamps at the same
// point are cumulative up to full transparency.
//
// Stamps that extend past the overlay edges are silently clipped.
func eraseStamp(overlay, brush *Pixmap, p Point) {
	bw := brush.width
	bh := brush.height
	x0 := int(math.Round(p.X)) - bw/2
	y0 := int(math.Round(p.Y)) - bh/2

	for by := 0; by < bh; by++ {
		oy := y0 + by
		if oy < 0 || oy >= overlay.height {
			continue
		}
		for bx := 0; bx < bw; bx++ {
			ox := x0 + bx
			if ox < 0 || ox >= overlay.width {
				continue
			}
			sa := brush.data[(by*bw+bx)*4+3]
			if sa == 0 {
				continue
			}
			i := (oy*overlay.width + ox) * 4
			if sa == 255 {
				overlay.data[i+0] = 0
				overlay.data[i+1] = 0
				overlay.data[i+2] = 0
				overlay.data[i+3] = 0
				continue
			}
			invSa := 255 - sa
			overlay.data[i+0] = mulDiv255(overlay.data[i+0], invSa)
			overlay.data[i+1] = mulDiv255(overlay.data[i+1], invSa)
			overlay.data[i+2] = mulDiv255(overlay.data[i+2], invSa)
			overlay.data[i+3] = mulDiv255(overlay.data[i+3], invSa)
		}
	}
}
