package scratch

import (
	"fmt"
	"image"

	"github.com/gogpu/scratch/internal/asset"
)

// Surfaces bundles the two raster buffers a widget needs: the erasable
// overlay and the brush stamp, each sized to its source image.
type Surfaces struct {
	Overlay *Pixmap
	Brush   *Pixmap
}

// NewSurfaces builds the surface pair from two pre-decoded images.
func NewSurfaces(overlay, brush image.Image) (*Surfaces, error) {
	if overlay == nil || brush == nil {
		return nil, ErrNilSurface
	}
	return &Surfaces{
		Overlay: FromImage(overlay),
		Brush:   FromImage(brush),
	}, nil
}

// LoadSurfaces decodes the overlay and brush images from the given file
// paths. Both loads run concurrently and LoadSurfaces returns only once
// both have finished, whichever order they complete in. If either fails,
// the error wraps ErrAssetLoad and names the offending path; the caller
// gets no partial pair.
//
// Supported formats: PNG, JPEG, GIF, WebP, BMP, TIFF.
func LoadSurfaces(overlayPath, brushPath string) (*Surfaces, error) {
	type result struct {
		img image.Image
		err error
	}

	load := func(path string, ch chan<- result) {
		img, err := asset.Load(path)
		ch <- result{img: img, err: err}
	}

	overlayCh := make(chan result, 1)
	brushCh := make(chan result, 1)
	go load(overlayPath, overlayCh)
	go load(brushPath, brushCh)

	overlayRes := <-overlayCh
	brushRes := <-brushCh

	if overlayRes.err != nil {
		return nil, fmt.Errorf("%w: overlay %q: %w", ErrAssetLoad, overlayPath, overlayRes.err)
	}
	if brushRes.err != nil {
		return nil, fmt.Errorf("%w: brush %q: %w", ErrAssetLoad, brushPath, brushRes.err)
	}

	return NewSurfaces(overlayRes.img, brushRes.img)
}
