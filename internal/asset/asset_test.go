package asset

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeBytes(t *testing.T) {
	img, err := DecodeBytes(pngBytes(t, 5, 7))
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 5 || b.Dy() != 7 {
		t.Errorf("decoded %dx%d, want 5x7", b.Dx(), b.Dy())
	}
}

func TestDecodeBytes_Empty(t *testing.T) {
	if _, err := DecodeBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("err = %v, want ErrEmptyData", err)
	}
}

func TestDecodeBytes_Garbage(t *testing.T) {
	if _, err := DecodeBytes([]byte("definitely not pixels")); err == nil {
		t.Error("expected decode error for garbage input")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	if err := os.WriteFile(path, pngBytes(t, 3, 3), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 3 {
		t.Errorf("width = %d, want 3", img.Bounds().Dx())
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 100, G: 100, B: 100, A: 255})
		}
	}

	dst := Scale(src, 4, 2)
	b := dst.Bounds()
	if b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("scaled to %dx%d, want 4x2", b.Dx(), b.Dy())
	}
	if got := dst.RGBAAt(2, 1).A; got != 255 {
		t.Errorf("alpha = %d, want 255", got)
	}
}
