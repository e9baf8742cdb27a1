package scratch

import (
	"image/color"
	"testing"
)

func TestErasedFraction_Empty(t *testing.T) {
	if got := erasedFraction(NewPixmap(0, 0)); got != 0 {
		t.Errorf("fraction of empty overlay = %v, want 0", got)
	}
}

func TestErasedFraction_AllOpaque(t *testing.T) {
	if got := erasedFraction(opaqueOverlay(10, 10)); got != 0 {
		t.Errorf("fraction = %v, want 0", got)
	}
}

func TestErasedFraction_AllTransparent(t *testing.T) {
	if got := erasedFraction(NewPixmap(10, 10)); got != 100 {
		t.Errorf("fraction = %v, want 100", got)
	}
}

func TestErasedFraction_BinaryCutoff(t *testing.T) {
	// The classification is a hard cutoff at alpha 128: at or below counts
	// as erased, above does not, regardless of how close.
	cases := []struct {
		alpha uint8
		want  float64
	}{
		{0, 100},
		{128, 100},
		{129, 0},
		{255, 0},
	}
	for _, c := range cases {
		pm := NewPixmap(4, 4)
		pm.Fill(color.RGBA{A: c.alpha})
		if got := erasedFraction(pm); got != c.want {
			t.Errorf("alpha=%d: fraction = %v, want %v", c.alpha, got, c.want)
		}
	}
}

func TestErasedFraction_SingleStamp(t *testing.T) {
	// 100x100 opaque overlay, 10x10 opaque brush: one stamp erases ~1%.
	overlay := opaqueOverlay(100, 100)
	brush := solidBrush(10, 10)

	eraseStamp(overlay, brush, Pt(50, 50))

	if got := erasedFraction(overlay); got != 1.0 {
		t.Errorf("fraction after one 10x10 stamp = %v, want 1.0", got)
	}
}
