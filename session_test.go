package scratch

import "testing"

func TestStartSession_Anchors(t *testing.T) {
	bounds := Bounds{X: 40, Y: 30, Width: 200}
	s := startSession(Pt(100, 80), bounds)

	if s.origin != Pt(100, 80) {
		t.Errorf("origin = %v, want (100, 80)", s.origin)
	}
	if s.offsetOrigin != Pt(60, 50) {
		t.Errorf("offsetOrigin = %v, want (60, 50)", s.offsetOrigin)
	}
}

func TestNormalize_AtOrigin(t *testing.T) {
	s := startSession(Pt(100, 80), Bounds{X: 40, Y: 30, Width: 200})

	// With no movement, the normalized point is the overlay-local anchor
	// scaled into intrinsic pixel space.
	got := s.normalize(Pt(100, 80), 0.5)
	if got != Pt(30, 25) {
		t.Errorf("normalize(origin) = %v, want (30, 25)", got)
	}
}

func TestNormalize_DeltaFromOrigin(t *testing.T) {
	s := startSession(Pt(100, 80), Bounds{X: 40, Y: 30, Width: 200})

	// Move +20/+10 in device space: local = (60+20, 50+10), scaled by 2.
	got := s.normalize(Pt(120, 90), 2)
	if got != Pt(160, 120) {
		t.Errorf("normalize = %v, want (160, 120)", got)
	}
}

func TestNormalize_AnchoredNotRederived(t *testing.T) {
	// The projection depends only on the recorded anchors and the current
	// raw point, so wandering away and back lands exactly on the start.
	s := startSession(Pt(10, 10), Bounds{X: 0, Y: 0, Width: 100})

	first := s.normalize(Pt(10, 10), 1.5)
	s.normalize(Pt(500, -300), 1.5)
	back := s.normalize(Pt(10, 10), 1.5)
	if first != back {
		t.Errorf("returning to the origin gave %v, want %v", back, first)
	}
}

func TestScaleFor(t *testing.T) {
	cases := []struct {
		intrinsic int
		rendered  float64
		want      float64
	}{
		{100, 200, 0.5},
		{100, 50, 2},
		{100, 100, 1},
		{100, 0, 0},  // not laid out yet
		{100, -5, 0}, // degenerate layout treated the same
	}
	for _, c := range cases {
		if got := scaleFor(c.intrinsic, c.rendered); got != c.want {
			t.Errorf("scaleFor(%d, %v) = %v, want %v", c.intrinsic, c.rendered, got, c.want)
		}
	}
}
