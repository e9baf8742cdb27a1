package scratch

// Bounds describes where the overlay sits in the input device's coordinate
// space: the viewport position of its top-left corner and its rendered
// (layout) width. The rendered width may differ from the overlay's intrinsic
// pixel width; the ratio between the two is the scale factor applied during
// normalization.
//
// A Width of zero means the container has not been laid out yet. In that
// state the scale factor is undefined and pointer input is dropped until a
// resize reports a positive width.
type Bounds struct {
	X, Y  float64
	Width float64
}

// pointerSession is the transient state of one pointer interaction, created
// on pointer-down and discarded on pointer-up. At most one session is active
// at a time (single-pointer interaction model).
//
// Continuous motion stays anchored to the initial touch: the session records
// the device-space origin and its overlay-local translation once, and every
// subsequent move is projected as a delta from that origin. Re-deriving the
// overlay offset per event would accumulate rounding drift across input APIs
// that disagree about viewport geometry.
type pointerSession struct {
	origin       Point // first touch, device (viewport) space
	offsetOrigin Point // first touch, overlay-local space, unscaled
}

// startSession records the anchor points for a pointer-down at raw.
func startSession(raw Point, bounds Bounds) *pointerSession {
	return &pointerSession{
		origin:       raw,
		offsetOrigin: raw.Sub(Pt(bounds.X, bounds.Y)),
	}
}

// normalize projects a raw device-space point into the overlay's intrinsic
// pixel space: overlay-local anchor plus device-space delta, scaled by the
// intrinsic/rendered width ratio. scale must be positive.
func (s *pointerSession) normalize(raw Point, scale float64) Point {
	return s.offsetOrigin.Add(raw.Sub(s.origin)).Mul(scale)
}
