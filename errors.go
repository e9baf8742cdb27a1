package scratch

import "errors"

// Common errors returned by Widget construction and asset loading.
//
// Construction errors are terminal: a Widget that failed to construct stays
// inert and must be re-created by the caller. There is no retry policy.
var (
	// ErrNilSurface is returned when the overlay or brush surface is nil.
	ErrNilSurface = errors.New("scratch: nil surface")

	// ErrInvalidThreshold is returned when the reveal threshold is outside [0, 100].
	ErrInvalidThreshold = errors.New("scratch: reveal threshold outside [0, 100]")

	// ErrNilRevealFunc is returned when WithRevealFunc is given a nil callback.
	ErrNilRevealFunc = errors.New("scratch: nil reveal callback")

	// ErrInvalidBounds is returned when the container bounds are malformed.
	// A rendered width of zero is not an error: it means the container has
	// not been laid out yet, and drawing is deferred until a resize reports
	// a positive width.
	ErrInvalidBounds = errors.New("scratch: invalid container bounds")

	// ErrInvalidInterval is returned when a frame or debounce interval is
	// not positive.
	ErrInvalidInterval = errors.New("scratch: interval must be positive")

	// ErrClosed is returned when operations are attempted on a closed widget.
	ErrClosed = errors.New("scratch: widget is closed")

	// ErrAssetLoad is returned when an overlay or brush image cannot be
	// read or decoded. The underlying cause is attached with %w wrapping.
	ErrAssetLoad = errors.New("scratch: asset load failed")
)
