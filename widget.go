package scratch

import (
	"fmt"
	"image"
	"math"
	"sync"
	"time"
)

// Default configuration values.
const (
	// DefaultThreshold is the erased percentage at which the reveal
	// callback fires unless overridden with WithThreshold.
	DefaultThreshold = 50.0

	// DefaultFrameInterval approximates a 60 Hz display refresh.
	DefaultFrameInterval = time.Second / 60

	// DefaultResizeDebounce is how long resize input must quiesce before
	// the scale factor is recomputed.
	DefaultResizeDebounce = 100 * time.Millisecond
)

// Option configures a Widget during creation.
//
// Example:
//
//	w, err := scratch.New(overlay, brush, bounds,
//		scratch.WithThreshold(75),
//		scratch.WithRevealFunc(onDone),
//	)
type Option func(*widgetOptions)

type widgetOptions struct {
	threshold      float64
	onRevealed     func()
	revealFuncSet  bool
	frameInterval  time.Duration
	resizeDebounce time.Duration
}

func defaultWidgetOptions() widgetOptions {
	return widgetOptions{
		threshold:      DefaultThreshold,
		frameInterval:  DefaultFrameInterval,
		resizeDebounce: DefaultResizeDebounce,
	}
}

// WithThreshold sets the reveal threshold as a percentage of overlay pixels
// that must be erased, in [0, 100]. Values outside that range cause New to
// fail with ErrInvalidThreshold.
func WithThreshold(percent float64) Option {
	return func(o *widgetOptions) {
		o.threshold = percent
	}
}

// WithRevealFunc sets the callback invoked exactly once when the erased
// fraction crosses the threshold. The callback receives no arguments and
// runs synchronously on the goroutine that called PointerUp. A nil callback
// causes New to fail with ErrNilRevealFunc.
func WithRevealFunc(fn func()) Option {
	return func(o *widgetOptions) {
		o.onRevealed = fn
		o.revealFuncSet = true
	}
}

// WithFrameInterval sets the paint drain cadence. The default approximates
// 60 Hz. Must be positive.
func WithFrameInterval(d time.Duration) Option {
	return func(o *widgetOptions) {
		o.frameInterval = d
	}
}

// WithResizeDebounce sets how long resize notifications must quiesce before
// the scale factor is recomputed from the latest width. Must be positive.
func WithResizeDebounce(d time.Duration) Option {
	return func(o *widgetOptions) {
		o.resizeDebounce = d
	}
}

// Widget is one scratch-off instance. It owns the overlay and brush
// surfaces, the paint queue, and the frame loop that drains it.
//
// All methods are safe for concurrent use. The overlay is written only by
// the erase drain (frame loop or the residual drain on pointer-up) and read
// by reveal scans and snapshots, all under the widget lock.
type Widget struct {
	mu sync.Mutex

	overlay *Pixmap
	brush   *Pixmap

	bounds Bounds
	scale  float64 // 0 while layout is unknown

	queue   paintQueue
	interp  interpolator
	session *pointerSession

	threshold  float64
	onRevealed func()
	revealed   bool

	resizeDebounce time.Duration
	resizeTimer    *time.Timer
	pendingWidth   float64

	frameInterval time.Duration
	stopChan      chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup
	closed        bool
}

// New creates a Widget erasing overlay with brush. bounds places the overlay
// in the input device's viewport space; a bounds.Width of zero defers all
// drawing until Resize reports a laid-out width.
//
// Configuration is validated up front and never retried: an error here means
// the widget was not created and no resources are held.
//
// The returned Widget runs a frame goroutine until Close is called.
func New(overlay, brush *Pixmap, bounds Bounds, opts ...Option) (*Widget, error) {
	if overlay == nil || brush == nil {
		return nil, ErrNilSurface
	}
	if overlay.width <= 0 || overlay.height <= 0 || brush.width <= 0 || brush.height <= 0 {
		return nil, fmt.Errorf("%w: surfaces must have positive dimensions", ErrNilSurface)
	}

	o := defaultWidgetOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.threshold < 0 || o.threshold > 100 || math.IsNaN(o.threshold) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, o.threshold)
	}
	if o.revealFuncSet && o.onRevealed == nil {
		return nil, ErrNilRevealFunc
	}
	if o.frameInterval <= 0 {
		return nil, fmt.Errorf("%w: frame interval %v", ErrInvalidInterval, o.frameInterval)
	}
	if o.resizeDebounce <= 0 {
		return nil, fmt.Errorf("%w: resize debounce %v", ErrInvalidInterval, o.resizeDebounce)
	}
	if bounds.Width < 0 || math.IsNaN(bounds.Width) || math.IsInf(bounds.Width, 0) {
		return nil, fmt.Errorf("%w: rendered width %v", ErrInvalidBounds, bounds.Width)
	}

	w := &Widget{
		overlay:        overlay,
		brush:          brush,
		bounds:         bounds,
		threshold:      o.threshold,
		onRevealed:     o.onRevealed,
		resizeDebounce: o.resizeDebounce,
		frameInterval:  o.frameInterval,
		stopChan:       make(chan struct{}),
	}
	w.interp.minDist = float64(brush.width) / 2
	w.scale = scaleFor(overlay.width, bounds.Width)

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// scaleFor computes the intrinsic/rendered width ratio, or 0 when the
// rendered width is not yet known.
func scaleFor(intrinsicWidth int, renderedWidth float64) float64 {
	if renderedWidth <= 0 {
		return 0
	}
	return float64(intrinsicWidth) / renderedWidth
}

// PointerDown begins a pointer session at the raw viewport coordinate.
// Any previous session is replaced. Input arriving before the container has
// a laid-out width is dropped.
func (w *Widget) PointerDown(raw Point) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.scale <= 0 {
		Logger().Warn("scratch: pointer input dropped, container not laid out")
		return
	}
	w.session = startSession(raw, w.bounds)
	w.interp.reset()
	w.interp.addPoint(&w.queue, w.session.normalize(raw, w.scale), false)
}

// PointerMove extends the active pointer session to the raw viewport
// coordinate, enqueueing interpolated stamps along the way. A move with no
// active session is ignored.
func (w *Widget) PointerMove(raw Point) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.session == nil || w.scale <= 0 {
		return
	}
	w.interp.addPoint(&w.queue, w.session.normalize(raw, w.scale), true)
}

// PointerUp ends the active pointer session, applies any points still on
// the queue, and runs the reveal check. The reveal callback, if due, is
// invoked synchronously before PointerUp returns.
func (w *Widget) PointerUp() {
	w.mu.Lock()
	if w.closed || w.session == nil {
		w.mu.Unlock()
		return
	}
	w.session = nil
	w.interp.reset()

	// The frame loop may not have run since the last move; the reveal scan
	// must observe every queued stamp, so drain the residue here.
	w.applyQueueLocked()
	cb := w.checkReveal()
	w.mu.Unlock()

	if cb != nil {
		cb()
	}
}

// Resize notes a new rendered container width. Notifications are debounced:
// the scale factor is recomputed once, from the latest width, after resize
// input has quiesced for the configured delay.
func (w *Widget) Resize(renderedWidth float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pendingWidth = renderedWidth
	if w.resizeTimer != nil {
		w.resizeTimer.Stop()
	}
	w.resizeTimer = time.AfterFunc(w.resizeDebounce, w.applyResize)
}

// applyResize commits the most recent pending width. Runs on the debounce
// timer's goroutine.
func (w *Widget) applyResize() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.bounds.Width = w.pendingWidth
	w.scale = scaleFor(w.overlay.width, w.pendingWidth)
	Logger().Debug("scratch: scale recomputed",
		"renderedWidth", w.pendingWidth, "scale", w.scale)
}

// Revealed reports whether the reveal callback has fired.
func (w *Widget) Revealed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.revealed
}

// Progress returns the current erased percentage in [0, 100], using the
// same binary alpha classification as the reveal check. It does not affect
// the one-shot reveal state.
func (w *Widget) Progress() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return erasedFraction(w.overlay)
}

// Overlay returns the widget's overlay surface. The widget keeps mutating
// it; use Snapshot for a stable copy.
func (w *Widget) Overlay() *Pixmap {
	return w.overlay
}

// Snapshot returns a copy of the overlay's current contents for blitting.
func (w *Widget) Snapshot() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.overlay.ToImage()
}

// Close stops the frame loop and cancels any pending resize debounce.
// It blocks until the frame goroutine has exited, is idempotent, and must
// be called to avoid leaking the loop: the widget never stops on its own.
func (w *Widget) Close() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
	})
	w.wg.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	w.session = nil
	if w.resizeTimer != nil {
		w.resizeTimer.Stop()
		w.resizeTimer = nil
	}
}
