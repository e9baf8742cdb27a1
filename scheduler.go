package scratch

import "time"

// run is the frame loop: once per frame interval it drains the entire paint
// queue, applying each stamp in enqueue order. Input events push points at
// whatever rate the device produces them; a burst of moves collapses into a
// single catch-up pass here. The loop runs until Close.
func (w *Widget) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			w.drainFrame()
		}
	}
}

// drainFrame applies every queued point under the widget lock.
func (w *Widget) drainFrame() {
	w.mu.Lock()
	n := w.applyQueueLocked()
	w.mu.Unlock()

	if n > 0 {
		Logger().Debug("scratch: frame drained", "points", n)
	}
}

// applyQueueLocked drains the paint queue in FIFO order, stamping the brush
// at each point, and returns the number of points applied. Caller holds the
// widget lock.
func (w *Widget) applyQueueLocked() int {
	pts := w.queue.drain()
	for _, p := range pts {
		eraseStamp(w.overlay, w.brush, p)
	}
	return len(pts)
}
