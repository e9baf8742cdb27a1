package scratch

// revealAlphaCutoff is the binary classification boundary for the reveal
// scan: overlay pixels with alpha at or below it count as erased. A fixed
// cutoff trades alpha-weighted precision for a single O(pixels) pass.
const revealAlphaCutoff = 128

// erasedFraction scans the overlay's alpha channel and returns the
// percentage of pixels classified as erased, in [0, 100].
func erasedFraction(overlay *Pixmap) float64 {
	total := overlay.width * overlay.height
	if total == 0 {
		return 0
	}
	count := 0
	data := overlay.data
	for i := 3; i < len(data); i += 4 {
		if data[i] <= revealAlphaCutoff {
			count++
		}
	}
	return float64(count) / float64(total) * 100
}

// checkReveal runs the reveal scan and flips the one-shot revealed state if
// the erased fraction has crossed the threshold. It returns the callback to
// invoke, or nil. The caller holds the widget lock; the callback must be
// invoked after releasing it.
//
// Once revealed is set it never reverts, and the scan is skipped entirely on
// later pointer-ups.
func (w *Widget) checkReveal() func() {
	if w.revealed {
		return nil
	}
	fraction := erasedFraction(w.overlay)
	if fraction < w.threshold {
		return nil
	}
	w.revealed = true
	Logger().Info("scratch: reveal threshold crossed",
		"fraction", fraction, "threshold", w.threshold)
	return w.onRevealed
}
