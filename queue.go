package scratch

import "math"

// paintQueue holds overlay-local points awaiting erase application.
// Append-only at the tail, drained wholesale once per frame. The zero value
// is ready to use. Callers synchronize access; the queue itself does not.
type paintQueue struct {
	points []Point
}

// push appends a point to the tail.
func (q *paintQueue) push(p Point) {
	q.points = append(q.points, p)
}

// drain returns all queued points in FIFO order and resets the queue.
// The returned slice is owned by the caller; the queue's backing array is
// retained for reuse.
func (q *paintQueue) drain() []Point {
	pts := q.points
	q.points = q.points[len(q.points):]
	return pts
}

// len reports the number of queued points.
func (q *paintQueue) len() int {
	return len(q.points)
}

// interpolator fills gaps between sparse pointer samples so fast motion does
// not leave holes in the erased path. minDist is half the brush width, which
// keeps consecutive stamps overlapping.
type interpolator struct {
	minDist float64
	last    Point
	hasLast bool
}

// reset clears the recorded last point. Called when a pointer session ends
// so the next stroke does not tween across the gap.
func (ip *interpolator) reset() {
	ip.hasLast = false
}

// addPoint enqueues p, preceded by evenly spaced intermediate points when
// tween is set and the distance from the previous point exceeds minDist.
// The segment is split into ceil(dist/minDist) equal parts and each interior
// point is enqueued in order, rounded to integral pixel coordinates. The
// final point always goes on the queue and becomes the new anchor.
//
// Linear interpolation is deliberate: minDist bounds the largest visible gap,
// so arcs or splines would buy nothing here.
func (ip *interpolator) addPoint(q *paintQueue, p Point, tween bool) {
	if tween && ip.hasLast {
		dist := ip.last.Distance(p)
		if dist > ip.minDist {
			n := int(math.Ceil(dist / ip.minDist))
			for i := 1; i < n; i++ {
				t := float64(i) / float64(n)
				q.push(ip.last.Lerp(p, t).Round())
			}
		}
	}
	rounded := p.Round()
	q.push(rounded)
	ip.last = rounded
	ip.hasLast = true
}
