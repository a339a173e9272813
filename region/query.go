package region

import "github.com/arl/goregion/box"

// IsInside reports whether the point (x,y) lies in r.
//
// Early-rejects on an empty region or a point outside the extent, then
// scans bands: bands entirely above the point (y2 <= y) are skipped, and
// the scan stops as soon as a band starts below the point (y1 > y), since
// band ordering guarantees no later band can contain it either.
func (r *Region) IsInside(x, y int) bool {
	if r.IsEmpty() || !r.extent.Contains(x, y) {
		return false
	}
	rl := rectList(r.rects)
	n := rl.n()
	for i := 0; i < n; {
		bandEnd := rl.bandEnd(i)
		if rl.y2(i) <= y {
			i = bandEnd
			continue
		}
		if rl.y1(i) > y {
			return false
		}
		for j := i; j < bandEnd; j++ {
			if rl.x1(j) <= x && x < rl.x2(j) {
				return true
			}
		}
		return false
	}
	return false
}

// IsInsideRect reports whether rect is entirely covered by r: every pixel
// of rect lies in some rectangle of r.
//
// The first covering band must contain rect's top row; each covering band must
// hold exactly one rectangle spanning rect's full width (invariant 4
// forbids two touching rectangles in a band, so a wider cover can never be
// split across two); and successive covering bands must be vertically
// contiguous until rect's bottom is reached. Any gap, any band whose single
// covering rectangle doesn't span the full width, or running off the end
// of the storage, means false.
func (r *Region) IsInsideRect(rect box.Rectangle) bool {
	if rect.IsEmpty() {
		return true
	}
	q := rect.Box()
	if r.IsEmpty() || !q.ContainedIn(r.extent) {
		return false
	}
	rl := rectList(r.rects)
	n := rl.n()

	i := 0
	for i < n && rl.y2(i) <= q.Y1 {
		i = rl.bandEnd(i)
	}
	if i >= n || rl.y1(i) > q.Y1 {
		return false
	}

	y := rl.y1(i)
	for y < q.Y2 {
		if i >= n || rl.y1(i) != y {
			return false
		}
		bandEnd := rl.bandEnd(i)
		covered := false
		for j := i; j < bandEnd; j++ {
			if rl.x1(j) <= q.X1 && q.X2 <= rl.x2(j) {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
		y = rl.y2(i)
		i = bandEnd
	}
	return true
}

// IsInsideOf reports whether r is entirely contained in rect: equivalent to
// (r - rect).IsEmpty(), and implemented exactly that way.
func (r *Region) IsInsideOf(rect box.Rectangle) bool {
	tmp := r.Clone()
	tmp.SubtractRect(rect)
	return tmp.IsEmpty()
}

// IsIntersecting reports whether r and other have a non-empty intersection.
func (r *Region) IsIntersecting(other *Region) bool {
	if r.IsEmpty() || other.IsEmpty() || !r.extent.Overlaps(other.extent) {
		return false
	}
	tmp := r.Clone()
	tmp.Intersect(other)
	return !tmp.IsEmpty()
}

// IsIntersectingRect is IsIntersecting with rect lifted into a transient
// single-rectangle Region.
func (r *Region) IsIntersectingRect(rect box.Rectangle) bool {
	return r.IsIntersecting(FromRectangle(rect))
}
