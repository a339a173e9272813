package region

import "github.com/arl/assertgo"

// assertConsistent checks every structural invariant and panics (in builds
// compiled with -tags debug) if any of them is violated. In ordinary
// builds github.com/arl/assertgo's assert.True is a no-op, so this costs a
// function call and the eagerly-evaluated boolean, never a panic.
func (r *Region) assertConsistent() {
	assert.True(r.isWellFormed(), "region %v is not well-formed", r)
	assert.True(r.isCoalesced(), "region %v has adjacent bands that should have merged", r)
	assert.True(r.isExtentCorrect(), "region %v extent %v does not match its rectangles", r, r.extent)
}

// isWellFormed checks invariants 1-4: non-degeneracy, band ordering, band
// uniformity and non-touching-within-band.
func (r *Region) isWellFormed() bool {
	rl := rectList(r.rects)
	n := rl.n()
	for i := 0; i < n; i++ {
		if rl.y2(i) <= rl.y1(i) || rl.x2(i) <= rl.x1(i) {
			return false
		}
		if i == 0 {
			continue
		}
		if rl.y1(i) < rl.y1(i-1) {
			return false
		}
		if rl.y1(i) == rl.y1(i-1) {
			if rl.y2(i) != rl.y2(i-1) || rl.x1(i) <= rl.x2(i-1) {
				return false
			}
		}
	}
	return true
}

// isCoalesced checks invariant 5: no two adjacent bands are both
// vertically contiguous and x-span-identical (if they were, they should
// have been merged into one band by coalesceBands).
func (r *Region) isCoalesced() bool {
	rl := rectList(r.rects)
	n := rl.n()
	for i := 0; i < n; {
		bandEnd := rl.bandEnd(i)
		if bandEnd >= n || rl.y2(i) != rl.y1(bandEnd) {
			i = bandEnd
			continue
		}
		nextEnd := rl.bandEnd(bandEnd)
		if nextEnd-bandEnd == bandEnd-i {
			same := true
			for k := 0; k < bandEnd-i; k++ {
				if rl.x1(i+k) != rl.x1(bandEnd+k) || rl.x2(i+k) != rl.x2(bandEnd+k) {
					same = false
					break
				}
			}
			if same {
				return false
			}
		}
		i = bandEnd
	}
	return true
}

// isExtentCorrect checks invariant 6 by recomputing the extent from scratch
// and comparing.
func (r *Region) isExtentCorrect() bool {
	saved := r.extent
	r.updateExtent()
	ok := r.extent == saved
	r.extent = saved
	return ok
}
