package region

import (
	"fmt"

	"github.com/arl/goregion/box"
	"github.com/arl/goregion/buildctx"
)

// Region is a 2-D integer region: an arbitrary orthogonal planar subset of
// the integer grid, stored as a sorted, maximally-coalesced list of
// non-touching, band-uniform rectangles (see spec in package doc).
//
// The zero value is an empty Region ready to use; New returns a pointer to
// one, FromRectangle and FromBox one holding a rectangle. A Region owns its storage exclusively: there is no sharing of
// the backing array across instances, Clone deep-copies.
//
// Concurrent mutation of a single Region is undefined. Two distinct Region
// instances may be mutated concurrently without data races: there is no
// global or thread-local state, each Region carries its own scratch buffer
// (see combine).
type Region struct {
	extent box.Box
	rects  []int // flat quadruples (y1,y2,x1,x2), stride 4, band-major order

	// scratch is reused across successive combine calls on this Region so
	// that a caller doing many operations in a row amortises storage
	// growth instead of reallocating every time.
	scratch []int

	// ctx, if non-nil, receives progress logging and timing for the
	// operations run on this Region. Nil by default: logging and timing
	// cost nothing unless a caller opts in with SetContext.
	ctx *buildctx.Context
}

// SetContext attaches ctx to r: every subsequent Union/Intersect/Subtract/Xor
// call that runs the band walker logs a progress message and times itself
// against it (calls settled by a fast path log nothing), and Collapse times
// itself without logging. Pass nil to detach.
func (r *Region) SetContext(ctx *buildctx.Context) {
	r.ctx = ctx
}

// New returns an empty Region.
func New() *Region {
	return &Region{}
}

// FromRectangle returns a Region containing exactly rect. An empty rect
// yields an empty Region.
func FromRectangle(rect box.Rectangle) *Region {
	r := New()
	r.SetRect(rect)
	return r
}

// FromBox returns a Region containing exactly the rectangle described by b.
func FromBox(b box.Box) *Region {
	return FromRectangle(b.ToRectangle())
}

// Clone returns a deep copy of r: the two regions share no storage.
func (r *Region) Clone() *Region {
	cp := &Region{extent: r.extent}
	cp.rects = append(cp.rects, r.rects...)
	return cp
}

// Set replaces r's contents with a copy of other.
func (r *Region) Set(other *Region) {
	if r == other {
		return
	}
	r.extent = other.extent
	r.rects = append(r.rects[:0], other.rects...)
	r.assertConsistent()
}

// SetRect replaces r's contents with exactly rect. An empty rect clears r.
func (r *Region) SetRect(rect box.Rectangle) {
	if rect.IsEmpty() {
		r.Clear()
		return
	}
	b := rect.Box()
	r.rects = append(r.rects[:0], b.Y1, b.Y2, b.X1, b.X2)
	r.extent = b
	r.assertConsistent()
}

// Clear empties r.
func (r *Region) Clear() {
	r.rects = r.rects[:0]
	r.extent = box.ZB
}

// IsEmpty reports whether r contains no points.
func (r *Region) IsEmpty() bool {
	return len(r.rects) == 0
}

// Offset translates every rectangle and the extent by (dx,dy). Translation
// preserves order and equality of coordinates, so all structural invariants
// survive it for free.
func (r *Region) Offset(dx, dy int) {
	for i := 0; i+stride <= len(r.rects); i += stride {
		r.rects[i+0] += dy
		r.rects[i+1] += dy
		r.rects[i+2] += dx
		r.rects[i+3] += dx
	}
	r.extent = r.extent.Offset(dx, dy)
	r.assertConsistent()
}

// Extent returns the bounding Box of r; the zero Box when r is empty.
func (r *Region) Extent() box.Box {
	return r.extent
}

// RectCount returns the number of rectangles stored in r.
func (r *Region) RectCount() int {
	return len(r.rects) / stride
}

// Rects returns r's rectangles in band order (ascending y1, then ascending
// y2) and, within a band, ascending x1. This order is part of the contract
// (spec §6) and may be depended on by callers and tests.
func (r *Region) Rects() []box.Rectangle {
	n := r.RectCount()
	out := make([]box.Rectangle, 0, n)
	rl := rectList(r.rects)
	for i := 0; i < n; i++ {
		out = append(out, box.NewBox(rl.x1(i), rl.y1(i), rl.x2(i), rl.y2(i)).ToRectangle())
	}
	return out
}

// Collapse replaces r's storage with a single rectangle equal to its
// extent. This is a lossy, escape-hatch operation: the result is always a
// superset of r (R subset-of R.Collapse()), never an equal region unless r
// was already a single rectangle.
func (r *Region) Collapse() {
	if r.IsEmpty() {
		return
	}
	if r.ctx != nil {
		r.ctx.StartTimer(buildctx.TimerCollapse)
		defer r.ctx.StopTimer(buildctx.TimerCollapse)
	}
	e := r.extent
	r.rects = append(r.rects[:0], e.Y1, e.Y2, e.X1, e.X2)
	r.assertConsistent()
}

// Equal reports whether r and other describe identical extents and
// identical rectangle sequences. Because the structural invariants force a
// canonical form, set-equal regions are representation-equal; Equal never
// needs to compare point sets directly.
func (r *Region) Equal(other *Region) bool {
	if other == nil {
		return r.IsEmpty()
	}
	if r.extent != other.extent {
		return false
	}
	if len(r.rects) != len(other.rects) {
		return false
	}
	for i, v := range r.rects {
		if other.rects[i] != v {
			return false
		}
	}
	return true
}

// String returns a debug representation of r. Its format is not part of any
// contract.
func (r *Region) String() string {
	return fmt.Sprintf("Region{extent:%v, rects:%d}", r.extent, r.RectCount())
}

// updateExtent recomputes r.extent from r.rects in O(n). Band ordering
// (invariant 2) guarantees the first band holds the minimal y1 and the last
// band the maximal y2; x1/x2 still need a full scan.
func (r *Region) updateExtent() {
	n := r.RectCount()
	if n == 0 {
		r.extent = box.ZB
		return
	}
	rl := rectList(r.rects)
	e := box.Box{X1: rl.x1(0), Y1: rl.y1(0), X2: rl.x2(0), Y2: rl.y2(n - 1)}
	for i := 1; i < n; i++ {
		if x1 := rl.x1(i); x1 < e.X1 {
			e.X1 = x1
		}
		if x2 := rl.x2(i); x2 > e.X2 {
			e.X2 = x2
		}
	}
	r.extent = e
}

// combineWith runs the band walker against other and swaps the result into
// r, recomputing the extent and (in debug builds) asserting the structural
// invariants. The previous r.rects becomes the next scratch buffer, so
// repeated operations on the same Region reuse storage instead of
// reallocating.
func (r *Region) combineWith(other *Region, op Operation) {
	if r.ctx != nil {
		r.ctx.StartTimer(buildctx.TimerCombine)
		r.ctx.Progressf("combine: %s of %d and %d rectangles", op, r.RectCount(), other.RectCount())
	}
	out := combine(rectList(r.rects), rectList(other.rects), r.scratch, op)
	r.scratch = r.rects
	r.rects = out
	r.updateExtent()
	r.assertConsistent()
	if r.ctx != nil {
		r.ctx.StopTimer(buildctx.TimerCombine)
	}
}
