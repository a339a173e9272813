package region

// nonOverlap1 emits A's current band, restricted to [top,bot), when B has
// no coverage over that strip at all. Union and Subtract keep A as-is;
// Intersect drops it (A without B intersected with nothing is nothing).
func nonOverlap1(buf *[]int, a rectList, start, end, top, bot int, op Operation) {
	switch op {
	case OpUnion, OpSubtract:
		emitBand(buf, top, bot, a, start, end)
	case OpIntersect:
	}
}

// nonOverlap2 emits B's current band, restricted to [top,bot), when A has
// no coverage over that strip. Only Union wants B's contribution here;
// Subtract is removing B from an absent A, Intersect has nothing to
// intersect with.
func nonOverlap2(buf *[]int, b rectList, start, end, top, bot int, op Operation) {
	switch op {
	case OpUnion:
		emitBand(buf, top, bot, b, start, end)
	case OpSubtract, OpIntersect:
	}
}

// overlap handles the strip [top,bot) where both A's and B's current bands
// apply, dispatching to the operation-specific merge of the two x-sorted
// rectangle runs. This is the only producer that ever looks at both bands
// simultaneously.
func overlap(buf *[]int, a rectList, ia, iaEnd int, b rectList, ib, ibEnd int, top, bot int, op Operation) {
	switch op {
	case OpUnion:
		overlapUnion(buf, a, ia, iaEnd, b, ib, ibEnd, top, bot)
	case OpSubtract:
		overlapSubtract(buf, a, ia, iaEnd, b, ib, ibEnd, top, bot)
	case OpIntersect:
		overlapIntersect(buf, a, ia, iaEnd, b, ib, ibEnd, top, bot)
	}
}

// overlapUnion merges A's and B's rectangles (both x-sorted within the
// band) into one x-sorted, non-touching run: whichever of the two current
// candidates has the smaller x1 is taken next, and if it touches or
// overlaps the rectangle just emitted (x1 <= previous x2) it extends that
// emission's x2 instead of starting a new one.
func overlapUnion(buf *[]int, a rectList, ia, iaEnd int, b rectList, ib, ibEnd int, top, bot int) {
	bandStart := len(*buf)
	for ia < iaEnd || ib < ibEnd {
		var x1, x2 int
		if ib >= ibEnd || (ia < iaEnd && a.x1(ia) <= b.x1(ib)) {
			x1, x2 = a.x1(ia), a.x2(ia)
			ia++
		} else {
			x1, x2 = b.x1(ib), b.x2(ib)
			ib++
		}
		if n := len(*buf); n > bandStart {
			lastX2 := (*buf)[n-1]
			if x1 <= lastX2 {
				if x2 > lastX2 {
					(*buf)[n-1] = x2
				}
				continue
			}
		}
		emitRect(buf, top, bot, x1, x2)
	}
}

// overlapSubtract computes A minus B for the strip, following the reference
// algorithm: a moving left edge x1 (initialised to the current A
// rectangle's x1) is pushed right by every B rectangle that eats into it;
// whatever of A lies to the left of the next B rectangle is emitted before
// the edge advances.
func overlapSubtract(buf *[]int, a rectList, ia, iaEnd int, b rectList, ib, ibEnd int, top, bot int) {
	if ia >= iaEnd {
		return
	}
	x1 := a.x1(ia)
	for ia < iaEnd && ib < ibEnd {
		switch {
		case b.x2(ib) <= x1:
			// this B rectangle ends at or before the live edge: irrelevant.
			ib++
		case b.x1(ib) <= x1:
			// B covers the live edge: push it to B's right edge.
			x1 = b.x2(ib)
			if x1 >= a.x2(ia) {
				ia++
				if ia < iaEnd {
					x1 = a.x1(ia)
				}
			} else {
				ib++
			}
		case b.x1(ib) < a.x2(ia):
			// B starts strictly inside the remaining A: emit the gap, then advance.
			emitRect(buf, top, bot, x1, b.x1(ib))
			x1 = b.x2(ib)
			if x1 >= a.x2(ia) {
				ia++
				if ia < iaEnd {
					x1 = a.x1(ia)
				}
			} else {
				ib++
			}
		default:
			// B starts at or past A's right edge: nothing more eats this A rectangle.
			emitRect(buf, top, bot, x1, a.x2(ia))
			ia++
			if ia < iaEnd {
				x1 = a.x1(ia)
			}
		}
	}
	for ia < iaEnd {
		emitRect(buf, top, bot, x1, a.x2(ia))
		ia++
		if ia < iaEnd {
			x1 = a.x1(ia)
		}
	}
}

// overlapIntersect walks both x-sorted sequences together, emitting the
// positive-width overlap of each pair of candidates and discarding
// whichever rectangle's right edge is exhausted first (both, if tied).
func overlapIntersect(buf *[]int, a rectList, ia, iaEnd int, b rectList, ib, ibEnd int, top, bot int) {
	for ia < iaEnd && ib < ibEnd {
		x1 := maxInt(a.x1(ia), b.x1(ib))
		x2 := minInt(a.x2(ia), b.x2(ib))
		if x1 < x2 {
			emitRect(buf, top, bot, x1, x2)
		}
		switch {
		case a.x2(ia) == b.x2(ib):
			ia++
			ib++
		case a.x2(ia) < b.x2(ib):
			ia++
		default:
			ib++
		}
	}
}
