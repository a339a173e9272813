package region

// combine is the band walker: it scans the banded rectangle sequences a and
// b in lockstep and produces a new banded sequence equal to "a op b" over
// the integer plane, honouring every invariant in the process (sorted
// bands by monotone advancement, band uniformity by construction, a single
// emission site per [yTop,yBottom) strip, coalescing after every emission).
//
// buf is a caller-owned scratch slice (reused across calls to amortise
// allocation, per region's own scratch field); combine resets its length to
// zero and returns the grown slice, which may or may not share buf's
// backing array depending on how much growth was needed.
func combine(a, b rectList, buf []int, op Operation) []int {
	buf = buf[:0]
	nA, nB := a.n(), b.n()

	var yBottom int
	switch {
	case nA > 0 && nB > 0:
		yBottom = minInt(a.y1(0), b.y1(0))
	case nA > 0:
		yBottom = a.y1(0)
	case nB > 0:
		yBottom = b.y1(0)
	}

	rA, rB := 0, 0
	prevBand, curBand := 0, 0

	for rA < nA && rB < nB {
		rAEnd := a.bandEnd(rA)
		rBEnd := b.bandEnd(rB)

		var yTop int
		switch {
		case a.y1(rA) < b.y1(rB):
			top, bot := maxInt(a.y1(rA), yBottom), minInt(a.y2(rA), b.y1(rB))
			if top < bot {
				nonOverlap1(&buf, a, rA, rAEnd, top, bot, op)
			}
			yTop = b.y1(rB)
		case b.y1(rB) < a.y1(rA):
			top, bot := maxInt(b.y1(rB), yBottom), minInt(b.y2(rB), a.y1(rA))
			if top < bot {
				nonOverlap2(&buf, b, rB, rBEnd, top, bot, op)
			}
			yTop = a.y1(rA)
		default:
			yTop = a.y1(rA)
		}

		if rectList(buf).n() != curBand {
			prevBand = coalesceBands(&buf, prevBand, curBand)
		}
		curBand = rectList(buf).n()

		yBottom = minInt(a.y2(rA), b.y2(rB))
		if yBottom > yTop {
			overlap(&buf, a, rA, rAEnd, b, rB, rBEnd, yTop, yBottom, op)
		}

		if rectList(buf).n() != curBand {
			prevBand = coalesceBands(&buf, prevBand, curBand)
		}
		curBand = rectList(buf).n()

		if a.y2(rA) == yBottom {
			rA = rAEnd
		}
		if b.y2(rB) == yBottom {
			rB = rBEnd
		}
	}

	// Tail: only one side (or neither) has rectangles left. Each remaining
	// band is emitted in full (clipped only against whatever strip the
	// main loop already handled) and coalesced immediately, so a run of
	// more than two mergeable bands in the tail still ends up maximally
	// merged -- the single "coalesce once more at the end" the reference
	// describes is the n==2 case of this loop.
	if rA < nA {
		for rA < nA {
			rAEnd := a.bandEnd(rA)
			bandStart := rectList(buf).n()
			top := maxInt(a.y1(rA), yBottom)
			if top < a.y2(rA) {
				nonOverlap1(&buf, a, rA, rAEnd, top, a.y2(rA), op)
			}
			if rectList(buf).n() != bandStart {
				prevBand = coalesceBands(&buf, prevBand, bandStart)
			}
			yBottom = a.y2(rA)
			rA = rAEnd
		}
	} else if rB < nB {
		for rB < nB {
			rBEnd := b.bandEnd(rB)
			bandStart := rectList(buf).n()
			top := maxInt(b.y1(rB), yBottom)
			if top < b.y2(rB) {
				nonOverlap2(&buf, b, rB, rBEnd, top, b.y2(rB), op)
			}
			if rectList(buf).n() != bandStart {
				prevBand = coalesceBands(&buf, prevBand, bandStart)
			}
			yBottom = b.y2(rB)
			rB = rBEnd
		}
	}

	return buf
}
