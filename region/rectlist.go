package region

// stride is the number of ints that make up one stored rectangle: y1, y2,
// x1, x2, in that order (spec's "quadruple"). The field order inside a
// quadruple is an implementation detail; only the band-major, left-to-right
// iteration order (Region.Rects) and the structural invariants are part of
// the contract.
const stride = 4

// rectList is a flat, stride-4 view over a slice of quadruples. It is used
// both for the two read-only inputs to combine and for the scratch buffer
// being built up by the per-band producers.
type rectList []int

func (l rectList) n() int { return len(l) / stride }

func (l rectList) y1(i int) int { return l[i*stride+0] }
func (l rectList) y2(i int) int { return l[i*stride+1] }
func (l rectList) x1(i int) int { return l[i*stride+2] }
func (l rectList) x2(i int) int { return l[i*stride+3] }

// bandEnd returns the index one past the last rectangle in the band that
// starts at i, by scanning forward while y1 stays constant. Bands are
// contiguous runs of equal y1 by invariant 2 (band ordering).
func (l rectList) bandEnd(i int) int {
	n := l.n()
	y1 := l.y1(i)
	for i < n && l.y1(i) == y1 {
		i++
	}
	return i
}

func emitRect(buf *[]int, y1, y2, x1, x2 int) {
	*buf = append(*buf, y1, y2, x1, x2)
}

// emitBand appends src[start:end), each rectangle reclipped to [y1,y2) in
// the y-axis, x-spans unchanged. Used by nonOverlap1/nonOverlap2, which
// never need to touch x.
func emitBand(buf *[]int, y1, y2 int, src rectList, start, end int) {
	for i := start; i < end; i++ {
		emitRect(buf, y1, y2, src.x1(i), src.x2(i))
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
