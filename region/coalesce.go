package region

// coalesceBands merges the band starting at currentBand into the band
// starting at previousBand when the two are vertically contiguous and
// cover identical x-spans: previousBand's y2 is grown to currentBand's y2,
// currentBand's rectangles are dropped from buf, and the new "previous" is
// returned so the next merge attempt joins onto the grown predecessor.
//
// On failure to merge, buf is left untouched and currentBand is returned:
// the caller's idea of where the "current" band begins does not move.
//
// Must run after every band emission (pre-pass and overlap alike), or
// invariant 5 (maximal band merge) is lost.
func coalesceBands(buf *[]int, previousBand, currentBand int) int {
	rl := rectList(*buf)
	total := rl.n()
	nPrev := currentBand - previousBand
	nCur := total - currentBand
	if nPrev == 0 || nPrev != nCur {
		return currentBand
	}
	if rl.y2(previousBand) != rl.y1(currentBand) {
		return currentBand
	}
	for k := 0; k < nPrev; k++ {
		if rl.x1(previousBand+k) != rl.x1(currentBand+k) ||
			rl.x2(previousBand+k) != rl.x2(currentBand+k) {
			return currentBand
		}
	}

	newY2 := rl.y2(currentBand)
	for k := 0; k < nPrev; k++ {
		(*buf)[(previousBand+k)*stride+1] = newY2
	}
	*buf = (*buf)[:currentBand*stride]
	return previousBand
}
