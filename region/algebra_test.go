package region

import (
	"math/rand"
	"testing"

	"github.com/arl/goregion/box"
)

// randRegion builds a region from a handful of random, possibly-overlapping
// rectangles with coordinates in [-32,32), mirroring spec's property-test
// setup.
func randRegion(rnd *rand.Rand, n int) *Region {
	r := New()
	for i := 0; i < n; i++ {
		x := rnd.Intn(64) - 32
		y := rnd.Intn(64) - 32
		w := rnd.Intn(16) + 1
		h := rnd.Intn(16) + 1
		r.UnionRect(box.NewRectangle(x, y, w, h))
	}
	return r
}

func TestUnionIdempotent(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		a := randRegion(rnd, 4)
		want := a.Clone()
		a.Union(a.Clone())
		if !a.Equal(want) {
			t.Fatalf("case %d: A union A != A: got %v want %v", i, a.Rects(), want.Rects())
		}
	}
}

func TestIntersectIdempotent(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		a := randRegion(rnd, 4)
		want := a.Clone()
		a.Intersect(a.Clone())
		if !a.Equal(want) {
			t.Fatalf("case %d: A intersect A != A: got %v want %v", i, a.Rects(), want.Rects())
		}
	}
}

func TestSubtractSelfIsEmpty(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		a := randRegion(rnd, 4)
		a.Subtract(a.Clone())
		if !a.IsEmpty() {
			t.Fatalf("case %d: A subtract A should be empty, got %v", i, a.Rects())
		}
	}
}

func TestUnionCommutative(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		a := randRegion(rnd, 4)
		b := randRegion(rnd, 4)
		ab := Union(a, b)
		ba := Union(b, a)
		if !ab.Equal(ba) {
			t.Fatalf("case %d: union not commutative: %v vs %v", i, ab.Rects(), ba.Rects())
		}
	}
}

func TestIntersectCommutative(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		a := randRegion(rnd, 4)
		b := randRegion(rnd, 4)
		ab := Intersect(a, b)
		ba := Intersect(b, a)
		if !ab.Equal(ba) {
			t.Fatalf("case %d: intersect not commutative: %v vs %v", i, ab.Rects(), ba.Rects())
		}
	}
}

func TestUnionAssociative(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	for i := 0; i < 30; i++ {
		a := randRegion(rnd, 3)
		b := randRegion(rnd, 3)
		c := randRegion(rnd, 3)
		left := Union(Union(a, b), c)
		right := Union(a, Union(b, c))
		if !left.Equal(right) {
			t.Fatalf("case %d: union not associative: %v vs %v", i, left.Rects(), right.Rects())
		}
	}
}

func TestIntersectAssociative(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 30; i++ {
		a := randRegion(rnd, 3)
		b := randRegion(rnd, 3)
		c := randRegion(rnd, 3)
		left := Intersect(Intersect(a, b), c)
		right := Intersect(a, Intersect(b, c))
		if !left.Equal(right) {
			t.Fatalf("case %d: intersect not associative: %v vs %v", i, left.Rects(), right.Rects())
		}
	}
}

// TestDeMorgan checks A-(B∪C) = (A-B)∩(A-C).
func TestDeMorgan(t *testing.T) {
	rnd := rand.New(rand.NewSource(8))
	for i := 0; i < 30; i++ {
		a := randRegion(rnd, 4)
		b := randRegion(rnd, 4)
		c := randRegion(rnd, 4)

		lhs := Subtract(a, Union(b, c))
		rhs := Intersect(Subtract(a, b), Subtract(a, c))
		if !lhs.Equal(rhs) {
			t.Fatalf("case %d: De Morgan's law failed: %v vs %v", i, lhs.Rects(), rhs.Rects())
		}
	}
}

// TestXorIsUnionOfSubtracts checks A⊕B = (A-B)∪(B-A), both as canonical
// representations (Equal) and by an independent brute-force point scan.
func TestXorIsUnionOfSubtracts(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	for i := 0; i < 30; i++ {
		a := randRegion(rnd, 4)
		b := randRegion(rnd, 4)

		x := Xor(a, b)
		want := Union(Subtract(a, b), Subtract(b, a))
		if !x.Equal(want) {
			t.Fatalf("case %d: xor != union of subtracts: %v vs %v", i, x.Rects(), want.Rects())
		}

		e := a.Extent().Union(b.Extent())
		for y := e.Y1 - 2; y < e.Y2+2; y++ {
			for px := e.X1 - 2; px < e.X2+2; px++ {
				inA := a.IsInside(px, y)
				inB := b.IsInside(px, y)
				wantMember := inA != inB
				if got := x.IsInside(px, y); got != wantMember {
					t.Fatalf("case %d: IsInside(%d,%d) = %v, want %v (inA=%v inB=%v)", i, px, y, got, wantMember, inA, inB)
				}
			}
		}
	}
}

// TestOffsetTranslatesMembership checks that offset(dx,dy) membership of
// (x+dx,y+dy) matches pre-offset membership of (x,y).
func TestOffsetTranslatesMembership(t *testing.T) {
	rnd := rand.New(rand.NewSource(10))
	for i := 0; i < 30; i++ {
		a := randRegion(rnd, 4)
		dx, dy := rnd.Intn(41)-20, rnd.Intn(41)-20

		shifted := a.Clone()
		shifted.Offset(dx, dy)

		e := a.Extent()
		for y := e.Y1 - 1; y < e.Y2+1; y++ {
			for x := e.X1 - 1; x < e.X2+1; x++ {
				want := a.IsInside(x, y)
				got := shifted.IsInside(x+dx, y+dy)
				if got != want {
					t.Fatalf("case %d: offset broke membership at (%d,%d): got %v want %v", i, x, y, got, want)
				}
			}
		}
	}
}

func TestRectangleBoxRoundTripRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		rect := box.NewRectangle(rnd.Intn(65)-32, rnd.Intn(65)-32, rnd.Intn(32)+1, rnd.Intn(32)+1)
		got := rect.Box().ToRectangle()
		if got != rect {
			t.Fatalf("case %d: round trip mismatch: %v -> %v", i, rect, got)
		}
	}
}
