package region

import (
	"testing"

	"github.com/arl/goregion/box"
)

func TestNewIsEmpty(t *testing.T) {
	r := New()
	if !r.IsEmpty() {
		t.Fatal("New() should be empty")
	}
	if r.Extent() != box.ZB {
		t.Fatalf("New() extent = %v, want zero box", r.Extent())
	}
	if r.RectCount() != 0 {
		t.Fatalf("New() RectCount() = %d, want 0", r.RectCount())
	}
}

func TestFromRectangle(t *testing.T) {
	ttable := []struct {
		rect      box.Rectangle
		wantEmpty bool
	}{
		{box.NewRectangle(0, 0, 10, 10), false},
		{box.NewRectangle(0, 0, 0, 10), true},
		{box.NewRectangle(0, 0, -1, 10), true},
	}
	for _, tt := range ttable {
		r := FromRectangle(tt.rect)
		if r.IsEmpty() != tt.wantEmpty {
			t.Fatalf("FromRectangle(%v).IsEmpty() = %v, want %v", tt.rect, r.IsEmpty(), tt.wantEmpty)
		}
	}

	r := FromRectangle(box.NewRectangle(1, 2, 3, 4))
	want := box.NewBox(1, 2, 4, 6)
	if r.Extent() != want {
		t.Fatalf("extent = %v, want %v", r.Extent(), want)
	}
	if r.RectCount() != 1 {
		t.Fatalf("RectCount() = %d, want 1", r.RectCount())
	}
}

func TestFromBox(t *testing.T) {
	b := box.NewBox(1, 2, 4, 6)
	r := FromBox(b)
	if r.Extent() != b {
		t.Fatalf("extent = %v, want %v", r.Extent(), b)
	}
}

func TestClone(t *testing.T) {
	r := FromRectangle(box.NewRectangle(0, 0, 10, 10))
	r.UnionRect(box.NewRectangle(20, 0, 10, 10))
	cp := r.Clone()

	if !r.Equal(cp) {
		t.Fatal("clone should be equal to original")
	}

	cp.Offset(1, 1)
	if r.Equal(cp) {
		t.Fatal("mutating the clone should not affect the original")
	}
	if r.RectCount() != 2 {
		t.Fatal("original should be unaffected by clone mutation")
	}
}

func TestSet(t *testing.T) {
	a := FromRectangle(box.NewRectangle(0, 0, 10, 10))
	b := FromRectangle(box.NewRectangle(5, 5, 10, 10))
	a.Set(b)
	if !a.Equal(b) {
		t.Fatal("Set should copy other's contents")
	}
	b.Offset(1, 1)
	if a.Equal(b) {
		t.Fatal("Set should deep copy, not alias")
	}
}

func TestClear(t *testing.T) {
	r := FromRectangle(box.NewRectangle(0, 0, 10, 10))
	r.Clear()
	if !r.IsEmpty() {
		t.Fatal("Clear should empty the region")
	}
	if r.Extent() != box.ZB {
		t.Fatal("Clear should reset extent to zero box")
	}
}

func TestOffset(t *testing.T) {
	r := FromRectangle(box.NewRectangle(0, 0, 10, 10))
	r.UnionRect(box.NewRectangle(20, 0, 10, 10))
	r.Offset(5, -5)

	for _, x := range []int{5, 14} {
		for _, y := range []int{-5, 3} {
			_ = r.IsInside(x, y)
		}
	}
	if !r.IsInside(5, -5) {
		t.Fatal("offset should translate membership")
	}
	if r.IsInside(0, 0) {
		t.Fatal("original origin should no longer be a member after offset")
	}
}

func TestRectsOrder(t *testing.T) {
	r := FromRectangle(box.NewRectangle(0, 0, 30, 30))
	r.SubtractRect(box.NewRectangle(10, 10, 10, 10))

	rects := r.Rects()
	if len(rects) != 4 {
		t.Fatalf("RectCount() = %d, want 4", len(rects))
	}
	prevY1 := -1 << 30
	for _, rc := range rects {
		if rc.Y < prevY1 {
			t.Fatalf("rects not in ascending y1 order: %v", rects)
		}
		prevY1 = rc.Y
	}
}

func TestCollapseIsSuperset(t *testing.T) {
	r := FromRectangle(box.NewRectangle(0, 0, 30, 30))
	r.SubtractRect(box.NewRectangle(10, 10, 10, 10))
	collapsed := r.Clone()
	collapsed.Collapse()

	if collapsed.RectCount() != 1 {
		t.Fatalf("Collapse() should leave exactly one rectangle, got %d", collapsed.RectCount())
	}
	if collapsed.Extent() != r.Extent() {
		t.Fatal("Collapse() should preserve the extent")
	}
	// r subset-of collapsed: every point still inside r must be inside collapsed.
	for _, rc := range r.Rects() {
		if !collapsed.IsInsideRect(rc) {
			t.Fatalf("collapsed region does not cover rectangle %v from original", rc)
		}
	}
}

func TestEqual(t *testing.T) {
	a := FromRectangle(box.NewRectangle(0, 0, 10, 10))
	b := FromRectangle(box.NewRectangle(0, 0, 10, 10))
	if !a.Equal(b) {
		t.Fatal("two identically-constructed regions should be equal")
	}
	b.Offset(1, 0)
	if a.Equal(b) {
		t.Fatal("offset region should not equal original")
	}
	if !New().Equal(New()) {
		t.Fatal("two empty regions should be equal")
	}
}
