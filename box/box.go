package box

import "fmt"

// A Box is a half-open rectangle [x1,x2) x [y1,y2): the upper-left corner
// (x1,y1) is included, the lower-right corner (x2,y2) is excluded.
//
// Box performs no validation of its own fields. A caller supplying x2 < x1
// (or y2 < y1) gets a Box that behaves as empty everywhere below; there is
// no panic, no error, no silent correction of the corners.
type Box struct {
	X1, Y1, X2, Y2 int
}

// ZB is the zero Box, the canonical empty box.
var ZB Box

// NewBox returns the Box [x1,x2) x [y1,y2).
func NewBox(x1, y1, x2, y2 int) Box {
	return Box{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// IsEmpty reports whether b contains no points.
func (b Box) IsEmpty() bool {
	return b.X2 <= b.X1 || b.Y2 <= b.Y1
}

// Dx returns b's width.
func (b Box) Dx() int { return b.X2 - b.X1 }

// Dy returns b's height.
func (b Box) Dy() int { return b.Y2 - b.Y1 }

// Size returns b's width and height.
func (b Box) Size() (w, h int) { return b.Dx(), b.Dy() }

// Contains reports whether (x,y) lies in b.
func (b Box) Contains(x, y int) bool {
	return b.X1 <= x && x < b.X2 && b.Y1 <= y && y < b.Y2
}

// ContainedIn reports whether b is entirely contained in other.
func (b Box) ContainedIn(other Box) bool {
	if b.IsEmpty() {
		return true
	}
	return b.X1 >= other.X1 && b.Y1 >= other.Y1 &&
		b.X2 <= other.X2 && b.Y2 <= other.Y2
}

// Overlaps reports whether b and other have a non-empty intersection.
func (b Box) Overlaps(other Box) bool {
	return !b.IsEmpty() && !other.IsEmpty() &&
		b.X2 > other.X1 && other.X2 > b.X1 &&
		b.Y2 > other.Y1 && other.Y2 > b.Y1
}

// Offset returns b translated by (dx,dy).
func (b Box) Offset(dx, dy int) Box {
	return Box{b.X1 + dx, b.Y1 + dy, b.X2 + dx, b.Y2 + dy}
}

// Union returns the smallest Box containing both b and other.
func (b Box) Union(other Box) Box {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	r := b
	if other.X1 < r.X1 {
		r.X1 = other.X1
	}
	if other.Y1 < r.Y1 {
		r.Y1 = other.Y1
	}
	if other.X2 > r.X2 {
		r.X2 = other.X2
	}
	if other.Y2 > r.Y2 {
		r.Y2 = other.Y2
	}
	return r
}

// Eq reports whether b and other describe the same set of points. All
// empty boxes are considered equal, regardless of their corner fields.
func (b Box) Eq(other Box) bool {
	return b == other || (b.IsEmpty() && other.IsEmpty())
}

// ToRectangle converts b to the equivalent origin+extent Rectangle. If b is
// empty the result has a width or height of zero or less.
func (b Box) ToRectangle() Rectangle {
	return Rectangle{X: b.X1, Y: b.Y1, W: b.X2 - b.X1, H: b.Y2 - b.Y1}
}

// String returns a string representation of b.
func (b Box) String() string {
	return fmt.Sprintf("[%d,%d)x[%d,%d)", b.X1, b.X2, b.Y1, b.Y2)
}
