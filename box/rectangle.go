package box

import "fmt"

// A Rectangle is an origin+extent rectangle: (X,Y) is the upper-left
// corner, W and H are its width and height. It is empty iff W <= 0 or
// H <= 0.
type Rectangle struct {
	X, Y, W, H int
}

// NewRectangle returns the Rectangle with origin (x,y) and size (w,h).
func NewRectangle(x, y, w, h int) Rectangle {
	return Rectangle{X: x, Y: y, W: w, H: h}
}

// IsEmpty reports whether r has a non-positive width or height.
func (r Rectangle) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Expand grows r by dx horizontally and dy vertically on every side: the
// origin moves by (-dx,-dy) and the size grows by (2dx,2dy).
func (r Rectangle) Expand(dx, dy int) Rectangle {
	return Rectangle{
		X: r.X - dx,
		Y: r.Y - dy,
		W: r.W + 2*dx,
		H: r.H + 2*dy,
	}
}

// CenterX returns the X coordinate of r's center, floor-divided toward -inf.
func (r Rectangle) CenterX() int { return floorDiv(2*r.X+r.W, 2) }

// CenterY returns the Y coordinate of r's center, floor-divided toward -inf.
func (r Rectangle) CenterY() int { return floorDiv(2*r.Y+r.H, 2) }

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FromPolyline returns the smallest Rectangle whose extent is inclusive of
// every point (xs[i],ys[i]): origin (min xs, min ys), size
// (max xs - min xs + 1, max ys - min ys + 1).
//
// Unlike Box, FromPolyline treats the maximum coordinate as included, not
// excluded — this is how a set of sampled integer points (e.g. a polyline's
// vertices) turns into the smallest rectangle of pixels covering all of
// them. FromPolyline panics if xs or ys is empty.
func FromPolyline(xs, ys []int) Rectangle {
	if len(xs) == 0 || len(ys) == 0 {
		panic("box: FromPolyline requires at least one point")
	}
	minX, maxX := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}
	minY, maxY := ys[0], ys[0]
	for _, y := range ys[1:] {
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return Rectangle{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}

// Box converts r to the equivalent half-open Box: Box(x,y,x+w,y+h).
func (r Rectangle) Box() Box {
	return Box{X1: r.X, Y1: r.Y, X2: r.X + r.W, Y2: r.Y + r.H}
}

// String returns a string representation of r.
func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d)+(%dx%d)", r.X, r.Y, r.W, r.H)
}
