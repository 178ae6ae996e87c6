package rectclip

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is the coordinate type of points, paths and rectangles. All coordinates used in one clipping run share the same type.
type Number interface {
	constraints.Signed | constraints.Float
}

// isInteger returns true if T is an integer type.
func isInteger[T Number]() bool {
	half := 0.5
	return T(half) == 0
}

// fromFloat converts f to T, rounding to the nearest integer for integer types.
func fromFloat[T Number](f float64) T {
	if isInteger[T]() {
		return T(math.Round(f))
	}
	return T(f)
}

func formatNum[T Number](v T) string {
	if isInteger[T]() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point[T Number] struct {
	X, Y T
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%s,%s)", formatNum(p.X), formatNum(p.Y))
}

// crossProduct returns the perp dot product of P1P2 and P2P3, ie. zero if the points are collinear. It is positive when P3 lies to the right of P1P2 for a y-down axis.
func crossProduct[T Number](p1, p2, p3 Point[T]) float64 {
	a := float64(p2.X) - float64(p1.X)
	b := float64(p3.Y) - float64(p2.Y)
	c := float64(p2.Y) - float64(p1.Y)
	d := float64(p3.X) - float64(p2.X)
	return a*b - c*d
}

// isCollinear returns true if pt1, shared and pt2 lie on one line, which includes spikes that turn back on themselves and repeated points.
func isCollinear[T Number](pt1, shared, pt2 Point[T]) bool {
	return crossProduct(pt1, shared, pt2) == 0.0
}

////////////////////////////////////////////////////////////////

// Path is a list of vertices. Polygons are implicitly closed, the last vertex connects to the first.
type Path[T Number] []Point[T]

// Bounds returns the bounding box of the path. An empty path has an empty bounding box.
func (p Path[T]) Bounds() Rect[T] {
	if len(p) == 0 {
		return Rect[T]{}
	}
	r := Rect[T]{p[0].X, p[0].Y, p[0].X, p[0].Y}
	for _, pt := range p[1:] {
		r.Left = min(r.Left, pt.X)
		r.Top = min(r.Top, pt.Y)
		r.Right = max(r.Right, pt.X)
		r.Bottom = max(r.Bottom, pt.Y)
	}
	return r
}

// Paths is a list of paths.
type Paths[T Number] []Path[T]

// Bounds returns the bounding box of all paths.
func (ps Paths[T]) Bounds() Rect[T] {
	var r Rect[T]
	first := true
	for _, p := range ps {
		if len(p) == 0 {
			continue
		}
		if b := p.Bounds(); first {
			r = b
			first = false
		} else {
			r.Left = min(r.Left, b.Left)
			r.Top = min(r.Top, b.Top)
			r.Right = max(r.Right, b.Right)
			r.Bottom = max(r.Bottom, b.Bottom)
		}
	}
	return r
}

// Bounds returns the bounding box of every path, index for index.
func Bounds[T Number](ps Paths[T]) []Rect[T] {
	bounds := make([]Rect[T], len(ps))
	for i, p := range ps {
		bounds[i] = p.Bounds()
	}
	return bounds
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned rectangle. Top is the smallest Y coordinate, so that the four sides Left, Top, Right, Bottom are ordered clockwise on a y-down axis.
type Rect[T Number] struct {
	Left, Top, Right, Bottom T
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect[T]) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Width returns the width of the rectangle.
func (r Rect[T]) Width() T {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect[T]) Height() T {
	return r.Bottom - r.Top
}

// MidPoint returns the center of the rectangle.
func (r Rect[T]) MidPoint() Point[T] {
	return Point[T]{r.Left + (r.Right-r.Left)/2, r.Top + (r.Bottom-r.Top)/2}
}

// Contains returns true if q lies within r, touching the sides is allowed.
func (r Rect[T]) Contains(q Rect[T]) bool {
	return r.Left <= q.Left && q.Right <= r.Right && r.Top <= q.Top && q.Bottom <= r.Bottom
}

// ContainsPoint returns true if p lies within r or on its sides.
func (r Rect[T]) ContainsPoint(p Point[T]) bool {
	return r.Left <= p.X && p.X <= r.Right && r.Top <= p.Y && p.Y <= r.Bottom
}

// Intersects returns true if r and q overlap or touch.
func (r Rect[T]) Intersects(q Rect[T]) bool {
	return max(r.Left, q.Left) <= min(r.Right, q.Right) && max(r.Top, q.Top) <= min(r.Bottom, q.Bottom)
}

// AsPath returns the corners of the rectangle in clockwise order, starting at the top-left. Corner k is the corner reached when walking clockwise along side k.
func (r Rect[T]) AsPath() Path[T] {
	return Path[T]{
		{r.Left, r.Top},
		{r.Right, r.Top},
		{r.Right, r.Bottom},
		{r.Left, r.Bottom},
	}
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("%v--%v", Point[T]{r.Left, r.Top}, Point[T]{r.Right, r.Bottom})
}
