package rectclip

import (
	"math"
	"math/rand/v2"
	"sort"
	"sync"
	"testing"

	"github.com/tdewolff/test"
)

// normalize rotates every ring so that it starts at its smallest point, which makes rings comparable regardless of where clipping started them.
func normalize[T Number](ps Paths[T]) Paths[T] {
	var rs Paths[T]
	for _, p := range ps {
		k := 0
		for i, pt := range p {
			if pt.Y < p[k].Y || pt.Y == p[k].Y && pt.X < p[k].X {
				k = i
			}
		}
		r := append(Path[T]{}, p[k:]...)
		rs = append(rs, append(r, p[:k]...))
	}
	return rs
}

func area[T Number](p Path[T]) float64 {
	a := 0.0
	for i := range p {
		j := (i + 1) % len(p)
		a += float64(p[i].X)*float64(p[j].Y) - float64(p[j].X)*float64(p[i].Y)
	}
	return a / 2.0
}

func TestRectClip(t *testing.T) {
	rect := Rect[float64]{0, 0, 10, 10}
	tests := []struct {
		p string
		r string
	}{
		// inside and outside
		{"M1 1L9 1L9 9L1 9z", "M1 1L9 1L9 9L1 9z"},
		{"M0 0L10 0L10 10L0 10z", "M0 0L10 0L10 10L0 10z"},
		{"M20 2L30 2L30 8L20 8z", ""},
		{"M-5 -5L-1 -5L-1 -1z", ""},

		// partially inside
		{"M-5 5L5 5L5 15L-5 15z", "M0 5L5 5L5 10L0 10z"},
		{"M-3 5L-3 15L3 15L3 5z", "M0 5L0 10L3 10L3 5z"},
		{"M5 -5L15 -5L15 5L5 5z", "M5 0L10 0L10 5L5 5z"},
		{"M5 -2L12 5L5 12L-2 5z", "M3 0L7 0L10 3L10 7L7 10L3 10L0 7L0 3z"},
		{"M-5 2L15 2L15 8L-5 8z", "M0 2L10 2L10 8L0 8z"},
		{"M-5 5L5 -5L15 5z", "M10 0L10 5L0 5L0 0z"},
		{"M0 0L20 10L10 20L0 10z", "M0 0L10 5L10 10L0 10z"},

		// enclosing the rectangle
		{"M-5 -5L15 -5L15 15L-5 15z", "M0 0L10 0L10 10L0 10z"},
		{"M-5 -5L-5 15L15 15L15 -5z", "M0 0L0 10L10 10L10 0z"},

		// multiple polygons
		{"M-5 5L5 5L5 15L-5 15zM20 2L30 2L30 8L20 8zM1 1L2 1L2 2z", "M0 5L5 5L5 10L0 10zM1 1L2 1L2 2z"},
	}

	for _, tt := range tests {
		t.Run(tt.p, func(t *testing.T) {
			ps := MustParseSVGPath(tt.p)
			r := MustParseSVGPath(tt.r)
			test.T(t, normalize(Clip(ps, rect)).ToSVG(true), normalize(r).ToSVG(true))
		})
	}
}

func TestRectClipLines(t *testing.T) {
	rect := Rect[float64]{0, 0, 10, 10}
	tests := []struct {
		p string
		r string
	}{
		{"M1 1L9 9", "M1 1L9 9"},
		{"M20 0L30 10", ""},
		{"M-5 5L15 5", "M0 5L10 5"},
		{"M15 5L-5 5", "M10 5L0 5"},
		{"M5 5L15 5", "M5 5L10 5"},
		{"M-5 5L5 5", "M0 5L5 5"},
		{"M-5 2L5 2L5 8L-5 8", "M0 2L5 2L5 8L0 8"},
		{"M5 5L15 5L15 7L5 7", "M5 5L10 5M10 7L5 7"},
		{"M5 -2L12 5L5 12L-2 5", "M7 0L10 3M10 7L7 10M3 10L0 7"},
		{"M-5 5L15 5M20 0L30 10M1 1L9 9", "M0 5L10 5M1 1L9 9"},

		// segments along a side are not part of the result
		{"M14 24L8 28L-2 10L18 10", ""},
		{"M5 -5L-2 0L15 0", ""},
		{"M-5 0L15 0", "M0 0L10 0"},
	}

	for _, tt := range tests {
		t.Run(tt.p, func(t *testing.T) {
			ps := MustParseSVGPath(tt.p)
			r := MustParseSVGPath(tt.r)
			test.T(t, ClipLines(ps, rect).ToSVG(false), r.ToSVG(false))
		})
	}
}

func TestRectClipBoundary(t *testing.T) {
	rect := Rect[float64]{0, 0, 10, 10}
	tests := []struct {
		p    string
		n    int
		area float64
	}{
		{"M-5 -5L0 0L-5 5z", 0, 0.0},                       // touching a corner from outside
		{"M0 -5L10 -5L10 0L0 0z", 0, 0.0},                  // running along a side from outside
		{"M0 0L20 10L10 20L0 10z", 1, 75.0},                // vertices on corners
		{"M-5 2L5 2L5 8L0 8L0 5L-5 5z", 1, 30.0},           // edge along a side
		{"M5 12L5 5L12 5L12 8L8 8L8 12z", 1, 21.0},         // leaving and entering through the same sides
		{"M2 5L2 -5L8 -5L8 5L6 5L6 -2L4 -2L4 5z", 2, 20.0}, // folding back along the top
		{"M2 2L15 2L15 8L2 8L2 6L12 6L12 4L2 4z", 2, 32.0}, // folding back along the right
	}

	for _, tt := range tests {
		t.Run(tt.p, func(t *testing.T) {
			ps := MustParseSVGPath(tt.p)
			rs := Clip(ps, rect)
			test.T(t, len(rs), tt.n)
			a := 0.0
			for _, r := range rs {
				a += area(r)
				for i, pt := range r {
					test.That(t, rect.ContainsPoint(pt), "point outside rectangle:", pt)
					test.That(t, r[(i+len(r)-1)%len(r)] != pt, "repeated point:", pt)
				}
			}
			test.FloatDiff(t, a, tt.area, 1e-9)
			test.FloatDiff(t, referenceArea(ps[0], rect), tt.area, 1e-9)
		})
	}
}

func TestRectClipInteger(t *testing.T) {
	rect := Rect[int]{0, 0, 10, 10}
	ps := Paths[int]{{{5, -2}, {12, 5}, {5, 12}, {-2, 5}}}
	test.T(t, normalize(Clip(ps, rect)), Paths[int]{{{3, 0}, {7, 0}, {10, 3}, {10, 7}, {7, 10}, {3, 10}, {0, 7}, {0, 3}}})

	// intersections are rounded
	ls := Paths[int]{{{-5, 0}, {15, 3}}}
	test.T(t, ClipLines(ls, rect), Paths[int]{{{0, 1}, {10, 2}}})

	ls = Paths[int]{{{-5, 5}, {15, 5}}}
	test.T(t, NewRectClipLines(rect).Execute(ls), Paths[int]{{{0, 5}, {10, 5}}})
}

func TestRectClipEmpty(t *testing.T) {
	ps := MustParseSVGPath("M-5 5L5 5L5 15L-5 15z")
	test.T(t, len(Clip(ps, Rect[float64]{0, 0, 0, 10})), 0)
	test.T(t, len(Clip(ps, Rect[float64]{10, 0, 0, 10})), 0)
	test.T(t, len(ClipLines(ps, Rect[float64]{0, 10, 10, 10})), 0)
	test.T(t, len(Clip(Paths[float64]{}, Rect[float64]{0, 0, 10, 10})), 0)

	// too short
	test.T(t, len(Clip(Paths[float64]{{{1, 1}, {2, 2}}}, Rect[float64]{0, 0, 10, 10})), 0)
	test.T(t, len(ClipLines(Paths[float64]{{{1, 1}}}, Rect[float64]{0, 0, 10, 10})), 0)
}

func TestRectClipFastPath(t *testing.T) {
	rect := Rect[float64]{0, 0, 10, 10}
	ps := MustParseSVGPath("M1 1L9 1L5 5L9 9L1 9z")
	rs := Clip(ps, rect)
	test.T(t, rs, ps)

	// the result does not alias the input
	rs[0][0].X = 2.0
	test.Float(t, ps[0][0].X, 1.0)

	ls := MustParseSVGPath("M1 1L9 1L5 5L9 9L1 9")
	test.T(t, ClipLines(ls, rect), ls)
}

func TestRectClipExecuteBounds(t *testing.T) {
	rect := Rect[float64]{0, 0, 10, 10}
	ps := MustParseSVGPath("M-5 5L5 5L5 15L-5 15zM5 -2L12 5L5 12L-2 5zM20 2L30 2L30 8L20 8zM1 1L9 1L9 9L1 9z")
	bounds := Bounds(ps)

	c := NewRectClip(rect)
	test.T(t, c.ExecuteBounds(ps, bounds), c.Execute(ps))
	test.T(t, c.ExecuteBounds(ps, bounds[:1]), c.Execute(ps))

	cl := NewRectClipLines(rect)
	test.T(t, cl.ExecuteBounds(ps, bounds), cl.Execute(ps))
}

func TestRectClipConcurrent(t *testing.T) {
	c := NewRectClip(Rect[float64]{0, 0, 10, 10})
	ps := MustParseSVGPath("M-5 5L5 5L5 15L-5 15zM5 -2L12 5L5 12L-2 5zM-5 -5L15 -5L15 15L-5 15z")
	expected := c.Execute(ps)

	var wg sync.WaitGroup
	results := make([]Paths[float64], 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Execute(ps)
		}(i)
	}
	wg.Wait()
	for _, rs := range results {
		test.T(t, rs, expected)
	}
}

////////////////////////////////////////////////////////////////

// randomPath returns a path with odd integer coordinates in [-9,19], so that no vertex lies on the sides of the rectangle from 0 to 10. Consecutive vertices differ.
func randomPath(rnd *rand.Rand, n int) Path[float64] {
	coord := func() float64 {
		return float64(2*rnd.IntN(15) - 9)
	}
	p := Path[float64]{{coord(), coord()}}
	for len(p) < n {
		pt := Point[float64]{coord(), coord()}
		if pt != p[len(p)-1] {
			p = append(p, pt)
		}
	}
	return p
}

func TestRectClipRandom(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	rect := Rect[float64]{0, 0, 10, 10}
	for k := 0; k < 1000; k++ {
		ps := Paths[float64]{randomPath(rnd, 3+rnd.IntN(10))}
		for _, r := range Clip(ps, rect) {
			test.That(t, 3 <= len(r), "polygon with less than three points:", ps.ToSVG(true))
			for _, pt := range r {
				test.That(t, rect.ContainsPoint(pt), "point outside rectangle:", pt, ps.ToSVG(true))
			}
		}
		for _, r := range ClipLines(ps, rect) {
			test.That(t, 2 <= len(r), "polyline with less than two points:", ps.ToSVG(false))
			for i, pt := range r {
				test.That(t, rect.ContainsPoint(pt), "point outside rectangle:", pt, ps.ToSVG(false))
				test.That(t, i == 0 || r[i-1] != pt, "repeated point:", pt, ps.ToSVG(false))
			}
		}
	}
}

// referenceArea returns the signed area of the path clipped by the rectangle, clipping one side at a time.
func referenceArea(p Path[float64], r Rect[float64]) float64 {
	dists := []func(Point[float64]) float64{
		func(pt Point[float64]) float64 { return pt.X - r.Left },
		func(pt Point[float64]) float64 { return pt.Y - r.Top },
		func(pt Point[float64]) float64 { return r.Right - pt.X },
		func(pt Point[float64]) float64 { return r.Bottom - pt.Y },
	}
	for _, dist := range dists {
		var q Path[float64]
		for i, curr := range p {
			prev := p[(i+len(p)-1)%len(p)]
			d0, d1 := dist(prev), dist(curr)
			if (d0 < 0.0) != (d1 < 0.0) && d0 != d1 {
				t := d0 / (d0 - d1)
				q = append(q, Point[float64]{prev.X + t*(curr.X-prev.X), prev.Y + t*(curr.Y-prev.Y)})
			}
			if 0.0 <= d1 {
				q = append(q, curr)
			}
		}
		if len(q) == 0 {
			return 0.0
		}
		p = q
	}
	return area(p)
}

// randomGridPolygon returns a polygon without self intersections with vertices on a grid of even coordinates in [-4,14], so that vertices and edges often lie on the sides and corners of the rectangle from 0 to 10.
func randomGridPolygon(rnd *rand.Rand, n int) Path[float64] {
	coord := func() float64 {
		return float64(2*rnd.IntN(10) - 4)
	}
	seen := map[Point[float64]]bool{}
	var p Path[float64]
	for i := 0; i < n; i++ {
		pt := Point[float64]{coord(), coord()}
		if !seen[pt] {
			seen[pt] = true
			p = append(p, pt)
		}
	}

	// sort by angle around an off-grid center
	c := Point[float64]{coord() + 1.0, coord() + 1.0}
	angle := func(pt Point[float64]) float64 {
		return math.Atan2(pt.Y-c.Y, pt.X-c.X)
	}
	sort.Slice(p, func(i, j int) bool {
		return angle(p[i]) < angle(p[j])
	})
	if rnd.IntN(2) == 0 {
		for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
			p[i], p[j] = p[j], p[i]
		}
	}
	return p
}

func TestRectClipRandomGrid(t *testing.T) {
	rnd := rand.New(rand.NewPCG(5, 6))
	rect := Rect[float64]{0, 0, 10, 10}
	for k := 0; k < 5000; k++ {
		p := randomGridPolygon(rnd, 3+rnd.IntN(10))
		if len(p) < 3 {
			continue
		}

		a := 0.0
		for _, r := range Clip(Paths[float64]{p}, rect) {
			test.That(t, 3 <= len(r), "polygon with less than three points:", p.ToSVG(true))
			a += area(r)
			for i, pt := range r {
				test.That(t, rect.ContainsPoint(pt), "point outside rectangle:", pt, p.ToSVG(true))
				test.That(t, r[(i+len(r)-1)%len(r)] != pt, "repeated point:", pt, p.ToSVG(true))
			}
		}
		test.FloatDiff(t, a, referenceArea(p, rect), 1e-9, p.ToSVG(true))

		for _, r := range ClipLines(Paths[float64]{p}, rect) {
			test.That(t, 2 <= len(r), "polyline with less than two points:", p.ToSVG(false))
			for i, pt := range r {
				test.That(t, rect.ContainsPoint(pt), "point outside rectangle:", pt, p.ToSVG(false))
				test.That(t, i == 0 || r[i-1] != pt, "repeated point:", pt, p.ToSVG(false))
			}
		}
	}
}

func TestRectClipRandomRects(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	rect := Rect[float64]{0, 0, 10, 10}
	for k := 0; k < 1000; k++ {
		a, b := randomPath(rnd, 2), randomPath(rnd, 2)
		q := Rect[float64]{min(a[0].X, a[1].X), min(a[0].Y, b[0].Y), max(a[0].X, a[1].X), max(a[0].Y, b[0].Y)}
		if q.IsEmpty() {
			continue
		}
		p := q.AsPath()
		if rnd.IntN(2) == 0 {
			p = Path[float64]{p[0], p[3], p[2], p[1]}
		}

		overlap := Rect[float64]{max(q.Left, rect.Left), max(q.Top, rect.Top), min(q.Right, rect.Right), min(q.Bottom, rect.Bottom)}
		rs := Clip(Paths[float64]{p}, rect)
		if overlap.IsEmpty() {
			test.T(t, len(rs), 0, p.ToSVG(true))
			continue
		}
		if test.T(t, len(rs), 1, p.ToSVG(true)); len(rs) != 1 {
			continue
		}
		test.Float(t, math.Abs(area(rs[0])), overlap.Width()*overlap.Height(), p.ToSVG(true))
		test.That(t, math.Signbit(area(rs[0])) == math.Signbit(area(p)), "orientation changed:", p.ToSVG(true))
	}
}
