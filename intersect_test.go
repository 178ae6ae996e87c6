package rectclip

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestSegmentIntersection(t *testing.T) {
	tests := []struct {
		p1, p2, p3, p4 Point[float64]
		ok             bool
		ip             Point[float64]
	}{
		{Point[float64]{-5, 5}, Point[float64]{5, 5}, Point[float64]{0, 0}, Point[float64]{0, 10}, true, Point[float64]{0, 5}},
		{Point[float64]{5, -1}, Point[float64]{5, 11}, Point[float64]{0, 0}, Point[float64]{10, 0}, true, Point[float64]{5, 0}},
		{Point[float64]{0, 5}, Point[float64]{-5, 5}, Point[float64]{0, 0}, Point[float64]{0, 10}, true, Point[float64]{0, 5}},
		{Point[float64]{-5, 0}, Point[float64]{0, 0}, Point[float64]{0, 0}, Point[float64]{0, 10}, true, Point[float64]{0, 0}},
		{Point[float64]{-5, 15}, Point[float64]{5, 15}, Point[float64]{0, 0}, Point[float64]{0, 10}, false, Point[float64]{}},
		{Point[float64]{-5, 5}, Point[float64]{-1, 5}, Point[float64]{0, 0}, Point[float64]{0, 10}, false, Point[float64]{}},
		{Point[float64]{0, -5}, Point[float64]{0, 15}, Point[float64]{0, 0}, Point[float64]{0, 10}, false, Point[float64]{}}, // collinear
	}
	for _, tt := range tests {
		t.Run(Path[float64]{tt.p1, tt.p2}.ToSVG(false), func(t *testing.T) {
			ip, ok := segmentIntersection(tt.p1, tt.p2, tt.p3, tt.p4)
			test.T(t, ok, tt.ok)
			if ok {
				test.T(t, ip, tt.ip)
			}
		})
	}
}

func TestSegmentIntersectionPoint(t *testing.T) {
	// snapped onto the side
	ip := segmentIntersectionPoint(Point[float64]{-1, 0}, Point[float64]{2, 1}, Point[float64]{0, 0}, Point[float64]{0, 10})
	test.T(t, ip.X, 0.0)
	test.Float(t, ip.Y, 1.0/3.0)

	// rounded for integers
	test.T(t, segmentIntersectionPoint(Point[int]{-1, 0}, Point[int]{2, 2}, Point[int]{0, 0}, Point[int]{0, 10}), Point[int]{0, 1})
	test.T(t, segmentIntersectionPoint(Point[int]{-5, 0}, Point[int]{15, 3}, Point[int]{10, 0}, Point[int]{10, 10}), Point[int]{10, 2})
}

func TestGetIntersection(t *testing.T) {
	s := newScanner(Rect[float64]{0, 0, 10, 10})

	ip, loc, ok := s.getIntersection(Point[float64]{-5, 5}, Point[float64]{5, 5}, Left)
	test.That(t, ok)
	test.T(t, loc, Left)
	test.T(t, ip, Point[float64]{0, 5})

	// passing above the top-left corner from the left side
	ip, loc, ok = s.getIntersection(Point[float64]{-2, -2}, Point[float64]{6, 2}, Left)
	test.That(t, ok)
	test.T(t, loc, Top)
	test.T(t, ip, Point[float64]{2, 0})

	ip, loc, ok = s.getIntersection(Point[float64]{5, 5}, Point[float64]{5, 15}, Inside)
	test.That(t, ok)
	test.T(t, loc, Bottom)
	test.T(t, ip, Point[float64]{5, 10})

	_, loc, ok = s.getIntersection(Point[float64]{-5, 15}, Point[float64]{-5, -5}, Left)
	test.That(t, !ok)
	test.T(t, loc, Left)
}

func TestPointInPolygon(t *testing.T) {
	square := Path[float64]{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	test.T(t, pointInPolygon(Point[float64]{5, 5}, square), pipInside)
	test.T(t, pointInPolygon(Point[float64]{15, 5}, square), pipOutside)
	test.T(t, pointInPolygon(Point[float64]{5, -1}, square), pipOutside)
	test.T(t, pointInPolygon(Point[float64]{0, 5}, square), pipOn)
	test.T(t, pointInPolygon(Point[float64]{5, 0}, square), pipOn)
	test.T(t, pointInPolygon(Point[float64]{10, 10}, square), pipOn)
	test.T(t, pointInPolygon(Point[float64]{5, 5}, square[:2]), pipOutside)

	big := Path[float64]{{-5, -5}, {15, -5}, {15, 15}, {-5, 15}}
	test.That(t, path1ContainsPath2(big, square))
	test.That(t, !path1ContainsPath2(square, big))
}
