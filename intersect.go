package rectclip

func isHorizontal[T Number](pt1, pt2 Point[T]) bool {
	return pt1.Y == pt2.Y
}

// between returns true if pt, which lies on the line through p1 and p2, lies strictly between them.
func between[T Number](pt, p1, p2 Point[T]) bool {
	if isHorizontal(p1, p2) {
		return (p1.X < pt.X) == (pt.X < p2.X)
	}
	return (p1.Y < pt.Y) == (pt.Y < p2.Y)
}

// segmentIntersection returns the intersection of segment P1P2 with the rectangle side P3P4. Touching end points count as intersections, collinear segments do not.
func segmentIntersection[T Number](p1, p2, p3, p4 Point[T]) (Point[T], bool) {
	res1 := crossProduct(p1, p3, p4)
	res2 := crossProduct(p2, p3, p4)
	if res1 == 0.0 {
		if res2 == 0.0 {
			return p1, false // collinear
		} else if p1 == p3 || p1 == p4 {
			return p1, true
		}
		return p1, between(p1, p3, p4)
	} else if res2 == 0.0 {
		if p2 == p3 || p2 == p4 {
			return p2, true
		}
		return p2, between(p2, p3, p4)
	}
	if (0.0 < res1) == (0.0 < res2) {
		return Point[T]{}, false
	}

	res3 := crossProduct(p3, p1, p2)
	res4 := crossProduct(p4, p1, p2)
	if res3 == 0.0 {
		if p3 == p1 || p3 == p2 {
			return p3, true
		}
		return p3, between(p3, p1, p2)
	} else if res4 == 0.0 {
		if p4 == p1 || p4 == p2 {
			return p4, true
		}
		return p4, between(p4, p1, p2)
	}
	if (0.0 < res3) == (0.0 < res4) {
		return Point[T]{}, false
	}
	return segmentIntersectionPoint(p1, p2, p3, p4), true
}

// segmentIntersectionPoint returns the intersection of segment P1P2 with the axis-aligned side P3P4, given that they intersect. The point is snapped onto the side so that it classifies exactly.
func segmentIntersectionPoint[T Number](p1, p2, p3, p4 Point[T]) Point[T] {
	dx1 := float64(p2.X) - float64(p1.X)
	dy1 := float64(p2.Y) - float64(p1.Y)
	dx2 := float64(p4.X) - float64(p3.X)
	dy2 := float64(p4.Y) - float64(p3.Y)
	det := dy1*dx2 - dy2*dx1
	if det == 0.0 {
		return p1
	}

	t := ((float64(p1.X)-float64(p3.X))*dy2 - (float64(p1.Y)-float64(p3.Y))*dx2) / det
	var ip Point[T]
	if t <= 0.0 {
		ip = p1
	} else if 1.0 <= t {
		ip = p2
	} else {
		ip = Point[T]{
			fromFloat[T](float64(p1.X) + t*dx1),
			fromFloat[T](float64(p1.Y) + t*dy1),
		}
	}
	if p3.X == p4.X {
		ip.X = p3.X
		ip.Y = max(min(p3.Y, p4.Y), min(ip.Y, max(p3.Y, p4.Y)))
	} else {
		ip.X = max(min(p3.X, p4.X), min(ip.X, max(p3.X, p4.X)))
		ip.Y = p3.Y
	}
	return ip
}

// getIntersection returns the intersection of the segment from p to p2 with the rectangle closest to p, looking first at side loc and then at the sides adjacent to it. It returns the side that was intersected, or loc unchanged when there is no intersection.
func (s *scanner[T]) getIntersection(p, p2 Point[T], loc Location) (Point[T], Location, bool) {
	rp := s.rectPath
	switch loc {
	case Left:
		if ip, ok := segmentIntersection(p, p2, rp[0], rp[3]); ok {
			return ip, Left, true
		} else if p.Y < rp[0].Y {
			if ip, ok := segmentIntersection(p, p2, rp[0], rp[1]); ok {
				return ip, Top, true
			}
		}
		if ip, ok := segmentIntersection(p, p2, rp[2], rp[3]); ok {
			return ip, Bottom, true
		}
	case Top:
		if ip, ok := segmentIntersection(p, p2, rp[0], rp[1]); ok {
			return ip, Top, true
		} else if p.X < rp[0].X {
			if ip, ok := segmentIntersection(p, p2, rp[0], rp[3]); ok {
				return ip, Left, true
			}
		}
		if ip, ok := segmentIntersection(p, p2, rp[1], rp[2]); ok {
			return ip, Right, true
		}
	case Right:
		if ip, ok := segmentIntersection(p, p2, rp[1], rp[2]); ok {
			return ip, Right, true
		} else if p.Y < rp[1].Y {
			if ip, ok := segmentIntersection(p, p2, rp[0], rp[1]); ok {
				return ip, Top, true
			}
		}
		if ip, ok := segmentIntersection(p, p2, rp[2], rp[3]); ok {
			return ip, Bottom, true
		}
	case Bottom:
		if ip, ok := segmentIntersection(p, p2, rp[2], rp[3]); ok {
			return ip, Bottom, true
		} else if p.X < rp[3].X {
			if ip, ok := segmentIntersection(p, p2, rp[0], rp[3]); ok {
				return ip, Left, true
			}
		}
		if ip, ok := segmentIntersection(p, p2, rp[1], rp[2]); ok {
			return ip, Right, true
		}
	default:
		if ip, ok := segmentIntersection(p, p2, rp[0], rp[3]); ok {
			return ip, Left, true
		} else if ip, ok := segmentIntersection(p, p2, rp[0], rp[1]); ok {
			return ip, Top, true
		} else if ip, ok := segmentIntersection(p, p2, rp[1], rp[2]); ok {
			return ip, Right, true
		} else if ip, ok := segmentIntersection(p, p2, rp[2], rp[3]); ok {
			return ip, Bottom, true
		}
	}
	return Point[T]{}, loc, false
}

////////////////////////////////////////////////////////////////

type pipResult int

const (
	pipOutside pipResult = iota
	pipInside
	pipOn
)

// pointInPolygon returns whether pt lies inside, outside or on the boundary of the implicitly closed polygon, using the even-odd rule.
func pointInPolygon[T Number](pt Point[T], polygon Path[T]) pipResult {
	if len(polygon) < 3 {
		return pipOutside
	}

	// see https://wrf.ecse.rpi.edu//Research/Short_Notes/pnpoly.html
	inside := false
	prev := polygon[len(polygon)-1]
	for _, curr := range polygon {
		if crossProduct(prev, pt, curr) == 0.0 &&
			min(prev.X, curr.X) <= pt.X && pt.X <= max(prev.X, curr.X) &&
			min(prev.Y, curr.Y) <= pt.Y && pt.Y <= max(prev.Y, curr.Y) {
			return pipOn
		}
		if (pt.Y < curr.Y) != (pt.Y < prev.Y) {
			x := float64(prev.X) + (float64(pt.Y)-float64(prev.Y))*(float64(curr.X)-float64(prev.X))/(float64(curr.Y)-float64(prev.Y))
			if float64(pt.X) < x {
				inside = !inside
			}
		}
		prev = curr
	}
	if inside {
		return pipInside
	}
	return pipOutside
}

// path1ContainsPath2 returns true if path2 lies mostly inside path1, the paths are assumed not to overlap significantly.
func path1ContainsPath2[T Number](path1, path2 Path[T]) bool {
	ioCount := 0
	for _, pt := range path2 {
		switch pointInPolygon(pt, path1) {
		case pipOutside:
			ioCount++
		case pipInside:
			ioCount--
		default:
			continue
		}
		if 1 < ioCount || ioCount < -1 {
			break
		}
	}
	return ioCount <= 0
}
