package rectclip

// edgeSet holds for each side of the rectangle the nodes of segments running along it, split by whether the segment runs clockwise or counter clockwise. Bucket 2*side is clockwise and 2*side+1 counter clockwise. Buckets are filled in scan order and only read by the tidy pass; removed entries are set to none.
type edgeSet [8][]int

// bucket returns the bucket index for the side and direction.
func bucket(side Location, clockwise bool) int {
	if clockwise {
		return 2 * int(side)
	}
	return 2*int(side) + 1
}

func (e *edgeSet) reset() {
	for i := range e {
		e[i] = e[i][:0]
	}
}

// addToEdge files op into bucket b, a node is filed at most once.
func (s *scanner[T]) addToEdge(b, op int) {
	if s.ops[op].edge != none {
		return
	}
	s.ops[op].edge = b
	s.edges[b] = append(s.edges[b], op)
}

// uncoupleEdge removes op from the bucket it was filed into.
func (s *scanner[T]) uncoupleEdge(op int) {
	b := s.ops[op].edge
	if b == none {
		return
	}
	for i, op2 := range s.edges[b] {
		if op2 == op {
			s.edges[b][i] = none
			break
		}
	}
	s.ops[op].edge = none
}

// edgesForPt returns a bit set of the sides pt lies on, bit k for side k.
func edgesForPt[T Number](pt Point[T], r Rect[T]) uint32 {
	var sides uint32
	if pt.X == r.Left {
		sides = 1 << Left
	} else if pt.X == r.Right {
		sides = 1 << Right
	}
	if pt.Y == r.Top {
		sides |= 1 << Top
	} else if pt.Y == r.Bottom {
		sides |= 1 << Bottom
	}
	return sides
}

// isHeadingClockwise is true when going from pt1 to pt2 along the given side is in the clockwise direction.
func isHeadingClockwise[T Number](pt1, pt2 Point[T], side Location) bool {
	switch side {
	case Left:
		return pt2.Y < pt1.Y
	case Top:
		return pt1.X < pt2.X
	case Right:
		return pt1.Y < pt2.Y
	}
	return pt2.X < pt1.X
}

func hasHorzOverlap[T Number](left1, right1, left2, right2 Point[T]) bool {
	return left1.X < right2.X && left2.X < right1.X
}

func hasVertOverlap[T Number](top1, bottom1, top2, bottom2 Point[T]) bool {
	return top1.Y < bottom2.Y && top2.Y < bottom1.Y
}
