package rectclip

// scanner holds the state of one clipping run. Paths are scanned one at a time, the arena, fragment table and buckets are reset in between.
type scanner[T Number] struct {
	arena[T]
	rect       Rect[T]
	rectPath   Path[T]
	rectMid    Point[T]
	pathBounds Rect[T]

	results   []int // one node of every fragment, none when merged away or degenerate
	edges     edgeSet
	startLocs []Location
}

func newScanner[T Number](rect Rect[T]) *scanner[T] {
	return &scanner[T]{
		rect:     rect,
		rectPath: rect.AsPath(),
		rectMid:  rect.MidPoint(),
	}
}

func (s *scanner[T]) reset() {
	s.arena.reset()
	s.results = s.results[:0]
	s.edges.reset()
	s.startLocs = s.startLocs[:0]
}

// add appends pt to the current fragment, or starts a new fragment when startNew is set. Repeated points are ignored. It returns the node of pt.
func (s *scanner[T]) add(pt Point[T], startNew bool) int {
	curr := len(s.results)
	if curr == 0 || startNew {
		op := s.alloc(pt, curr)
		s.results = append(s.results, op)
		return op
	}

	curr--
	prev := s.results[curr]
	if s.ops[prev].pt == pt {
		return prev
	}
	op := s.alloc(pt, curr)
	s.insertAfter(prev, op)
	s.results[curr] = op
	return op
}

// addCornerBetween adds the corner shared by the adjacent sides prev and curr.
func (s *scanner[T]) addCornerBetween(prev, curr Location) {
	if headingClockwise(prev, curr) {
		s.add(s.rectPath[prev], false)
	} else {
		s.add(s.rectPath[curr], false)
	}
}

// addCorner adds the corner at the end of side loc in the given direction and returns the side that follows it.
func (s *scanner[T]) addCorner(loc Location, clockwise bool) Location {
	if clockwise {
		s.add(s.rectPath[loc], false)
		return adjacent(loc, true)
	}
	loc = adjacent(loc, false)
	s.add(s.rectPath[loc], false)
	return loc
}

// addCornersTo walks around the rectangle from side prev to side curr, adding the corners passed.
func (s *scanner[T]) addCornersTo(prev, curr Location, clockwise bool) {
	for {
		prev = s.addCorner(prev, clockwise)
		if prev == curr {
			return
		}
	}
}

// getNextLocation advances i from a vertex at location loc to the next vertex with a different location, and returns that location. Vertices on the side of an outside location are skipped as being outside. Vertices passed while inside are added to the current fragment.
func (s *scanner[T]) getNextLocation(path Path[T], loc Location, i, highI int) (Location, int) {
	r := s.rect
	switch loc {
	case Left:
		for i <= highI && path[i].X <= r.Left {
			i++
		}
		if highI < i {
			break
		} else if r.Right <= path[i].X {
			loc = Right
		} else if path[i].Y <= r.Top {
			loc = Top
		} else if r.Bottom <= path[i].Y {
			loc = Bottom
		} else {
			loc = Inside
		}
	case Top:
		for i <= highI && path[i].Y <= r.Top {
			i++
		}
		if highI < i {
			break
		} else if r.Bottom <= path[i].Y {
			loc = Bottom
		} else if path[i].X <= r.Left {
			loc = Left
		} else if r.Right <= path[i].X {
			loc = Right
		} else {
			loc = Inside
		}
	case Right:
		for i <= highI && r.Right <= path[i].X {
			i++
		}
		if highI < i {
			break
		} else if path[i].X <= r.Left {
			loc = Left
		} else if path[i].Y <= r.Top {
			loc = Top
		} else if r.Bottom <= path[i].Y {
			loc = Bottom
		} else {
			loc = Inside
		}
	case Bottom:
		for i <= highI && r.Bottom <= path[i].Y {
			i++
		}
		if highI < i {
			break
		} else if path[i].Y <= r.Top {
			loc = Top
		} else if path[i].X <= r.Left {
			loc = Left
		} else if r.Right <= path[i].X {
			loc = Right
		} else {
			loc = Inside
		}
	case Inside:
		for i <= highI {
			pt := path[i]
			if pt.X < r.Left {
				loc = Left
			} else if r.Right < pt.X {
				loc = Right
			} else if r.Bottom < pt.Y {
				loc = Bottom
			} else if pt.Y < r.Top {
				loc = Top
			} else {
				s.add(pt, false)
				i++
				continue
			}
			break
		}
	}
	return loc, i
}
