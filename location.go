package rectclip

// Location is the position of a point relative to the clipping rectangle, either outside one of its sides or inside.
//
// The sides are ordered clockwise (on a y-down axis): adding one modulo four gives the next side clockwise. Corner insertion and the tidy pass depend on this cyclic order, use ordinalDistance and the helpers below instead of comparing values.
type Location int

const (
	Left Location = iota
	Top
	Right
	Bottom
	Inside
)

func (loc Location) String() string {
	switch loc {
	case Left:
		return "Left"
	case Top:
		return "Top"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	case Inside:
		return "Inside"
	}
	return "Location(?)"
}

// ordinalDistance returns the number of clockwise steps (0-3) from side a to side b.
func ordinalDistance(a, b Location) int {
	return int((b - a + 4) % 4)
}

// adjacent returns the neighbouring side of loc in the given direction.
func adjacent(loc Location, clockwise bool) Location {
	if clockwise {
		return (loc + 1) % 4
	}
	return (loc + 3) % 4
}

// headingClockwise is true when curr is the next side clockwise from prev.
func headingClockwise(prev, curr Location) bool {
	return prev != Inside && curr != Inside && ordinalDistance(prev, curr) == 1
}

func areOpposites(a, b Location) bool {
	return a != Inside && b != Inside && ordinalDistance(a, b) == 2
}

// isClockwise returns whether going from side prev to side curr around the rectangle is shortest in the clockwise direction. For opposite sides it depends on which side of the rectangle's center the path passes.
func isClockwise[T Number](prev, curr Location, prevPt, currPt, mid Point[T]) bool {
	if areOpposites(prev, curr) {
		return crossProduct(prevPt, mid, currPt) < 0.0
	}
	return headingClockwise(prev, curr)
}

// startLocsAreClockwise returns whether the sides passed while circling outside the rectangle mostly proceed clockwise.
func startLocsAreClockwise(locs []Location) bool {
	result := 0
	for i := 1; i < len(locs); i++ {
		switch ordinalDistance(locs[i-1], locs[i]) {
		case 1:
			result++
		case 3:
			result--
		}
	}
	return 0 < result
}

// getLocation returns the location of pt with respect to r. It returns false when pt lies exactly on a side, in which case that side is returned.
func getLocation[T Number](r Rect[T], pt Point[T]) (Location, bool) {
	if pt.X == r.Left && r.Top <= pt.Y && pt.Y <= r.Bottom {
		return Left, false
	} else if pt.X == r.Right && r.Top <= pt.Y && pt.Y <= r.Bottom {
		return Right, false
	} else if pt.Y == r.Top && r.Left <= pt.X && pt.X <= r.Right {
		return Top, false
	} else if pt.Y == r.Bottom && r.Left <= pt.X && pt.X <= r.Right {
		return Bottom, false
	} else if pt.X < r.Left {
		return Left, true
	} else if r.Right < pt.X {
		return Right, true
	} else if pt.Y < r.Top {
		return Top, true
	} else if r.Bottom < pt.Y {
		return Bottom, true
	}
	return Inside, true
}
