package rectclip

type polygonPolicy[T Number] struct{}

func (polygonPolicy[T]) minLen() int {
	return 3
}

func (polygonPolicy[T]) scan(s *scanner[T], path Path[T]) {
	s.scanPolygon(path)
}

func (polygonPolicy[T]) tidy(s *scanner[T]) {
	s.checkEdges()
	for side := Left; side <= Bottom; side++ {
		s.tidyEdges(side)
	}
}

func (polygonPolicy[T]) extract(s *scanner[T], op int) Path[T] {
	return s.polygonPath(op)
}

// scanPolygon traces the implicitly closed path, adding the vertices inside the rectangle, the intersections with its sides and the corners the path passes around while outside.
func (s *scanner[T]) scanPolygon(path Path[T]) {
	if len(path) == 0 {
		return
	}

	highI := len(path) - 1
	var ok bool
	prev, loc := Inside, Inside
	crossingLoc, firstCross := Inside, Inside
	if loc, ok = getLocation(s.rect, path[highI]); !ok {
		// the last vertex is on a side, look back for a vertex that is not
		i := highI
		for 0 < i {
			if prev, ok = getLocation(s.rect, path[i-1]); ok {
				break
			}
			i--
		}
		if i == 0 {
			// all vertices are on the sides
			for _, pt := range path {
				s.add(pt, false)
			}
			return
		}
		if prev == Inside {
			loc = Inside
		}
	}
	startingLoc := loc

	i := 0
	for i <= highI {
		prev = loc
		crossingPrev := crossingLoc
		if loc, i = s.getNextLocation(path, loc, i, highI); highI < i {
			break
		}

		prevPt := path[highI]
		if 0 < i {
			prevPt = path[i-1]
		}

		var ip Point[T]
		if ip, crossingLoc, ok = s.getIntersection(path[i], prevPt, loc); !ok {
			// remaining outside
			if crossingPrev == Inside {
				clockwise := isClockwise(prev, loc, prevPt, path[i], s.rectMid)
				for {
					s.startLocs = append(s.startLocs, prev)
					if prev = adjacent(prev, clockwise); prev == loc {
						break
					}
				}
				crossingLoc = crossingPrev // still not crossed
			} else if prev != Inside && prev != loc {
				clockwise := isClockwise(prev, loc, prevPt, path[i], s.rectMid)
				s.addCornersTo(prev, loc, clockwise)
			}
			i++
			continue
		}

		if loc == Inside {
			// entering the rectangle
			if firstCross == Inside {
				firstCross = crossingLoc
				s.startLocs = append(s.startLocs, prev)
			} else if prev != crossingLoc {
				clockwise := isClockwise(prev, crossingLoc, prevPt, path[i], s.rectMid)
				s.addCornersTo(prev, crossingLoc, clockwise)
			}
		} else if prev != Inside {
			// passing through the rectangle, ip is the second intersection and ip2 the first
			ip2, loc2, _ := s.getIntersection(prevPt, path[i], prev)
			if crossingPrev != Inside && crossingPrev != loc2 {
				s.addCornerBetween(crossingPrev, loc2)
			}
			if firstCross == Inside {
				firstCross = loc2
				s.startLocs = append(s.startLocs, prev)
			}

			loc = crossingLoc
			s.add(ip2, false)
			if ip == ip2 {
				// touching a corner without crossing into the rectangle
				loc, _ = getLocation(s.rect, path[i])
				if loc != crossingLoc {
					s.addCornerBetween(crossingLoc, loc)
				}
				crossingLoc = loc
				continue
			}
		} else {
			// exiting the rectangle
			loc = crossingLoc
			if firstCross == Inside {
				firstCross = crossingLoc
			}
		}
		s.add(ip, false)
	}

	if firstCross == Inside {
		// the path never crosses the rectangle, but it may enclose it
		if startingLoc != Inside && s.pathBounds.Contains(s.rect) && path1ContainsPath2(path, s.rectPath) {
			clockwise := startLocsAreClockwise(s.startLocs)
			for j := 0; j < 4; j++ {
				k := j
				if !clockwise {
					k = 3 - j // reverse the rectangle
				}
				op := s.add(s.rectPath[k], false)
				s.addToEdge(bucket(Location(k), true), op)
			}
		}
	} else if loc != Inside && (loc != firstCross || 2 < len(s.startLocs)) {
		// close the fragment around the corners passed before the first crossing
		if 0 < len(s.startLocs) {
			prev = loc
			for _, loc2 := range s.startLocs {
				if prev == loc2 {
					continue
				}
				s.addCorner(prev, headingClockwise(prev, loc2))
				prev = loc2
			}
			loc = prev
		}
		if loc != firstCross {
			s.addCorner(loc, headingClockwise(loc, firstCross))
		}
	}
}
