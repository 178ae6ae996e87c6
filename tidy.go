package rectclip

// checkEdges removes collinear and repeated nodes from all fragments and files the nodes of segments that run along a side of the rectangle into the buckets.
func (s *scanner[T]) checkEdges() {
	for i, op := range s.results {
		if op == none {
			continue
		}

		op2 := op
		for {
			if isCollinear(s.ops[s.ops[op2].prev].pt, s.ops[op2].pt, s.ops[s.ops[op2].next].pt) {
				if op2 == op {
					if op2 = s.unlinkBack(op2); op2 == none {
						break
					}
					op = s.ops[op2].prev
				} else if op2 = s.unlinkBack(op2); op2 == none {
					break
				}
			} else {
				op2 = s.ops[op2].next
			}
			if op2 == op {
				break
			}
		}
		if op2 == none {
			s.results[i] = none
			continue
		}
		s.results[i] = op

		sides1 := edgesForPt(s.ops[s.ops[op].prev].pt, s.rect)
		op2 = op
		for {
			sides2 := edgesForPt(s.ops[op2].pt, s.rect)
			if sides2 != 0 && s.ops[op2].edge == none {
				combined := sides1 & sides2
				for side := Left; side <= Bottom; side++ {
					if combined&(1<<side) != 0 {
						clockwise := isHeadingClockwise(s.ops[s.ops[op2].prev].pt, s.ops[op2].pt, side)
						s.addToEdge(bucket(side, clockwise), op2)
					}
				}
			}
			sides1 = sides2
			if op2 = s.ops[op2].next; op2 == op {
				break
			}
		}
	}
}

// tidyEdges pairs the clockwise and counter clockwise segments along one side that overlap. Overlapping segments of different fragments mean the fragments touch along the side and are joined, overlapping segments of the same fragment mean it folds back on itself and is split in two. Segments are visited in the order they were filed, which preserves the order in which the path was traversed.
func (s *scanner[T]) tidyEdges(side Location) {
	cwb, ccwb := bucket(side, true), bucket(side, false)
	if len(s.edges[ccwb]) == 0 {
		return
	}
	isHorz := side == Top || side == Bottom
	cwIsTowardLarger := side == Top || side == Right

	pt := func(op int) Point[T] {
		return s.ops[op].pt
	}
	prev := func(op int) int {
		return s.ops[op].prev
	}

	i, j := 0, 0
	for i < len(s.edges[cwb]) {
		cw, ccw := s.edges[cwb], s.edges[ccwb]
		if cw[i] == none || s.isDegenerate(cw[i]) {
			cw[i] = none
			i++
			j = 0
			continue
		}

		jLim := len(ccw)
		for j < jLim && (ccw[j] == none || s.isDegenerate(ccw[j])) {
			j++
		}
		if j == jLim {
			i++
			j = 0
			continue
		}

		// p1 and p1a are the clockwise segment, p2 and p2a the counter clockwise segment, both ordered from small to large
		var p1, p1a, p2, p2a int
		if cwIsTowardLarger {
			p1, p1a = prev(cw[i]), cw[i]
			p2, p2a = ccw[j], prev(ccw[j])
		} else {
			p1, p1a = cw[i], prev(cw[i])
			p2, p2a = prev(ccw[j]), ccw[j]
		}
		if isHorz && !hasHorzOverlap(pt(p1), pt(p1a), pt(p2), pt(p2a)) ||
			!isHorz && !hasVertOverlap(pt(p1), pt(p1a), pt(p2), pt(p2a)) {
			j++
			continue
		}

		isRejoining := s.ops[cw[i]].owner != s.ops[ccw[j]].owner
		if isRejoining {
			s.results[s.ops[p2].owner] = none
			s.setOwner(p2, s.ops[p1].owner)
		}

		// cut both segments and cross-link their ends
		if cwIsTowardLarger {
			s.ops[p1].next = p2
			s.ops[p2].prev = p1
			s.ops[p1a].prev = p2a
			s.ops[p2a].next = p1a
		} else {
			s.ops[p1].prev = p2
			s.ops[p2].next = p1
			s.ops[p1a].next = p2a
			s.ops[p2a].prev = p1a
		}

		if !isRejoining {
			owner := len(s.results)
			s.results = append(s.results, p1a)
			s.setOwner(p1a, owner)
		}

		var op, op2 int
		if cwIsTowardLarger {
			op, op2 = p2, p1a
		} else {
			op, op2 = p1, p2a
		}
		s.results[s.ops[op].owner] = op
		s.results[s.ops[op2].owner] = op2

		// prepare the buckets for the segments that remain after the cut
		var opIsLarger, op2IsLarger bool
		if isHorz {
			opIsLarger = pt(prev(op)).X < pt(op).X
			op2IsLarger = pt(prev(op2)).X < pt(op2).X
		} else {
			opIsLarger = pt(prev(op)).Y < pt(op).Y
			op2IsLarger = pt(prev(op2)).Y < pt(op2).Y
		}

		if s.isDegenerate(op) || pt(op) == pt(prev(op)) {
			if op2IsLarger == cwIsTowardLarger {
				s.edges[cwb][i] = op2
				s.edges[ccwb][j] = none
				j++
			} else {
				s.edges[ccwb][j] = op2
				s.edges[cwb][i] = none
				i++
			}
		} else if s.isDegenerate(op2) || pt(op2) == pt(prev(op2)) {
			if opIsLarger == cwIsTowardLarger {
				s.edges[cwb][i] = op
				s.edges[ccwb][j] = none
				j++
			} else {
				s.edges[ccwb][j] = op
				s.edges[cwb][i] = none
				i++
			}
		} else if opIsLarger == op2IsLarger {
			if opIsLarger == cwIsTowardLarger {
				s.edges[cwb][i] = op
				s.uncoupleEdge(op2)
				s.addToEdge(cwb, op2)
				s.edges[ccwb][j] = none
				j++
			} else {
				s.edges[cwb][i] = none
				i++
				s.edges[ccwb][j] = op2
				s.uncoupleEdge(op)
				s.addToEdge(ccwb, op)
				j = 0
			}
		} else {
			if opIsLarger == cwIsTowardLarger {
				s.edges[cwb][i] = op
			} else {
				s.edges[ccwb][j] = op
			}
			if op2IsLarger == cwIsTowardLarger {
				s.edges[cwb][i] = op2
			} else {
				s.edges[ccwb][j] = op2
			}
		}
	}
}

// polygonPath returns the closed fragment containing op, without collinear points. Fragments with less than three points are dropped.
func (s *scanner[T]) polygonPath(op int) Path[T] {
	if op == none || s.isDegenerate(op) {
		return nil
	}

	op2 := s.ops[op].next
	for op2 != none && op2 != op {
		if isCollinear(s.ops[s.ops[op2].prev].pt, s.ops[op2].pt, s.ops[s.ops[op2].next].pt) {
			op = s.ops[op2].prev
			op2 = s.unlink(op2)
		} else {
			op2 = s.ops[op2].next
		}
	}
	if op2 == none {
		return nil
	}

	op = op2
	path := Path[T]{s.ops[op].pt}
	for op2 = s.ops[op].next; op2 != op; op2 = s.ops[op2].next {
		path = append(path, s.ops[op2].pt)
	}
	if len(path) < 3 {
		return nil
	}
	return path
}
