package rectclip

type linePolicy[T Number] struct{}

func (linePolicy[T]) minLen() int {
	return 2
}

func (linePolicy[T]) scan(s *scanner[T], path Path[T]) {
	s.scanLine(path)
}

// tidy is a no-op, polyline pieces are never joined.
func (linePolicy[T]) tidy(*scanner[T]) {}

func (linePolicy[T]) extract(s *scanner[T], op int) Path[T] {
	return s.linePath(op)
}

// scanLine traces the open path and starts a new fragment every time it enters the rectangle.
func (s *scanner[T]) scanLine(path Path[T]) {
	i, highI := 1, len(path)-1
	prev, loc := Inside, Inside
	var ok bool
	if loc, ok = getLocation(s.rect, path[0]); !ok {
		for i <= highI {
			if prev, ok = getLocation(s.rect, path[i]); ok {
				break
			}
			i++
		}
		if highI < i {
			// all vertices are on the sides
			for _, pt := range path {
				s.add(pt, false)
			}
			return
		}
		if prev == Inside {
			loc = Inside
		}
		i = 1
	}
	if loc == Inside {
		s.add(path[0], false)
	}

	for i <= highI {
		prev = loc
		if loc, i = s.getNextLocation(path, loc, i, highI); highI < i {
			break
		}

		prevPt := path[i-1]
		ip, _, ok := s.getIntersection(path[i], prevPt, loc)
		if !ok {
			i++
			continue // remaining outside
		}

		if loc == Inside {
			s.add(ip, true) // entering
		} else if prev != Inside {
			// passing through, ip is the second intersection
			ip2, _, _ := s.getIntersection(prevPt, path[i], prev)
			s.add(ip2, true)
			s.add(ip, false)
		} else {
			s.add(ip, false) // exiting
		}
	}
}

// linePath returns the fragment ending at op from its first node. Fragments of a single point are dropped.
func (s *scanner[T]) linePath(op int) Path[T] {
	if op == none || s.ops[op].next == op {
		return nil
	}
	op = s.ops[op].next
	path := Path[T]{s.ops[op].pt}
	for op2 := s.ops[op].next; op2 != op; op2 = s.ops[op2].next {
		path = append(path, s.ops[op2].pt)
	}
	return path
}
