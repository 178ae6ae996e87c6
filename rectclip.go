// Package rectclip clips polygons and polylines against an axis-aligned rectangle.
//
// It is a specialised alternative to general polygon clipping that runs in near-linear time. Polygons are re-closed along the rectangle's outline, polylines are split into the pieces that are visible inside the rectangle. Paths entirely inside the rectangle are returned unchanged and paths entirely outside are dropped without being scanned.
package rectclip

// policy selects how one path is scanned, repaired and turned into output paths.
type policy[T Number] interface {
	// minLen is the minimum number of vertices of a path to be clipped.
	minLen() int
	scan(s *scanner[T], path Path[T])
	tidy(s *scanner[T])
	extract(s *scanner[T], op int) Path[T]
}

// clipper is shared by the polygon and polyline clippers, it is immutable after construction.
type clipper[T Number] struct {
	rect Rect[T]
}

// execute clips all paths. Each call uses its own scanner so that concurrent calls don't share state.
func (c clipper[T]) execute(paths Paths[T], bounds []Rect[T], pol policy[T]) Paths[T] {
	var result Paths[T]
	if c.rect.IsEmpty() {
		return result
	}

	s := newScanner(c.rect)
	for i, path := range paths {
		if len(path) < pol.minLen() {
			continue
		}

		var pathBounds Rect[T]
		if i < len(bounds) {
			pathBounds = bounds[i]
		} else {
			pathBounds = path.Bounds()
		}
		if !c.rect.Intersects(pathBounds) {
			continue // completely outside
		} else if c.rect.Contains(pathBounds) {
			result = append(result, append(Path[T]{}, path...)) // completely inside
			continue
		}

		s.pathBounds = pathBounds
		pol.scan(s, path)
		pol.tidy(s)
		for _, op := range s.results {
			if q := pol.extract(s, op); len(q) != 0 {
				result = append(result, q)
			}
		}
		s.reset()
	}
	return result
}

////////////////////////////////////////////////////////////////

// RectClip clips polygons against a rectangle. The output polygons are closed along the rectangle's sides, so that a polygon may be split into several polygons but never into open fragments. A RectClip may be used concurrently.
type RectClip[T Number] struct {
	clipper[T]
}

// NewRectClip returns a polygon clipper for the given rectangle.
func NewRectClip[T Number](rect Rect[T]) *RectClip[T] {
	return &RectClip[T]{clipper[T]{rect}}
}

// Execute clips all polygons against the rectangle. Polygons with less than three vertices are ignored.
func (c *RectClip[T]) Execute(paths Paths[T]) Paths[T] {
	return c.execute(paths, nil, polygonPolicy[T]{})
}

// ExecuteBounds is like Execute but uses precomputed bounding boxes of the polygons, which must have the same length as paths. The result is identical to Execute.
func (c *RectClip[T]) ExecuteBounds(paths Paths[T], bounds []Rect[T]) Paths[T] {
	return c.execute(paths, bounds, polygonPolicy[T]{})
}

// RectClipLines clips open polylines against a rectangle. Each time a polyline leaves and re-enters the rectangle a new output polyline is started. A RectClipLines may be used concurrently.
type RectClipLines[T Number] struct {
	clipper[T]
}

// NewRectClipLines returns a polyline clipper for the given rectangle.
func NewRectClipLines[T Number](rect Rect[T]) *RectClipLines[T] {
	return &RectClipLines[T]{clipper[T]{rect}}
}

// Execute clips all polylines against the rectangle. Polylines with less than two vertices are ignored.
func (c *RectClipLines[T]) Execute(paths Paths[T]) Paths[T] {
	return c.execute(paths, nil, linePolicy[T]{})
}

// ExecuteBounds is like Execute but uses precomputed bounding boxes of the polylines.
func (c *RectClipLines[T]) ExecuteBounds(paths Paths[T], bounds []Rect[T]) Paths[T] {
	return c.execute(paths, bounds, linePolicy[T]{})
}

// Clip clips the polygons against the rectangle.
func Clip[T Number](paths Paths[T], rect Rect[T]) Paths[T] {
	return NewRectClip(rect).Execute(paths)
}

// ClipLines clips the polylines against the rectangle.
func ClipLines[T Number](paths Paths[T], rect Rect[T]) Paths[T] {
	return NewRectClipLines(rect).Execute(paths)
}
