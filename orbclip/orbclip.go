// Package orbclip clips orb geometries and GeoJSON features against a bound using the rectangle clipper. Lines are cut into the pieces inside the bound, rings and polygons are closed along the sides of the bound.
package orbclip

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/tdewolff/rectclip"
)

func rect(b orb.Bound) rectclip.Rect[float64] {
	return rectclip.Rect[float64]{Left: b.Min[0], Top: b.Min[1], Right: b.Max[0], Bottom: b.Max[1]}
}

func linePath(ls orb.LineString) rectclip.Path[float64] {
	p := make(rectclip.Path[float64], len(ls))
	for i, pt := range ls {
		p[i] = rectclip.Point[float64]{X: pt[0], Y: pt[1]}
	}
	return p
}

// ringPath converts a ring to an implicitly closed path.
func ringPath(r orb.Ring) rectclip.Path[float64] {
	if 1 < len(r) && r[0] == r[len(r)-1] {
		r = r[:len(r)-1]
	}
	return linePath(orb.LineString(r))
}

func lineString(p rectclip.Path[float64]) orb.LineString {
	ls := make(orb.LineString, len(p))
	for i, pt := range p {
		ls[i] = orb.Point{pt.X, pt.Y}
	}
	return ls
}

// ring converts a path to a ring, repeating the first point at the end.
func ring(p rectclip.Path[float64]) orb.Ring {
	r := orb.Ring(lineString(p))
	return append(r, r[0])
}

////////////////////////////////////////////////////////////////

// Geometry clips any geometry against the bound. It returns nil when nothing remains. Multi geometries that are left with a single element are returned as the single geometry.
func Geometry(b orb.Bound, g orb.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}

	switch g := g.(type) {
	case orb.Point:
		if b.Contains(g) {
			return g
		}
	case orb.MultiPoint:
		if mp := MultiPoint(b, g); len(mp) == 1 {
			return mp[0]
		} else if 1 < len(mp) {
			return mp
		}
	case orb.LineString:
		return lineGeometry(LineString(b, g))
	case orb.MultiLineString:
		return lineGeometry(MultiLineString(b, g))
	case orb.Ring:
		return polygonGeometry(Ring(b, g))
	case orb.Polygon:
		return polygonGeometry(Polygon(b, g))
	case orb.MultiPolygon:
		return polygonGeometry(MultiPolygon(b, g))
	case orb.Bound:
		if b.Intersects(g) {
			return Bound(b, g)
		}
	case orb.Collection:
		var result orb.Collection
		for _, c := range g {
			if c := Geometry(b, c); c != nil {
				result = append(result, c)
			}
		}
		if len(result) == 1 {
			return result[0]
		} else if 1 < len(result) {
			return result
		}
	default:
		panic(fmt.Sprintf("geometry type not supported: %T", g))
	}
	return nil
}

func lineGeometry(mls orb.MultiLineString) orb.Geometry {
	if len(mls) == 0 {
		return nil
	} else if len(mls) == 1 {
		return mls[0]
	}
	return mls
}

func polygonGeometry(mp orb.MultiPolygon) orb.Geometry {
	if len(mp) == 0 {
		return nil
	} else if len(mp) == 1 {
		return mp[0]
	}
	return mp
}

// MultiPoint returns the points inside the bound, including those on its boundary.
func MultiPoint(b orb.Bound, mp orb.MultiPoint) orb.MultiPoint {
	var result orb.MultiPoint
	for _, pt := range mp {
		if b.Contains(pt) {
			result = append(result, pt)
		}
	}
	return result
}

// LineString clips a line string into the pieces inside the bound.
func LineString(b orb.Bound, ls orb.LineString) orb.MultiLineString {
	return MultiLineString(b, orb.MultiLineString{ls})
}

// MultiLineString clips all line strings into the pieces inside the bound.
func MultiLineString(b orb.Bound, mls orb.MultiLineString) orb.MultiLineString {
	paths := make(rectclip.Paths[float64], len(mls))
	for i, ls := range mls {
		paths[i] = linePath(ls)
	}

	var result orb.MultiLineString
	for _, p := range rectclip.ClipLines(paths, rect(b)) {
		result = append(result, lineString(p))
	}
	return result
}

// Ring clips a ring against the bound, which may split it into several polygons.
func Ring(b orb.Bound, r orb.Ring) orb.MultiPolygon {
	var result orb.MultiPolygon
	for _, r := range clipRings(rectclip.NewRectClip(rect(b)), []orb.Ring{r}) {
		result = append(result, orb.Polygon{r})
	}
	return result
}

// Polygon clips a polygon against the bound. The exterior ring may be split into several polygons, every clipped hole is assigned to the polygon that contains it.
func Polygon(b orb.Bound, p orb.Polygon) orb.MultiPolygon {
	if len(p) == 0 {
		return nil
	}

	c := rectclip.NewRectClip(rect(b))
	var result orb.MultiPolygon
	for _, r := range clipRings(c, p[:1]) {
		result = append(result, orb.Polygon{r})
	}
	if len(result) == 0 {
		return nil
	}
	for _, hole := range clipRings(c, p[1:]) {
		result = addHole(result, hole)
	}
	return result
}

// MultiPolygon clips every polygon against the bound.
func MultiPolygon(b orb.Bound, mp orb.MultiPolygon) orb.MultiPolygon {
	var result orb.MultiPolygon
	for _, p := range mp {
		result = append(result, Polygon(b, p)...)
	}
	return result
}

// Bound returns the intersection of both bounds, which must intersect.
func Bound(b, g orb.Bound) orb.Bound {
	return orb.Bound{
		Min: orb.Point{max(b.Min[0], g.Min[0]), max(b.Min[1], g.Min[1])},
		Max: orb.Point{min(b.Max[0], g.Max[0]), min(b.Max[1], g.Max[1])},
	}
}

func clipRings(c *rectclip.RectClip[float64], rs []orb.Ring) []orb.Ring {
	paths := make(rectclip.Paths[float64], len(rs))
	for i, r := range rs {
		paths[i] = ringPath(r)
	}

	var result []orb.Ring
	for _, p := range c.Execute(paths) {
		result = append(result, ring(p))
	}
	return result
}

// addHole adds the hole to the first polygon whose exterior contains all its points. Holes outside every polygon are dropped.
func addHole(mp orb.MultiPolygon, hole orb.Ring) orb.MultiPolygon {
	if len(mp) == 1 {
		mp[0] = append(mp[0], hole)
		return mp
	}

Polygons:
	for i := range mp {
		for _, pt := range hole {
			if !planar.RingContains(mp[i][0], pt) {
				continue Polygons
			}
		}
		mp[i] = append(mp[i], hole)
		return mp
	}
	return mp
}

////////////////////////////////////////////////////////////////

// Feature clips the feature's geometry against the bound and returns a new feature with a copy of its ID and properties. It returns nil when nothing of the geometry remains.
func Feature(b orb.Bound, f *geojson.Feature) *geojson.Feature {
	g := Geometry(b, f.Geometry)
	if g == nil {
		return nil
	}

	nf := geojson.NewFeature(g)
	nf.ID = f.ID
	nf.Properties = f.Properties.Clone()
	if f.BBox != nil {
		nf.BBox = geojson.NewBBox(g.Bound())
	}
	return nf
}

// FeatureCollection clips every feature against the bound, features that end up empty are dropped.
func FeatureCollection(b orb.Bound, fc *geojson.FeatureCollection) *geojson.FeatureCollection {
	result := geojson.NewFeatureCollection()
	for _, f := range fc.Features {
		if nf := Feature(b, f); nf != nil {
			result.Append(nf)
		}
	}
	return result
}
