package thickline

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/soypat/thickline/internal/d2"
)

// Polygon is an ordered list of vertices. The closing edge from the last
// vertex back to the first is implicit.
type Polygon []r2.Vec

// Bounds returns the axis aligned bounding box of the polygon.
func (p Polygon) Bounds() r2.Box {
	if len(p) == 0 {
		return r2.Box{}
	}
	return r2.Box{Min: d2.Set(p).Min(), Max: d2.Set(p).Max()}
}

// ThreePointRect returns the corners p0, p1 and p3 of a four-vertex
// polygon. CAD hosts build a rectangle from these three corners and
// imply the fourth. ok is false if p is not a quadrilateral.
func (p Polygon) ThreePointRect() (p0, p1, p3 r2.Vec, ok bool) {
	if len(p) != 4 {
		return r2.Vec{}, r2.Vec{}, r2.Vec{}, false
	}
	return p[0], p[1], p[3], true
}

// Shapes are the polygons of a thick line. EndA and EndB are nil when
// the corresponding end has no feature.
type Shapes struct {
	Body Polygon
	EndA Polygon
	EndB Polygon
}

// Polygons returns the non-nil polygons ordered body, end A, end B.
func (s Shapes) Polygons() []Polygon {
	polys := make([]Polygon, 0, 3)
	for _, p := range [...]Polygon{s.Body, s.EndA, s.EndB} {
		if p != nil {
			polys = append(polys, p)
		}
	}
	return polys
}

// Bounds returns the bounding box enclosing every polygon.
func (s Shapes) Bounds() r2.Box {
	polys := s.Polygons()
	if len(polys) == 0 {
		return r2.Box{}
	}
	bb := d2.Box(polys[0].Bounds())
	for _, p := range polys[1:] {
		bb = bb.Extend(d2.Box(p.Bounds()))
	}
	return r2.Box(bb)
}

// Emit builds the body and end feature polygons. It assumes in and g
// passed Validate; a non-positive span yields a self intersecting body.
func Emit(in Input, g Geometry) Shapes {
	half := r2.Scale(in.Width/2, g.Normal)
	s := Shapes{
		Body: Polygon{
			r2.Add(g.BaseA, half),
			r2.Add(g.BaseB, half),
			r2.Sub(g.BaseB, half),
			r2.Sub(g.BaseA, half),
		},
	}
	s.EndA = endFeature(in.FeatureA, g.BaseA, g.TipA, g.Normal, r2.Scale(-1, g.Axis))
	s.EndB = endFeature(in.FeatureB, g.BaseB, g.TipB, g.Normal, g.Axis)
	return s
}

// endFeature returns the cap polygon at one end. out points from base
// toward tip.
func endFeature(f FeatureSpec, base, tip, normal, out r2.Vec) Polygon {
	side := r2.Scale(f.Width/2, normal)
	left := r2.Add(base, side)
	right := r2.Sub(base, side)
	switch f.Kind {
	case FeatureArrow:
		return Polygon{left, tip, right}
	case FeatureT:
		depth := r2.Scale(f.Length, out)
		return Polygon{left, r2.Add(left, depth), r2.Add(right, depth), right}
	}
	return nil
}
