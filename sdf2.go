package thickline

import (
	"math"

	"github.com/soypat/thickline/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// SDF2 is the interface to a 2d signed distance function object.
type SDF2 interface {
	// Evaluate takes a point in sketch space and returns the minimum
	// distance from the shape to the point. The distance is negative
	// if the point is contained within the shape.
	Evaluate(p r2.Vec) float64

	// Bounds returns the bounding box that completely contains the SDF2.
	Bounds() r2.Box
}

// polygonSDF is an SDF2 made from a closed set of line segments.
type polygonSDF struct {
	vertex []r2.Vec  // vertices, closed loop
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box
}

// SDF returns the signed distance function of p. It panics if p has
// less than 3 vertices.
func (p Polygon) SDF() SDF2 {
	n := len(p)
	if n < 3 {
		panic("number of vertices < 3")
	}
	s := polygonSDF{}
	s.vertex = append(make([]r2.Vec, 0, n+1), p...)
	if !d2.EqualWithin(p[0], p[n-1], SketchLengthEpsilon) {
		s.vertex = append(s.vertex, p[0])
	}

	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)
	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		if s.length[i] > 0 {
			s.vector[i] = r2.Scale(1/s.length[i], l)
		}
	}
	s.bb = p.Bounds()
	return &s
}

// Evaluate returns the minimum distance for a 2d polygon.
func (s *polygonSDF) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])
	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)

		// t-parameter of projection onto line and normal distance from p to line.
		t := r2.Dot(pa, s.vector[i])
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X})

		switch {
		case t < 0:
			dd = math.Min(dd, r2.Norm2(pa))
		case t > s.length[i]:
			dd = math.Min(dd, r2.Norm2(pb))
		default:
			dd = math.Min(dd, dn*dn)
		}

		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 { // upward crossing, p left of edge
				wn++
			}
		} else if b.Y <= p.Y && dn > 0 { // downward crossing, p right of edge
			wn--
		}
	}

	d := math.Sqrt(dd)
	if wn != 0 {
		return -d
	}
	return d
}

// Bounds returns the bounding box of a 2d polygon.
func (s *polygonSDF) Bounds() r2.Box {
	return s.bb
}

// union2 is the union of several SDF2s.
type union2 struct {
	sdf []SDF2
	bb  r2.Box
}

// Union2D returns the union of multiple SDF2 objects.
func Union2D(sdf ...SDF2) SDF2 {
	if len(sdf) == 0 {
		panic("union requires at least 1 sdf")
	}
	if len(sdf) == 1 {
		return sdf[0]
	}
	s := union2{sdf: sdf}
	bb := d2.Box(sdf[0].Bounds())
	for _, x := range sdf[1:] {
		if x == nil {
			panic("nil argument found")
		}
		bb = bb.Extend(d2.Box(x.Bounds()))
	}
	s.bb = r2.Box(bb)
	return &s
}

// Evaluate returns the minimum distance to the SDF2 union.
func (s *union2) Evaluate(p r2.Vec) float64 {
	d := s.sdf[0].Evaluate(p)
	for _, x := range s.sdf[1:] {
		d = math.Min(d, x.Evaluate(p))
	}
	return d
}

// Bounds returns the bounding box of an SDF2 union.
func (s *union2) Bounds() r2.Box {
	return s.bb
}

// SDF returns the union of the signed distance functions of every
// polygon in s. Hosts use it to hit test points against the shape.
func (s Shapes) SDF() SDF2 {
	polys := s.Polygons()
	sdfs := make([]SDF2, len(polys))
	for i, p := range polys {
		sdfs[i] = p.SDF()
	}
	return Union2D(sdfs...)
}

// Contains reports whether p lies inside or on the border of any polygon of s.
func (s Shapes) Contains(p r2.Vec) bool {
	if s.Body == nil {
		return false
	}
	return s.SDF().Evaluate(p) <= SketchLengthEpsilon
}
