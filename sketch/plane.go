// Package sketch maps world points onto the 2D frame of a sketch plane.
package sketch

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const tolerance = 1e-9

// Plane is a sketch plane in world space. XAxis and YAxis are
// orthonormal when the Plane is built by NewPlane or XY.
type Plane struct {
	Origin r3.Vec
	XAxis  r3.Vec
	YAxis  r3.Vec
}

// XY returns the world XY plane through the origin.
func XY() Plane {
	return Plane{XAxis: r3.Vec{X: 1}, YAxis: r3.Vec{Y: 1}}
}

// NewPlane returns the plane through origin spanned by xdir and ydir.
// xdir is normalized and ydir is made orthogonal to it.
func NewPlane(origin, xdir, ydir r3.Vec) (Plane, error) {
	if r3.Norm(xdir) < tolerance {
		return Plane{}, errors.New("sketch: zero length x axis")
	}
	x := r3.Unit(xdir)
	// Gram-Schmidt: remove the component of ydir along x.
	y := r3.Sub(ydir, r3.Scale(r3.Dot(ydir, x), x))
	if r3.Norm(y) < tolerance {
		return Plane{}, errors.New("sketch: y axis is zero or parallel to x axis")
	}
	return Plane{Origin: origin, XAxis: x, YAxis: r3.Unit(y)}, nil
}

// Normal returns the unit normal of the plane.
func (p Plane) Normal() r3.Vec {
	return r3.Unit(r3.Cross(p.XAxis, p.YAxis))
}

// ToSketch projects world point w onto the plane and returns its
// sketch space coordinates. The out of plane component is discarded.
func (p Plane) ToSketch(w r3.Vec) r2.Vec {
	d := r3.Sub(w, p.Origin)
	return r2.Vec{X: r3.Dot(d, p.XAxis), Y: r3.Dot(d, p.YAxis)}
}

// ToWorld returns the world position of sketch point s.
func (p Plane) ToWorld(s r2.Vec) r3.Vec {
	w := r3.Add(p.Origin, r3.Scale(s.X, p.XAxis))
	return r3.Add(w, r3.Scale(s.Y, p.YAxis))
}
