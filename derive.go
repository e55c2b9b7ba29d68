package thickline

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/soypat/thickline/internal/d2"
)

// Geometry holds the frame and key points derived from an Input.
type Geometry struct {
	Length float64 // distance from A to B
	Axis   r2.Vec  // unit vector from A to B
	Normal r2.Vec  // Axis rotated 90° counter-clockwise

	// Outermost points of each end after applying leads.
	TipA, TipB r2.Vec
	// Points where the body meets the end feature (or the tip when
	// the end has no feature).
	BaseA, BaseB r2.Vec
}

// Span returns the signed length of the main body measured along Axis.
func (g Geometry) Span() float64 {
	return r2.Dot(r2.Sub(g.BaseB, g.BaseA), g.Axis)
}

// Derive computes the direction frame, tips and feature bases of in.
// It fails with a *DegenerateInputError if A and B coincide.
func Derive(in Input) (Geometry, error) {
	diff := r2.Sub(in.B, in.A)
	length := r2.Norm(diff)
	if !(length > CoincidentEpsilon) {
		Logger().Debug("thickline: degenerate input", "a", in.A, "b", in.B, "length", length)
		return Geometry{}, &DegenerateInputError{Length: length}
	}
	var g Geometry
	g.Length = length
	g.Axis = r2.Scale(1/length, diff)
	g.Normal = d2.PerpCCW(g.Axis)

	// Leads always extend away from the segment.
	g.TipA = r2.Add(in.A, r2.Scale(-in.LeadA, g.Axis))
	g.TipB = r2.Add(in.B, r2.Scale(in.LeadB, g.Axis))

	// Bases are pulled inward from the tips by the feature length.
	g.BaseA = r2.Add(g.TipA, r2.Scale(in.FeatureA.EffectiveLength(), g.Axis))
	g.BaseB = r2.Add(g.TipB, r2.Scale(-in.FeatureB.EffectiveLength(), g.Axis))
	return g, nil
}
