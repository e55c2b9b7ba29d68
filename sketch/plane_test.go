package sketch

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func near3(a, b r3.Vec) bool { return r3.Norm(r3.Sub(a, b)) < 1e-12 }

func TestXY(t *testing.T) {
	p := XY()
	got := p.ToSketch(r3.Vec{X: 3, Y: -2, Z: 7})
	if got != (r2.Vec{X: 3, Y: -2}) {
		t.Errorf("got %v", got)
	}
	if !near3(p.Normal(), r3.Vec{Z: 1}) {
		t.Errorf("normal %v", p.Normal())
	}
}

func TestNewPlaneOrthonormal(t *testing.T) {
	p, err := NewPlane(r3.Vec{X: 1, Y: 1, Z: 1}, r3.Vec{X: 2}, r3.Vec{X: 1, Z: 3})
	if err != nil {
		t.Fatal(err)
	}
	if !near3(p.XAxis, r3.Vec{X: 1}) || !near3(p.YAxis, r3.Vec{Z: 1}) {
		t.Errorf("axes %v %v", p.XAxis, p.YAxis)
	}
	w := r3.Vec{X: 4, Y: 5, Z: -1}
	s := p.ToSketch(w)
	if math.Abs(s.X-3) > 1e-12 || math.Abs(s.Y+2) > 1e-12 {
		t.Errorf("ToSketch = %v, want (3,-2)", s)
	}
	// Lifting back drops the out of plane component only.
	back := p.ToWorld(s)
	if !near3(back, r3.Vec{X: 4, Y: 1, Z: -1}) {
		t.Errorf("ToWorld = %v", back)
	}
}

func TestNewPlaneDegenerate(t *testing.T) {
	if _, err := NewPlane(r3.Vec{}, r3.Vec{}, r3.Vec{Y: 1}); err == nil {
		t.Error("zero x axis accepted")
	}
	if _, err := NewPlane(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{X: -3}); err == nil {
		t.Error("parallel axes accepted")
	}
}
