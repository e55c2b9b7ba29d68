// Package thickline derives, validates and emits the polygons of a
// constant-width line drawn between two sketch points, optionally capped
// with an arrow head or a T crossbar at either end.
//
// All computation is performed on immutable values in a single 2D frame
// (sketch space). A typical host calls Build with a fresh Input every time
// the user changes a field and either draws the returned Shapes or shows
// the error message.
package thickline

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// CoincidentEpsilon is the distance below which A and B are considered the same point.
	CoincidentEpsilon = 1e-12
	// SketchLengthEpsilon is the minimum signed length of the main body
	// once leads and feature lengths have been applied.
	SketchLengthEpsilon = 1e-9
)

// FeatureKind is the kind of end cap attached at one end of a thick line.
type FeatureKind int

const (
	FeatureNone  FeatureKind = iota // no end cap
	FeatureArrow                    // triangular taper converging at the tip
	FeatureT                        // perpendicular crossbar
)

var featureNames = [...]string{
	FeatureNone:  "None",
	FeatureArrow: "Arrow",
	FeatureT:     "T",
}

func (k FeatureKind) String() string {
	if k < 0 || int(k) >= len(featureNames) {
		return fmt.Sprintf("FeatureKind(%d)", int(k))
	}
	return featureNames[k]
}

// ParseFeatureKind returns the FeatureKind named by s. Names match
// those returned by String.
func ParseFeatureKind(s string) (FeatureKind, error) {
	for k, name := range featureNames {
		if name == s {
			return FeatureKind(k), nil
		}
	}
	return FeatureNone, fmt.Errorf("unknown feature type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k FeatureKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(featureNames) {
		return nil, fmt.Errorf("invalid feature kind %d", int(k))
	}
	return []byte(featureNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FeatureKind) UnmarshalText(text []byte) error {
	got, err := ParseFeatureKind(string(text))
	if err != nil {
		return err
	}
	*k = got
	return nil
}

// FeatureSpec describes the end cap at one end of the line. Width and
// Length are ignored when Kind is FeatureNone.
type FeatureSpec struct {
	Kind   FeatureKind
	Width  float64 // size perpendicular to the line axis
	Length float64 // size along the line axis, measured from the tip
}

// EffectiveLength returns the distance the feature consumes along the
// line axis. It is zero for FeatureNone regardless of Length.
func (f FeatureSpec) EffectiveLength() float64 {
	if f.Kind == FeatureNone {
		return 0
	}
	return f.Length
}

// IsFeatureConfigurable reports whether the width and length of f are
// meaningful, which hosts use to enable or disable the matching fields.
func IsFeatureConfigurable(f FeatureSpec) bool {
	return f.Kind != FeatureNone
}

// Input is a snapshot of every parameter needed to build a thick line.
// A and B are in sketch space and all lengths share the same unit.
type Input struct {
	A, B     r2.Vec
	Width    float64 // body width, must be > 0
	LeadA    float64 // extension of the tip beyond A, must be >= 0
	LeadB    float64 // extension of the tip beyond B, must be >= 0
	FeatureA FeatureSpec
	FeatureB FeatureSpec
}
