package thickline

// Result bundles a validated input with its derived geometry and shapes.
type Result struct {
	Input    Input
	Geometry Geometry
	Shapes   Shapes
}

// Build runs Derive, Validate and Emit on in. On failure no geometry or
// shapes are returned and the error is either a *DegenerateInputError or
// a *ValidationError.
func Build(in Input) (Result, error) {
	g, err := Derive(in)
	if err != nil {
		return Result{}, err
	}
	if err := Validate(in, g); err != nil {
		Logger().Debug("thickline: validation failed", "err", err)
		return Result{}, err
	}
	res := Result{Input: in, Geometry: g, Shapes: Emit(in, g)}
	Logger().Debug("thickline: built", "length", g.Length, "span", g.Span(),
		"featureA", in.FeatureA.Kind, "featureB", in.FeatureB.Kind)
	return res, nil
}

// MustBuild is like Build but panics if in is invalid.
func MustBuild(in Input) Result {
	res, err := Build(in)
	if err != nil {
		panic(err)
	}
	return res
}
