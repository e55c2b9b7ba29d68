package thickline

import (
	"errors"
	"math"
)

// DegenerateInputError is returned by Derive when A and B are coincident.
type DegenerateInputError struct {
	Length float64 // measured distance between A and B
}

func (e *DegenerateInputError) Error() string {
	return "Points A and B are coincident or too close together."
}

// Rule identifies which validation check an Input failed.
type Rule int

const (
	RuleWidth         Rule = iota + 1 // non-positive line width
	RuleCoincident                    // A and B too close together
	RuleFeatureWidth                  // feature narrower than the line
	RuleFeatureLength                 // feature with non-positive length
	RuleLead                          // negative or non-finite lead
	RuleSpan                          // leads and features consume the segment
)

// ValidationError describes the first rule a thick line violates.
// Msg is meant to be shown to the user as is.
type ValidationError struct {
	Rule Rule
	Msg  string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(rule Rule, msg string) *ValidationError {
	return &ValidationError{Rule: rule, Msg: msg}
}

// Validate checks in and its derived geometry g for geometric legality.
// Checks run from the most fundamental to the most derived and the first
// failure is returned as a *ValidationError.
func Validate(in Input, g Geometry) error {
	if !(in.Width > 0) || math.IsInf(in.Width, 1) {
		return invalid(RuleWidth, "Width of line must be > 0.")
	}
	if !(g.Length > CoincidentEpsilon) {
		return invalid(RuleCoincident, "Points A and B are coincident or too close together.")
	}
	if err := validateFeature(in.FeatureA, in.Width, "A"); err != nil {
		return err
	}
	if err := validateFeature(in.FeatureB, in.Width, "B"); err != nil {
		return err
	}
	if !validLead(in.LeadA) {
		return invalid(RuleLead, "Lead A must be >= 0.")
	}
	if !validLead(in.LeadB) {
		return invalid(RuleLead, "Lead B must be >= 0.")
	}
	// Per-side overrun is not checked; only the remaining body length matters.
	if !(g.Span() > SketchLengthEpsilon) {
		return invalid(RuleSpan, "Leads and/or feature lengths consume the segment. Reduce leads/features or move A and B further apart.")
	}
	return nil
}

func validateFeature(f FeatureSpec, lineWidth float64, end string) error {
	if f.Kind == FeatureNone {
		return nil
	}
	if !(f.Width >= lineWidth) || math.IsInf(f.Width, 1) {
		return invalid(RuleFeatureWidth, "Feature "+end+" width must be >= line width.")
	}
	if !(f.Length > 0) || math.IsInf(f.Length, 1) {
		return invalid(RuleFeatureLength, "Feature "+end+" length must be > 0.")
	}
	return nil
}

func validLead(lead float64) bool {
	return lead >= 0 && !math.IsInf(lead, 1)
}

// ErrorMessage returns the user facing message of an error produced by
// Derive, Validate or Build, or the empty string for a nil error.
// Hosts compare successive messages to avoid redundant redraws.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Msg
	}
	return err.Error()
}
