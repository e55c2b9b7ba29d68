// Package settings persists the last used thick line parameters as an
// ordered list of key=value lines.
//
// Unknown keys, lines without '=' and values that fail to parse are
// ignored so that older or newer files load without error. Missing keys
// keep their default value.
package settings

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/soypat/thickline"
	"gonum.org/v1/gonum/spatial/r2"
)

// Feature holds the persisted parameters of one end feature.
type Feature struct {
	Type   thickline.FeatureKind
	Width  float64
	Length float64
}

// Settings are the persisted defaults of a thick line. Lengths are in
// centimetres.
type Settings struct {
	Width    float64
	LeadA    float64
	LeadB    float64
	FeatureA Feature
	FeatureB Feature
}

// Default returns the settings used when nothing has been saved.
func Default() Settings {
	return Settings{
		Width:    0.2,
		FeatureA: Feature{Type: thickline.FeatureNone, Width: 0.5, Length: 0.5},
		FeatureB: Feature{Type: thickline.FeatureNone, Width: 0.5, Length: 0.5},
	}
}

// Input returns a thickline.Input for endpoints a and b. The width and
// length of a feature set to None are zeroed.
func (s Settings) Input(a, b r2.Vec) thickline.Input {
	return thickline.Input{
		A:        a,
		B:        b,
		Width:    s.Width,
		LeadA:    s.LeadA,
		LeadB:    s.LeadB,
		FeatureA: s.FeatureA.spec(),
		FeatureB: s.FeatureB.spec(),
	}
}

func (f Feature) spec() thickline.FeatureSpec {
	spec := thickline.FeatureSpec{Kind: f.Type}
	if thickline.IsFeatureConfigurable(spec) {
		spec.Width = f.Width
		spec.Length = f.Length
	}
	return spec
}

// FromInput returns the settings that reproduce the parameters of in.
func FromInput(in thickline.Input) Settings {
	return Settings{
		Width:    in.Width,
		LeadA:    in.LeadA,
		LeadB:    in.LeadB,
		FeatureA: Feature{Type: in.FeatureA.Kind, Width: in.FeatureA.Width, Length: in.FeatureA.Length},
		FeatureB: Feature{Type: in.FeatureB.Kind, Width: in.FeatureB.Width, Length: in.FeatureB.Length},
	}
}

// entry binds a file key to a settings field.
type entry struct {
	key  string
	num  func(*Settings) *float64
	kind func(*Settings) *thickline.FeatureKind
}

// entries lists the keys in the order they are written.
var entries = []entry{
	{key: "width_cm", num: func(s *Settings) *float64 { return &s.Width }},
	{key: "featAType", kind: func(s *Settings) *thickline.FeatureKind { return &s.FeatureA.Type }},
	{key: "leadA_cm", num: func(s *Settings) *float64 { return &s.LeadA }},
	{key: "featAL_cm", num: func(s *Settings) *float64 { return &s.FeatureA.Length }},
	{key: "featAW_cm", num: func(s *Settings) *float64 { return &s.FeatureA.Width }},
	{key: "featBType", kind: func(s *Settings) *thickline.FeatureKind { return &s.FeatureB.Type }},
	{key: "leadB_cm", num: func(s *Settings) *float64 { return &s.LeadB }},
	{key: "featBL_cm", num: func(s *Settings) *float64 { return &s.FeatureB.Length }},
	{key: "featBW_cm", num: func(s *Settings) *float64 { return &s.FeatureB.Width }},
}

func lookup(key string) (entry, bool) {
	for _, e := range entries {
		if e.key == key {
			return e, true
		}
	}
	return entry{}, false
}

// Read parses settings from r starting from Default. Only errors from
// reading r are returned.
func Read(r io.Reader) (Settings, error) {
	s := Default()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		e, ok := lookup(strings.TrimSpace(key))
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if e.kind != nil {
			if k, err := thickline.ParseFeatureKind(value); err == nil {
				*e.kind(&s) = k
			}
			continue
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		*e.num(&s) = v
	}
	if err := scanner.Err(); err != nil {
		return Default(), fmt.Errorf("settings: %w", err)
	}
	return s, nil
}

// Write writes s to w, one key=value line per field.
func Write(w io.Writer, s Settings) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		var value string
		if e.kind != nil {
			value = e.kind(&s).String()
		} else {
			value = strconv.FormatFloat(*e.num(&s), 'g', -1, 64)
		}
		bw.WriteString(e.key)
		bw.WriteByte('=')
		bw.WriteString(value)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
