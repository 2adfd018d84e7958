package nutrition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// HeightKind tags which representation a Height carries.
type HeightKind int

const (
	// HeightMalformed is any shape that is neither a number nor an object.
	HeightMalformed HeightKind = iota
	// HeightCentimeters carries Value in centimeters.
	HeightCentimeters
	// HeightTotalInches carries Value as total inches.
	HeightTotalInches
	// HeightFeetInches carries Feet and Inches; either may be nil when the
	// key was absent.
	HeightFeetInches
	// HeightLegacy is a bare number whose unit depends on the unit system:
	// centimeters under metric, total inches under imperial.
	HeightLegacy
)

func (k HeightKind) String() string {
	switch k {
	case HeightCentimeters:
		return "cm"
	case HeightTotalInches:
		return "totalInches"
	case HeightFeetInches:
		return "ftIn"
	case HeightLegacy:
		return "legacy"
	default:
		return "malformed"
	}
}

// Height is a tagged union over the legal height representations.
type Height struct {
	Kind   HeightKind
	Value  float64
	Feet   *float64
	Inches *float64
}

// Centimeters returns an explicitly metric height.
func Centimeters(cm float64) Height {
	return Height{Kind: HeightCentimeters, Value: cm}
}

// TotalInches returns an imperial height expressed as a single inch count.
func TotalInches(in float64) Height {
	return Height{Kind: HeightTotalInches, Value: in}
}

// FeetAndInches returns the structured imperial height.
func FeetAndInches(feet, inches float64) Height {
	return Height{Kind: HeightFeetInches, Feet: &feet, Inches: &inches}
}

// LegacyNumber returns a bare numeric height as it arrives on the wire.
func LegacyNumber(v float64) Height {
	return Height{Kind: HeightLegacy, Value: v}
}

// Resolve turns a legacy bare number into an explicit kind for the given
// unit system. deprecated reports whether the imperial total-inches overload
// was used.
func (h Height) Resolve(units string) (resolved Height, deprecated bool) {
	if h.Kind != HeightLegacy {
		return h, false
	}
	if units == Imperial {
		return TotalInches(h.Value), true
	}
	return Centimeters(h.Value), false
}

// CM returns the height in centimeters at full precision. Legacy numbers
// must be resolved first; malformed heights and absent feet report false.
func (h Height) CM() (float64, bool) {
	switch h.Kind {
	case HeightCentimeters:
		return h.Value, true
	case HeightTotalInches:
		return h.Value * cmPerInch, true
	case HeightFeetInches:
		if h.Feet == nil {
			return 0, false
		}
		inches := 0.0
		if h.Inches != nil {
			inches = *h.Inches
		}
		return feetInchesToCM(*h.Feet, inches), true
	default:
		return 0, false
	}
}

/* ─── JSON ───────────────────────────────────────────────────────────── */

// UnmarshalJSON accepts a bare number, {feet, inches}, or a tagged object
// {"kind": "cm"|"totalInches"|"ftIn", ...}. Any other shape decodes to
// HeightMalformed rather than failing, so the validator can report it.
func (h *Height) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*h = Height{Kind: HeightMalformed}
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(b, &fields); err != nil {
			return nil
		}
		h.fromObject(fields)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var v float64
		if err := json.Unmarshal(b, &v); err != nil {
			return nil
		}
		*h = LegacyNumber(v)
	}
	return nil
}

// fromObject decodes the object form. Absent keys stay nil so the validator
// can tell a format error from a value error.
func (h *Height) fromObject(fields map[string]json.RawMessage) {
	kind := "ftIn"
	if raw, ok := fields["kind"]; ok {
		if err := json.Unmarshal(raw, &kind); err != nil {
			return
		}
	}
	switch kind {
	case "cm":
		*h = Centimeters(rawNumber(fields, "value"))
	case "totalInches":
		*h = TotalInches(rawNumber(fields, "value"))
	case "ftIn":
		h.Kind = HeightFeetInches
		if _, ok := fields["feet"]; ok {
			f := rawNumber(fields, "feet")
			h.Feet = &f
		}
		if _, ok := fields["inches"]; ok {
			in := rawNumber(fields, "inches")
			h.Inches = &in
		}
	}
}

// rawNumber decodes fields[key] as a JSON number. Anything else, including
// an absent key or null, becomes NaN so it fails the finite checks downstream.
func rawNumber(fields map[string]json.RawMessage, key string) float64 {
	raw, ok := fields[key]
	if !ok {
		return math.NaN()
	}
	var v *float64
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return math.NaN()
	}
	return *v
}

// MarshalJSON writes centimeters and legacy numbers as a bare number, the
// feet/inches form as {feet, inches}, and total inches as a tagged object.
func (h Height) MarshalJSON() ([]byte, error) {
	switch h.Kind {
	case HeightCentimeters, HeightLegacy:
		return json.Marshal(h.Value)
	case HeightTotalInches:
		return json.Marshal(struct {
			Kind  string  `json:"kind"`
			Value float64 `json:"value"`
		}{"totalInches", h.Value})
	case HeightFeetInches:
		return json.Marshal(struct {
			Feet   *float64 `json:"feet"`
			Inches *float64 `json:"inches"`
		}{h.Feet, h.Inches})
	default:
		return nil, fmt.Errorf("cannot marshal %s height", h.Kind)
	}
}

// NormalizeHeight validates h under units and returns it in centimeters,
// rounded to one decimal place. It accepts every representation the
// validator accepts.
func NormalizeHeight(h Height, units string) (float64, error) {
	if !isUnitSystem(units) {
		return 0, unsupportedUnitSystemError(units)
	}
	if err := validateHeight(h, units); err != nil {
		return 0, err
	}
	resolved, _ := h.Resolve(units)
	cm, _ := resolved.CM()
	return round1(cm), nil
}
