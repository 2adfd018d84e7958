package nutrition

import "encoding/json"

// Gender tokens accepted by the validator.
const (
	Male   = "male"
	Female = "female"
)

// BiometricInput is the request shape for BMR calculation. Fields are
// pointers so an absent field can be told apart from a zero value.
type BiometricInput struct {
	Age    *float64 `json:"age"`
	Weight *float64 `json:"weight"`
	Height *Height  `json:"height"`
	Gender *string  `json:"gender"`
	Units  *string  `json:"units"`
}

// NewBiometricInput builds a fully populated input.
func NewBiometricInput(age, weight float64, height Height, gender, units string) BiometricInput {
	return BiometricInput{
		Age:    &age,
		Weight: &weight,
		Height: &height,
		Gender: &gender,
		Units:  &units,
	}
}

// UnmarshalJSON keeps every present key present, including null, and maps
// wrong-typed values onto values the validator rejects: numbers become NaN
// and strings keep their raw JSON text.
func (in *BiometricInput) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	*in = BiometricInput{}

	if _, ok := fields["age"]; ok {
		v := rawNumber(fields, "age")
		in.Age = &v
	}
	if _, ok := fields["weight"]; ok {
		v := rawNumber(fields, "weight")
		in.Weight = &v
	}
	if raw, ok := fields["height"]; ok {
		var h Height
		if err := h.UnmarshalJSON(raw); err != nil {
			return err
		}
		in.Height = &h
	}
	if _, ok := fields["gender"]; ok {
		s := rawString(fields, "gender")
		in.Gender = &s
	}
	if _, ok := fields["units"]; ok {
		s := rawString(fields, "units")
		in.Units = &s
	}
	return nil
}

// rawString decodes fields[key] as a JSON string, falling back to the raw
// JSON text for any other type.
func rawString(fields map[string]json.RawMessage, key string) string {
	raw := fields[key]
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw)
	}
	return s
}
