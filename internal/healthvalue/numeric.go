package healthvalue

import "fmt"

// NumericValue is a plain magnitude sample — the shape behind the vast
// majority of health data types (heart rate, weight, step counts, ...).
type NumericValue struct {
	// Value is the sample magnitude. Defaults to 0 when the native field
	// is absent; this variant deliberately cannot distinguish "not
	// reported" from "measured as zero" (NutritionValue can).
	Value float64
	// UUID is the platform sample identifier, empty when absent.
	UUID string
}

// NumericFromNativePoint constructs a NumericValue from a native point.
// It never fails: a missing or non-numeric value field yields 0.
func NumericFromNativePoint(pt NativePoint) *NumericValue {
	v := &NumericValue{}
	if f, ok := pt.GetFloat("value"); ok {
		v.Value = f
	}
	if s, ok := pt.GetString("uuid"); ok {
		v.UUID = s
	}
	return v
}

// DecodeNumeric is the inverse of Encode.
func DecodeNumeric(p Payload) (*NumericValue, error) {
	v := &NumericValue{}
	f, ok, err := p.decodeFloat("numeric_value")
	if err != nil {
		return nil, err
	}
	if ok {
		v.Value = f
	}
	s, _, err := p.decodeString("uuid")
	if err != nil {
		return nil, err
	}
	v.UUID = s
	return v, nil
}

func (v *NumericValue) Kind() Kind { return KindNumeric }

func (v *NumericValue) Encode() Payload {
	p := Payload{"numeric_value": v.Value}
	if v.UUID != "" {
		p["uuid"] = v.UUID
	}
	return p
}

// Equal considers only the magnitude: two samples of equal value are the
// same value regardless of platform identity. UUID is excluded on purpose.
func (v *NumericValue) Equal(other Value) bool {
	o, ok := other.(*NumericValue)
	return ok && v.Value == o.Value
}

// Hash covers the same fields as Equal, so equal values dedupe together
// even when their platform identifiers differ.
func (v *NumericValue) Hash() string {
	return hashOf(KindNumeric, Payload{"numeric_value": v.Value})
}

func (v *NumericValue) String() string {
	return fmt.Sprintf("numeric(%g)", v.Value)
}
