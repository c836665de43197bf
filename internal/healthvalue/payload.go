package healthvalue

import "fmt"

// Payload is the wire representation of a value: a field-named mapping
// with snake_case keys and absent fields omitted (never encoded as null).
// It is what callers persist or transmit, and what Decode functions accept
// back — either as produced by Encode or after a JSON round trip, so the
// accessors tolerate both Go-native and JSON-decoded shapes.
type Payload map[string]any

// decodeFloat reads an optional numeric field. The error wraps
// ErrDecodeMismatch when the field is present but not numeric.
func (p Payload) decodeFloat(key string) (float64, bool, error) {
	v, ok := p[key]
	if !ok {
		return 0, false, nil
	}
	f, ok := toFloat64(v)
	if !ok {
		return 0, false, fmt.Errorf("%w: field %q is not numeric", ErrDecodeMismatch, key)
	}
	return f, true, nil
}

// decodeInt reads an optional integer field, truncating any fractional
// part a JSON round trip introduced.
func (p Payload) decodeInt(key string) (int64, bool, error) {
	f, ok, err := p.decodeFloat(key)
	if err != nil || !ok {
		return 0, ok, err
	}
	return int64(f), true, nil
}

// decodeString reads an optional string field.
func (p Payload) decodeString(key string) (string, bool, error) {
	v, ok := p[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: field %q is not a string", ErrDecodeMismatch, key)
	}
	return s, true, nil
}

// decodeBool reads an optional boolean field.
func (p Payload) decodeBool(key string) (bool, bool, error) {
	v, ok := p[key]
	if !ok {
		return false, false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, false, fmt.Errorf("%w: field %q is not a boolean", ErrDecodeMismatch, key)
	}
	return b, true, nil
}

// decodeFloatSlice reads an optional ordered numeric sequence.
func (p Payload) decodeFloatSlice(key string) ([]float64, bool, error) {
	v, ok := p[key]
	if !ok {
		return nil, false, nil
	}
	switch seq := v.(type) {
	case []float64:
		out := make([]float64, len(seq))
		copy(out, seq)
		return out, true, nil
	case []any:
		out := make([]float64, len(seq))
		for i, e := range seq {
			f, ok := toFloat64(e)
			if !ok {
				return nil, false, fmt.Errorf("%w: field %q element %d is not numeric", ErrDecodeMismatch, key, i)
			}
			out[i] = f
		}
		return out, true, nil
	}
	return nil, false, fmt.Errorf("%w: field %q is not a numeric list", ErrDecodeMismatch, key)
}

// decodePayloadSlice reads an optional ordered sequence of nested payloads.
func (p Payload) decodePayloadSlice(key string) ([]Payload, bool, error) {
	v, ok := p[key]
	if !ok {
		return nil, false, nil
	}
	switch seq := v.(type) {
	case []Payload:
		out := make([]Payload, len(seq))
		copy(out, seq)
		return out, true, nil
	case []any:
		out := make([]Payload, len(seq))
		for i, e := range seq {
			switch m := e.(type) {
			case Payload:
				out[i] = m
			case map[string]any:
				out[i] = Payload(m)
			default:
				return nil, false, fmt.Errorf("%w: field %q element %d is not an object", ErrDecodeMismatch, key, i)
			}
		}
		return out, true, nil
	}
	return nil, false, fmt.Errorf("%w: field %q is not an object list", ErrDecodeMismatch, key)
}
