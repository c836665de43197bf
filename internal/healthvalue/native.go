package healthvalue

import "encoding/json"

// NativePoint is one untyped sample as handed over by a platform health
// API: a field-name-to-value mapping where fields may be missing, null, or
// carry platform-specific numeric encodings. The accessors below tolerate
// the numeric representations that survive a platform channel or a JSON
// decode (float64, int, int64, json.Number).
type NativePoint map[string]any

// GetFloat reads a numeric field. Returns false when the field is absent,
// null, or not numeric.
func (p NativePoint) GetFloat(key string) (float64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	return toFloat64(v)
}

// GetInt reads a numeric field truncated to an integer.
func (p NativePoint) GetInt(key string) (int64, bool) {
	f, ok := p.GetFloat(key)
	if !ok {
		return 0, false
	}
	return int64(f), true
}

// GetString reads a string field. Empty strings count as absent.
func (p NativePoint) GetString(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// GetBool reads a boolean field.
func (p NativePoint) GetBool(key string) (bool, bool) {
	v, ok := p[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// GetSlice reads a list-shaped field.
func (p NativePoint) GetSlice(key string) ([]any, bool) {
	v, ok := p[key]
	if !ok {
		return nil, false
	}
	s, ok := v.([]any)
	return s, ok
}

// GetMap reads a nested mapping field (e.g. a metadata block).
func (p NativePoint) GetMap(key string) (NativePoint, bool) {
	v, ok := p[key]
	if !ok {
		return nil, false
	}
	switch m := v.(type) {
	case NativePoint:
		return m, true
	case map[string]any:
		return NativePoint(m), true
	}
	return nil, false
}

// toFloat64 coerces the numeric representations seen in native payloads.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
