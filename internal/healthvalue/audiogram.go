package healthvalue

import "fmt"

// AudiogramValue is a hearing test result: per-frequency sensitivity
// thresholds for each ear. The three sequences are co-indexed — element i
// of each sensitivity list belongs to frequency i.
type AudiogramValue struct {
	UUID                  string
	Frequencies           []float64
	LeftEarSensitivities  []float64
	RightEarSensitivities []float64
}

// AudiogramFromNativePoint constructs an AudiogramValue from a native
// point. uuid and all three sequences are required; the sensitivity lists
// must match the frequency list in length.
func AudiogramFromNativePoint(pt NativePoint) (*AudiogramValue, error) {
	uuid, ok := pt.GetString("uuid")
	if !ok {
		return nil, fmt.Errorf("%w: audiogram missing uuid", ErrMalformedNativePoint)
	}
	freqs, err := nativeFloats(pt, "frequencies")
	if err != nil {
		return nil, err
	}
	left, err := nativeFloats(pt, "leftEarSensitivities")
	if err != nil {
		return nil, err
	}
	right, err := nativeFloats(pt, "rightEarSensitivities")
	if err != nil {
		return nil, err
	}
	if len(left) != len(freqs) || len(right) != len(freqs) {
		return nil, fmt.Errorf("%w: audiogram sequences not co-indexed (%d frequencies, %d left, %d right)",
			ErrMalformedNativePoint, len(freqs), len(left), len(right))
	}
	return &AudiogramValue{
		UUID:                  uuid,
		Frequencies:           freqs,
		LeftEarSensitivities:  left,
		RightEarSensitivities: right,
	}, nil
}

// nativeFloats copies a required list-shaped native field into an owned
// numeric sequence.
func nativeFloats(pt NativePoint, key string) ([]float64, error) {
	raw, ok := pt.GetSlice(key)
	if !ok {
		return nil, fmt.Errorf("%w: audiogram field %q missing or not a list", ErrMalformedNativePoint, key)
	}
	out := make([]float64, len(raw))
	for i, e := range raw {
		f, ok := toFloat64(e)
		if !ok {
			return nil, fmt.Errorf("%w: audiogram field %q element %d not numeric", ErrMalformedNativePoint, key, i)
		}
		out[i] = f
	}
	return out, nil
}

// DecodeAudiogram is the inverse of Encode.
func DecodeAudiogram(p Payload) (*AudiogramValue, error) {
	uuid, ok, err := p.decodeString("uuid")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: audiogram missing uuid", ErrDecodeMismatch)
	}
	v := &AudiogramValue{UUID: uuid}
	for _, f := range []struct {
		key string
		dst *[]float64
	}{
		{"frequencies", &v.Frequencies},
		{"left_ear_sensitivities", &v.LeftEarSensitivities},
		{"right_ear_sensitivities", &v.RightEarSensitivities},
	} {
		seq, ok, err := p.decodeFloatSlice(f.key)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: audiogram missing %q", ErrDecodeMismatch, f.key)
		}
		*f.dst = seq
	}
	return v, nil
}

func (v *AudiogramValue) Kind() Kind { return KindAudiogram }

func (v *AudiogramValue) Encode() Payload {
	return Payload{
		"uuid":                    v.UUID,
		"frequencies":             v.Frequencies,
		"left_ear_sensitivities":  v.LeftEarSensitivities,
		"right_ear_sensitivities": v.RightEarSensitivities,
	}
}

// Equal is structural over all four fields, sequences compared element-wise
// in original order.
func (v *AudiogramValue) Equal(other Value) bool {
	o, ok := other.(*AudiogramValue)
	return ok &&
		v.UUID == o.UUID &&
		eqFloats(v.Frequencies, o.Frequencies) &&
		eqFloats(v.LeftEarSensitivities, o.LeftEarSensitivities) &&
		eqFloats(v.RightEarSensitivities, o.RightEarSensitivities)
}

func (v *AudiogramValue) Hash() string {
	return hashOf(KindAudiogram, v.Encode())
}

func (v *AudiogramValue) String() string {
	return fmt.Sprintf("audiogram(%d frequencies)", len(v.Frequencies))
}
