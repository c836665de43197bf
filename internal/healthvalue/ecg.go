package healthvalue

import "fmt"

// EcgClassification is the canonical rhythm classification enumeration for
// ECG recordings. Native recordings carry an integer code; unrecognized
// codes are a hard failure — unlike the menstrual flow mapping, there is
// no fallback here, and that asymmetry is intentional.
type EcgClassification string

const (
	EcgClassificationNotSet                    EcgClassification = "NOT_SET"
	EcgClassificationSinusRhythm               EcgClassification = "SINUS_RHYTHM"
	EcgClassificationAtrialFibrillation        EcgClassification = "ATRIAL_FIBRILLATION"
	EcgClassificationInconclusiveLowHeartRate  EcgClassification = "INCONCLUSIVE_LOW_HEART_RATE"
	EcgClassificationInconclusiveHighHeartRate EcgClassification = "INCONCLUSIVE_HIGH_HEART_RATE"
	EcgClassificationInconclusivePoorReading   EcgClassification = "INCONCLUSIVE_POOR_READING"
	EcgClassificationInconclusiveOther         EcgClassification = "INCONCLUSIVE_OTHER"
	EcgClassificationUnrecognized              EcgClassification = "UNRECOGNIZED"
)

// ecgClassificationCodes maps the native integer codes to canonical names.
// Code 100 is the platform's own "unrecognized" marker and is a valid
// classification, not a decode failure.
var ecgClassificationCodes = map[int64]EcgClassification{
	0:   EcgClassificationNotSet,
	1:   EcgClassificationSinusRhythm,
	2:   EcgClassificationAtrialFibrillation,
	3:   EcgClassificationInconclusiveLowHeartRate,
	4:   EcgClassificationInconclusiveHighHeartRate,
	5:   EcgClassificationInconclusivePoorReading,
	6:   EcgClassificationInconclusiveOther,
	100: EcgClassificationUnrecognized,
}

// EcgClassificationFromCode resolves a native classification code by exact
// value match.
func EcgClassificationFromCode(code int64) (EcgClassification, error) {
	if c, ok := ecgClassificationCodes[code]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: ECG classification code %d", ErrUnknownEnumCode, code)
}

// ParseEcgClassification resolves a canonical classification name, used by
// the wire decoder.
func ParseEcgClassification(name string) (EcgClassification, error) {
	for _, c := range ecgClassificationCodes {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: ECG classification %q", ErrUnknownEnumCode, name)
}

// EcgVoltageSample is one voltage reading within an ECG recording: an
// immutable value pair with no independent identity, owned exclusively by
// its recording.
type EcgVoltageSample struct {
	Voltage              float64
	TimeSinceSampleStart float64
}

// EcgVoltageSampleFromNativePoint constructs a sample from a native point.
// Both fields are required.
func EcgVoltageSampleFromNativePoint(pt NativePoint) (EcgVoltageSample, error) {
	voltage, ok := pt.GetFloat("voltage")
	if !ok {
		return EcgVoltageSample{}, fmt.Errorf("%w: ECG sample missing voltage", ErrMalformedNativePoint)
	}
	offset, ok := pt.GetFloat("timeSinceSampleStart")
	if !ok {
		return EcgVoltageSample{}, fmt.Errorf("%w: ECG sample missing timeSinceSampleStart", ErrMalformedNativePoint)
	}
	return EcgVoltageSample{Voltage: voltage, TimeSinceSampleStart: offset}, nil
}

func decodeEcgVoltageSample(p Payload) (EcgVoltageSample, error) {
	var s EcgVoltageSample
	voltage, ok, err := p.decodeFloat("voltage")
	if err != nil {
		return s, err
	}
	if !ok {
		return s, fmt.Errorf("%w: ECG sample missing voltage", ErrDecodeMismatch)
	}
	offset, ok, err := p.decodeFloat("time_since_sample_start")
	if err != nil {
		return s, err
	}
	if !ok {
		return s, fmt.Errorf("%w: ECG sample missing time_since_sample_start", ErrDecodeMismatch)
	}
	s.Voltage = voltage
	s.TimeSinceSampleStart = offset
	return s, nil
}

func (s EcgVoltageSample) encode() Payload {
	return Payload{
		"voltage":                 s.Voltage,
		"time_since_sample_start": s.TimeSinceSampleStart,
	}
}

// EcgRecordingValue is a full ECG recording: an ordered voltage trace plus
// optional summary fields.
type EcgRecordingValue struct {
	UUID              string
	VoltageValues     []EcgVoltageSample
	AverageHeartRate  *float64
	SamplingFrequency *float64
	Classification    EcgClassification
}

// EcgRecordingFromNativePoint constructs a recording from a native point.
// The voltage list may be absent or empty; a single malformed element fails
// the whole recording — no partial traces. A present-but-unknown
// classification code is a hard failure.
func EcgRecordingFromNativePoint(pt NativePoint) (*EcgRecordingValue, error) {
	v := &EcgRecordingValue{UUID: optString(pt, "uuid")}

	if raw, ok := pt.GetSlice("voltageValues"); ok {
		v.VoltageValues = make([]EcgVoltageSample, len(raw))
		for i, e := range raw {
			elem, ok := asNativePoint(e)
			if !ok {
				return nil, fmt.Errorf("%w: ECG voltage element %d not an object", ErrMalformedNativePoint, i)
			}
			s, err := EcgVoltageSampleFromNativePoint(elem)
			if err != nil {
				return nil, fmt.Errorf("voltage element %d: %w", i, err)
			}
			v.VoltageValues[i] = s
		}
	}

	if f, ok := pt.GetFloat("averageHeartRate"); ok {
		v.AverageHeartRate = &f
	}
	if f, ok := pt.GetFloat("samplingFrequency"); ok {
		v.SamplingFrequency = &f
	}
	if code, ok := pt.GetInt("classification"); ok {
		c, err := EcgClassificationFromCode(code)
		if err != nil {
			return nil, err
		}
		v.Classification = c
	}
	return v, nil
}

func asNativePoint(v any) (NativePoint, bool) {
	switch m := v.(type) {
	case NativePoint:
		return m, true
	case map[string]any:
		return NativePoint(m), true
	}
	return nil, false
}

// DecodeEcgRecording is the inverse of Encode.
func DecodeEcgRecording(p Payload) (*EcgRecordingValue, error) {
	v := &EcgRecordingValue{}

	uuid, _, err := p.decodeString("uuid")
	if err != nil {
		return nil, err
	}
	v.UUID = uuid

	samples, ok, err := p.decodePayloadSlice("voltage_values")
	if err != nil {
		return nil, err
	}
	if ok {
		v.VoltageValues = make([]EcgVoltageSample, len(samples))
		for i, sp := range samples {
			s, err := decodeEcgVoltageSample(sp)
			if err != nil {
				return nil, fmt.Errorf("voltage element %d: %w", i, err)
			}
			v.VoltageValues[i] = s
		}
	}

	if f, ok, err := p.decodeFloat("average_heart_rate"); err != nil {
		return nil, err
	} else if ok {
		v.AverageHeartRate = &f
	}
	if f, ok, err := p.decodeFloat("sampling_frequency"); err != nil {
		return nil, err
	} else if ok {
		v.SamplingFrequency = &f
	}
	if name, ok, err := p.decodeString("classification"); err != nil {
		return nil, err
	} else if ok {
		c, err := ParseEcgClassification(name)
		if err != nil {
			return nil, err
		}
		v.Classification = c
	}
	return v, nil
}

func (v *EcgRecordingValue) Kind() Kind { return KindEcgRecording }

func (v *EcgRecordingValue) Encode() Payload {
	samples := make([]Payload, len(v.VoltageValues))
	for i, s := range v.VoltageValues {
		samples[i] = s.encode()
	}
	p := Payload{"voltage_values": samples}
	if v.UUID != "" {
		p["uuid"] = v.UUID
	}
	if v.AverageHeartRate != nil {
		p["average_heart_rate"] = *v.AverageHeartRate
	}
	if v.SamplingFrequency != nil {
		p["sampling_frequency"] = *v.SamplingFrequency
	}
	if v.Classification != "" {
		p["classification"] = string(v.Classification)
	}
	return p
}

// Equal is structural and order-sensitive over the full voltage trace.
func (v *EcgRecordingValue) Equal(other Value) bool {
	o, ok := other.(*EcgRecordingValue)
	if !ok ||
		v.UUID != o.UUID ||
		v.Classification != o.Classification ||
		!eqFloatPtr(v.AverageHeartRate, o.AverageHeartRate) ||
		!eqFloatPtr(v.SamplingFrequency, o.SamplingFrequency) ||
		len(v.VoltageValues) != len(o.VoltageValues) {
		return false
	}
	for i := range v.VoltageValues {
		if v.VoltageValues[i] != o.VoltageValues[i] {
			return false
		}
	}
	return true
}

func (v *EcgRecordingValue) Hash() string {
	return hashOf(KindEcgRecording, v.Encode())
}

func (v *EcgRecordingValue) String() string {
	return fmt.Sprintf("electrocardiogram(%d samples)", len(v.VoltageValues))
}
