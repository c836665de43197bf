package healthvalue

import (
	"fmt"
	"time"
)

// MenstrualFlow is the canonical flow intensity enumeration. The two
// native platforms encode flow with different integer code tables, both of
// which map into this one set.
type MenstrualFlow string

const (
	FlowUnspecified MenstrualFlow = "UNSPECIFIED"
	FlowNone        MenstrualFlow = "NONE"
	FlowLight       MenstrualFlow = "LIGHT"
	FlowMedium      MenstrualFlow = "MEDIUM"
	FlowHeavy       MenstrualFlow = "HEAVY"
	FlowSpotting    MenstrualFlow = "SPOTTING"
)

// Per-platform native code tables. Codes 2-4 agree; the rest diverge.
var (
	androidFlowCodes = map[int64]MenstrualFlow{
		1: FlowSpotting,
		2: FlowLight,
		3: FlowMedium,
		4: FlowHeavy,
	}
	iosFlowCodes = map[int64]MenstrualFlow{
		1: FlowUnspecified,
		2: FlowLight,
		3: FlowMedium,
		4: FlowHeavy,
		5: FlowNone,
	}
)

// FlowFromNativeCode maps a native flow code to the canonical enumeration
// using the table of the given platform. Unmatched or absent codes fall
// back (none on android, unspecified on ios) rather than failing — this
// variant's documented exception to the hard-rejection rule.
func FlowFromNativeCode(code int64, platform Platform) MenstrualFlow {
	if platform == PlatformAndroid {
		if f, ok := androidFlowCodes[code]; ok {
			return f
		}
		return FlowNone
	}
	if f, ok := iosFlowCodes[code]; ok {
		return f
	}
	return FlowUnspecified
}

// ParseMenstrualFlow resolves a canonical flow name, used by the wire
// decoder. Unlike the native code mapping, wire names must match exactly.
func ParseMenstrualFlow(name string) (MenstrualFlow, error) {
	switch MenstrualFlow(name) {
	case FlowUnspecified, FlowNone, FlowLight, FlowMedium, FlowHeavy, FlowSpotting:
		return MenstrualFlow(name), nil
	}
	return "", fmt.Errorf("%w: menstrual flow %q", ErrUnknownEnumCode, name)
}

// MenstruationFlowValue is a menstrual flow observation.
type MenstruationFlowValue struct {
	Flow           MenstrualFlow
	IsStartOfCycle *bool
	DateTime       time.Time
	SelfReported   bool
}

// MenstruationFlowFromNativePoint constructs a MenstruationFlowValue from
// a native point, selecting the flow code table by the supplied platform.
// dateFrom (epoch milliseconds) is required; isStartOfCycle comes from the
// nested metadata block; selfReported defaults to false.
func MenstruationFlowFromNativePoint(pt NativePoint, platform Platform) (*MenstruationFlowValue, error) {
	ms, ok := pt.GetInt("dateFrom")
	if !ok {
		return nil, fmt.Errorf("%w: menstruation flow missing dateFrom", ErrMalformedNativePoint)
	}

	code, _ := pt.GetInt("value")
	v := &MenstruationFlowValue{
		Flow:     FlowFromNativeCode(code, platform),
		DateTime: time.UnixMilli(ms).UTC(),
	}
	if meta, ok := pt.GetMap("metadata"); ok {
		if b, ok := meta.GetBool("isStartOfCycle"); ok {
			v.IsStartOfCycle = &b
		}
	}
	if b, ok := pt.GetBool("selfReported"); ok {
		v.SelfReported = b
	}
	return v, nil
}

// DecodeMenstruationFlow is the inverse of Encode.
func DecodeMenstruationFlow(p Payload) (*MenstruationFlowValue, error) {
	ms, ok, err := p.decodeInt("date_time")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: menstruation flow missing date_time", ErrDecodeMismatch)
	}
	v := &MenstruationFlowValue{DateTime: time.UnixMilli(ms).UTC()}

	if name, ok, err := p.decodeString("flow"); err != nil {
		return nil, err
	} else if ok {
		flow, err := ParseMenstrualFlow(name)
		if err != nil {
			return nil, err
		}
		v.Flow = flow
	}
	if b, ok, err := p.decodeBool("is_start_of_cycle"); err != nil {
		return nil, err
	} else if ok {
		v.IsStartOfCycle = &b
	}
	if b, _, err := p.decodeBool("self_reported"); err != nil {
		return nil, err
	} else {
		v.SelfReported = b
	}
	return v, nil
}

func (v *MenstruationFlowValue) Kind() Kind { return KindMenstruationFlow }

// Encode writes date_time as epoch milliseconds so the timestamp round-trips
// without format or precision loss.
func (v *MenstruationFlowValue) Encode() Payload {
	p := Payload{
		"date_time":     v.DateTime.UnixMilli(),
		"self_reported": v.SelfReported,
	}
	if v.Flow != "" {
		p["flow"] = string(v.Flow)
	}
	if v.IsStartOfCycle != nil {
		p["is_start_of_cycle"] = *v.IsStartOfCycle
	}
	return p
}

// Equal is structural over all four fields.
func (v *MenstruationFlowValue) Equal(other Value) bool {
	o, ok := other.(*MenstruationFlowValue)
	return ok &&
		v.Flow == o.Flow &&
		eqBoolPtr(v.IsStartOfCycle, o.IsStartOfCycle) &&
		v.DateTime.Equal(o.DateTime) &&
		v.SelfReported == o.SelfReported
}

func (v *MenstruationFlowValue) Hash() string {
	return hashOf(KindMenstruationFlow, v.Encode())
}

func (v *MenstruationFlowValue) String() string {
	return fmt.Sprintf("menstruation_flow(%s at %s)", v.Flow, v.DateTime.Format(time.RFC3339))
}
