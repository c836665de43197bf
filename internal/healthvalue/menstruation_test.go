package healthvalue

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// TestFlowFromNativeCodeTables verifies both platform code tables,
// including the diverging codes and the per-platform fallbacks for
// unmatched or absent codes.
func TestFlowFromNativeCodeTables(t *testing.T) {
	cases := []struct {
		code     int64
		platform Platform
		want     MenstrualFlow
	}{
		{1, PlatformAndroid, FlowSpotting},
		{2, PlatformAndroid, FlowLight},
		{3, PlatformAndroid, FlowMedium},
		{4, PlatformAndroid, FlowHeavy},
		{5, PlatformAndroid, FlowNone},  // no android code 5: fallback
		{99, PlatformAndroid, FlowNone}, // fallback
		{1, PlatformIOS, FlowUnspecified},
		{2, PlatformIOS, FlowLight},
		{3, PlatformIOS, FlowMedium},
		{4, PlatformIOS, FlowHeavy},
		{5, PlatformIOS, FlowNone},
		{99, PlatformIOS, FlowUnspecified}, // fallback
	}
	for _, tc := range cases {
		if got := FlowFromNativeCode(tc.code, tc.platform); got != tc.want {
			t.Errorf("FlowFromNativeCode(%d, %s) = %q, want %q", tc.code, tc.platform, got, tc.want)
		}
	}
}

// TestMenstruationFromNativePoint verifies the full native contract:
// platform-selected flow mapping, nested metadata, epoch-millisecond
// timestamp, and the selfReported default.
func TestMenstruationFromNativePoint(t *testing.T) {
	v, err := MenstruationFlowFromNativePoint(NativePoint{
		"value":    3,
		"dateFrom": int64(1707236400000),
		"metadata": map[string]any{"isStartOfCycle": true},
	}, PlatformAndroid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Flow != FlowMedium {
		t.Errorf("flow = %q, want MEDIUM", v.Flow)
	}
	if v.IsStartOfCycle == nil || !*v.IsStartOfCycle {
		t.Errorf("isStartOfCycle = %v, want true", v.IsStartOfCycle)
	}
	want := time.UnixMilli(1707236400000).UTC()
	if !v.DateTime.Equal(want) {
		t.Errorf("dateTime = %v, want %v", v.DateTime, want)
	}
	if v.SelfReported {
		t.Error("selfReported should default to false")
	}
}

// TestMenstruationAbsentCodeFallsBack verifies that an absent flow code
// uses the platform fallback instead of failing — the documented exception
// to the hard-rejection rule.
func TestMenstruationAbsentCodeFallsBack(t *testing.T) {
	v, err := MenstruationFlowFromNativePoint(NativePoint{"dateFrom": int64(1)}, PlatformIOS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Flow != FlowUnspecified {
		t.Errorf("flow = %q, want UNSPECIFIED", v.Flow)
	}

	v, err = MenstruationFlowFromNativePoint(NativePoint{"dateFrom": int64(1)}, PlatformAndroid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Flow != FlowNone {
		t.Errorf("flow = %q, want NONE", v.Flow)
	}
}

// TestMenstruationMissingTimestampFails verifies that dateFrom is the one
// required native field.
func TestMenstruationMissingTimestampFails(t *testing.T) {
	_, err := MenstruationFlowFromNativePoint(NativePoint{"value": 2}, PlatformIOS)
	if !errors.Is(err, ErrMalformedNativePoint) {
		t.Errorf("err = %v, want ErrMalformedNativePoint", err)
	}
}

// TestMenstruationRoundTripThroughJSON verifies decode(encode(v)) == v
// after a JSON round trip, which turns the epoch-millisecond timestamp
// into a float64.
func TestMenstruationRoundTripThroughJSON(t *testing.T) {
	start := true
	v := &MenstruationFlowValue{
		Flow:           FlowHeavy,
		IsStartOfCycle: &start,
		DateTime:       time.UnixMilli(1707236400000).UTC(),
		SelfReported:   true,
	}

	raw, err := json.Marshal(v.Encode())
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	back, err := DecodeMenstruationFlow(p)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !v.Equal(back) {
		t.Errorf("round trip not equal: %v vs %v", v, back)
	}
	if v.Hash() != back.Hash() {
		t.Error("round trip changed the hash")
	}
}

// TestDecodeMenstruationUnknownFlow verifies that wire decode rejects
// non-canonical flow names — the fallback applies to native codes only.
func TestDecodeMenstruationUnknownFlow(t *testing.T) {
	_, err := DecodeMenstruationFlow(Payload{"flow": "TORRENTIAL", "date_time": int64(1)})
	if !errors.Is(err, ErrUnknownEnumCode) {
		t.Errorf("err = %v, want ErrUnknownEnumCode", err)
	}
}
