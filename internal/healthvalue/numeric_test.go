package healthvalue

import "testing"

// TestNumericFromNativePointDefaultsToZero verifies the documented
// zero-default policy: a missing or non-numeric value field yields 0
// rather than an error.
func TestNumericFromNativePointDefaultsToZero(t *testing.T) {
	v := NumericFromNativePoint(NativePoint{})
	if v.Value != 0 {
		t.Errorf("value = %g, want 0", v.Value)
	}

	v = NumericFromNativePoint(NativePoint{"value": "not-a-number"})
	if v.Value != 0 {
		t.Errorf("value = %g, want 0 for non-numeric field", v.Value)
	}
}

// TestNumericFromNativePointReadsFields verifies that value and uuid are
// read when present, including integer-encoded magnitudes.
func TestNumericFromNativePointReadsFields(t *testing.T) {
	v := NumericFromNativePoint(NativePoint{"value": 98.6, "uuid": "abc"})
	if v.Value != 98.6 {
		t.Errorf("value = %g, want 98.6", v.Value)
	}
	if v.UUID != "abc" {
		t.Errorf("uuid = %q, want %q", v.UUID, "abc")
	}

	v = NumericFromNativePoint(NativePoint{"value": int64(72)})
	if v.Value != 72 {
		t.Errorf("value = %g, want 72 for int64-encoded field", v.Value)
	}
}

// TestNumericEqualityIgnoresUUID verifies the deliberate equality policy:
// two samples with equal magnitude are the same value regardless of
// platform identity, and they hash identically for deduplication.
func TestNumericEqualityIgnoresUUID(t *testing.T) {
	a := &NumericValue{Value: 98.6, UUID: "abc"}
	b := &NumericValue{Value: 98.6, UUID: "def"}
	if !a.Equal(b) {
		t.Error("values with equal magnitude but different uuid should be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal values must hash identically")
	}

	c := &NumericValue{Value: 99.1, UUID: "abc"}
	if a.Equal(c) {
		t.Error("values with different magnitude should not be equal")
	}
	if a.Hash() == c.Hash() {
		t.Error("unequal values should not collide on hash")
	}
}

// TestNumericEndToEnd walks the full path from native point through encode
// and decode back to an equal value: {value: 98.6, uuid: "abc"} must
// produce {numeric_value: 98.6, uuid: "abc"} on the wire.
func TestNumericEndToEnd(t *testing.T) {
	v := NumericFromNativePoint(NativePoint{"value": 98.6, "uuid": "abc"})

	p := v.Encode()
	if p["numeric_value"] != 98.6 {
		t.Errorf("numeric_value = %v, want 98.6", p["numeric_value"])
	}
	if p["uuid"] != "abc" {
		t.Errorf("uuid = %v, want %q", p["uuid"], "abc")
	}

	back, err := DecodeNumeric(p)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !v.Equal(back) {
		t.Errorf("round trip not equal: %v vs %v", v, back)
	}
	if back.UUID != "abc" {
		t.Errorf("uuid = %q, want %q", back.UUID, "abc")
	}
}

// TestNumericEncodeOmitsAbsentUUID verifies the null-omitting wire format:
// an absent uuid is not written at all, not written as empty or null.
func TestNumericEncodeOmitsAbsentUUID(t *testing.T) {
	p := (&NumericValue{Value: 1}).Encode()
	if _, present := p["uuid"]; present {
		t.Error("absent uuid should be omitted from the wire payload")
	}
}
