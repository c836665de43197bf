package registry

import (
	"errors"
	"testing"

	"github.com/meltforce/vitalbridge/internal/healthvalue"
)

// TestDefaultsDecodeDispatch verifies that the default table routes a bare
// payload to the right variant decoder for every registered kind.
func TestDefaultsDecodeDispatch(t *testing.T) {
	r := NewWithDefaults()

	v, err := r.Decode(string(healthvalue.KindNumeric), healthvalue.Payload{"numeric_value": 98.6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	num, ok := v.(*healthvalue.NumericValue)
	if !ok {
		t.Fatalf("decoded type = %T, want *NumericValue", v)
	}
	if num.Value != 98.6 {
		t.Errorf("value = %g, want 98.6", num.Value)
	}

	v, err = r.Decode(string(healthvalue.KindWorkout), healthvalue.Payload{"activity_type": "RUNNING"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(*healthvalue.WorkoutValue); !ok {
		t.Fatalf("decoded type = %T, want *WorkoutValue", v)
	}
}

// TestDefaultsCoverAllKinds verifies the table is complete: one decoder
// per variant in the closed set.
func TestDefaultsCoverAllKinds(t *testing.T) {
	r := NewWithDefaults()
	got := r.Kinds()
	if len(got) != len(healthvalue.Kinds()) {
		t.Fatalf("registered %d kinds, want %d: %v", len(got), len(healthvalue.Kinds()), got)
	}
	for _, k := range healthvalue.Kinds() {
		if _, err := r.Decode(string(k), healthvalue.Payload{}); errors.Is(err, ErrNotRegistered) {
			t.Errorf("kind %q not registered", k)
		}
	}
}

// TestDecodeUnknownKind verifies the not-registered error for unknown
// discriminators.
func TestDecodeUnknownKind(t *testing.T) {
	r := NewWithDefaults()
	_, err := r.Decode("blood_type", healthvalue.Payload{})
	if !errors.Is(err, ErrNotRegistered) {
		t.Errorf("err = %v, want ErrNotRegistered", err)
	}
}

// TestDecodeErrorReturnsNilValue verifies that a failed decode never leaks
// a typed-nil value through the interface.
func TestDecodeErrorReturnsNilValue(t *testing.T) {
	r := NewWithDefaults()
	v, err := r.Decode(string(healthvalue.KindAudiogram), healthvalue.Payload{})
	if err == nil {
		t.Fatal("expected decode error for empty audiogram payload")
	}
	if v != nil {
		t.Errorf("value = %v, want nil on error", v)
	}
}

// TestRegisterDuplicateFails verifies that double registration is rejected
// rather than silently replacing a decoder.
func TestRegisterDuplicateFails(t *testing.T) {
	r := New()
	fn := func(healthvalue.Payload) (healthvalue.Value, error) { return nil, nil }
	if err := r.Register("custom", fn); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := r.Register("custom", fn); err == nil {
		t.Fatal("expected error for duplicate registration")
	}
}
