package healthvalue

import (
	"errors"
	"testing"
)

// TestWorkoutFromNativePoint verifies activity resolution and integer
// truncation of the optional quantity fields.
func TestWorkoutFromNativePoint(t *testing.T) {
	v, err := WorkoutFromNativePoint(NativePoint{
		"uuid":                  "w-1",
		"activityType":          "RUNNING",
		"totalEnergyBurned":     350.9,
		"totalEnergyBurnedUnit": "KILOCALORIE",
		"totalDistance":         5021.0,
		"totalDistanceUnit":     "METER",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ActivityType != ActivityRunning {
		t.Errorf("activity = %q, want RUNNING", v.ActivityType)
	}
	if v.TotalEnergyBurned == nil || *v.TotalEnergyBurned != 350 {
		t.Errorf("energy = %v, want 350 (integer truncation)", v.TotalEnergyBurned)
	}
	if v.TotalEnergyBurnedUnit != UnitKilocalorie {
		t.Errorf("energy unit = %q, want KILOCALORIE", v.TotalEnergyBurnedUnit)
	}
	if v.TotalDistance == nil || *v.TotalDistance != 5021 {
		t.Errorf("distance = %v, want 5021", v.TotalDistance)
	}
	if v.TotalSteps != nil {
		t.Errorf("steps = %v, want absent", v.TotalSteps)
	}
}

// TestWorkoutUnknownActivityFails verifies hard rejection of unmatched
// activity names — workouts are never silently misclassified.
func TestWorkoutUnknownActivityFails(t *testing.T) {
	_, err := WorkoutFromNativePoint(NativePoint{"activityType": "not_a_real_sport"})
	if !errors.Is(err, ErrUnknownEnumCode) {
		t.Errorf("err = %v, want ErrUnknownEnumCode", err)
	}
}

// TestWorkoutMissingActivityFails verifies that activityType is required.
func TestWorkoutMissingActivityFails(t *testing.T) {
	_, err := WorkoutFromNativePoint(NativePoint{"totalSteps": 100.0})
	if !errors.Is(err, ErrMalformedNativePoint) {
		t.Errorf("err = %v, want ErrMalformedNativePoint", err)
	}
}

// TestWorkoutUnknownUnitFails verifies that unit names resolve by exact
// match against the canonical enumeration.
func TestWorkoutUnknownUnitFails(t *testing.T) {
	_, err := WorkoutFromNativePoint(NativePoint{
		"activityType":          "YOGA",
		"totalEnergyBurned":     100.0,
		"totalEnergyBurnedUnit": "furlongs",
	})
	if !errors.Is(err, ErrUnknownEnumCode) {
		t.Errorf("err = %v, want ErrUnknownEnumCode", err)
	}
}

// TestWorkoutEqualityAbsenceEqualsAbsence verifies structural equality
// over every field, with absent optionals matching absent optionals only.
func TestWorkoutEqualityAbsenceEqualsAbsence(t *testing.T) {
	a := &WorkoutValue{ActivityType: ActivityBiking}
	b := &WorkoutValue{ActivityType: ActivityBiking}
	if !a.Equal(b) {
		t.Error("workouts with identical absent optionals should be equal")
	}

	dist := int64(10)
	c := &WorkoutValue{ActivityType: ActivityBiking, TotalDistance: &dist}
	if a.Equal(c) {
		t.Error("absent distance should not equal present distance")
	}

	zero := int64(0)
	d := &WorkoutValue{ActivityType: ActivityBiking, TotalDistance: &zero}
	if a.Equal(d) {
		t.Error("absent distance should not equal zero distance")
	}
}

// TestWorkoutRoundTrip verifies decode(encode(v)) == v with a mix of
// present and absent optional fields.
func TestWorkoutRoundTrip(t *testing.T) {
	energy := int64(350)
	steps := int64(8000)
	v := &WorkoutValue{
		UUID:                  "w-2",
		ActivityType:          ActivityHiking,
		TotalEnergyBurned:     &energy,
		TotalEnergyBurnedUnit: UnitKilocalorie,
		TotalSteps:            &steps,
		TotalStepsUnit:        UnitCount,
	}
	back, err := DecodeWorkout(v.Encode())
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !v.Equal(back) {
		t.Errorf("round trip not equal: %v vs %v", v, back)
	}
}

// TestWorkoutRoundTripMinimal verifies the round trip with every optional
// field absent — the encode must omit them and the decode must not invent
// defaults.
func TestWorkoutRoundTripMinimal(t *testing.T) {
	v := &WorkoutValue{ActivityType: ActivitySwimming}

	p := v.Encode()
	if len(p) != 1 {
		t.Errorf("payload = %v, want only activity_type", p)
	}

	back, err := DecodeWorkout(p)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !v.Equal(back) {
		t.Errorf("round trip not equal: %v vs %v", v, back)
	}
	if back.TotalEnergyBurned != nil || back.TotalDistance != nil || back.TotalSteps != nil {
		t.Error("decode invented quantity defaults")
	}
}

// TestDecodeWorkoutUnknownActivity verifies that wire decode applies the
// same exact-match enum policy as native normalization.
func TestDecodeWorkoutUnknownActivity(t *testing.T) {
	_, err := DecodeWorkout(Payload{"activity_type": "JAZZERCISE_EXTREME"})
	if !errors.Is(err, ErrUnknownEnumCode) {
		t.Errorf("err = %v, want ErrUnknownEnumCode", err)
	}
}
