package healthvalue

import "testing"

// TestNutritionAbsenceIsNotZero verifies the present-or-absent policy:
// constructing from a native point with no numeric fields yields all-absent
// fields, never zeros. This is the documented opposite of NumericValue's
// zero default.
func TestNutritionAbsenceIsNotZero(t *testing.T) {
	v := NutritionFromNativePoint(NativePoint{"name": "espresso"})
	if v.Calories != nil || v.Protein != nil || v.Fat != nil || v.Carbs != nil || v.Caffeine != nil {
		t.Errorf("expected all numeric fields absent, got %+v", v)
	}

	zero := 0.0
	withZero := &NutritionValue{Name: "espresso", Calories: &zero}
	if v.Equal(withZero) {
		t.Error("not-reported calories should not equal measured-as-zero calories")
	}
}

// TestNutritionFromNativePoint verifies that present fields are preserved.
func TestNutritionFromNativePoint(t *testing.T) {
	v := NutritionFromNativePoint(NativePoint{
		"uuid":     "n-1",
		"mealType": "BREAKFAST",
		"name":     "oatmeal",
		"calories": 389.0,
		"protein":  16.9,
		"carbs":    66.3,
	})
	if v.MealType != "BREAKFAST" {
		t.Errorf("mealType = %q, want BREAKFAST", v.MealType)
	}
	if v.Calories == nil || *v.Calories != 389 {
		t.Errorf("calories = %v, want 389", v.Calories)
	}
	if v.Fat != nil || v.Caffeine != nil {
		t.Error("unreported fields should stay absent")
	}
}

// TestNutritionRoundTripAllAbsent verifies the round trip when every
// optional field is absent — the wire payload is empty and decode does not
// invent values.
func TestNutritionRoundTripAllAbsent(t *testing.T) {
	v := &NutritionValue{}
	p := v.Encode()
	if len(p) != 0 {
		t.Errorf("payload = %v, want empty", p)
	}
	back, err := DecodeNutrition(p)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !v.Equal(back) {
		t.Error("all-absent value should round trip to an equal value")
	}
}

// TestNutritionRoundTrip verifies decode(encode(v)) == v with a mixed
// present/absent field set.
func TestNutritionRoundTrip(t *testing.T) {
	cal := 240.0
	caff := 64.0
	v := &NutritionValue{UUID: "n-2", Name: "cold brew", Calories: &cal, Caffeine: &caff}
	back, err := DecodeNutrition(v.Encode())
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

// TestNutritionEqualityStructural verifies equality over all eight fields.
func TestNutritionEqualityStructural(t *testing.T) {
	p1 := 20.0
	p2 := 21.0
	a := &NutritionValue{Name: "shake", Protein: &p1}
	b := &NutritionValue{Name: "shake", Protein: &p1}
	c := &NutritionValue{Name: "shake", Protein: &p2}
	if !a.Equal(b) {
		t.Error("identical nutrition values should be equal")
	}
	if a.Equal(c) {
		t.Error("differing protein should make values unequal")
	}
}
