package healthvalue

import (
	"fmt"
	"strings"
)

// NutritionValue is a logged meal or food item. Every numeric field is
// nullable: absence means "not reported", which is distinct from a
// measured zero. This differs from NumericValue's zero-default policy on
// purpose — do not unify the two.
type NutritionValue struct {
	UUID     string
	MealType string
	Name     string
	Calories *float64
	Protein  *float64
	Fat      *float64
	Carbs    *float64
	Caffeine *float64
}

// NutritionFromNativePoint constructs a NutritionValue from a native
// point. It never fails: every field is optional and preserved as
// present-or-absent.
func NutritionFromNativePoint(pt NativePoint) *NutritionValue {
	v := &NutritionValue{
		UUID:     optString(pt, "uuid"),
		MealType: optString(pt, "mealType"),
		Name:     optString(pt, "name"),
	}
	for _, f := range []struct {
		key string
		dst **float64
	}{
		{"calories", &v.Calories},
		{"protein", &v.Protein},
		{"fat", &v.Fat},
		{"carbs", &v.Carbs},
		{"caffeine", &v.Caffeine},
	} {
		if n, ok := pt.GetFloat(f.key); ok {
			*f.dst = &n
		}
	}
	return v
}

// DecodeNutrition is the inverse of Encode.
func DecodeNutrition(p Payload) (*NutritionValue, error) {
	v := &NutritionValue{}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"uuid", &v.UUID},
		{"meal_type", &v.MealType},
		{"name", &v.Name},
	} {
		s, _, err := p.decodeString(f.key)
		if err != nil {
			return nil, err
		}
		*f.dst = s
	}
	for _, f := range []struct {
		key string
		dst **float64
	}{
		{"calories", &v.Calories},
		{"protein", &v.Protein},
		{"fat", &v.Fat},
		{"carbs", &v.Carbs},
		{"caffeine", &v.Caffeine},
	} {
		n, ok, err := p.decodeFloat(f.key)
		if err != nil {
			return nil, err
		}
		if ok {
			*f.dst = &n
		}
	}
	return v, nil
}

func (v *NutritionValue) Kind() Kind { return KindNutrition }

func (v *NutritionValue) Encode() Payload {
	p := Payload{}
	if v.UUID != "" {
		p["uuid"] = v.UUID
	}
	if v.MealType != "" {
		p["meal_type"] = v.MealType
	}
	if v.Name != "" {
		p["name"] = v.Name
	}
	if v.Calories != nil {
		p["calories"] = *v.Calories
	}
	if v.Protein != nil {
		p["protein"] = *v.Protein
	}
	if v.Fat != nil {
		p["fat"] = *v.Fat
	}
	if v.Carbs != nil {
		p["carbs"] = *v.Carbs
	}
	if v.Caffeine != nil {
		p["caffeine"] = *v.Caffeine
	}
	return p
}

// Equal is structural over all eight fields; absence equals absence.
func (v *NutritionValue) Equal(other Value) bool {
	o, ok := other.(*NutritionValue)
	return ok &&
		v.UUID == o.UUID &&
		v.MealType == o.MealType &&
		v.Name == o.Name &&
		eqFloatPtr(v.Calories, o.Calories) &&
		eqFloatPtr(v.Protein, o.Protein) &&
		eqFloatPtr(v.Fat, o.Fat) &&
		eqFloatPtr(v.Carbs, o.Carbs) &&
		eqFloatPtr(v.Caffeine, o.Caffeine)
}

func (v *NutritionValue) Hash() string {
	return hashOf(KindNutrition, v.Encode())
}

func (v *NutritionValue) String() string {
	var parts []string
	if v.Name != "" {
		parts = append(parts, v.Name)
	}
	if v.Calories != nil {
		parts = append(parts, fmt.Sprintf("%g kcal", *v.Calories))
	}
	if len(parts) == 0 {
		return "nutrition(empty)"
	}
	return fmt.Sprintf("nutrition(%s)", strings.Join(parts, ", "))
}
