package healthvalue

import "fmt"

// WorkoutValue is a workout session summary. The activity type is
// mandatory; each total is an independently optional quantity/unit pair —
// a unit is only read alongside its quantity, since it carries no meaning
// on its own.
type WorkoutValue struct {
	UUID         string
	ActivityType ActivityType

	TotalEnergyBurned     *int64
	TotalEnergyBurnedUnit Unit
	TotalDistance         *int64
	TotalDistanceUnit     Unit
	TotalSteps            *int64
	TotalStepsUnit        Unit
}

// WorkoutFromNativePoint constructs a WorkoutValue from a native point.
// Activity and unit names must match the canonical enumerations exactly;
// quantities are integer truncations of the native numeric fields.
func WorkoutFromNativePoint(pt NativePoint) (*WorkoutValue, error) {
	name, ok := pt.GetString("activityType")
	if !ok {
		return nil, fmt.Errorf("%w: workout missing activityType", ErrMalformedNativePoint)
	}
	activity, err := ParseActivityType(name)
	if err != nil {
		return nil, err
	}
	v := &WorkoutValue{UUID: optString(pt, "uuid"), ActivityType: activity}

	for _, q := range []struct {
		qtyKey, unitKey string
		qty             **int64
		unit            *Unit
	}{
		{"totalEnergyBurned", "totalEnergyBurnedUnit", &v.TotalEnergyBurned, &v.TotalEnergyBurnedUnit},
		{"totalDistance", "totalDistanceUnit", &v.TotalDistance, &v.TotalDistanceUnit},
		{"totalSteps", "totalStepsUnit", &v.TotalSteps, &v.TotalStepsUnit},
	} {
		n, ok := pt.GetInt(q.qtyKey)
		if !ok {
			continue
		}
		*q.qty = &n
		if unitName, ok := pt.GetString(q.unitKey); ok {
			unit, err := ParseUnit(unitName)
			if err != nil {
				return nil, err
			}
			*q.unit = unit
		}
	}
	return v, nil
}

func optString(pt NativePoint, key string) string {
	s, _ := pt.GetString(key)
	return s
}

// DecodeWorkout is the inverse of Encode.
func DecodeWorkout(p Payload) (*WorkoutValue, error) {
	name, ok, err := p.decodeString("activity_type")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: workout missing activity_type", ErrDecodeMismatch)
	}
	activity, err := ParseActivityType(name)
	if err != nil {
		return nil, err
	}
	v := &WorkoutValue{ActivityType: activity}

	uuid, _, err := p.decodeString("uuid")
	if err != nil {
		return nil, err
	}
	v.UUID = uuid

	for _, q := range []struct {
		qtyKey, unitKey string
		qty             **int64
		unit            *Unit
	}{
		{"total_energy_burned", "total_energy_burned_unit", &v.TotalEnergyBurned, &v.TotalEnergyBurnedUnit},
		{"total_distance", "total_distance_unit", &v.TotalDistance, &v.TotalDistanceUnit},
		{"total_steps", "total_steps_unit", &v.TotalSteps, &v.TotalStepsUnit},
	} {
		n, ok, err := p.decodeInt(q.qtyKey)
		if err != nil {
			return nil, err
		}
		if ok {
			*q.qty = &n
		}
		unitName, ok, err := p.decodeString(q.unitKey)
		if err != nil {
			return nil, err
		}
		if ok {
			unit, err := ParseUnit(unitName)
			if err != nil {
				return nil, err
			}
			*q.unit = unit
		}
	}
	return v, nil
}

func (v *WorkoutValue) Kind() Kind { return KindWorkout }

func (v *WorkoutValue) Encode() Payload {
	p := Payload{"activity_type": string(v.ActivityType)}
	if v.UUID != "" {
		p["uuid"] = v.UUID
	}
	if v.TotalEnergyBurned != nil {
		p["total_energy_burned"] = *v.TotalEnergyBurned
	}
	if v.TotalEnergyBurnedUnit != "" {
		p["total_energy_burned_unit"] = string(v.TotalEnergyBurnedUnit)
	}
	if v.TotalDistance != nil {
		p["total_distance"] = *v.TotalDistance
	}
	if v.TotalDistanceUnit != "" {
		p["total_distance_unit"] = string(v.TotalDistanceUnit)
	}
	if v.TotalSteps != nil {
		p["total_steps"] = *v.TotalSteps
	}
	if v.TotalStepsUnit != "" {
		p["total_steps_unit"] = string(v.TotalStepsUnit)
	}
	return p
}

// Equal is structural over every field, optional ones included: absence
// equals absence.
func (v *WorkoutValue) Equal(other Value) bool {
	o, ok := other.(*WorkoutValue)
	return ok &&
		v.UUID == o.UUID &&
		v.ActivityType == o.ActivityType &&
		eqIntPtr(v.TotalEnergyBurned, o.TotalEnergyBurned) &&
		v.TotalEnergyBurnedUnit == o.TotalEnergyBurnedUnit &&
		eqIntPtr(v.TotalDistance, o.TotalDistance) &&
		v.TotalDistanceUnit == o.TotalDistanceUnit &&
		eqIntPtr(v.TotalSteps, o.TotalSteps) &&
		v.TotalStepsUnit == o.TotalStepsUnit
}

func (v *WorkoutValue) Hash() string {
	return hashOf(KindWorkout, v.Encode())
}

func (v *WorkoutValue) String() string {
	return fmt.Sprintf("workout(%s)", v.ActivityType)
}
