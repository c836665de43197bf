package healthvalue

import "fmt"

// Unit is the canonical measurement unit enumeration for quantity fields
// carried alongside workout totals.
type Unit string

const (
	UnitGram                  Unit = "GRAM"
	UnitKilogram              Unit = "KILOGRAM"
	UnitOunce                 Unit = "OUNCE"
	UnitPound                 Unit = "POUND"
	UnitMeter                 Unit = "METER"
	UnitKilometer             Unit = "KILOMETER"
	UnitMile                  Unit = "MILE"
	UnitYard                  Unit = "YARD"
	UnitFoot                  Unit = "FOOT"
	UnitInch                  Unit = "INCH"
	UnitCount                 Unit = "COUNT"
	UnitKilocalorie           Unit = "KILOCALORIE"
	UnitLargeCalorie          Unit = "LARGE_CALORIE"
	UnitSmallCalorie          Unit = "SMALL_CALORIE"
	UnitJoule                 Unit = "JOULE"
	UnitSecond                Unit = "SECOND"
	UnitMillisecond           Unit = "MILLISECOND"
	UnitMinute                Unit = "MINUTE"
	UnitHour                  Unit = "HOUR"
	UnitDay                   Unit = "DAY"
	UnitLiter                 Unit = "LITER"
	UnitMilliliter            Unit = "MILLILITER"
	UnitBeatsPerMinute        Unit = "BEATS_PER_MINUTE"
	UnitRespirationsPerMinute Unit = "RESPIRATIONS_PER_MINUTE"
	UnitDegreeCelsius         Unit = "DEGREE_CELSIUS"
	UnitDegreeFahrenheit      Unit = "DEGREE_FAHRENHEIT"
	UnitPercent               Unit = "PERCENT"
	UnitVolt                  Unit = "VOLT"
	UnitMillivolt             Unit = "MILLIVOLT"
	UnitHertz                 Unit = "HERTZ"
	UnitDecibelHearingLevel   Unit = "DECIBEL_HEARING_LEVEL"
	UnitSiemen                Unit = "SIEMEN"
	UnitInternationalUnit     Unit = "INTERNATIONAL_UNIT"
	UnitMilligramPerDeciliter Unit = "MILLIGRAM_PER_DECILITER"
	UnitMillimeterOfMercury   Unit = "MILLIMETER_OF_MERCURY"
	UnitNoUnit                Unit = "NO_UNIT"
)

var units = map[string]Unit{}

func init() {
	for _, u := range []Unit{
		UnitGram, UnitKilogram, UnitOunce, UnitPound, UnitMeter,
		UnitKilometer, UnitMile, UnitYard, UnitFoot, UnitInch, UnitCount,
		UnitKilocalorie, UnitLargeCalorie, UnitSmallCalorie, UnitJoule,
		UnitSecond, UnitMillisecond, UnitMinute, UnitHour, UnitDay,
		UnitLiter, UnitMilliliter, UnitBeatsPerMinute,
		UnitRespirationsPerMinute, UnitDegreeCelsius, UnitDegreeFahrenheit,
		UnitPercent, UnitVolt, UnitMillivolt, UnitHertz,
		UnitDecibelHearingLevel, UnitSiemen, UnitInternationalUnit,
		UnitMilligramPerDeciliter, UnitMillimeterOfMercury, UnitNoUnit,
	} {
		units[string(u)] = u
	}
}

// ParseUnit resolves a native unit name by exact match against the
// canonical enumeration. Unmatched names fail — units are never guessed.
func ParseUnit(name string) (Unit, error) {
	if u, ok := units[name]; ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: unit %q", ErrUnknownEnumCode, name)
}
