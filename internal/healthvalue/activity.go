package healthvalue

import "fmt"

// ActivityType is the canonical workout activity enumeration. Both native
// platforms report activities by name; the names below are the
// platform-independent vocabulary every native name must match exactly.
type ActivityType string

const (
	ActivityAmericanFootball   ActivityType = "AMERICAN_FOOTBALL"
	ActivityArchery            ActivityType = "ARCHERY"
	ActivityBadminton          ActivityType = "BADMINTON"
	ActivityBaseball           ActivityType = "BASEBALL"
	ActivityBasketball         ActivityType = "BASKETBALL"
	ActivityBiking             ActivityType = "BIKING"
	ActivityBoxing             ActivityType = "BOXING"
	ActivityCricket            ActivityType = "CRICKET"
	ActivityCrossCountrySkiing ActivityType = "CROSS_COUNTRY_SKIING"
	ActivityCurling            ActivityType = "CURLING"
	ActivityDancing            ActivityType = "DANCING"
	ActivityDownhillSkiing     ActivityType = "DOWNHILL_SKIING"
	ActivityElliptical         ActivityType = "ELLIPTICAL"
	ActivityFencing            ActivityType = "FENCING"
	ActivityGolf               ActivityType = "GOLF"
	ActivityGymnastics         ActivityType = "GYMNASTICS"
	ActivityHandball           ActivityType = "HANDBALL"
	ActivityHiking             ActivityType = "HIKING"
	ActivityHockey             ActivityType = "HOCKEY"
	ActivityJumpRope           ActivityType = "JUMP_ROPE"
	ActivityKayaking           ActivityType = "KAYAKING"
	ActivityKickboxing         ActivityType = "KICKBOXING"
	ActivityMartialArts        ActivityType = "MARTIAL_ARTS"
	ActivityPilates            ActivityType = "PILATES"
	ActivityRacquetball        ActivityType = "RACQUETBALL"
	ActivityRockClimbing       ActivityType = "ROCK_CLIMBING"
	ActivityRowing             ActivityType = "ROWING"
	ActivityRugby              ActivityType = "RUGBY"
	ActivityRunning            ActivityType = "RUNNING"
	ActivitySailing            ActivityType = "SAILING"
	ActivitySkating            ActivityType = "SKATING"
	ActivitySnowboarding       ActivityType = "SNOWBOARDING"
	ActivitySoccer             ActivityType = "SOCCER"
	ActivitySoftball           ActivityType = "SOFTBALL"
	ActivitySquash             ActivityType = "SQUASH"
	ActivityStairClimbing      ActivityType = "STAIR_CLIMBING"
	ActivityStrengthTraining   ActivityType = "STRENGTH_TRAINING"
	ActivitySwimming           ActivityType = "SWIMMING"
	ActivityTableTennis        ActivityType = "TABLE_TENNIS"
	ActivityTennis             ActivityType = "TENNIS"
	ActivityVolleyball         ActivityType = "VOLLEYBALL"
	ActivityWalking            ActivityType = "WALKING"
	ActivityWaterPolo          ActivityType = "WATER_POLO"
	ActivityWheelchair         ActivityType = "WHEELCHAIR"
	ActivityYoga               ActivityType = "YOGA"
	ActivityOther              ActivityType = "OTHER"
)

var activityTypes = map[string]ActivityType{}

func init() {
	for _, a := range []ActivityType{
		ActivityAmericanFootball, ActivityArchery, ActivityBadminton,
		ActivityBaseball, ActivityBasketball, ActivityBiking, ActivityBoxing,
		ActivityCricket, ActivityCrossCountrySkiing, ActivityCurling,
		ActivityDancing, ActivityDownhillSkiing, ActivityElliptical,
		ActivityFencing, ActivityGolf, ActivityGymnastics, ActivityHandball,
		ActivityHiking, ActivityHockey, ActivityJumpRope, ActivityKayaking,
		ActivityKickboxing, ActivityMartialArts, ActivityPilates,
		ActivityRacquetball, ActivityRockClimbing, ActivityRowing,
		ActivityRugby, ActivityRunning, ActivitySailing, ActivitySkating,
		ActivitySnowboarding, ActivitySoccer, ActivitySoftball,
		ActivitySquash, ActivityStairClimbing, ActivityStrengthTraining,
		ActivitySwimming, ActivityTableTennis, ActivityTennis,
		ActivityVolleyball, ActivityWalking, ActivityWaterPolo,
		ActivityWheelchair, ActivityYoga, ActivityOther,
	} {
		activityTypes[string(a)] = a
	}
}

// ParseActivityType resolves a native activity name by exact match against
// the canonical enumeration. There is no default: an unmatched name fails,
// so workouts are never silently misclassified.
func ParseActivityType(name string) (ActivityType, error) {
	if a, ok := activityTypes[name]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: activity type %q", ErrUnknownEnumCode, name)
}
