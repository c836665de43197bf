package healthvalue

import "fmt"

// Platform identifies which native health ecosystem produced a data point.
// The two platforms define divergent integer code tables for some enums
// (menstrual flow in particular), so normalizers that depend on the table
// take the platform as an explicit parameter — it is supplied by the
// caller, never inferred from payload shape.
type Platform string

const (
	// PlatformAndroid mirrors the Google Fit code tables.
	PlatformAndroid Platform = "android"
	// PlatformIOS mirrors the Apple HealthKit code tables.
	PlatformIOS Platform = "ios"
)

// ParsePlatform resolves a platform identifier by exact name.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformAndroid:
		return PlatformAndroid, nil
	case PlatformIOS:
		return PlatformIOS, nil
	}
	return "", fmt.Errorf("%w: platform %q", ErrUnknownEnumCode, s)
}
