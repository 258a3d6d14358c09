package telemetry

// Activity is the closed taxonomy of operational activities. Each
// member carries the fixed identifier code used by the regulatory
// endpoint; exactly one activity is chosen per record.
type Activity int

const (
	ActivityNone Activity = iota
	ActivityJourneyStart
	ActivityJourneyStop
	ActivityPanic
	ActivityTampering
	ActivityPowerDisconnect
	ActivityHarshAcceleration
	ActivityHarshBraking
	ActivityHarshTurning
)

// Regulatory activity identifiers from the upstream taxonomy.
var activityCodes = map[Activity]int{
	ActivityNone:              0,
	ActivityJourneyStart:      2,
	ActivityJourneyStop:       3,
	ActivityHarshBraking:      5,
	ActivityHarshTurning:      6,
	ActivityHarshAcceleration: 7,
	ActivityPanic:             8,
	ActivityPowerDisconnect:   10,
	ActivityTampering:         14,
}

var activityNames = map[Activity]string{
	ActivityNone:              "none",
	ActivityJourneyStart:      "journey_start",
	ActivityJourneyStop:       "journey_stop",
	ActivityPanic:             "panic",
	ActivityTampering:         "tampering",
	ActivityPowerDisconnect:   "external_power_disconnect",
	ActivityHarshAcceleration: "harsh_acceleration",
	ActivityHarshBraking:      "harsh_braking",
	ActivityHarshTurning:      "harsh_turning",
}

// Code returns the downstream identifier for the activity.
func (a Activity) Code() int {
	return activityCodes[a]
}

func (a Activity) String() string {
	if name, ok := activityNames[a]; ok {
		return name
	}
	return "unknown"
}

// Reportable reports whether the activity results in a transmission.
// Routine position reports (ActivityNone) are never delivered.
func (a Activity) Reportable() bool {
	return a != ActivityNone
}
