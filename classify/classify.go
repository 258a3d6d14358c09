// Package classify selects exactly one activity per record from an
// ordered list of guard predicates over the decoded fields. Guards are
// mutually exclusive by construction: evaluation is top to bottom and
// the first match wins, so a panic input always outranks a harsh
// driving element present in the same record.
package classify

import (
	"github.com/openfms/telematics-engine/decode"
	"github.com/openfms/telematics-engine/registry"
	"github.com/openfms/telematics-engine/telemetry"
)

// PowerState is the external power status carried across records for
// one device. It is the engine's only cross-record state.
type PowerState int

const (
	PowerUnknown PowerState = iota
	PowerConnected
	PowerDisconnected
)

func (s PowerState) String() string {
	switch s {
	case PowerConnected:
		return "connected"
	case PowerDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// TamperingSpeedKPH is the inclusive speed threshold above which a
// power disconnect while moving is treated as deliberate interference.
const TamperingSpeedKPH = 20.0

type guardInput struct {
	fields decode.DecodedFields
	speed  float64
	prev   PowerState
	next   PowerState
}

type guard struct {
	name string
	eval func(in guardInput) (telemetry.Activity, bool)
}

// Guards in priority order. Only one activity is ever produced even if
// several guards would independently match.
var guards = []guard{
	{name: "panic", eval: guardPanic},
	{name: "harsh_driving", eval: guardHarshDriving},
	{name: "power_transition", eval: guardPowerTransition},
	{name: "journey_stop", eval: guardJourneyStop},
	{name: "journey_start", eval: guardJourneyStart},
}

// Classify inspects the decoded fields plus current speed and previous
// power state, and returns the selected activity together with the
// power state the caller must persist for this device. With no prior
// state (first record ever seen for the device) no transition is
// observable and the power guard is skipped.
func Classify(fields decode.DecodedFields, speed float64, prev PowerState) (telemetry.Activity, PowerState) {
	in := guardInput{
		fields: fields,
		speed:  speed,
		prev:   prev,
		next:   nextPowerState(fields, prev),
	}
	for _, g := range guards {
		if activity, ok := g.eval(in); ok {
			return activity, in.next
		}
	}
	return telemetry.ActivityNone, in.next
}

// nextPowerState reads the external power element when present and
// otherwise carries the previous state forward.
func nextPowerState(fields decode.DecodedFields, prev PowerState) PowerState {
	raw, ok := fields.Raw(registry.FieldExternalPower)
	if !ok {
		return prev
	}
	if raw == 1 {
		return PowerConnected
	}
	return PowerDisconnected
}

func guardPanic(in guardInput) (telemetry.Activity, bool) {
	if raw, ok := in.fields.Raw(registry.FieldPanicButton); ok && raw == 1 {
		return telemetry.ActivityPanic, true
	}
	return telemetry.ActivityNone, false
}

func guardHarshDriving(in guardInput) (telemetry.Activity, bool) {
	raw, ok := in.fields.Raw(registry.FieldGreenDrivingEvent)
	if !ok {
		return telemetry.ActivityNone, false
	}
	switch raw {
	case 1:
		return telemetry.ActivityHarshAcceleration, true
	case 2:
		return telemetry.ActivityHarshBraking, true
	case 3:
		return telemetry.ActivityHarshTurning, true
	}
	return telemetry.ActivityNone, false
}

func guardPowerTransition(in guardInput) (telemetry.Activity, bool) {
	if in.prev != PowerConnected || in.next != PowerDisconnected {
		return telemetry.ActivityNone, false
	}
	if in.speed >= TamperingSpeedKPH {
		return telemetry.ActivityTampering, true
	}
	return telemetry.ActivityPowerDisconnect, true
}

func guardJourneyStop(in guardInput) (telemetry.Activity, bool) {
	if raw, ok := in.fields.Raw(registry.FieldIgnition); ok && raw == 0 {
		return telemetry.ActivityJourneyStop, true
	}
	if raw, ok := in.fields.Raw(registry.FieldTrip); ok && raw == 0 {
		return telemetry.ActivityJourneyStop, true
	}
	return telemetry.ActivityNone, false
}

func guardJourneyStart(in guardInput) (telemetry.Activity, bool) {
	if raw, ok := in.fields.Raw(registry.FieldIgnition); ok && raw == 1 {
		return telemetry.ActivityJourneyStart, true
	}
	if raw, ok := in.fields.Raw(registry.FieldTrip); ok && raw == 1 {
		return telemetry.ActivityJourneyStart, true
	}
	return telemetry.ActivityNone, false
}
