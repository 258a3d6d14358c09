package classify

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/openfms/telematics-engine/decode"
	"github.com/openfms/telematics-engine/registry"
	"github.com/openfms/telematics-engine/telemetry"
)

func fieldsOf(raws map[string]uint64) decode.DecodedFields {
	fields := make(decode.DecodedFields, len(raws))
	for name, raw := range raws {
		fields[name] = decode.Field{Raw: raw}
	}
	return fields
}

func TestClassify(t *testing.T) {
	tests := map[string]struct {
		raws     map[string]uint64
		speed    float64
		prev     PowerState
		activity telemetry.Activity
		next     PowerState
	}{
		"panic pressed": {
			raws:     map[string]uint64{registry.FieldPanicButton: 1},
			speed:    25,
			prev:     PowerConnected,
			activity: telemetry.ActivityPanic,
			next:     PowerConnected,
		},
		"panic released is not panic": {
			raws:     map[string]uint64{registry.FieldPanicButton: 0},
			speed:    25,
			prev:     PowerConnected,
			activity: telemetry.ActivityNone,
			next:     PowerConnected,
		},
		"panic outranks harsh driving": {
			raws: map[string]uint64{
				registry.FieldPanicButton:       1,
				registry.FieldGreenDrivingEvent: 2,
			},
			speed:    80,
			prev:     PowerConnected,
			activity: telemetry.ActivityPanic,
			next:     PowerConnected,
		},
		"harsh acceleration": {
			raws:     map[string]uint64{registry.FieldGreenDrivingEvent: 1},
			speed:    60,
			prev:     PowerConnected,
			activity: telemetry.ActivityHarshAcceleration,
			next:     PowerConnected,
		},
		"harsh braking": {
			raws:     map[string]uint64{registry.FieldGreenDrivingEvent: 2},
			speed:    60,
			prev:     PowerConnected,
			activity: telemetry.ActivityHarshBraking,
			next:     PowerConnected,
		},
		"harsh turning": {
			raws:     map[string]uint64{registry.FieldGreenDrivingEvent: 3},
			speed:    60,
			prev:     PowerConnected,
			activity: telemetry.ActivityHarshTurning,
			next:     PowerConnected,
		},
		"green driving zero is no event": {
			raws:     map[string]uint64{registry.FieldGreenDrivingEvent: 0},
			speed:    60,
			prev:     PowerConnected,
			activity: telemetry.ActivityNone,
			next:     PowerConnected,
		},
		"disconnect while parked": {
			raws:     map[string]uint64{registry.FieldExternalPower: 0},
			speed:    10,
			prev:     PowerConnected,
			activity: telemetry.ActivityPowerDisconnect,
			next:     PowerDisconnected,
		},
		"disconnect while moving is tampering": {
			raws:     map[string]uint64{registry.FieldExternalPower: 0},
			speed:    30,
			prev:     PowerConnected,
			activity: telemetry.ActivityTampering,
			next:     PowerDisconnected,
		},
		"threshold speed is tampering": {
			raws:     map[string]uint64{registry.FieldExternalPower: 0},
			speed:    TamperingSpeedKPH,
			prev:     PowerConnected,
			activity: telemetry.ActivityTampering,
			next:     PowerDisconnected,
		},
		"no prior state skips transition guard": {
			raws:     map[string]uint64{registry.FieldExternalPower: 0},
			speed:    30,
			prev:     PowerUnknown,
			activity: telemetry.ActivityNone,
			next:     PowerDisconnected,
		},
		"already disconnected is not a transition": {
			raws:     map[string]uint64{registry.FieldExternalPower: 0},
			speed:    30,
			prev:     PowerDisconnected,
			activity: telemetry.ActivityNone,
			next:     PowerDisconnected,
		},
		"reconnect is silent": {
			raws:     map[string]uint64{registry.FieldExternalPower: 1},
			speed:    30,
			prev:     PowerDisconnected,
			activity: telemetry.ActivityNone,
			next:     PowerConnected,
		},
		"absent element carries state forward": {
			raws:     map[string]uint64{},
			speed:    30,
			prev:     PowerDisconnected,
			activity: telemetry.ActivityNone,
			next:     PowerDisconnected,
		},
		"ignition off ends journey": {
			raws:     map[string]uint64{registry.FieldIgnition: 0},
			speed:    0,
			prev:     PowerConnected,
			activity: telemetry.ActivityJourneyStop,
			next:     PowerConnected,
		},
		"ignition on starts journey": {
			raws:     map[string]uint64{registry.FieldIgnition: 1},
			speed:    0,
			prev:     PowerConnected,
			activity: telemetry.ActivityJourneyStart,
			next:     PowerConnected,
		},
		"trip element ends journey": {
			raws:     map[string]uint64{registry.FieldTrip: 0},
			speed:    0,
			prev:     PowerConnected,
			activity: telemetry.ActivityJourneyStop,
			next:     PowerConnected,
		},
		"trip element starts journey": {
			raws:     map[string]uint64{registry.FieldTrip: 1},
			speed:    0,
			prev:     PowerConnected,
			activity: telemetry.ActivityJourneyStart,
			next:     PowerConnected,
		},
		"power transition outranks journey stop": {
			raws: map[string]uint64{
				registry.FieldExternalPower: 0,
				registry.FieldIgnition:      0,
			},
			speed:    5,
			prev:     PowerConnected,
			activity: telemetry.ActivityPowerDisconnect,
			next:     PowerDisconnected,
		},
		"stop outranks start when both present": {
			raws: map[string]uint64{
				registry.FieldIgnition: 0,
				registry.FieldTrip:     1,
			},
			speed:    0,
			prev:     PowerConnected,
			activity: telemetry.ActivityJourneyStop,
			next:     PowerConnected,
		},
		"routine position report": {
			raws:     map[string]uint64{registry.FieldGSMSignal: 20},
			speed:    60,
			prev:     PowerConnected,
			activity: telemetry.ActivityNone,
			next:     PowerConnected,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			activity, next := Classify(fieldsOf(tc.raws), tc.speed, tc.prev)
			assert.Equal(t, activity, tc.activity)
			assert.Equal(t, next, tc.next)
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	fields := fieldsOf(map[string]uint64{
		registry.FieldExternalPower: 0,
		registry.FieldIgnition:      1,
	})
	firstActivity, firstNext := Classify(fields, 30, PowerConnected)
	secondActivity, secondNext := Classify(fields, 30, PowerConnected)
	assert.Equal(t, firstActivity, secondActivity)
	assert.Equal(t, firstNext, secondNext)
	assert.Equal(t, firstActivity, telemetry.ActivityTampering)
}

func TestPowerStateString(t *testing.T) {
	assert.Equal(t, PowerConnected.String(), "connected")
	assert.Equal(t, PowerDisconnected.String(), "disconnected")
	assert.Equal(t, PowerUnknown.String(), "unknown")
}
