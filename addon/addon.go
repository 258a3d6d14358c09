// Package addon assembles the supplemental field set each activity
// carries to the regulatory endpoint. Only fields that survived
// decoding are included; an absent input is omitted from the payload,
// never defaulted to zero, because zero is a legitimate measurement
// elsewhere in the schema.
package addon

import (
	"math"
	"strconv"

	"github.com/openfms/telematics-engine/decode"
	"github.com/openfms/telematics-engine/registry"
	"github.com/openfms/telematics-engine/telemetry"
)

// Payload field names of the downstream contract.
const (
	KeyDistanceTravelled = "distance_travelled"
	KeyTripDuration      = "trip_duration"
	KeyAvgSpeed          = "avgSpeed"
	KeyMaxSpeed          = "maxSpeed"
	KeyExtPowerVoltage   = "ext_power_voltage"
	KeyIntBatteryVoltage = "int_battery_voltage"
	KeyExtPowerStatus    = "ext_power_status"
	KeyFuelLevel         = "fuel_level"
	KeyDriverID          = "v_driver_identification_no"
	KeyLatitude          = "latitude"
	KeyLongitude         = "longitude"
	KeyAltitude          = "altitude"
	KeyBearing           = "bearing"
	KeySpeed             = "speed"
	KeySeverity          = "severity"
	KeyIdleTime          = "idleTime"
)

// Build returns the supplemental payload for the selected activity.
// ActivityNone yields an empty payload; the delivery collaborator
// suppresses transmission for it.
func Build(activity telemetry.Activity, fields decode.DecodedFields, driverID string, rec *telemetry.RawRecord) telemetry.AddonPayload {
	payload := telemetry.AddonPayload{}

	switch activity {
	case telemetry.ActivityJourneyStart:
		buildJourneyStart(payload, fields, driverID)
	case telemetry.ActivityJourneyStop:
		buildJourneyStop(payload, fields, driverID)
	case telemetry.ActivityPanic:
		buildPanic(payload, driverID, rec)
	case telemetry.ActivityTampering, telemetry.ActivityPowerDisconnect:
		buildPowerEvent(payload, fields, rec)
	case telemetry.ActivityHarshAcceleration, telemetry.ActivityHarshBraking, telemetry.ActivityHarshTurning:
		buildHarshDriving(payload, fields, rec)
	}
	return payload
}

// buildJourneyStart reports who started driving and how long the
// vehicle idled before ignition.
func buildJourneyStart(payload telemetry.AddonPayload, fields decode.DecodedFields, driverID string) {
	if v, ok := fields.Value(registry.FieldIdleTime); ok {
		payload[KeyIdleTime] = formatFloat(v)
	}
	if driverID != "" {
		payload[KeyDriverID] = driverID
	}
}

// buildJourneyStop collects the trip summary: totals reported by the
// device at ignition off, plus power and driver context.
func buildJourneyStop(payload telemetry.AddonPayload, fields decode.DecodedFields, driverID string) {
	if meters, ok := fields.Value(registry.FieldTripOdometer); ok {
		payload[KeyDistanceTravelled] = formatFloat(meters / 1000.0)
	}
	if seconds, ok := fields.Value(registry.FieldTripDuration); ok {
		minutes := int(math.Round(seconds / 60.0))
		if minutes < 1 {
			minutes = 1
		}
		payload[KeyTripDuration] = strconv.Itoa(minutes)
	}
	if v, ok := fields.Value(registry.FieldAverageSpeed); ok {
		payload[KeyAvgSpeed] = formatFloat(v)
	}
	if v, ok := fields.Value(registry.FieldMaxSpeed); ok {
		payload[KeyMaxSpeed] = formatFloat(v)
	}
	putVoltages(payload, fields)
	if raw, ok := fields.Raw(registry.FieldExternalPower); ok {
		payload[KeyExtPowerStatus] = strconv.FormatUint(raw, 10)
	}
	if v, ok := fields.Value(registry.FieldFuelLevel); ok {
		payload[KeyFuelLevel] = formatFloat(v)
	}
	if driverID != "" {
		payload[KeyDriverID] = driverID
	}
}

// buildPanic carries the position through unchanged from the record;
// emergency response needs it even when the fix is stale.
func buildPanic(payload telemetry.AddonPayload, driverID string, rec *telemetry.RawRecord) {
	if driverID != "" {
		payload[KeyDriverID] = driverID
	}
	payload[KeyLatitude] = strconv.FormatFloat(rec.GPS.Latitude, 'f', 6, 64)
	payload[KeyLongitude] = strconv.FormatFloat(rec.GPS.Longitude, 'f', 6, 64)
	payload[KeyAltitude] = strconv.Itoa(int(rec.GPS.Altitude))
	payload[KeyBearing] = strconv.Itoa(int(rec.GPS.Angle))
}

func buildPowerEvent(payload telemetry.AddonPayload, fields decode.DecodedFields, rec *telemetry.RawRecord) {
	putVoltages(payload, fields)
	payload[KeySpeed] = formatFloat(rec.Speed)
}

func buildHarshDriving(payload telemetry.AddonPayload, fields decode.DecodedFields, rec *telemetry.RawRecord) {
	if raw, ok := fields.Raw(registry.FieldGreenDrivingValue); ok {
		payload[KeySeverity] = strconv.FormatUint(raw, 10)
	} else if raw, ok := fields.Raw(registry.FieldGreenDrivingEvent); ok {
		payload[KeySeverity] = strconv.FormatUint(raw, 10)
	}
	payload[KeySpeed] = formatFloat(rec.Speed)
}

func putVoltages(payload telemetry.AddonPayload, fields decode.DecodedFields) {
	if v, ok := fields.Value(registry.FieldExternalVoltage); ok {
		payload[KeyExtPowerVoltage] = formatFloat(v)
	}
	if v, ok := fields.Value(registry.FieldBatteryVoltage); ok {
		payload[KeyIntBatteryVoltage] = formatFloat(v)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
