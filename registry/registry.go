// Package registry holds the static I/O element table: the mapping
// from each numeric element code to its semantic name, raw-to-physical
// scale factor, unit and valid range. The table is versioned
// configuration data; corrections here never touch classifier code.
package registry

import (
	"github.com/shopspring/decimal"
)

// Semantic field names produced by decoding. Consumers look fields up
// by these names, never by raw element code.
const (
	FieldDigitalInput1     = "digital_input_1"
	FieldPanicButton       = "panic_button"
	FieldFuelLevel         = "fuel_level"
	FieldIdleTime          = "idle_time"
	FieldTotalOdometer     = "total_odometer"
	FieldGSMSignal         = "gsm_signal"
	FieldExternalVoltage   = "external_voltage"
	FieldBatteryVoltage    = "battery_voltage"
	FieldBatteryCurrent    = "battery_current"
	FieldIButton           = "ibutton"
	FieldTripDuration      = "trip_duration"
	FieldHDOP              = "hdop"
	FieldTripOdometer      = "trip_odometer"
	FieldCellID            = "cell_id"
	FieldAreaCode          = "area_code"
	FieldIgnition          = "ignition"
	FieldMovement          = "movement"
	FieldAverageSpeed      = "average_speed"
	FieldMaxSpeed          = "max_speed"
	FieldDriverID          = "driver_id"
	FieldTrip              = "trip"
	FieldExternalPower     = "external_power"
	FieldGreenDrivingEvent = "green_driving_event"
	FieldGreenDrivingValue = "green_driving_value"
	FieldMagneticCard      = "magnetic_card_id"
	FieldRFIDTag           = "rfid_tag"
	FieldBarcodeID         = "barcode_id"
	FieldDriver1           = "driver_1_id"
	FieldDriver2           = "driver_2_id"
	FieldDriver3           = "driver_3_id"
	FieldDriver4           = "driver_4_id"
	FieldDriver5           = "driver_5_id"
)

// Definition describes one I/O element code.
type Definition struct {
	Code     uint16
	Name     string
	Scale    decimal.Decimal
	Unit     string
	Min      decimal.Decimal
	Max      decimal.Decimal
	HasRange bool
	// Identity elements carry an opaque token (iButton id) rather
	// than a physical quantity; scaling does not apply to them.
	Identity bool
}

// Registry is an immutable code→definition table shared read-only by
// all decoding lanes.
type Registry struct {
	defs map[uint16]Definition
}

// New builds a registry from the given definitions. Later definitions
// with a duplicate code overwrite earlier ones.
func New(defs []Definition) *Registry {
	m := make(map[uint16]Definition, len(defs))
	for _, def := range defs {
		m[def.Code] = def
	}
	return &Registry{defs: m}
}

// Lookup returns the definition for a code, if registered.
func (r *Registry) Lookup(code uint16) (Definition, bool) {
	def, ok := r.defs[code]
	return def, ok
}

// Len returns the number of registered element codes.
func (r *Registry) Len() int {
	return len(r.defs)
}

var (
	one        = decimal.NewFromInt(1)
	hundredth  = decimal.RequireFromString("0.01")
	thousandth = decimal.RequireFromString("0.001")
	tenth      = decimal.RequireFromString("0.1")
)

func scaled(code uint16, name string, scale decimal.Decimal, unit string) Definition {
	return Definition{Code: code, Name: name, Scale: scale, Unit: unit}
}

func ranged(code uint16, name string, scale decimal.Decimal, unit string, min, max int64) Definition {
	return Definition{
		Code:     code,
		Name:     name,
		Scale:    scale,
		Unit:     unit,
		Min:      decimal.NewFromInt(min),
		Max:      decimal.NewFromInt(max),
		HasRange: true,
	}
}

func identity(code uint16, name string) Definition {
	return Definition{Code: code, Name: name, Scale: one, Identity: true}
}

// Default returns the deployment's element table for the Teltonika FMB
// family. The external-voltage and battery-voltage scales are 0.01:
// the devices report hundredths of a volt (raw 489 is 4.89 V).
func Default() *Registry {
	return New([]Definition{
		ranged(1, FieldDigitalInput1, one, "", 0, 1),
		ranged(2, FieldPanicButton, one, "", 0, 1),
		scaled(9, FieldFuelLevel, one, ""),
		scaled(11, FieldIdleTime, one, "s"),
		scaled(16, FieldTotalOdometer, one, "m"),
		ranged(21, FieldGSMSignal, one, "", 0, 31),
		ranged(66, FieldExternalVoltage, hundredth, "V", 0, 60),
		ranged(67, FieldBatteryVoltage, hundredth, "V", 0, 16),
		scaled(68, FieldBatteryCurrent, thousandth, "A"),
		identity(78, FieldIButton),
		scaled(80, FieldTripDuration, one, "s"),
		identity(100, FieldMagneticCard),
		identity(207, FieldRFIDTag),
		identity(264, FieldBarcodeID),
		scaled(182, FieldHDOP, tenth, ""),
		scaled(199, FieldTripOdometer, one, "m"),
		scaled(205, FieldCellID, one, ""),
		scaled(206, FieldAreaCode, one, ""),
		ranged(239, FieldIgnition, one, "", 0, 1),
		ranged(240, FieldMovement, one, "", 0, 1),
		ranged(241, FieldAverageSpeed, tenth, "km/h", 0, 300),
		ranged(242, FieldMaxSpeed, tenth, "km/h", 0, 300),
		identity(245, FieldDriverID),
		ranged(250, FieldTrip, one, "", 0, 1),
		ranged(252, FieldExternalPower, one, "", 0, 1),
		ranged(253, FieldGreenDrivingEvent, one, "", 0, 3),
		scaled(254, FieldGreenDrivingValue, one, ""),
		identity(403, FieldDriver1),
		identity(404, FieldDriver2),
		identity(405, FieldDriver3),
		identity(406, FieldDriver4),
		identity(407, FieldDriver5),
	})
}
