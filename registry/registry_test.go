package registry

import (
	"testing"

	"github.com/shopspring/decimal"
	"gotest.tools/v3/assert"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	tests := map[string]struct {
		code     uint16
		name     string
		scale    string
		identity bool
		hasRange bool
	}{
		"panic button": {
			code:     2,
			name:     FieldPanicButton,
			scale:    "1",
			hasRange: true,
		},
		"external voltage hundredths": {
			code:     66,
			name:     FieldExternalVoltage,
			scale:    "0.01",
			hasRange: true,
		},
		"battery voltage hundredths": {
			code:     67,
			name:     FieldBatteryVoltage,
			scale:    "0.01",
			hasRange: true,
		},
		"battery current thousandths": {
			code:  68,
			name:  FieldBatteryCurrent,
			scale: "0.001",
		},
		"ibutton is identity": {
			code:     78,
			name:     FieldIButton,
			scale:    "1",
			identity: true,
		},
		"driver id is identity": {
			code:     245,
			name:     FieldDriverID,
			scale:    "1",
			identity: true,
		},
		"rfid tag is identity": {
			code:     207,
			name:     FieldRFIDTag,
			scale:    "1",
			identity: true,
		},
		"magnetic card is identity": {
			code:     100,
			name:     FieldMagneticCard,
			scale:    "1",
			identity: true,
		},
		"driver slot one is identity": {
			code:     403,
			name:     FieldDriver1,
			scale:    "1",
			identity: true,
		},
		"average speed tenths": {
			code:     241,
			name:     FieldAverageSpeed,
			scale:    "0.1",
			hasRange: true,
		},
		"external power is boolean": {
			code:     252,
			name:     FieldExternalPower,
			scale:    "1",
			hasRange: true,
		},
		"green driving event": {
			code:     253,
			name:     FieldGreenDrivingEvent,
			scale:    "1",
			hasRange: true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			def, ok := reg.Lookup(tc.code)
			assert.Assert(t, ok)
			assert.Equal(t, def.Name, tc.name)
			assert.Assert(t, def.Scale.Equal(decimal.RequireFromString(tc.scale)))
			assert.Equal(t, def.Identity, tc.identity)
			assert.Equal(t, def.HasRange, tc.hasRange)
		})
	}
}

func TestLookupUnknownCode(t *testing.T) {
	reg := Default()
	_, ok := reg.Lookup(9999)
	assert.Assert(t, !ok)
}

func TestNewOverwritesDuplicateCodes(t *testing.T) {
	reg := New([]Definition{
		scaled(66, "first", decimal.NewFromInt(1), ""),
		scaled(66, "second", decimal.NewFromInt(1), ""),
	})
	def, ok := reg.Lookup(66)
	assert.Assert(t, ok)
	assert.Equal(t, def.Name, "second")
	assert.Equal(t, reg.Len(), 1)
}
