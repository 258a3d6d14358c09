// Package decode turns raw I/O element maps into typed physical
// values, and extracts driver identity and cellular network fields
// from the decoded result. Everything here is a pure transform over an
// immutable input record.
package decode

import (
	"math/big"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/openfms/telematics-engine/registry"
	"github.com/openfms/telematics-engine/telemetry"
)

// Field is one decoded element: the scaled physical value plus the raw
// integer as transmitted. Identity elements are meaningful only
// through Raw.
type Field struct {
	Code  uint16
	Value float64
	Raw   uint64
}

// DecodedFields maps semantic field name to its decoded value. A field
// that is present is guaranteed to be inside its registry-declared
// range; out-of-range values are dropped at decode time.
type DecodedFields map[string]Field

// Decoder applies the element registry to raw records.
type Decoder struct {
	reg *registry.Registry
	log *zap.Logger
}

func NewDecoder(reg *registry.Registry, logger *zap.Logger) *Decoder {
	return &Decoder{reg: reg, log: logger}
}

// Decode converts the record's raw element map into decoded fields.
// Unknown codes are ignored so firmware can add elements without
// breaking older deployments; a single bad element never aborts the
// rest of the record.
func (d *Decoder) Decode(rec *telemetry.RawRecord) DecodedFields {
	fields := make(DecodedFields, len(rec.Elements))
	for code, raw := range rec.Elements {
		def, ok := d.reg.Lookup(code)
		if !ok {
			continue
		}
		if def.Identity {
			fields[def.Name] = Field{Code: code, Raw: raw}
			continue
		}
		physical := def.Scale.Mul(decimal.NewFromBigInt(new(big.Int).SetUint64(raw), 0))
		if def.HasRange && (physical.LessThan(def.Min) || physical.GreaterThan(def.Max)) {
			d.log.Debug("element value out of range, dropped",
				zap.String("imei", rec.IMEI),
				zap.Uint16("code", code),
				zap.Uint64("raw", raw),
				zap.String("value", physical.String()),
			)
			continue
		}
		fields[def.Name] = Field{Code: code, Value: physical.InexactFloat64(), Raw: raw}
	}
	return fields
}

// Has reports whether a semantic field was decoded.
func (f DecodedFields) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Raw returns the raw integer of a field and whether it is present.
func (f DecodedFields) Raw(name string) (uint64, bool) {
	field, ok := f[name]
	return field.Raw, ok
}

// Value returns the scaled physical value of a field and whether it is
// present.
func (f DecodedFields) Value(name string) (float64, bool) {
	field, ok := f[name]
	return field.Value, ok
}
