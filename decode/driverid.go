package decode

import (
	"fmt"

	"github.com/openfms/telematics-engine/registry"
)

// DriverIDWidth is the fixed width of a normalized identity token:
// one iButton id is 8 bytes, printed as 16 upper-hex digits.
const DriverIDWidth = 16

// Identity candidates in priority order; the first one present wins.
// Older device generations report the tag on the driver_id element
// instead of the dedicated iButton element; tachograph-equipped and
// accessory-reader fleets report through the driver-slot, RFID,
// barcode or magnetic-card elements.
var driverIDSources = []string{
	registry.FieldIButton,
	registry.FieldDriverID,
	registry.FieldDriver1,
	registry.FieldDriver2,
	registry.FieldDriver3,
	registry.FieldDriver4,
	registry.FieldDriver5,
	registry.FieldRFIDTag,
	registry.FieldBarcodeID,
	registry.FieldMagneticCard,
}

// ExtractDriverID scans the identity candidate fields and returns the
// normalized token. Hardware reports a fixed repeating pattern (all
// zeros, all F, all A and the like) when no tag is present or the scan
// failed; those sentinels yield absent. A returned id is always
// exactly DriverIDWidth digits and never a sentinel.
func ExtractDriverID(fields DecodedFields) (string, bool) {
	for _, name := range driverIDSources {
		raw, ok := fields.Raw(name)
		if !ok {
			continue
		}
		id := fmt.Sprintf("%0*X", DriverIDWidth, raw)
		if isSentinel(id) {
			return "", false
		}
		return id, true
	}
	return "", false
}

// isSentinel reports whether every digit of the normalized token is
// the same hex character.
func isSentinel(id string) bool {
	for i := 1; i < len(id); i++ {
		if id[i] != id[0] {
			return false
		}
	}
	return true
}
