package decode

import (
	"github.com/openfms/telematics-engine/registry"
	"github.com/openfms/telematics-engine/telemetry"
)

const (
	// Raw GSM signal level is 0..31; the upstream schema wants the
	// value post-multiplier.
	rssiMultiplier = 6

	// Single-region deployment; the mobile country code is fixed,
	// never derived from the record.
	mobileCountryCode = "640"

	cellRangeMin uint64 = 1
	cellRangeMax uint64 = 65535
)

// ExtractNetworkInfo pulls the cellular registration fields from the
// decoded elements. Cell id comes from the dedicated cell-id element
// and LAC from the area-code element; the nearby operator-code
// elements look similar but do not carry this data. Readings outside
// [1,65535] (0 is a common unset sentinel in firmware) are reported
// absent.
func ExtractNetworkInfo(fields DecodedFields) telemetry.NetworkInfo {
	info := telemetry.NetworkInfo{MCC: mobileCountryCode}

	if raw, ok := fields.Raw(registry.FieldCellID); ok && within(raw, cellRangeMin, cellRangeMax) {
		info.CellID = uint32(raw)
		info.HasCellID = true
	}
	if raw, ok := fields.Raw(registry.FieldAreaCode); ok && within(raw, cellRangeMin, cellRangeMax) {
		info.LAC = uint32(raw)
		info.HasLAC = true
	}
	if raw, ok := fields.Raw(registry.FieldGSMSignal); ok {
		info.RSSI = int(raw) * rssiMultiplier
		info.HasRSSI = true
	}
	return info
}
