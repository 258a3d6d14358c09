// Package telemetry defines the data model shared by the decoding,
// classification and delivery layers. All values are built once per
// incoming record and never mutated afterwards.
package telemetry

import "time"

// GPS holds the position fields of one AVL record.
type GPS struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Altitude   int16   `json:"altitude"`
	Angle      int16   `json:"angle"`
	Satellites uint8   `json:"satellites"`
}

// RawRecord is one device transmission after the wire framing has been
// demultiplexed upstream: position, reported speed and the raw I/O
// element map keyed by element code.
type RawRecord struct {
	IMEI      string            `json:"imei"`
	Timestamp time.Time         `json:"timestamp"`
	Speed     float64           `json:"speed"`
	GPS       GPS               `json:"gps"`
	Elements  map[uint16]uint64 `json:"io_elements"`
}

// NetworkInfo carries the cellular registration fields extracted from
// the decoded elements. Cell id and LAC are valid in [1,65535]; an
// out-of-range reading (including the common 0 firmware sentinel) is
// reported absent via the Has flags rather than forwarded as zero.
type NetworkInfo struct {
	CellID    uint32
	HasCellID bool
	LAC       uint32
	HasLAC    bool
	RSSI      int
	HasRSSI   bool
	MCC       string
}

// AddonPayload is the supplemental field set attached to an event. The
// regulatory schema transmits every value as a string.
type AddonPayload map[string]string

// Event is the engine's sole output: one classified activity per raw
// record, ownership passes to the delivery collaborator on return.
type Event struct {
	IMEI      string
	Timestamp time.Time
	Activity  Activity
	Speed     float64
	GPS       GPS
	DriverID  string // 16-char upper hex, empty when no valid tag
	Network   NetworkInfo
	Addon     AddonPayload
}
