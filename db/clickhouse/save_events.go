package clickhouse

import (
	"context"
	"time"

	"github.com/openfms/telematics-engine/telemetry"
)

type EventColumns struct {
	IMEI       string
	Timestamp  time.Time
	ActivityID int16
	Activity   string
	Speed      float64
	Longitude  float64
	Latitude   float64
	Altitude   int16
	Angle      int16
	Satellites uint8
	DriverID   string
	CellID     uint32
	LAC        uint32
	RSSI       int32
	MCC        string
	Addon      map[string]string
}

const insertEventQuery = `
	INSERT INTO
	    telemetry_events(imei, timestamp, activity_id, activity, speed, longitude, latitude, altitude, angle, satellites, driver_id, cell_id, lac, rssi, mcc, addon)
	VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?);
`

// SaveEvents batch-inserts classified events for audit. Network fields
// that were absent at decode time are stored as zero here; the wire
// payload keeps the absent/zero distinction, the audit table does not
// need it because the addon map preserves the original field set.
func (edb *EventDataBase) SaveEvents(ctx context.Context, events []*telemetry.Event) error {
	batch, err := edb.ClickhouseConn.PrepareBatch(ctx, insertEventQuery)
	if err != nil {
		return err
	}
	for _, event := range events {
		err := batch.AppendStruct(&EventColumns{
			IMEI:       event.IMEI,
			Timestamp:  event.Timestamp,
			ActivityID: int16(event.Activity.Code()),
			Activity:   event.Activity.String(),
			Speed:      event.Speed,
			Longitude:  event.GPS.Longitude,
			Latitude:   event.GPS.Latitude,
			Altitude:   event.GPS.Altitude,
			Angle:      event.GPS.Angle,
			Satellites: event.GPS.Satellites,
			DriverID:   event.DriverID,
			CellID:     event.Network.CellID,
			LAC:        event.Network.LAC,
			RSSI:       int32(event.Network.RSSI),
			MCC:        event.Network.MCC,
			Addon:      event.Addon,
		})
		if err != nil {
			return err
		}
	}
	return batch.Send()
}
