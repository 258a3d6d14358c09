// Package delivery serializes classified events to the regulatory
// wire schema and publishes them over NATS. Retry and queuing on
// transient transport failure is the consumer side's concern.
package delivery

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/openfms/telematics-engine/telemetry"
)

// reportItem is one event in the upstream endpoint's schema. The
// contract wants every value as a string; network fields that were
// absent at decode time are sent as "0" per the endpoint's "unknown"
// convention, which is distinct from an absent addon field.
type reportItem struct {
	Latitude        string                 `json:"latitude"`
	Longitude       string                 `json:"longitude"`
	Altitude        string                 `json:"altitude"`
	Timestamp       string                 `json:"timestamp"`
	HorizontalSpeed string                 `json:"horizontal_speed"`
	VerticalSpeed   string                 `json:"vertical_speed"`
	Bearing         string                 `json:"bearing"`
	SatelliteCount  string                 `json:"satellite_count"`
	RSSI            string                 `json:"RSSI"`
	LAC             string                 `json:"LAC"`
	CellID          string                 `json:"Cell_ID"`
	MessageID       string                 `json:"MGS_ID"`
	MCC             string                 `json:"MCC"`
	ActivityID      string                 `json:"activity_id"`
	AddonInfo       telemetry.AddonPayload `json:"addon_info,omitempty"`
}

type reportPayload struct {
	IMEI  string       `json:"imei"`
	Type  string       `json:"type"`
	Items []reportItem `json:"items"`
}

// Publisher hands events to the delivery subject.
type Publisher struct {
	nc      *nats.Conn
	subject string
	log     *zap.Logger
}

func NewPublisher(nc *nats.Conn, subject string, logger *zap.Logger) *Publisher {
	return &Publisher{nc: nc, subject: subject, log: logger}
}

// Publish serializes one event and publishes it. Routine position
// reports (ActivityNone) are suppressed.
func (p *Publisher) Publish(event *telemetry.Event) error {
	if !event.Activity.Reportable() {
		return nil
	}
	payload := reportPayload{
		IMEI:  event.IMEI,
		Type:  "poi",
		Items: []reportItem{makeItem(event)},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal report payload: %w", err)
	}
	if err := p.nc.Publish(p.subject, body); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	p.log.Info("event published",
		zap.String("imei", event.IMEI),
		zap.Stringer("activity", event.Activity),
		zap.Int("activity_id", event.Activity.Code()),
	)
	return nil
}

func makeItem(event *telemetry.Event) reportItem {
	item := reportItem{
		Latitude:        strconv.FormatFloat(event.GPS.Latitude, 'f', 6, 64),
		Longitude:       strconv.FormatFloat(event.GPS.Longitude, 'f', 6, 64),
		Altitude:        strconv.Itoa(int(event.GPS.Altitude)),
		Timestamp:       strconv.FormatInt(event.Timestamp.UnixMilli(), 10),
		HorizontalSpeed: strconv.Itoa(int(event.Speed)),
		VerticalSpeed:   "0",
		Bearing:         strconv.Itoa(int(event.GPS.Angle)),
		SatelliteCount:  strconv.Itoa(int(event.GPS.Satellites)),
		RSSI:            "0",
		LAC:             "0",
		CellID:          "0",
		MessageID:       uuid.NewString(),
		MCC:             event.Network.MCC,
		ActivityID:      strconv.Itoa(event.Activity.Code()),
	}
	if event.Network.HasRSSI {
		item.RSSI = strconv.Itoa(event.Network.RSSI)
	}
	if event.Network.HasLAC {
		item.LAC = strconv.FormatUint(uint64(event.Network.LAC), 10)
	}
	if event.Network.HasCellID {
		item.CellID = strconv.FormatUint(uint64(event.Network.CellID), 10)
	}
	if len(event.Addon) > 0 {
		item.AddonInfo = event.Addon
	}
	return item
}
