// Package simulator publishes randomized raw records to the engine's
// intake subject, standing in for the upstream device-protocol decoder
// during development and load testing.
package simulator

import (
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"
)

type TrackerDevice struct {
	natsAddr string
	subject  string
	imei     string
	conn     *nats.Conn
	logger   *log.Logger
	quit     chan struct{}
}

func NewTrackerDevice(natsAddr, subject, imei string, logger *log.Logger) *TrackerDevice {
	return &TrackerDevice{
		natsAddr: natsAddr,
		subject:  subject,
		imei:     imei,
		logger:   logger,
		quit:     make(chan struct{}),
	}
}

func (td *TrackerDevice) Connect() error {
	nc, err := nats.Connect(td.natsAddr)
	if err != nil {
		return err
	}
	td.conn = nc
	return nil
}

// SendRandomRecords publishes one record per second until Stop.
func (td *TrackerDevice) SendRandomRecords() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-td.quit:
			return
		case <-ticker.C:
			rec := generateRandomRecord(td.imei)
			body, err := json.Marshal(rec)
			if err != nil {
				td.logger.Printf("marshal record failed: %v", err)
				continue
			}
			if err := td.conn.Publish(td.subject, body); err != nil {
				td.logger.Printf("publish record failed: %v", err)
				continue
			}
			td.logger.Printf("sent record imei=%s speed=%.0f elements=%d",
				rec.IMEI, rec.Speed, len(rec.Elements))
		}
	}
}

func (td *TrackerDevice) Stop() {
	close(td.quit)
	if td.conn != nil {
		td.conn.Close()
	}
}
