// Package engine orchestrates decode → classify → addon for each raw
// record and owns the per-device processing discipline: records for
// the same device run strictly in arrival order, distinct devices run
// concurrently.
package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/openfms/telematics-engine/addon"
	"github.com/openfms/telematics-engine/classify"
	"github.com/openfms/telematics-engine/decode"
	"github.com/openfms/telematics-engine/statestore"
	"github.com/openfms/telematics-engine/telemetry"
)

// Engine turns raw records into classified events. It is stateless
// apart from the power-state store round-trip.
type Engine struct {
	dec   *decode.Decoder
	store statestore.Store
	log   *zap.Logger
}

func New(dec *decode.Decoder, store statestore.Store, logger *zap.Logger) *Engine {
	return &Engine{dec: dec, store: store, log: logger}
}

// Process decodes and classifies one record and returns the event to
// hand to the delivery collaborator. A state-store read failure
// degrades to "no prior state observable" rather than failing the
// record; the write failure is returned so the caller can surface it,
// with the event still produced.
func (e *Engine) Process(ctx context.Context, rec *telemetry.RawRecord) (*telemetry.Event, error) {
	fields := e.dec.Decode(rec)

	driverID, _ := decode.ExtractDriverID(fields)
	network := decode.ExtractNetworkInfo(fields)

	prev, err := e.store.Get(ctx, rec.IMEI)
	if err != nil {
		e.log.Warn("power state read failed, transition guard skipped",
			zap.String("imei", rec.IMEI),
			zap.Error(err),
		)
		prev = classify.PowerUnknown
	}

	activity, next := classify.Classify(fields, rec.Speed, prev)

	var storeErr error
	if next != classify.PowerUnknown {
		if storeErr = e.store.Set(ctx, rec.IMEI, next); storeErr != nil {
			e.log.Error("power state write failed",
				zap.String("imei", rec.IMEI),
				zap.Error(storeErr),
			)
		}
	}

	event := &telemetry.Event{
		IMEI:      rec.IMEI,
		Timestamp: rec.Timestamp,
		Activity:  activity,
		Speed:     rec.Speed,
		GPS:       rec.GPS,
		DriverID:  driverID,
		Network:   network,
		Addon:     addon.Build(activity, fields, driverID, rec),
	}
	return event, storeErr
}
