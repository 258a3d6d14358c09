package engine

import (
	"context"
	"hash/fnv"
	"sync"

	"go.uber.org/zap"

	"github.com/openfms/telematics-engine/telemetry"
)

// EventSink receives every processed event, reportable or not.
type EventSink func(ctx context.Context, event *telemetry.Event)

// Lanes fans raw records out to a fixed set of sequential processing
// lanes. A device always hashes to the same lane, so its records keep
// arrival order and its power-state key has a single writer; different
// devices spread across lanes and run in parallel.
type Lanes struct {
	engine *Engine
	sink   EventSink
	log    *zap.Logger

	lanes []chan *telemetry.RawRecord
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewLanes starts laneCount lanes with the given per-lane queue size.
func NewLanes(eng *Engine, laneCount, queueSize int, sink EventSink, logger *zap.Logger) *Lanes {
	if laneCount <= 0 {
		laneCount = 8
	}
	if queueSize <= 0 {
		queueSize = 256
	}
	l := &Lanes{
		engine: eng,
		sink:   sink,
		log:    logger,
		lanes:  make([]chan *telemetry.RawRecord, laneCount),
	}
	for i := range l.lanes {
		l.lanes[i] = make(chan *telemetry.RawRecord, queueSize)
		l.wg.Add(1)
		go l.run(l.lanes[i])
	}
	return l
}

// Submit enqueues a record on its device's lane, blocking when the
// lane is full so ordering is preserved under backpressure. A record
// arriving after Close is dropped; transport callbacks may still be
// in flight while shutdown runs.
func (l *Lanes) Submit(rec *telemetry.RawRecord) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		l.log.Warn("record dropped, lanes closed",
			zap.String("imei", rec.IMEI),
		)
		return
	}
	l.lanes[l.laneFor(rec.IMEI)] <- rec
}

func (l *Lanes) run(lane chan *telemetry.RawRecord) {
	defer l.wg.Done()
	ctx := context.Background()
	for rec := range lane {
		event, err := l.engine.Process(ctx, rec)
		if err != nil {
			l.log.Warn("record processed with degraded state handling",
				zap.String("imei", rec.IMEI),
				zap.Error(err),
			)
		}
		l.sink(ctx, event)
	}
}

func (l *Lanes) laneFor(imei string) int {
	h := fnv.New32a()
	h.Write([]byte(imei))
	return int(h.Sum32() % uint32(len(l.lanes)))
}

// Close stops intake and blocks until every queued record has been
// processed and delivered to the sink. Safe to call more than once.
func (l *Lanes) Close() {
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		for _, lane := range l.lanes {
			close(lane)
		}
	}
	l.mu.Unlock()
	l.wg.Wait()
}
