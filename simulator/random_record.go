package simulator

import (
	"math/rand"
	"time"

	"github.com/openfms/telematics-engine/telemetry"
)

// generateRandomRecord produces a plausible record: a routine position
// report most of the time, with occasional panic, trip, power and
// harsh-driving elements so every classifier path gets exercised.
func generateRandomRecord(imei string) *telemetry.RawRecord {
	rec := &telemetry.RawRecord{
		IMEI:      imei,
		Timestamp: time.Now().UTC(),
		Speed:     float64(getRandomInt(0, 120)),
		GPS: telemetry.GPS{
			Latitude:   getRandomFloat64(-6.9, -6.7),
			Longitude:  getRandomFloat64(39.1, 39.3),
			Altitude:   int16(getRandomInt(0, 500)),
			Angle:      int16(getRandomInt(0, 359)),
			Satellites: uint8(getRandomInt(3, 12)),
		},
		Elements: map[uint16]uint64{
			21:  uint64(getRandomInt(1, 31)),
			66:  uint64(getRandomInt(1100, 1450)),
			67:  uint64(getRandomInt(350, 420)),
			205: uint64(getRandomInt(1, 65535)),
			206: uint64(getRandomInt(1, 65535)),
			240: uint64(getRandomInt(0, 1)),
			252: 1,
		},
	}

	switch getRandomInt(0, 9) {
	case 0:
		rec.Elements[2] = 1
	case 1:
		rec.Elements[253] = uint64(getRandomInt(1, 3))
		rec.Elements[254] = uint64(getRandomInt(1, 100))
	case 2:
		rec.Elements[252] = 0
	case 3:
		rec.Elements[239] = 0
		rec.Elements[199] = uint64(getRandomInt(1000, 90000))
		rec.Elements[80] = uint64(getRandomInt(120, 7200))
		rec.Elements[241] = uint64(getRandomInt(100, 800))
		rec.Elements[242] = uint64(getRandomInt(400, 1200))
	case 4:
		rec.Elements[239] = 1
		rec.Elements[78] = rand.Uint64()
	}
	return rec
}

func getRandomFloat64(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func getRandomInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}
