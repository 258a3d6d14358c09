// Package statestore persists the per-device external power state,
// the single piece of state the engine carries across records. Any
// key-value store with last-write-wins semantics suffices.
package statestore

import (
	"context"

	"github.com/openfms/telematics-engine/classify"
)

// Store is the per-device power-state collaborator. Get returns
// PowerUnknown for a device that has never been seen.
type Store interface {
	Get(ctx context.Context, imei string) (classify.PowerState, error)
	Set(ctx context.Context, imei string, state classify.PowerState) error
}
