package statestore

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/openfms/telematics-engine/classify"
)

const memoryShards = 16

type memoryShard struct {
	mu     sync.RWMutex
	states map[string]classify.PowerState
}

// MemoryStore is an in-process store sharded by device key, for tests
// and single-node deployments.
type MemoryStore struct {
	shards [memoryShards]*memoryShard
}

var _ Store = &MemoryStore{}

func NewMemoryStore() *MemoryStore {
	ms := &MemoryStore{}
	for i := range ms.shards {
		ms.shards[i] = &memoryShard{states: make(map[string]classify.PowerState)}
	}
	return ms
}

func (ms *MemoryStore) shardFor(imei string) *memoryShard {
	h := fnv.New32a()
	h.Write([]byte(imei))
	return ms.shards[h.Sum32()%memoryShards]
}

func (ms *MemoryStore) Get(_ context.Context, imei string) (classify.PowerState, error) {
	shard := ms.shardFor(imei)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	return shard.states[imei], nil
}

func (ms *MemoryStore) Set(_ context.Context, imei string, state classify.PowerState) error {
	shard := ms.shardFor(imei)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	shard.states[imei] = state
	return nil
}
