package statestore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openfms/telematics-engine/classify"
)

const powerStateKeyPrefix = "powerstate:"

// RedisStore keeps power state in Redis, one key per device. Writes
// are last-write-wins; the engine's per-device lanes guarantee only
// one writer per key at a time.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Store = &RedisStore{}

// NewRedisStore connects to the given Redis URL. A zero ttl keeps
// state forever; deployments that recycle device fleets set a ttl so
// stale devices age out.
func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (rs *RedisStore) Get(ctx context.Context, imei string) (classify.PowerState, error) {
	val, err := rs.client.Get(ctx, powerStateKeyPrefix+imei).Result()
	if errors.Is(err, redis.Nil) {
		return classify.PowerUnknown, nil
	}
	if err != nil {
		return classify.PowerUnknown, err
	}
	state, err := strconv.Atoi(val)
	if err != nil {
		return classify.PowerUnknown, nil
	}
	return classify.PowerState(state), nil
}

func (rs *RedisStore) Set(ctx context.Context, imei string, state classify.PowerState) error {
	return rs.client.Set(ctx, powerStateKeyPrefix+imei, strconv.Itoa(int(state)), rs.ttl).Err()
}

func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
