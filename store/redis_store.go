package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"hotel-frontdesk/models"
)

// RedisStore keeps the state under one key, guarded by WATCH so a write
// racing another writer fails with ErrVersionConflict.
type RedisStore struct {
	Client *redis.Client
	Key    string
}

type redisEnvelope struct {
	Version int64             `json:"version"`
	State   models.HotelState `json:"state"`
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{Client: client, Key: "frontdesk:state:" + key}
}

func (s *RedisStore) Load(ctx context.Context) (*models.HotelState, int64, error) {
	raw, err := s.Client.Get(ctx, s.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, 0, ErrStateNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load hotel state: %w", err)
	}
	var env redisEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, 0, fmt.Errorf("failed to decode hotel state: %w", err)
	}
	return &env.State, env.Version, nil
}

func (s *RedisStore) Save(ctx context.Context, state *models.HotelState, expected int64) (int64, error) {
	next := expected + 1
	payload, err := json.Marshal(redisEnvelope{Version: next, State: *state})
	if err != nil {
		return 0, fmt.Errorf("failed to encode hotel state: %w", err)
	}

	err = s.Client.Watch(ctx, func(tx *redis.Tx) error {
		var current int64
		raw, err := tx.Get(ctx, s.Key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			var env redisEnvelope
			if err := json.Unmarshal(raw, &env); err != nil {
				return err
			}
			current = env.Version
		}
		if current != expected {
			return ErrVersionConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.Key, payload, 0)
			return nil
		})
		return err
	}, s.Key)

	switch {
	case err == nil:
		return next, nil
	case errors.Is(err, ErrVersionConflict), errors.Is(err, redis.TxFailedErr):
		return 0, ErrVersionConflict
	default:
		return 0, fmt.Errorf("failed to save hotel state: %w", err)
	}
}
