package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "bm:session:"

// RedisStore keeps sessions in redis so multiple instances can share them.
// Failures degrade to "no session": the browser is asked to log in again
// rather than surfacing an infrastructure error.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Save(entry *Entry) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	s.rdb.Set(context.Background(), redisKeyPrefix+entry.ID.String(), raw, s.ttl)
}

func (s *RedisStore) Get(id uuid.UUID) (*Entry, bool) {
	raw, err := s.rdb.Get(context.Background(), redisKeyPrefix+id.String()).Bytes()
	if err != nil {
		return nil, false
	}
	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false
	}
	return &entry, true
}

func (s *RedisStore) Delete(id uuid.UUID) {
	s.rdb.Del(context.Background(), redisKeyPrefix+id.String())
}
