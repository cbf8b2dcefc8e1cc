package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisStore keeps sessions in Redis, one key per profile, so several
// machines can share a login.
type RedisStore struct {
	client  *redis.Client
	profile string
	now     func() time.Time
}

// NewRedisStore connects to Redis at uri (host:port).
func NewRedisStore(uri, profile string) (*RedisStore, error) {
	opt, err := redis.ParseURL("redis://" + uri)
	if err != nil {
		return nil, fmt.Errorf("parse redis uri: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	logrus.WithField("uri", uri).Debug("Connected to Redis")

	return NewRedisStoreWithClient(client, profile), nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client, profile string) *RedisStore {
	return &RedisStore{client: client, profile: profile, now: time.Now}
}

// Ensure RedisStore implements Store interface
var _ Store = (*RedisStore)(nil)

// Close closes the Redis connection.
func (r *RedisStore) Close() {
	if err := r.client.Close(); err != nil {
		logrus.WithError(err).Warn("Error closing Redis connection")
	}
}

// Load reads the profile's session.
func (r *RedisStore) Load(ctx context.Context) (*Session, error) {
	data, err := r.client.Get(ctx, Key(r.profile)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

// Save stores the session. The key expires with the token.
func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.client.Set(ctx, Key(r.profile), data, TTL(s, r.now())).Err()
}

// Clear deletes the profile's session.
func (r *RedisStore) Clear(ctx context.Context) error {
	return r.client.Del(ctx, Key(r.profile)).Err()
}

// Key generates the Redis key for a profile.
func Key(profile string) string {
	return fmt.Sprintf("session:%s", profile)
}

// TTL returns how long a session key should live: until the token
// expires, or forever (0) when no expiry is known. An already expired
// session still gets a short TTL so the expiry check can observe it.
func TTL(s *Session, now time.Time) time.Duration {
	if s.TokenExpiry == nil {
		return 0
	}
	if ttl := s.TokenExpiry.Sub(now); ttl > 0 {
		return ttl
	}
	return time.Second
}
