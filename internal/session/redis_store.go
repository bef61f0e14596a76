package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	sessionKeyPrefix = "weblogin-session||"
	tokensSetKey     = "weblogin-sessions"
)

// RedisStore keeps one key per session and tracks all tokens in a set,
// so Teardown can find and drop them.
type RedisStore struct {
	redisClient *redis.Client
}

func NewRedisStore(redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
	}
}

func (s *RedisStore) Get(ctx context.Context, token string) (Marker, error) {
	username, err := s.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Marker{}, ErrSessionNotFound
		}
		return Marker{}, fmt.Errorf("redis get session: %w", err)
	}
	return Marker{Username: username}, nil
}

func (s *RedisStore) Set(ctx context.Context, token string, marker Marker) error {
	if err := s.redisClient.Set(ctx, sessionKeyPrefix+token, marker.Username, 0).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}

	// add token to the set of sessions
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return fmt.Errorf("redis track session: %w", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}

	// remove token from the set of sessions
	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return fmt.Errorf("redis untrack session: %w", err)
	}

	return nil
}

func (s *RedisStore) Teardown(ctx context.Context) error {
	tokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		return fmt.Errorf("redis list sessions: %w", err)
	}

	if len(tokens) == 0 {
		log.Debugln("=> session teardown, no sessions")
		return nil
	}

	log.Warnf("=> session teardown [%d sessions] ...", len(tokens))
	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, sessionKeyPrefix+token)
	}
	keys = append(keys, tokensSetKey)

	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis delete sessions: %w", err)
	}

	return nil
}
