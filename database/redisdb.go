package database

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisHelper is nil when no Redis URL is configured; callers treat it as
// an optional second cache level and skip it when absent.
var RedisHelper *redisUtil

type redisUtil struct {
	client *redis.Client
	ctx    context.Context
}

func InitRedis(url string) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatal().Msgf("Invalid Redis URL: %v", err)
	}

	if opts.TLSConfig == nil {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	redisClient := redis.NewClient(opts)
	ctx := context.Background()

	if _, err = redisClient.Ping(ctx).Result(); err != nil {
		log.Fatal().Msgf("Could not connect to Redis: %v", err)
	}

	log.Info().Msg("Connected to Redis")

	RedisHelper = &redisUtil{
		client: redisClient,
		ctx:    ctx,
	}
}

// Set stores a JSON-encoded value with the given TTL.
func (r *redisUtil) Set(key string, value any, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(r.ctx, key, raw, expiration).Err(); err != nil {
		log.Warn().Msgf("Redis SET error [%s]: %v", key, err)
		return err
	}
	return nil
}

// GetAsStruct decodes a JSON value into target, reporting whether the key
// was present.
func (r *redisUtil) GetAsStruct(key string, target any) (bool, error) {
	raw, err := r.client.Get(r.ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		log.Warn().Msgf("Redis GET error [%s]: %v", key, err)
		return false, err
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisUtil) Delete(key string) error {
	err := r.client.Del(r.ctx, key).Err()
	if err != nil {
		log.Warn().Msgf("Redis DEL error [%s]: %v", key, err)
	}
	return err
}
