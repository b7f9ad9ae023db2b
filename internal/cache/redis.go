package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"huddle/internal/domain/models"
)

// RedisCache stores session snapshots in Redis as JSON values with a
// TTL. Keys are scoped per user so switching accounts never bleeds one
// user's workspace into another's.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(ctx context.Context, addr string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCache{client: client, ttl: DefaultTTL}, nil
}

func profileKey(userID string) string { return "huddle:profile:" + userID }
func teamsKey(userID string) string   { return "huddle:teams:" + userID }

// Profile returns the cached profile for a user, or ErrMiss.
func (c *RedisCache) Profile(ctx context.Context, userID string) (*models.Member, error) {
	data, err := c.client.Get(ctx, profileKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	var member models.Member
	if err := json.Unmarshal(data, &member); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &member, nil
}

// SetProfile stores a user's profile snapshot.
func (c *RedisCache) SetProfile(ctx context.Context, userID string, member models.Member) error {
	data, err := json.Marshal(member)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := c.client.Set(ctx, profileKey(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set profile: %w", err)
	}
	return nil
}

// Teams returns the cached team list for a user, or ErrMiss.
func (c *RedisCache) Teams(ctx context.Context, userID string) ([]models.Team, error) {
	data, err := c.client.Get(ctx, teamsKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("get teams: %w", err)
	}

	var teams []models.Team
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, fmt.Errorf("decode teams: %w", err)
	}
	return teams, nil
}

// SetTeams stores a user's team list snapshot.
func (c *RedisCache) SetTeams(ctx context.Context, userID string, teams []models.Team) error {
	data, err := json.Marshal(teams)
	if err != nil {
		return fmt.Errorf("encode teams: %w", err)
	}
	if err := c.client.Set(ctx, teamsKey(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set teams: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
