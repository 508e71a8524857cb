package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/lacarta/lacarta-backend/internal/modules/user"
)

// RoleCache is a session-scoped role cache backed by Redis. Entries live as
// long as the tokens they mirror, so a role change takes effect at the latest
// on the next login.
type RoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoleCache connects to Redis and verifies the connection.
func NewRoleCache(redisURL string) (*RoleCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RoleCache{client: client, ttl: tokenLifetime}, nil
}

func (c *RoleCache) key(userID string) string { return "session:role:" + userID }

func (c *RoleCache) Get(ctx context.Context, userID string) (user.Role, bool, error) {
	val, err := c.client.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	role := user.Role(val)
	if !role.Valid() {
		return "", false, nil
	}
	return role, true, nil
}

func (c *RoleCache) Set(ctx context.Context, userID string, role user.Role) error {
	return c.client.Set(ctx, c.key(userID), string(role), c.ttl).Err()
}

// Invalidate drops a cached role, forcing the next lookup to hit the store.
func (c *RoleCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

// Close releases the underlying Redis connection.
func (c *RoleCache) Close() error { return c.client.Close() }
