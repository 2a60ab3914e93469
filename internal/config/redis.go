package config

// This file builds the Redis client used by the redis KV backend.  The
// connection is verified with a short ping; callers decide whether a dead
// Redis is fatal.

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Address returns host:port when both are set, otherwise Addr.
func (r Redis) Address() string {
	if r.Host != "" && r.Port != "" {
		return r.Host + ":" + r.Port
	}
	if r.Addr == "" {
		return "localhost:6379"
	}
	return r.Addr
}

// NewRedisClient connects to Redis and pings it with a two second timeout.
func NewRedisClient(ctx context.Context, r Redis) (*redis.Client, error) {
	var tlsConf *tls.Config
	if r.TLS {
		tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      r.Address(),
		Password:  r.Password,
		DB:        r.DB,
		TLSConfig: tlsConf,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", r.Address(), err)
	}
	return client, nil
}
