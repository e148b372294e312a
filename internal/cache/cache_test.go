// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, projectKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	client, err := ConnectValkey(context.Background(), envOr("VALKEY_HOST", "localhost"), envOr("VALKEY_PORT", "6379"), os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	client.Close()
}

func TestConnectValkeyUnreachable(t *testing.T) {
	if _, err := ConnectValkey(context.Background(), "127.0.0.1", "1", ""); err == nil {
		t.Error("expected error for unreachable Valkey")
	}
}

func TestProjectCacheNil(t *testing.T) {
	var pc *ProjectCache
	ctx := context.Background()

	pc.Set(ctx, 1, []byte("x"))
	pc.Invalidate(ctx, 1)
	if _, ok := pc.Get(ctx, 1); ok {
		t.Error("nil cache should always miss")
	}
	if NewProjectCache(nil, time.Minute) != nil {
		t.Error("NewProjectCache(nil) should return nil")
	}
}

func TestProjectCache(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewProjectCache(client, time.Minute)
	ctx := context.Background()

	if _, ok := pc.Get(ctx, 42); ok {
		t.Fatal("expected miss before Set")
	}

	pc.Set(ctx, 42, []byte(`{"success":true}`))
	got, ok := pc.Get(ctx, 42)
	if !ok || string(got) != `{"success":true}` {
		t.Fatalf("Get after Set: got %q, %v", got, ok)
	}

	ttl := client.TTL(ctx, projectKey(42)).Val()
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("TTL = %v, want within (0, 1m]", ttl)
	}

	pc.Invalidate(ctx, 42)
	if _, ok := pc.Get(ctx, 42); ok {
		t.Error("expected miss after Invalidate")
	}
}
