// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	projectKeyPrefix = "project:"

	// DefaultProjectTTL is how long a project's slide listing stays cached.
	DefaultProjectTTL = 5 * time.Minute
)

// ProjectCache stores the encoded slide listing of a project. A nil
// *ProjectCache is valid and caches nothing, so the app runs without
// Valkey. Errors are logged and treated as misses.
type ProjectCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProjectCache returns a cache backed by client, or nil when client is nil.
func NewProjectCache(client *redis.Client, ttl time.Duration) *ProjectCache {
	if client == nil {
		return nil
	}
	if ttl == 0 {
		ttl = DefaultProjectTTL
	}
	return &ProjectCache{client: client, ttl: ttl}
}

func projectKey(id int64) string {
	return projectKeyPrefix + strconv.FormatInt(id, 10)
}

// Get returns the cached listing for a project.
func (pc *ProjectCache) Get(ctx context.Context, id int64) ([]byte, bool) {
	if pc == nil {
		return nil, false
	}
	val, err := pc.client.Get(ctx, projectKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		slog.Warn("project cache get error", "project_id", id, "error", err)
		return nil, false
	}
	slog.Debug("project cache hit", "project_id", id)
	return val, true
}

// Set stores the listing for a project with the configured TTL.
func (pc *ProjectCache) Set(ctx context.Context, id int64, body []byte) {
	if pc == nil {
		return
	}
	if err := pc.client.Set(ctx, projectKey(id), body, pc.ttl).Err(); err != nil {
		slog.Warn("project cache set error", "project_id", id, "error", err)
	}
}

// Invalidate drops a project's listing. Call after any slide change.
func (pc *ProjectCache) Invalidate(ctx context.Context, id int64) {
	if pc == nil {
		return
	}
	if err := pc.client.Del(ctx, projectKey(id)).Err(); err != nil {
		slog.Warn("project cache invalidate error", "project_id", id, "error", err)
	}
}
