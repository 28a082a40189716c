// Package cachemanager provides a generic cache interface with an
// in-memory implementation and a read-through wrapper, used by the media
// library to avoid re-reading metadata on every block render.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is a generic key/value cache with per-entry TTLs.
type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	// GetWithRefresh returns the value and extends its TTL on a hit.
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
