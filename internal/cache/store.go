// Package cache holds short-lived computed results.
//
// A Store is a byte-oriented key/value store with per-entry expiry. The
// ResultCache sits on top of a Store and caches JSON-encoded listing and
// statistics results for a fixed five minutes. Nothing is invalidated on
// write; staleness is bounded by the expiry alone.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrClosed is returned by a Store after Close.
var ErrClosed = errors.New("cache: store closed")

// Store is the key/value capability the cache needs.
//
// Get reports found=false for absent and expired entries alike.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
