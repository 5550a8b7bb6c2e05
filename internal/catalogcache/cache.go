// Package catalogcache is the cache-aside facade used by the attribute and category
// read paths. Values are JSON encoded, keys are canonical digests of the normalized
// request parameters, and every entry carries its own TTL.
package catalogcache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
)

// DefaultTTL applies regardless of the backing store's own default.
const DefaultTTL = 30 * time.Second

const (
	AttributesPrefix   = "attributes"
	CategoryTreePrefix = "category_tree"
)

// Store is a key/value backend with per-entry TTL.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type Cache struct {
	store  Store
	ttl    time.Duration
	logger logger.ZapLogger
}

func New(store Store, ttl time.Duration, log logger.ZapLogger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{store: store, ttl: ttl, logger: log}
}

// Get decodes the entry under key into dst. Backend failures and undecodable entries
// are logged and reported as a miss so the caller falls through to live computation.
func (c *Cache) Get(ctx context.Context, key string, dst any) bool {
	data, found, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache lookup failed, treating as miss", zap.String("key", key), zap.Error(err))
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		c.logger.Warn("cache entry undecodable, treating as miss", zap.String("key", key), zap.Error(err))
		return false
	}
	c.logger.Debug("cache hit", zap.String("key", key))
	return true
}

// Set stores value under key. A failed write is logged; the computed result is still valid.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache value not encodable", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Key derives a canonical key from already-normalized params. Struct fields marshal in
// declaration order, so equal params always produce the same digest.
func Key(prefix string, params any) (string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("encode cache key params: %w", err)
	}
	return fmt.Sprintf("%s:%016x", prefix, xxhash.Sum64(data)), nil
}

func TreeKey(includeCounts bool) string {
	return CategoryTreePrefix + ":" + strconv.FormatBool(includeCounts)
}
