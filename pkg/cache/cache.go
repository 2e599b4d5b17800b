// Package cache provides result caching for solve runs. A cost matrix fully
// determines the optimal tour, so results are keyed by a hash of the matrix
// and reused across invocations regardless of worker count.
package cache

import (
	"context"
	"time"

	"github.com/tourbound/tourbound/pkg/matrix"
)

// Cache stores serialized values under string keys.
type Cache interface {
	// Get retrieves a value. ok is false on a miss; err is reserved for
	// storage failures, never for misses.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ResultTTL is how long cached solve results are kept. Exact results never
// go stale, but bounding the TTL keeps the cache directory from growing
// without limit.
const ResultTTL = 30 * 24 * time.Hour

// ResultKey derives the cache key for a solve over m. Two matrices with the
// same size and costs always map to the same key.
func ResultKey(m *matrix.Matrix) string {
	return "result:" + Hash([]byte(m.String()))
}
