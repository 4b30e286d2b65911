// Package cache memoizes assembled views. Keys embed the catalog snapshot
// version, so a reload makes every earlier entry unreachable.
package cache

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

// ErrMiss is returned by Get when the key holds nothing
var ErrMiss = errors.New("cache miss")

// ViewCache stores encoded views by key
type ViewCache interface {
	// Get decodes the value stored at key into dst, or returns ErrMiss
	Get(ctx context.Context, key string, dst any) error
	Set(ctx context.Context, key string, value any) error
}

// Key builds a cache key from the entity, the snapshot version and the
// view parameters. Parameters are joined in the order given.
func Key(entity string, version uint64, params ...string) string {
	var b strings.Builder
	b.WriteString("campconnect:view:")
	b.WriteString(entity)
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(version, 10))
	for _, p := range params {
		b.WriteByte(':')
		b.WriteString(strconv.Quote(p))
	}
	return b.String()
}

// Noop never stores anything
type Noop struct{}

// Get always misses
func (Noop) Get(context.Context, string, any) error { return ErrMiss }

// Set discards the value
func (Noop) Set(context.Context, string, any) error { return nil }
