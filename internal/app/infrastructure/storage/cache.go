package storage

import (
	"github.com/maypok86/otter/v2"
	"time"
)

type Cache[T any] struct {
	outer *otter.Cache[string, T]
}

type CacheOption[T any] func(*otter.Options[string, T])

// WithIdleTTL удаляет запись, к которой не обращались дольше ttl.
func WithIdleTTL[T any](ttl time.Duration) CacheOption[T] {
	return func(o *otter.Options[string, T]) {
		if ttl > 0 {
			o.ExpiryCalculator = otter.ExpiryAccessing[string, T](ttl)
		}
	}
}

// WithOnEvict вызывается, когда запись вытеснена по размеру или истекла.
func WithOnEvict[T any](fn func(key string, val T)) CacheOption[T] {
	return func(o *otter.Options[string, T]) {
		o.OnDeletion = func(e otter.DeletionEvent[string, T]) {
			if e.WasEvicted() {
				fn(e.Key, e.Value)
			}
		}
	}
}

func NewCache[T any](capacity int, opts ...CacheOption[T]) *Cache[T] {
	o := &otter.Options[string, T]{}
	if capacity > 0 {
		o.MaximumSize = capacity
	}
	for _, opt := range opts {
		opt(o)
	}

	return &Cache[T]{outer: otter.Must(o)}
}

func (c *Cache[T]) Set(key string, val T) {
	c.outer.Set(key, val)
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.outer.GetIfPresent(key)
}

func (c *Cache[T]) ClearKey(key string) {
	c.outer.Invalidate(key)
}

func (c *Cache[T]) ClearAll() {
	c.outer.InvalidateAll()
}

func (c *Cache[T]) Len() int {
	return c.outer.EstimatedSize()
}
