package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"regexlab/internal/app/ports"
)

// CountingCache считает попадания и промахи вокруг любого кэша.
type CountingCache[T any] struct {
	ports.CachePort[T]
}

func NewCountingCache[T any](inner ports.CachePort[T]) *CountingCache[T] {
	return &CountingCache[T]{CachePort: inner}
}

func (c *CountingCache[T]) Get(key string) (T, bool) {
	v, ok := c.CachePort.Get(key)
	if ok {
		VerdictCache.With(prometheus.Labels{"result": "hit"}).Inc()
	} else {
		VerdictCache.With(prometheus.Labels{"result": "miss"}).Inc()
	}
	return v, ok
}
