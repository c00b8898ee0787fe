package service

import (
	"strings"
	"sync"
	"time"
)

// RateLimiter limita la frecuencia de envios por clave.
type RateLimiter interface {
	Allow(key string) bool
}

type memoryRateLimiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
}

// NewRateLimiter crea un rate limiter en memoria con ventana deslizante.
func NewRateLimiter(window time.Duration, max int) RateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &memoryRateLimiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
	}
}

func (l *memoryRateLimiter) Allow(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now().UTC()
	cutoff := now.Add(-l.window)
	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return true
}

// scopedLimiter antepone un prefijo a la clave para compartir un limiter entre flujos.
type scopedLimiter struct {
	scope string
	inner RateLimiter
}

// ScopedRateLimiter devuelve nil si inner es nil.
func ScopedRateLimiter(scope string, inner RateLimiter) RateLimiter {
	if inner == nil {
		return nil
	}
	return &scopedLimiter{scope: scope, inner: inner}
}

func (s *scopedLimiter) Allow(key string) bool {
	return s.inner.Allow(s.scope + ":" + key)
}
