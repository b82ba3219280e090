package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"insurance/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ── Fixed-window counters ─────────────────────────────────────────────────────

// rateEntry tracks request counts for one client IP.
type rateEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

// memoryWindow counts requests per IP in process memory. It is the only
// counter when Redis is not configured and the fallback when Redis fails.
// Expired entries are swept by hit every purgeInterval; a window holds no
// goroutine and no package-level reference.
type memoryWindow struct {
	entries   map[string]*rateEntry
	nextPurge time.Time
	mu        sync.Mutex
}

func newMemoryWindow() *memoryWindow {
	return &memoryWindow{
		entries:   make(map[string]*rateEntry),
		nextPurge: time.Now().Add(purgeInterval),
	}
}

// hit counts one request and returns the new count and the end of the window.
func (w *memoryWindow) hit(ip string, window time.Duration) (int, time.Time) {
	now := time.Now()

	w.mu.Lock()
	if now.After(w.nextPurge) {
		if purged := w.purgeLocked(now); purged > 0 {
			log.Debug().Int("entries_purged", purged).Int("entries_remaining", len(w.entries)).
				Msg("rate limiter map purged")
		}
		w.nextPurge = now.Add(purgeInterval)
	}
	entry, exists := w.entries[ip]
	if !exists {
		entry = &rateEntry{}
		w.entries[ip] = entry
	}
	w.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.windowEnd) {
		entry.count = 0
		entry.windowEnd = now.Add(window)
	}
	entry.count++
	return entry.count, entry.windowEnd
}

// purge drops entries whose window is over and returns how many it removed.
func (w *memoryWindow) purge(now time.Time) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.purgeLocked(now)
}

func (w *memoryWindow) purgeLocked(now time.Time) int {
	purged := 0
	for ip, entry := range w.entries {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(w.entries, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}

// redisHit counts one request in a Redis key shared by every replica. The
// key name carries the window start so each window gets its own counter.
func redisHit(ctx context.Context, rdb *redis.Client, ip string, window time.Duration) (int, time.Time, error) {
	now := time.Now()
	start := now.Truncate(window)
	key := fmt.Sprintf("ratelimit:%s:%d", ip, start.Unix())

	pipe := rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}
	return int(incr.Val()), start.Add(window), nil
}

// ── General API rate limiter ──────────────────────────────────────────────────

// RateLimiter rejects clients that exceed limit requests per window. With a
// Redis client the count is shared across replicas; with nil, or while Redis
// is unreachable, each process counts on its own.
func RateLimiter(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	local := newMemoryWindow()
	return func(c *gin.Context) {
		ip := c.ClientIP()

		var (
			count     int
			windowEnd time.Time
			err       error
		)
		if rdb != nil {
			count, windowEnd, err = redisHit(c.Request.Context(), rdb, ip, window)
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter: redis unavailable, counting locally")
			}
		}
		if rdb == nil || err != nil {
			count, windowEnd = local.hit(ip, window)
		}

		if count > limit {
			retry := int(time.Until(windowEnd).Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.New(apierror.CodeRateLimited, "Too many requests. Try again in a moment."))
			return
		}
		c.Next()
	}
}

// purgeInterval is how often a memory window sweeps IPs that never returned.
const purgeInterval = 5 * time.Minute
