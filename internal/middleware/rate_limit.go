package middleware

import (
	"net/http"
	"sync"
	"time"

	"go-hris-web/internal/shared/apperror"
	"go-hris-web/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterIdleTTL: limiter yang tidak dipakai selama ini dibuang agar map tidak tumbuh terus
const limiterIdleTTL = 10 * time.Minute

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter holds one token bucket per key (client IP or session id).
type KeyedRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*keyedLimiter
	r        rate.Limit // jumlah request per detik
	b        int        // burst (kapasitas kantong)
	now      func() time.Time
	lastGC   time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*keyedLimiter),
		r:        r,
		b:        b,
		now:      time.Now,
	}
}

func (k *KeyedRateLimiter) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if now.Sub(k.lastGC) > limiterIdleTTL {
		for key, l := range k.limiters {
			if now.Sub(l.lastSeen) > limiterIdleTTL {
				delete(k.limiters, key)
			}
		}
		k.lastGC = now
	}

	l, exists := k.limiters[key]
	if !exists {
		l = &keyedLimiter{limiter: rate.NewLimiter(k.r, k.b)}
		k.limiters[key] = l
	}
	l.lastSeen = now
	return l.limiter.AllowN(now, 1)
}

func (k *KeyedRateLimiter) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.limiters)
}

// RateLimitByIP guards form posts: r = request per detik, b = burst.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			tooManyRequests(c, "Too many requests from this IP")
			return
		}
		c.Next()
	}
}

// RateLimitBySession dipakai untuk endpoint yang mahal (export) agar satu
// browser tidak membanjiri API. Requests without a session pass through.
func RateLimitBySession(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")
		if sessionID != "" && !limiter.Allow(sessionID) {
			tooManyRequests(c, "Too many requests from this session")
			return
		}
		c.Next()
	}
}

func tooManyRequests(c *gin.Context, message string) {
	response.Error(c, http.StatusTooManyRequests, apperror.CodeRateLimited, message, nil)
	c.Abort()
}
