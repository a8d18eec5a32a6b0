package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/smartmatch/internal/app/models/dto"
	"golang.org/x/time/rate"
)

const (
	visitorIdleTTL    = 10 * time.Minute
	visitorPruneEvery = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP and route with a token bucket
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	now       func() time.Time
	lastPrune time.Time
}

// NewRateLimiter allows burst requests at once, refilled at perMinute
func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether one more request for key fits in its bucket
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastPrune) > visitorPruneEvery {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > visitorIdleTTL {
				delete(l.visitors, k)
			}
		}
		l.lastPrune = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func rateKey(c *gin.Context) string {
	return c.ClientIP() + ":" + c.FullPath()
}

// API answers throttled requests with a 429 error envelope
func (l *RateLimiter) API() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.Allow(rateKey(c)) {
			c.Next()
			return
		}
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeTooManyRequests, "Too many attempts, please try again later").
			WithSeverity(dto.ErrorSeverityWarning)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(errorDetail))
	}
}

// Page re-renders the given template with an error when throttled
func (l *RateLimiter) Page(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.Allow(rateKey(c)) {
			c.Next()
			return
		}
		c.HTML(http.StatusTooManyRequests, template, gin.H{"Error": "Too many attempts, please try again in a minute."})
		c.Abort()
	}
}
