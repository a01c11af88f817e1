// Package middleware holds the gin middleware shared by all routes.
package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"fukuro_studio/internal/infrastructure/auth"
	"fukuro_studio/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// ContextAdminKey is the gin context key for the authenticated admin username.
	ContextAdminKey = "admin"
	// ContextRequestIDKey is the gin context key for the request id.
	ContextRequestIDKey = "requestID"

	headerRequestID = "X-Request-ID"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid access token", http.StatusUnauthorized)
	errRateLimited  = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests, slow down", http.StatusTooManyRequests)
	errBusy         = pkg.NewDomainErrorSimple("SERVER_BUSY", "Too many chat requests in flight, try again", http.StatusServiceUnavailable)
)

type requestRecorder interface {
	RecordRequest(method, route, status string, d time.Duration)
}

type tokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// RequestLogger assigns a request id and logs every request with its latency.
// 4xx responses log at Warn and 5xx at Error.
func RequestLogger(log *zap.Logger, metrics requestRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, requestID)
		c.Header(headerRequestID, requestID)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		if metrics != nil {
			metrics.RecordRequest(c.Request.Method, route, strconv.Itoa(status), latency)
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", requestID),
		}
		switch {
		case status >= http.StatusInternalServerError:
			log.Error("[http] request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("[http] request", fields...)
		default:
			log.Info("[http] request", fields...)
		}
	}
}

// Recovery turns panics into the INTERNAL_ERROR envelope.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("[http] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}

// RequireAdmin validates the Bearer access token issued at login.
func RequireAdmin(tokens tokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		claims, err := tokens.Validate(rawToken)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(ContextAdminKey, claims.Subject)
		c.Next()
	}
}

func extractBearerToken(authHeader string) (string, bool) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	rawToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return rawToken, rawToken != ""
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than the idle window are dropped on the next request.
type IPRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
	idle     time.Duration
	now      func() time.Time
	log      *zap.Logger
}

func NewIPRateLimiter(perSecond float64, burst int, log *zap.Logger) *IPRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &IPRateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(perSecond),
		burst:    burst,
		idle:     10 * time.Minute,
		now:      time.Now,
		log:      log,
	}
}

func (l *IPRateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.idle {
			delete(l.visitors, key)
		}
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

// RateLimit returns a middleware that rate limits by client IP.
func (l *IPRateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !l.limiter(ip).Allow() {
			if l.log != nil {
				l.log.Warn("[http] rate limit exceeded", zap.String("client_ip", ip), zap.String("path", c.Request.URL.Path))
			}
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}

// ConcurrencyLimit caps the requests in flight on a route group; extra requests
// are rejected instead of queued.
func ConcurrencyLimit(max int) gin.HandlerFunc {
	if max < 1 {
		max = 1
	}
	slots := make(chan struct{}, max)
	return func(c *gin.Context) {
		select {
		case slots <- struct{}{}:
			defer func() { <-slots }()
			c.Next()
		default:
			c.AbortWithStatusJSON(errBusy.HTTPStatus, errBusy.ToHTTPError())
		}
	}
}
