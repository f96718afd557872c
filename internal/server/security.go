package server

import (
	"crypto/subtle"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/SpinSurvive_Go/internal/logger"
)

// ClientResolver decides which address a request is attributed to.
// X-Forwarded-For is honored only when the direct peer is a configured proxy.
type ClientResolver struct {
	trusted map[netip.Addr]struct{}
}

// NewClientResolver builds a resolver from proxy addresses. Unparseable entries are ignored.
func NewClientResolver(trustedProxies []string) *ClientResolver {
	c := &ClientResolver{trusted: make(map[netip.Addr]struct{}, len(trustedProxies))}
	for _, p := range trustedProxies {
		if addr, err := netip.ParseAddr(strings.TrimSpace(p)); err == nil {
			c.trusted[addr.Unmap()] = struct{}{}
		}
	}
	return c
}

// ClientIP returns the peer address, or the last X-Forwarded-For hop when the peer is a trusted proxy
func (c *ClientResolver) ClientIP(r *http.Request) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}

	addr, err := netip.ParseAddr(peer)
	if err != nil {
		return peer
	}
	if _, ok := c.trusted[addr.Unmap()]; !ok {
		return peer
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return peer
	}
	// The rightmost hop is the one our proxy saw
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

type rateWindow struct {
	start time.Time
	count int
}

// RateLimiter counts requests per client in fixed windows.
// Idle clients fall out of a bounded LRU once their window has passed.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	clients *expirable.LRU[string, *rateWindow]
}

// NewRateLimiter allows limit requests per client in each window. A nil clock means time.Now.
func NewRateLimiter(limit int, window time.Duration, clock func() time.Time) *RateLimiter {
	if clock == nil {
		clock = time.Now
	}
	return &RateLimiter{
		limit:   limit,
		window:  window,
		now:     clock,
		clients: expirable.NewLRU[string, *rateWindow](RateLimitTrackedClients, nil, window),
	}
}

// Allow records one request for client. The second result is true only for
// the first rejected request of a window.
func (l *RateLimiter) Allow(client string) (allowed, justBlocked bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.clients.Get(client)
	if !ok || now.Sub(w.start) >= l.window {
		w = &rateWindow{start: now}
		l.clients.Add(client, w)
	}
	w.count++

	if w.count <= l.limit {
		return true, false
	}
	return false, w.count == l.limit+1
}

// RateLimitMiddleware answers 429 once a client goes over its budget for the current window
func RateLimitMiddleware(clients *ClientResolver, limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clients.ClientIP(r)
			allowed, justBlocked := limiter.Allow(ip)
			if !allowed {
				if justBlocked {
					logger.FromContext(r.Context()).Warn(LogMsgRateLimited,
						"ip", ip,
						"limit", limiter.limit,
						"window", limiter.window)
				}
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AuthMiddleware guards the admin routes with the X-API-Key header
func AuthMiddleware(apiKey string, clients *ClientResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", provided != "",
					"ip", clients.ClientIP(r))
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// apiSecurityHeaders are set on every response; nothing the API returns may be cached
var apiSecurityHeaders = [][2]string{
	{HeaderContentTypeOptions, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueDeny},
	{HeaderReferrerPolicy, HeaderValueNoReferrer},
	{HeaderCacheControl, HeaderValueNoStore},
}

// SecurityHeadersMiddleware adds the API's fixed response headers
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, kv := range apiSecurityHeaders {
				h.Set(kv[0], kv[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
