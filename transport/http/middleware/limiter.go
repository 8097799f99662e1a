package middleware

import (
	"errors"
	"fitbook/shared"
	"fitbook/shared/cache"
	"fitbook/shared/constant"
	"fitbook/transport/http/response"
	"net"
	"net/http"
	"strconv"
	"strings"

	goCache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit counts requests per client and window in Redis so every instance shares the
// budget. While Redis fails, each instance enforces the same budget on its own.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			userAgent := a.getUA(r)
			clientIP := a.getClientIP(r)
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP, userAgent)

			var count int
			err := a.cache.Get(r.Context(), cacheKey, &count)

			if err != nil {
				if !errors.Is(err, cache.Nil) {
					a.limitLocally(w, r, next, cacheKey)

					return
				}

				count = 1
			} else {
				count++
			}

			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			err = a.cache.Save(r.Context(), cacheKey, count, windowSecs)
			if err != nil {
				a.limitLocally(w, r, next, cacheKey)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) limitLocally(w http.ResponseWriter, r *http.Request, next http.Handler, key string) {
	if !a.localLimiter(key).Allow() {
		log.Warn().Str("key", key).Msg("request limit exceeded on local limiter")
		response.WithRequestLimitExceeded(w)

		return
	}

	next.ServeHTTP(w, r)
}

func (a *appMiddleware) localLimiter(key string) *rate.Limiter {
	if cached, found := a.fallback.Get(key); found {
		if limiter, ok := cached.(*rate.Limiter); ok {
			return limiter
		}
	}

	maxReqs := max(a.config.App.RateLimiter.MaxRequests, 1)
	windowSecs := max(a.config.App.RateLimiter.WindowSeconds, 1)

	limiter := rate.NewLimiter(rate.Limit(float64(maxReqs)/float64(windowSecs)), maxReqs)

	// keep the first limiter stored for key when two requests race here
	if err := a.fallback.Add(key, limiter, goCache.DefaultExpiration); err != nil {
		if cached, found := a.fallback.Get(key); found {
			if existing, ok := cached.(*rate.Limiter); ok {
				return existing
			}
		}
	}

	return limiter
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	// X-Forwarded-For can carry a chain of proxies, the client is first
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if first, _, found := strings.Cut(xff, ","); found {
			return strings.TrimSpace(first)
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
