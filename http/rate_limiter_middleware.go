package http

import (
	"log/slog"
	"net"
	"net/http"
)

func RateLimitMiddleware(
	limiter *RateLimiter,
	logger *slog.Logger,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !limiter.Allow(ip) {
			logger.Warn("rate limit exceeded", "method", r.Method, "path", r.URL.Path, "remoteAddr", ip)
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded", "")
			return
		}

		next.ServeHTTP(w, r)
	})
}
