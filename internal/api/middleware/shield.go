package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/opsdesk/backoffice/internal/api/metrics"
)

// WindowLimiter counts requests in the current fixed window. Implemented by
// the redis-backed counter in infrastructure; tests substitute a stub.
type WindowLimiter interface {
	Incr(ctx context.Context, key string) (int64, error)
}

// crawlerAllow lists search-engine user agents that bypass the bot check.
var crawlerAllow = []string{"googlebot", "bingbot", "duckduckbot", "yandexbot"}

// crawlerDeny lists generic scraper fingerprints that are always rejected.
var crawlerDeny = []string{"python-requests", "scrapy", "ahrefsbot", "semrushbot", "mj12bot"}

// Shield is the abuse protection that runs before everything else: a bot
// check on the User-Agent followed by a fixed-window rate limit per client
// IP. The limiter fails open: a redis outage degrades protection, it does
// not take the API down.
func Shield(limiter WindowLimiter, keyID string, maxRequests int, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ua := strings.ToLower(c.Request().UserAgent())
			if blockedAgent(ua) {
				metrics.ShieldBlockedTotal.WithLabelValues("bot").Inc()
				log.Warn().Str("ip", c.RealIP()).Str("user_agent", ua).Msg("shield blocked bot")
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}

			if limiter != nil {
				key := keyID + ":" + c.RealIP()
				count, err := limiter.Incr(c.Request().Context(), key)
				if err != nil {
					log.Warn().Err(err).Msg("shield counter unavailable, failing open")
					return next(c)
				}
				if count > int64(maxRequests) {
					metrics.ShieldBlockedTotal.WithLabelValues("rate_limited").Inc()
					return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
				}
			}

			return next(c)
		}
	}
}

func blockedAgent(ua string) bool {
	if ua == "" {
		return true
	}
	for _, allow := range crawlerAllow {
		if strings.Contains(ua, allow) {
			return false
		}
	}
	for _, deny := range crawlerDeny {
		if strings.Contains(ua, deny) {
			return true
		}
	}
	return false
}
