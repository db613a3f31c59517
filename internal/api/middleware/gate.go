package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/opsdesk/backoffice/internal/api/metrics"
	"github.com/opsdesk/backoffice/internal/core/domain"
	"github.com/opsdesk/backoffice/internal/core/token"
)

// Context keys set by the gate for downstream handlers.
const (
	CtxUserIDKey   = "user_id"
	CtxRoleKey     = "role"
	CtxUsernameKey = "username"
)

// publicPaths are exempt from session checks. Matching is exact: "/" does
// not make every path public. Note /api/register is absent; registration
// requires the register capability, enforced below.
var publicPaths = map[string]struct{}{
	"/":          {},
	"/login":     {},
	"/register":  {},
	"/api/login": {},
	// Operational endpoints, consumed by probes and scrapers.
	"/health":       {},
	"/health/ready": {},
	"/metrics":      {},
}

const forbiddenMsg = "Not authorized: insufficient permissions"

// Gate is the single enforcement point for authentication and authorization.
// Each request makes one linear pass: public allow-list, session extraction
// and verification, then a declarative capability check derived from the
// request method. Handlers behind the gate only validate resource shape.
func Gate(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if _, ok := publicPaths[path]; ok {
				return next(c)
			}

			identity := sessionIdentity(c, codec)
			if identity == nil {
				metrics.GateDecisionsTotal.WithLabelValues("unauthenticated").Inc()
				if strings.HasPrefix(path, "/api") {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				}
				// Browser navigation without a session goes back to login.
				return c.Redirect(http.StatusFound, "/login")
			}

			perms := domain.PermissionsFor(identity.Role)
			required := domain.RequiredCapability(c.Request().Method, path)
			if !perms.Allows(required) {
				metrics.GateDecisionsTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": forbiddenMsg})
			}

			c.Set(CtxUserIDKey, identity.ID)
			c.Set(CtxRoleKey, identity.Role)
			c.Set(CtxUsernameKey, identity.Username)

			metrics.GateDecisionsTotal.WithLabelValues("allowed").Inc()
			return next(c)
		}
	}
}

// sessionIdentity extracts and verifies the session token. Both a missing
// token and a failed verification return nil; absence of a session is a
// normal state and decode failures are deliberately not distinguished.
func sessionIdentity(c echo.Context, codec *token.Codec) *token.Identity {
	raw, ok := token.FromRequest(c.Request())
	if !ok {
		return nil
	}
	identity, ok := codec.Verify(raw)
	if !ok {
		return nil
	}
	return identity
}
