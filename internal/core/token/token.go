// Package token signs and verifies the stateless session tokens carried in
// the `token` cookie. Validity is decided entirely by signature and expiry;
// there is no server-side session table and no revocation list.
package token

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie that carries the session token.
const CookieName = "token"

// DefaultTTL is the fixed token lifetime.
const DefaultTTL = 24 * time.Hour

// Identity is the authenticated subject encoded in a token.
type Identity struct {
	ID       uint   `json:"id"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

type claims struct {
	UserID   uint   `json:"id"`
	Role     string `json:"role"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HS256-signed session tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a Codec. The secret must be non-empty; config enforces
// that at startup so an empty secret here is a programmer error.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting the given identity, expiring after the
// codec's TTL.
func (c *Codec) Issue(id Identity) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		UserID:   id.ID,
		Role:     id.Role,
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	return t.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the decoded identity.
// Every failure mode (bad signature, malformed payload, expired token,
// unexpected algorithm) collapses to ok=false; callers never learn why
// verification failed.
func (c *Codec) Verify(raw string) (*Identity, bool) {
	var cl claims
	t, err := jwt.ParseWithClaims(raw, &cl, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, false
	}
	return &Identity{ID: cl.UserID, Role: cl.Role, Username: cl.Username}, true
}

// FromRequest locates the session token on an inbound request. The cookie
// jar is the primary carrier; an Authorization bearer header is accepted as
// a second shape for API clients. A missing token is a normal state, not an
// error, so the function reports ok=false rather than failing.
func FromRequest(r *http.Request) (string, bool) {
	if ck, err := r.Cookie(CookieName); err == nil && ck.Value != "" {
		return ck.Value, true
	}
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", false
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
