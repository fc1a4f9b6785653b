package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultRefreshThreshold is how close to expiry an access token may
// get before it is refreshed ahead of use.
const DefaultRefreshThreshold = 60 * time.Second

// ShouldRefresh reports whether the access token needs to be refreshed
// before it can be used. The exp claim is decoded without signature
// verification: this is a client-side freshness heuristic, the server
// remains the authority. An absent or undecodable token always needs
// a refresh.
func ShouldRefresh(token string, threshold time.Duration) bool {
	exp, ok := TokenExpiry(token)
	if !ok {
		return true
	}
	return time.Until(exp) <= threshold
}

// TokenExpiry extracts the exp claim from a JWT without verifying the
// signature. ok is false when the token is empty, malformed, or
// carries no expiry.
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
