// Package auth implements the token codec and the request credential
// resolver. Tokens are self-contained HS256 JWTs carrying the user identity;
// nothing is stored server-side, so a token stays valid until its natural
// expiry even after logout.
package auth

import (
	"regexp"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avoronovs/partyplan/internal/common"
)

// DefaultTTL is the token lifetime used when no explicit TTL is configured
// or the configured value cannot be parsed.
const DefaultTTL = 24 * time.Hour

// Identity is the user payload embedded in every token. It is what protected
// handlers receive after verification.
type Identity struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Claims is the full claim set: the embedded identity plus the registered
// iat/exp claims.
type Claims struct {
	jwt.RegisteredClaims
	Identity
}

var ttlPattern = regexp.MustCompile(`^(\d+)([hd])$`)

// ParseTTL converts a duration expressed as an integer followed by "h"
// (hours) or "d" (days) into a time.Duration. Unparseable or empty input
// yields DefaultTTL.
func ParseTTL(s string) time.Duration {
	m := ttlPattern.FindStringSubmatch(s)
	if m == nil {
		return DefaultTTL
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultTTL
	}
	switch m[2] {
	case "h":
		return time.Duration(n) * time.Hour
	case "d":
		return time.Duration(n) * 24 * time.Hour
	}
	return DefaultTTL
}

// Mint produces a signed token embedding identity with issued-at set to now
// and expiry set to now+ttl.
func Mint(identity Identity, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Identity: identity,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks the signature and expiry of tokenString and returns the
// embedded identity. Every failure mode (malformed token, wrong signature,
// expired) is reported uniformly as common.ErrInvalidToken so callers cannot
// distinguish them.
func Verify(tokenString string, secretKey []byte) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return Identity{}, common.ErrInvalidToken
	}

	return claims.Identity, nil
}
