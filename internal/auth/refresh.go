package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// RefreshToken is a long-lived opaque credential used to mint new access
// tokens. Raw goes to the client; stores keep only the SHA-256 hash.
type RefreshToken struct {
	Raw string
	Exp time.Time
}

// NewRefreshToken returns a cryptographically random refresh token valid for
// ttlDays.
func NewRefreshToken(ttlDays int) (RefreshToken, error) {
	if ttlDays <= 0 {
		ttlDays = 7
	}
	raw, err := randomHex(32)
	if err != nil {
		return RefreshToken{}, err
	}
	return RefreshToken{
		Raw: raw,
		Exp: time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour),
	}, nil
}

// HashRefreshToken returns the hex SHA-256 digest of a raw refresh token.
func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
