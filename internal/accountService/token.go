package account

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shelfshare/internal/models"
)

// AuthTokens is the token half of the auth envelope returned by register and
// login. The simulator never verifies these; handlers authorize by session
// presence. They are still well-formed JWTs so the front end can decode them.
type AuthTokens struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int    `json:"expiresIn"`
}

// TokenIssuer signs HS256 access and refresh tokens with a fixed dev secret
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer instance
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue returns a fresh token pair for the given user
func (ti *TokenIssuer) Issue(user models.User) (AuthTokens, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.UserID,
		"name": user.Name,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(ti.ttl).Unix(),
	})
	accessStr, err := access.SignedString(ti.secret)
	if err != nil {
		return AuthTokens{}, fmt.Errorf("sign access token for user %s: %w", user.UserID, err)
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.UserID,
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	})
	refreshStr, err := refresh.SignedString(ti.secret)
	if err != nil {
		return AuthTokens{}, fmt.Errorf("sign refresh token for user %s: %w", user.UserID, err)
	}

	return AuthTokens{
		Token:        accessStr,
		RefreshToken: refreshStr,
		TokenType:    "Bearer",
		ExpiresIn:    int(ti.ttl.Seconds()),
	}, nil
}
