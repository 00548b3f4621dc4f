package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/aselbek/bazar-backend/pkg/config"
	"github.com/aselbek/bazar-backend/pkg/enums"
)

var jwtSigningMethod = jwt.SigningMethodHS256

// ErrWrongTokenType signals a structurally valid JWT presented on the wrong
// surface (refresh token on an API call, access token on /refresh).
var ErrWrongTokenType = fmt.Errorf("wrong token type")

// MintAccessToken issues a signed short-lived JWT for the provided payload.
func MintAccessToken(cfg config.JWTConfig, now time.Time, payload TokenPayload) (string, error) {
	return mint(cfg, now, payload, enums.TokenTypeAccess, cfg.AccessTokenTTL())
}

// MintRefreshToken issues the longer-lived companion token whose jti is the
// revocation handle.
func MintRefreshToken(cfg config.JWTConfig, now time.Time, payload TokenPayload) (string, error) {
	return mint(cfg, now, payload, enums.TokenTypeRefresh, cfg.RefreshTokenTTL())
}

func mint(cfg config.JWTConfig, now time.Time, payload TokenPayload, tokenType enums.TokenType, ttl time.Duration) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt secret is required")
	}
	if cfg.Issuer == "" {
		return "", fmt.Errorf("jwt issuer is required")
	}
	if ttl <= 0 {
		return "", fmt.Errorf("token ttl must be positive")
	}
	if payload.UserID == uuid.Nil {
		return "", fmt.Errorf("user id is required")
	}

	jti := strings.TrimSpace(payload.JTI)
	if jti == "" {
		jti = uuid.NewString()
	}

	claims := TokenClaims{
		UserID:    payload.UserID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        jti,
		},
	}

	token := jwt.NewWithClaims(jwtSigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing jwt: %w", err)
	}
	return signed, nil
}

// ParseAccessToken validates the JWT string and returns typed claims when it
// is a live access token.
func ParseAccessToken(cfg config.JWTConfig, tokenString string) (*TokenClaims, error) {
	return parse(cfg, tokenString, enums.TokenTypeAccess)
}

// ParseRefreshToken validates the JWT string and returns typed claims when it
// is a live refresh token.
func ParseRefreshToken(cfg config.JWTConfig, tokenString string) (*TokenClaims, error) {
	return parse(cfg, tokenString, enums.TokenTypeRefresh)
}

func parse(cfg config.JWTConfig, tokenString string, want enums.TokenType) (*TokenClaims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != jwtSigningMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{jwtSigningMethod.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != want {
		return nil, ErrWrongTokenType
	}
	if claims.ID == "" {
		return nil, fmt.Errorf("missing token id")
	}

	return claims, nil
}
