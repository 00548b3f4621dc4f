package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/aselbek/bazar-backend/pkg/enums"
)

// TokenPayload captures the data available when minting a JWT.
type TokenPayload struct {
	UserID uuid.UUID
	JTI    string
}

// TokenClaims represents the typed JWT issued to clients. TokenType tells an
// access token apart from a refresh token carrying the same user id.
type TokenClaims struct {
	UserID    uuid.UUID       `json:"user_id"`
	TokenType enums.TokenType `json:"token_type"`
	jwt.RegisteredClaims
}
