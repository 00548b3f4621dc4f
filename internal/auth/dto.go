package auth

import (
	"github.com/aselbek/bazar-backend/internal/users"
)

// RegisterRequest captures the payload for creating a new account.
type RegisterRequest struct {
	Username    string  `json:"username" validate:"required,min=3,max=32"`
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	Age         *int    `json:"age,omitempty" validate:"omitempty,gte=16,lte=80"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,e164"`
}

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the token pair and user produced by a successful login.
type LoginResponse struct {
	AccessToken  string         `json:"access"`
	RefreshToken string         `json:"refresh"`
	User         *users.UserDTO `json:"user"`
}

// RefreshRequest carries the refresh token being exchanged or revoked.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// RefreshResponse returns the replacement access token.
type RefreshResponse struct {
	AccessToken string `json:"access"`
}
