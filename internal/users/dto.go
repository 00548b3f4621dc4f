package users

import (
	"github.com/google/uuid"

	"github.com/aselbek/bazar-backend/pkg/db/models"
	"github.com/aselbek/bazar-backend/pkg/enums"
)

const dateLayout = "02-01-2006"

// UserDTO is the transport shape that omits the password hash.
type UserDTO struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Age            *int      `json:"age,omitempty"`
	PhoneNumber    *string   `json:"phone_number,omitempty"`
	Status         string    `json:"status"`
	DateRegistered string    `json:"date_registered"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Age          *int
	PhoneNumber  *string
	Status       enums.UserStatus
}

// UpdateProfileRequest is the PATCH /me payload. Every field is optional;
// password change requires the current password.
type UpdateProfileRequest struct {
	Email           *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	Age             *int    `json:"age,omitempty" validate:"omitempty,gte=16,lte=80"`
	PhoneNumber     *string `json:"phone_number,omitempty" validate:"omitempty,e164"`
	CurrentPassword *string `json:"current_password,omitempty"`
	NewPassword     *string `json:"new_password,omitempty" validate:"omitempty,min=8"`
}

// FromModel maps the persistence model into the transport shape.
func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Age:            u.Age,
		PhoneNumber:    u.PhoneNumber,
		Status:         string(u.Status),
		DateRegistered: u.DateRegistered.Format(dateLayout),
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	status := c.Status
	if status == "" {
		status = enums.UserStatusSimple
	}
	return &models.User{
		Username:     c.Username,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Age:          c.Age,
		PhoneNumber:  c.PhoneNumber,
		Status:       status,
		IsActive:     true,
	}
}
