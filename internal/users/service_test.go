package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aselbek/bazar-backend/pkg/config"
	"github.com/aselbek/bazar-backend/pkg/db/models"
	pkgerrors "github.com/aselbek/bazar-backend/pkg/errors"
	"github.com/aselbek/bazar-backend/pkg/security"
)

type stubUserRepo struct {
	user       *models.User
	lastFields map[string]any
	findErr    error
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.user == nil || s.user.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]any) (*models.User, error) {
	s.lastFields = fields
	if v, ok := fields["first_name"]; ok {
		s.user.FirstName = v.(string)
	}
	if v, ok := fields["password_hash"]; ok {
		s.user.PasswordHash = v.(string)
	}
	return s.user, nil
}

func newTestUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	age := 30
	return &models.User{
		ID:           uuid.New(),
		Username:     "ada",
		Email:        "ada@example.com",
		PasswordHash: hash,
		FirstName:    "Ada",
		LastName:     "L",
		Age:          &age,
		IsActive:     true,
	}
}

func TestMeReturnsProfileWithoutHash(t *testing.T) {
	user := newTestUser(t, "p@ssw0rd1")
	svc, err := NewService(ServiceParams{UserRepo: &stubUserRepo{user: user}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Me(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if dto.Username != "ada" || dto.FirstName != "Ada" {
		t.Fatalf("unexpected profile: %+v", dto)
	}
}

func TestMeUnknownUser(t *testing.T) {
	svc, _ := NewService(ServiceParams{UserRepo: &stubUserRepo{}})

	_, err := svc.Me(context.Background(), uuid.New())
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateMePartialFields(t *testing.T) {
	user := newTestUser(t, "p@ssw0rd1")
	repo := &stubUserRepo{user: user}
	svc, _ := NewService(ServiceParams{UserRepo: repo})

	first := "Grace"
	dto, err := svc.UpdateMe(context.Background(), user.ID, UpdateProfileRequest{FirstName: &first})
	if err != nil {
		t.Fatalf("update me: %v", err)
	}
	if dto.FirstName != "Grace" {
		t.Fatalf("expected updated first name, got %q", dto.FirstName)
	}
	if _, ok := repo.lastFields["email"]; ok {
		t.Fatal("email should not be touched on a partial update")
	}
}

func TestUpdateMePasswordChangeRequiresCurrent(t *testing.T) {
	user := newTestUser(t, "p@ssw0rd1")
	svc, _ := NewService(ServiceParams{UserRepo: &stubUserRepo{user: user}})

	newPassword := "n3w-secret!"
	_, err := svc.UpdateMe(context.Background(), user.ID, UpdateProfileRequest{NewPassword: &newPassword})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	wrong := "wrong"
	_, err = svc.UpdateMe(context.Background(), user.ID, UpdateProfileRequest{CurrentPassword: &wrong, NewPassword: &newPassword})
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error on wrong current password, got %v", err)
	}
}

func TestUpdateMePasswordChangeRehashes(t *testing.T) {
	user := newTestUser(t, "p@ssw0rd1")
	repo := &stubUserRepo{user: user}
	svc, _ := NewService(ServiceParams{UserRepo: repo})

	current := "p@ssw0rd1"
	newPassword := "n3w-secret!"
	if _, err := svc.UpdateMe(context.Background(), user.ID, UpdateProfileRequest{
		CurrentPassword: &current,
		NewPassword:     &newPassword,
	}); err != nil {
		t.Fatalf("update me: %v", err)
	}

	valid, err := security.VerifyPassword(newPassword, user.PasswordHash)
	if err != nil || !valid {
		t.Fatalf("expected new password to verify, valid=%v err=%v", valid, err)
	}
}
