package service

import (
	"errors"
	"physics_master_backend/internal/model"
	"physics_master_backend/internal/repository"
	"physics_master_backend/internal/util"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), testConfig())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register(&RegisterRequest{
		Username: "arun",
		Email:    "arun@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated user id")
	}

	token, logged, err := svc.Login(&LoginRequest{Username: "arun", Password: "secret123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if logged.ID != user.ID {
		t.Fatalf("expected same user id on login")
	}

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("token parse failed: %v", err)
	}
	if claims.Role != model.RoleUser {
		t.Fatalf("expected role user, got=%s", claims.Role)
	}
}

func TestRegister_Duplicates(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register(&RegisterRequest{Username: "arun", Email: "arun@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Register(&RegisterRequest{Username: "arun", Email: "other@example.com", Password: "secret123"})
	if !errors.Is(err, util.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got=%v", err)
	}

	_, err = svc.Register(&RegisterRequest{Username: "kumar", Email: "arun@example.com", Password: "secret123"})
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered, got=%v", err)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register(&RegisterRequest{Username: "arun", Email: "arun@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "unknown user", username: "ghost", password: "secret123"},
		{name: "wrong password", username: "arun", password: "wrong"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(&LoginRequest{Username: tc.username, Password: tc.password})
			if !errors.Is(err, util.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got=%v", err)
			}
		})
	}
}

func TestProfile(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register(&RegisterRequest{Username: "arun", Email: "arun@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	profile, err := svc.Profile(user.ID)
	if err != nil {
		t.Fatalf("profile lookup failed: %v", err)
	}
	if profile.Username != "arun" || profile.Email != "arun@example.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	_, err = svc.Profile("missing")
	if !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
}

func TestAdminLogin_RejectsRegularUsers(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register(&RegisterRequest{Username: "arun", Email: "arun@example.com", Password: "secret123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.AdminLogin(&LoginRequest{Username: "arun", Password: "secret123"})
	if !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for non-admin, got=%v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	admin := &model.User{Username: "admin", Email: "admin@example.com", Password: string(hashed), Role: model.RoleAdmin}
	if err := svc.UserRepo.Create(admin); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	token, err := svc.AdminLogin(&LoginRequest{Username: "admin", Password: "admin123"})
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}

	claims, err := util.ParseJWT(token, svc.Cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("token parse failed: %v", err)
	}
	if claims.Role != model.RoleAdmin {
		t.Fatalf("expected admin role in claims, got=%s", claims.Role)
	}
}
