package service

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestAuthService_Login(t *testing.T) {
	jwtSvc := newTestJWT("secret")
	svc := NewAuthService(zap.NewNop(), jwtSvc, "analyst-key", "admin-key")

	tests := []struct {
		name     string
		key      string
		wantRole string
		wantErr  error
	}{
		{"analyst", "analyst-key", RoleAnalyst, nil},
		{"admin", " admin-key ", RoleAdmin, nil},
		{"wrong", "nope", "", ErrInvalidAPIKey},
		{"empty", "", "", ErrInvalidAPIKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := svc.Login(tt.key)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("login: %v", err)
			}
			claims, err := jwtSvc.ParseAccessToken(pair.AccessToken)
			if err != nil || claims.Role != tt.wantRole {
				t.Fatalf("expected role %q, got %+v (%v)", tt.wantRole, claims, err)
			}
		})
	}
}

func TestAuthService_NoKeysConfigured(t *testing.T) {
	svc := NewAuthService(nil, newTestJWT("secret"), "", "  ")
	if _, err := svc.Login(""); !errors.Is(err, ErrInvalidAPIKey) {
		t.Fatalf("expected ErrInvalidAPIKey, got %v", err)
	}
	if _, err := svc.Login("anything"); !errors.Is(err, ErrInvalidAPIKey) {
		t.Fatalf("expected ErrInvalidAPIKey, got %v", err)
	}
	var nilSvc *AuthService
	if _, err := nilSvc.Login("x"); !errors.Is(err, ErrServiceNotConfigured) {
		t.Fatalf("expected ErrServiceNotConfigured, got %v", err)
	}
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	svc := NewAuthService(zap.NewNop(), newTestJWT("secret"), "analyst-key", "")
	pair, err := svc.Login("analyst-key")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	next, err := svc.Refresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if err := svc.Logout(next.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Refresh(next.RefreshToken); err == nil {
		t.Fatalf("expected revoked refresh token to fail")
	}
}
