package service

import (
	"errors"
	"testing"
	"time"

	"github.com/mtendere/backoffice/internal/core/domain"
)

func TestTokenService_IssueVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	user := &domain.User{ID: "42", Email: "alice@example.com", Role: domain.RoleAdmin}

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "42" {
		t.Fatalf("expected user id 42, got %q", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role %q", claims.Role)
	}
	if !claims.ExpiresAt.After(claims.IssuedAt) {
		t.Fatalf("expiry %v not after issuance %v", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", 0)
	token, err := svc.Issue(&domain.User{ID: "1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt)
	if ttl != 24*time.Hour {
		t.Fatalf("expected 24h ttl, got %v", ttl)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := &TokenService{secret: []byte("secret"), ttl: -time.Hour}
	token, err := svc.Issue(&domain.User{ID: "1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = NewTokenService("secret", time.Hour).Verify(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret", time.Hour).Issue(&domain.User{ID: "1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = NewTokenService("other", time.Hour).Verify(token)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Garbage(t *testing.T) {
	_, err := NewTokenService("secret", time.Hour).Verify("not-a-token")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
