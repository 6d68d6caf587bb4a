package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/sofivanhanen/bloglist/api/v1/database"
	"github.com/sofivanhanen/bloglist/api/v1/models"
)

func newTestAuth(t *testing.T, secret string) (*AuthMiddleware, *models.User) {
	t.Helper()

	store := database.NewMemory("test")
	user := &models.User{Username: "violet", Name: "Violet Gray"}
	if err := store.CreateUser(context.Background(), user, "irrelevant-hash"); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return NewAuthMiddleware(store, secret), user
}

func TestResolveIdentityRoundTrip(t *testing.T) {
	am, user := newTestAuth(t, "sekret")

	token, err := am.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	identity, err := am.ResolveIdentity(context.Background(), "bearer "+token)
	if err != nil {
		t.Fatalf("ResolveIdentity() failed: %v", err)
	}
	if identity.UserID != user.ID || identity.Username != "violet" {
		t.Errorf("ResolveIdentity() = %+v, want user %d/violet", identity, user.ID)
	}
}

func TestResolveIdentityRejectsScheme(t *testing.T) {
	am, user := newTestAuth(t, "sekret")

	token, err := am.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	tests := []struct {
		name   string
		header string
	}{
		{"empty header", ""},
		{"capitalized scheme", "Bearer " + token},
		{"no scheme", token},
		{"wrong scheme", "basic " + token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := am.ResolveIdentity(context.Background(), tt.header)
			if !errors.Is(err, ErrMissingToken) {
				t.Errorf("ResolveIdentity(%q) = %v, want ErrMissingToken", tt.header, err)
			}
		})
	}
}

func TestResolveIdentityRejectsForeignSignature(t *testing.T) {
	am, user := newTestAuth(t, "sekret")

	other := &AuthMiddleware{Store: am.Store, Secret: "different-secret"}
	token, err := other.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	_, err = am.ResolveIdentity(context.Background(), "bearer "+token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ResolveIdentity() = %v, want ErrInvalidToken", err)
	}
}

func TestResolveIdentityRejectsMalformedToken(t *testing.T) {
	am, _ := newTestAuth(t, "sekret")

	_, err := am.ResolveIdentity(context.Background(), "bearer not.a.jwt")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ResolveIdentity() = %v, want ErrInvalidToken", err)
	}
}

func TestResolveIdentityRejectsUnknownUser(t *testing.T) {
	am, _ := newTestAuth(t, "sekret")

	// Token is well formed and correctly signed, but the embedded user
	// does not exist. Must be indistinguishable from a bad signature.
	ghost := &models.User{ID: 9999, Username: "ghost"}
	token, err := am.GenerateToken(ghost)
	if err != nil {
		t.Fatalf("GenerateToken() failed: %v", err)
	}

	_, err = am.ResolveIdentity(context.Background(), "bearer "+token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ResolveIdentity() = %v, want ErrInvalidToken", err)
	}
}
