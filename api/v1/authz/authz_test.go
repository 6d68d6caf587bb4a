package authz

import (
	"errors"
	"testing"

	"github.com/sofivanhanen/bloglist/api/v1/models"
)

func TestCanCreate(t *testing.T) {
	if err := CanCreate(&models.Identity{UserID: 1, Username: "violet"}); err != nil {
		t.Errorf("CanCreate() with identity = %v, want nil", err)
	}

	if err := CanCreate(nil); !errors.Is(err, ErrNoIdentity) {
		t.Errorf("CanCreate(nil) = %v, want ErrNoIdentity", err)
	}
}

func TestCanDelete(t *testing.T) {
	blog := &models.Blog{ID: 7, Title: "React patterns", UserID: 1}

	tests := []struct {
		name     string
		identity *models.Identity
		want     error
	}{
		{"owner may delete", &models.Identity{UserID: 1, Username: "violet"}, nil},
		{"non-owner is denied", &models.Identity{UserID: 2, Username: "linus"}, ErrNotOwner},
		{"no identity is denied", nil, ErrNoIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanDelete(tt.identity, blog)
			if !errors.Is(err, tt.want) {
				t.Errorf("CanDelete() = %v, want %v", err, tt.want)
			}
		})
	}
}
