// Package authz decides whether an identity may mutate a blog. Decisions
// are pure functions of (identity, resource); no state is consulted.
package authz

import (
	"errors"

	"github.com/sofivanhanen/bloglist/api/v1/models"
)

// Deny reasons. They stay distinct internally, but every one of them is
// surfaced to the client as 401 "invalid token" so a valid-token caller
// cannot probe who owns a blog.
var (
	ErrNoIdentity = errors.New("no authenticated identity")
	ErrNotOwner   = errors.New("blog belongs to a different user")
)

// CanCreate allows any resolved identity to create blogs. The owner of the
// created blog is always identity.UserID; client-supplied owner fields are
// ignored.
func CanCreate(identity *models.Identity) error {
	if identity == nil {
		return ErrNoIdentity
	}
	return nil
}

// CanDelete allows deletion only by the blog's owner.
func CanDelete(identity *models.Identity, blog *models.Blog) error {
	if identity == nil {
		return ErrNoIdentity
	}
	if identity.UserID != blog.UserID {
		return ErrNotOwner
	}
	return nil
}
