package handlers

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/sofivanhanen/bloglist/api/v1/models"
)

const (
	minUsernameLength = 3
	minPasswordLength = 3
)

// ValidateNewUser checks the shape of a registration payload. Username
// uniqueness is not checked here; that is the store's unique index.
// The message strings mirror the ones clients already depend on.
func ValidateNewUser(req *models.NewUserRequest) error {
	if req.Username == "" {
		return errors.New("User validation failed: username: Path `username` is required.")
	}
	if utf8.RuneCountInString(req.Username) < minUsernameLength {
		return fmt.Errorf("User validation failed: username: Path `username` (`%s`) is shorter than the minimum allowed length (%d).",
			req.Username, minUsernameLength)
	}
	if len(req.Password) < minPasswordLength {
		return errors.New("password not long enough")
	}
	return nil
}

// ValidateNewBlog checks the shape of a blog creation payload. Likes may
// be absent; the caller defaults it to 0.
func ValidateNewBlog(req *models.NewBlogRequest) error {
	if req.Title == "" {
		return errors.New("Blog validation failed: title: Path `title` is required.")
	}
	if req.URL == "" {
		return errors.New("Blog validation failed: url: Path `url` is required.")
	}
	if req.Likes != nil && *req.Likes < 0 {
		return fmt.Errorf("Blog validation failed: likes: Path `likes` (%d) is less than minimum allowed value (0).", *req.Likes)
	}
	return nil
}
