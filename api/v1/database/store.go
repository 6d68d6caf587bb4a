package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/sofivanhanen/bloglist/api/v1/models"
)

var (
	ErrUserNotFound  = errors.New("user does not exist")
	ErrBlogNotFound  = errors.New("blog does not exist")
	ErrDatabaseError = errors.New("database error occurred")
)

// DuplicateKeyError is returned when the unique username index is violated.
// Its message format is part of the API contract and must not change.
type DuplicateKeyError struct {
	Database string
	Value    string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("E11000 duplicate key error collection: %s.users index: username_1 dup key: { username: %q }",
		e.Database, e.Value)
}

func IsDuplicateKeyError(err error) bool {
	var dup *DuplicateKeyError
	return errors.As(err, &dup)
}

// UserWithPassword pairs a user with their stored password hash. It never
// leaves the database/handler boundary.
type UserWithPassword struct {
	models.User
	PasswordHash string
}

// Store is the persistence surface the rest of the API is written against.
// Single create/delete operations are atomic; no cross-row transactions
// are required by callers.
type Store interface {
	CreateUser(ctx context.Context, user *models.User, passwordHash string) error
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*UserWithPassword, error)

	CreateBlog(ctx context.Context, blog *models.Blog) error
	GetBlog(ctx context.Context, blogID int64) (*models.Blog, error)
	GetBlogs(ctx context.Context) ([]models.Blog, error)
	DeleteBlog(ctx context.Context, blogID int64) error
}
