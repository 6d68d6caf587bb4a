package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sofivanhanen/bloglist/api/v1/models"
)

// PG is the PostgreSQL-backed Store
type PG struct {
	Pool   *pgxpool.Pool
	DBName string
}

func NewPG(pool *pgxpool.Pool, dbName string) *PG {
	return &PG{Pool: pool, DBName: dbName}
}

func (s *PG) CreateUser(ctx context.Context, user *models.User, passwordHash string) error {
	insertQuery := `
		INSERT INTO users (username, name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := s.Pool.QueryRow(ctx, insertQuery, user.Username, user.Name, passwordHash).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return &DuplicateKeyError{Database: s.DBName, Value: user.Username}
		}
		log.Printf("Database error during user creation: %v", err)
		return fmt.Errorf("%w: failed to create user", ErrDatabaseError)
	}

	return nil
}

func (s *PG) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	getQuery := `
		SELECT id, username, name
		FROM users
		WHERE id = $1`

	var user models.User
	err := s.Pool.QueryRow(ctx, getQuery, userID).Scan(&user.ID, &user.Username, &user.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		log.Printf("Database error retrieving user ID %d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to retrieve user", ErrDatabaseError)
	}

	return &user, nil
}

func (s *PG) GetUserByUsername(ctx context.Context, username string) (*UserWithPassword, error) {
	getQuery := `
		SELECT id, username, name, password_hash
		FROM users
		WHERE username = $1`

	var user UserWithPassword
	err := s.Pool.QueryRow(ctx, getQuery, username).Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		log.Printf("Database error retrieving user %q: %v", username, err)
		return nil, fmt.Errorf("%w: failed to retrieve user", ErrDatabaseError)
	}

	return &user, nil
}

// isUniqueViolation reports whether err is a violation of the username_1
// unique index (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
