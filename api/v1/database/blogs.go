package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/sofivanhanen/bloglist/api/v1/models"
)

func (s *PG) CreateBlog(ctx context.Context, blog *models.Blog) error {
	insertQuery := `
		INSERT INTO blogs (title, author, url, likes, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := s.Pool.QueryRow(ctx, insertQuery,
		blog.Title,
		blog.Author,
		blog.URL,
		blog.Likes,
		blog.UserID,
	).Scan(&blog.ID)
	if err != nil {
		log.Printf("Database error during blog creation: %v", err)
		return fmt.Errorf("%w: failed to create blog", ErrDatabaseError)
	}

	return nil
}

func (s *PG) GetBlog(ctx context.Context, blogID int64) (*models.Blog, error) {
	getQuery := `
		SELECT id, title, author, url, likes, user_id
		FROM blogs
		WHERE id = $1`

	var blog models.Blog
	err := s.Pool.QueryRow(ctx, getQuery, blogID).Scan(
		&blog.ID,
		&blog.Title,
		&blog.Author,
		&blog.URL,
		&blog.Likes,
		&blog.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlogNotFound
		}
		log.Printf("Database error retrieving blog ID %d: %v", blogID, err)
		return nil, fmt.Errorf("%w: failed to retrieve blog", ErrDatabaseError)
	}

	return &blog, nil
}

// GetBlogs returns every blog in insertion order, each with its owner
// summary populated.
func (s *PG) GetBlogs(ctx context.Context) ([]models.Blog, error) {
	listQuery := `
		SELECT b.id, b.title, b.author, b.url, b.likes, b.user_id,
		       u.id, u.username, u.name
		FROM blogs b
		JOIN users u ON u.id = b.user_id
		ORDER BY b.id`

	rows, err := s.Pool.Query(ctx, listQuery)
	if err != nil {
		log.Printf("Database error listing blogs: %v", err)
		return nil, fmt.Errorf("%w: failed to list blogs", ErrDatabaseError)
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		var blog models.Blog
		var owner models.UserSummary
		err := rows.Scan(
			&blog.ID,
			&blog.Title,
			&blog.Author,
			&blog.URL,
			&blog.Likes,
			&blog.UserID,
			&owner.ID,
			&owner.Username,
			&owner.Name,
		)
		if err != nil {
			log.Printf("Database error scanning blog: %v", err)
			return nil, fmt.Errorf("%w: failed to list blogs", ErrDatabaseError)
		}
		blog.User = &owner
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		log.Printf("Database error iterating blogs: %v", err)
		return nil, fmt.Errorf("%w: failed to list blogs", ErrDatabaseError)
	}

	return blogs, nil
}

func (s *PG) DeleteBlog(ctx context.Context, blogID int64) error {
	deleteQuery := `DELETE FROM blogs WHERE id = $1`

	tag, err := s.Pool.Exec(ctx, deleteQuery, blogID)
	if err != nil {
		log.Printf("Database error deleting blog ID %d: %v", blogID, err)
		return fmt.Errorf("%w: failed to delete blog", ErrDatabaseError)
	}

	if tag.RowsAffected() == 0 {
		return ErrBlogNotFound
	}

	return nil
}
