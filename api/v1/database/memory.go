package database

import (
	"context"
	"sort"
	"sync"

	"github.com/sofivanhanen/bloglist/api/v1/models"
)

// Memory is an in-memory Store with the same error semantics as PG,
// including duplicate-key reporting. Used by tests and local development.
type Memory struct {
	mu     sync.Mutex
	dbName string

	users      map[int64]*UserWithPassword
	blogs      map[int64]*models.Blog
	nextUserID int64
	nextBlogID int64
}

func NewMemory(dbName string) *Memory {
	return &Memory{
		dbName:     dbName,
		users:      make(map[int64]*UserWithPassword),
		blogs:      make(map[int64]*models.Blog),
		nextUserID: 1,
		nextBlogID: 1,
	}
}

func (s *Memory) CreateUser(ctx context.Context, user *models.User, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return &DuplicateKeyError{Database: s.dbName, Value: user.Username}
		}
	}

	user.ID = s.nextUserID
	s.nextUserID++
	s.users[user.ID] = &UserWithPassword{User: *user, PasswordHash: passwordHash}

	return nil
}

func (s *Memory) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	user := record.User
	return &user, nil
}

func (s *Memory) GetUserByUsername(ctx context.Context, username string) (*UserWithPassword, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.users {
		if record.Username == username {
			copied := *record
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *Memory) CreateBlog(ctx context.Context, blog *models.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blog.ID = s.nextBlogID
	s.nextBlogID++
	stored := *blog
	stored.User = nil
	s.blogs[stored.ID] = &stored

	return nil
}

func (s *Memory) GetBlog(ctx context.Context, blogID int64) (*models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.blogs[blogID]
	if !ok {
		return nil, ErrBlogNotFound
	}
	blog := *stored
	return &blog, nil
}

func (s *Memory) GetBlogs(ctx context.Context) ([]models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blogs := []models.Blog{}
	for _, stored := range s.blogs {
		blog := *stored
		if record, ok := s.users[blog.UserID]; ok {
			blog.User = &models.UserSummary{
				ID:       record.ID,
				Username: record.Username,
				Name:     record.Name,
			}
		}
		blogs = append(blogs, blog)
	}

	// insertion order, like the PG query
	sort.Slice(blogs, func(i, j int) bool { return blogs[i].ID < blogs[j].ID })

	return blogs, nil
}

func (s *Memory) DeleteBlog(ctx context.Context, blogID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogs[blogID]; !ok {
		return ErrBlogNotFound
	}
	delete(s.blogs, blogID)

	return nil
}
