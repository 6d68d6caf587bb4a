package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/sofivanhanen/bloglist/api/v1/database"
	"github.com/sofivanhanen/bloglist/api/v1/middleware"
	"github.com/sofivanhanen/bloglist/api/v1/models"
)

// newTestAPI mirrors the main.go routing (minus throttling), backed by
// an in-memory store.
func newTestAPI(t *testing.T) (*chi.Mux, *database.Memory, *middleware.AuthMiddleware) {
	t.Helper()

	store := database.NewMemory("test")
	auth := middleware.NewAuthMiddleware(store, "test-secret")

	userHandler := &UserHandler{Store: store}
	blogHandler := &BlogHandler{Store: store}
	loginHandler := NewLoginHandler(store, auth)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/users", userHandler.Register)
		r.Post("/login", loginHandler.Login)
		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", blogHandler.ListBlogs)
			r.Get("/stats", blogHandler.Stats)
			r.With(auth.RequireAuth).Post("/", blogHandler.CreateBlog)
			r.With(auth.RequireAuth).Delete("/{id}", blogHandler.DeleteBlog)
		})
	})

	return r, store, auth
}

// seedUser stores a user directly and returns it with a valid token
func seedUser(t *testing.T, store *database.Memory, auth *middleware.AuthMiddleware, username, name, password string) (*models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{Username: username, Name: name}
	if err := store.CreateUser(context.Background(), user, string(hash)); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return user, token
}

// seedBlog stores a blog owned by the given user
func seedBlog(t *testing.T, store *database.Memory, owner *models.User, title, author, url string, likes int) *models.Blog {
	t.Helper()

	blog := &models.Blog{Title: title, Author: author, URL: url, Likes: likes, UserID: owner.ID}
	if err := store.CreateBlog(context.Background(), blog); err != nil {
		t.Fatalf("failed to seed blog: %v", err)
	}

	return blog
}

// doJSON performs a request with an optional JSON body and bearer token
func doJSON(t *testing.T, router http.Handler, method, target, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeError pulls the .error string out of a JSON error body
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body %q: %v", rec.Body.String(), err)
	}
	return body.Error
}
