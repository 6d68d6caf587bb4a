package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sofivanhanen/bloglist/api/v1/authz"
	"github.com/sofivanhanen/bloglist/api/v1/database"
	"github.com/sofivanhanen/bloglist/api/v1/middleware"
	"github.com/sofivanhanen/bloglist/api/v1/models"
	"github.com/sofivanhanen/bloglist/api/v1/stats"
)

// BlogHandler holds the persistence store
type BlogHandler struct {
	Store database.Store
}

// StatsResponse aggregates the whole blog collection
type StatsResponse struct {
	TotalLikes int                `json:"totalLikes"`
	Favorite   *models.Blog       `json:"favorite"`
	MostBlogs  *stats.AuthorBlogs `json:"mostBlogs"`
	MostLikes  *stats.AuthorLikes `json:"mostLikes"`
}

// ListBlogs handles blog listing requests. No identity is required.
func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.Store.GetBlogs(r.Context())
	if err != nil {
		SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		return
	}

	SendJSON(w, blogs, http.StatusOK)
}

// Stats handles aggregate report requests over the full collection
func (h *BlogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.Store.GetBlogs(r.Context())
	if err != nil {
		SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		return
	}

	SendJSON(w, StatsResponse{
		TotalLikes: stats.TotalLikes(blogs),
		Favorite:   stats.FavoriteBlog(blogs),
		MostBlogs:  stats.MostBlogs(blogs),
		MostLikes:  stats.MostLikes(blogs),
	}, http.StatusOK)
}

// CreateBlog handles blog creation requests. The owner is always the
// authenticated identity, regardless of anything in the payload.
func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())
	if err := authz.CanCreate(identity); err != nil {
		SendError(w, "invalid token", http.StatusUnauthorized)
		return
	}

	var req models.NewBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	if err := ValidateNewBlog(&req); err != nil {
		SendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	likes := 0
	if req.Likes != nil {
		likes = *req.Likes
	}

	blog := models.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  likes,
		UserID: identity.UserID,
	}

	if err := h.Store.CreateBlog(r.Context(), &blog); err != nil {
		SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		return
	}

	SendJSON(w, blog, http.StatusCreated)
}

// DeleteBlog handles blog deletion requests. Only the owner may delete;
// a non-owner gets the same 401 as a bad token so ownership cannot be
// probed with valid credentials.
func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.GetIdentity(r.Context())
	if identity == nil {
		SendError(w, "invalid token", http.StatusUnauthorized)
		return
	}

	blogID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		SendError(w, "blog not found", http.StatusNotFound)
		return
	}

	blog, err := h.Store.GetBlog(r.Context(), blogID)
	if err != nil {
		if errors.Is(err, database.ErrBlogNotFound) {
			SendError(w, "blog not found", http.StatusNotFound)
			return
		}
		SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		return
	}

	if err := authz.CanDelete(identity, blog); err != nil {
		SendError(w, "invalid token", http.StatusUnauthorized)
		return
	}

	if err := h.Store.DeleteBlog(r.Context(), blogID); err != nil {
		if errors.Is(err, database.ErrBlogNotFound) {
			SendError(w, "blog not found", http.StatusNotFound)
			return
		}
		SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
