package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sofivanhanen/bloglist/api/v1/database"
	"github.com/sofivanhanen/bloglist/api/v1/middleware"
	"github.com/sofivanhanen/bloglist/api/v1/models"
)

// LoginHandler authenticates credentials and issues bearer tokens
type LoginHandler struct {
	Store database.Store
	Auth  *middleware.AuthMiddleware
}

func NewLoginHandler(store database.Store, auth *middleware.AuthMiddleware) *LoginHandler {
	return &LoginHandler{
		Store: store,
		Auth:  auth,
	}
}

// Login handles credential verification requests
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		SendError(w, "username and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.Store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			// Generic message and a small delay to prevent username
			// enumeration via timing
			time.Sleep(100 * time.Millisecond)
			SendError(w, "invalid username or password", http.StatusUnauthorized)
			return
		}
		SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		time.Sleep(100 * time.Millisecond)
		SendError(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	token, err := h.Auth.GenerateToken(&user.User)
	if err != nil {
		SendError(w, "Failed to generate authentication token", http.StatusInternalServerError)
		return
	}

	SendJSON(w, models.LoginResponse{
		Token:    token,
		Username: user.Username,
		Name:     user.Name,
	}, http.StatusOK)
}
