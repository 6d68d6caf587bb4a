package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/sofivanhanen/bloglist/api/v1/database"
	"github.com/sofivanhanen/bloglist/api/v1/models"
)

// UserHandler holds the persistence store
type UserHandler struct {
	Store database.Store
}

// Register handles user registration requests
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.NewUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	// Shape checks run before any persistence attempt
	if err := ValidateNewUser(&req); err != nil {
		SendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		SendError(w, "Failed to process password", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Username: req.Username,
		Name:     req.Name,
	}

	err = h.Store.CreateUser(r.Context(), &user, string(hashedPassword))
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			SendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, database.ErrDatabaseError) {
			SendError(w, "Unable to process request at this time", http.StatusInternalServerError)
			return
		}
		SendError(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	SendJSON(w, user, http.StatusCreated)
}
