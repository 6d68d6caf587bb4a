package models

// LoginRequest represents a user login request
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful authentication
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Identity is an authenticated caller, resolved from a bearer token.
// Possession of a valid token for a user is equivalent to being that user.
type Identity struct {
	UserID   int64
	Username string
}
