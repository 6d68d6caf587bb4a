package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sofivanhanen/bloglist/api/v1/database"
	"github.com/sofivanhanen/bloglist/api/v1/models"
)

type contextKey string

const identityContextKey contextKey = "identity"

// bearerPrefix is matched case-sensitively: "Bearer <token>" is rejected.
const bearerPrefix = "bearer "

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// AuthMiddleware mints and verifies the bearer tokens that establish
// per-request identity
type AuthMiddleware struct {
	Store  database.Store
	Secret string
}

// Claims carried inside a signed token. Tokens bind a username and user id
// with an issuance timestamp; they carry no expiry.
type Claims struct {
	Username string `json:"username"`
	UserID   int64  `json:"id"`
	jwt.RegisteredClaims
}

func NewAuthMiddleware(store database.Store, secret string) *AuthMiddleware {
	return &AuthMiddleware{
		Store:  store,
		Secret: secret,
	}
}

// GenerateToken creates a signed token for the given user
func (am *AuthMiddleware) GenerateToken(user *models.User) (string, error) {
	if user == nil {
		return "", errors.New("user cannot be nil")
	}

	claims := &Claims{
		Username: user.Username,
		UserID:   user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(am.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ResolveIdentity turns a raw Authorization header value into an Identity.
// A header without the scheme prefix yields ErrMissingToken; every other
// failure (bad signature, malformed token, unknown user) yields
// ErrInvalidToken so callers cannot tell which check failed.
func (am *AuthMiddleware) ResolveIdentity(ctx context.Context, authHeader string) (*models.Identity, error) {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(authHeader[len(bearerPrefix):], claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(am.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	user, err := am.Store.GetUser(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return &models.Identity{UserID: user.ID, Username: user.Username}, nil
}

// RequireAuth rejects the request before any validation or persistence
// runs unless a valid identity can be resolved.
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := am.ResolveIdentity(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			if errors.Is(err, ErrMissingToken) || errors.Is(err, ErrInvalidToken) {
				am.sendError(w, "invalid token", http.StatusUnauthorized)
				return
			}
			am.sendError(w, "unable to verify identity", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity retrieves the authenticated identity from the request context
func GetIdentity(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(*models.Identity)
	return identity, ok
}

func (am *AuthMiddleware) sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
