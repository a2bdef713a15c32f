package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Identity is the resolved caller: which team, in which league, and
// whether it holds admin rights there. Handlers trust this triple.
type Identity struct {
	Team    string
	League  string
	IsAdmin bool
}

type Claims struct {
	Team    string `json:"team_name"`
	League  string `json:"league_name"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// NewToken issues a signed HS256 bearer token for the identity.
func NewToken(secret []byte, id Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		Team:    id.Team,
		League:  id.League,
		IsAdmin: id.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Parse validates a token and returns the identity it carries.
func Parse(secret []byte, token string) (Identity, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.Team == "" || claims.League == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{Team: claims.Team, League: claims.League, IsAdmin: claims.IsAdmin}, nil
}

type ctxKey struct{}

// FromContext returns the identity the middleware resolved for a request.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

// Middleware resolves the bearer token into an Identity on the request
// context, rejecting requests without a valid one.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			id, err := Parse(secret, token)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
