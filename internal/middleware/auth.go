package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fhuszti/images-ms-go/internal/api_context"
	"github.com/fhuszti/images-ms-go/internal/handler/api"
	msuuid "github.com/fhuszti/images-ms-go/internal/uuid"
	"github.com/golang-jwt/jwt/v4"
	guuid "github.com/google/uuid"
)

// WithAuth requires a valid Bearer token and resolves its subject into the
// request context. Handlers downstream only ever see the resolved user id.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, err := resolveBearer(r, secret)
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, "unauthorized", err)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.AuthUserIDKey, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithOptionalAuth resolves a Bearer token when one is present and valid, and
// lets the request through anonymously otherwise.
func WithOptionalAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, err := resolveBearer(r, secret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.AuthUserIDKey, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveBearer(r *http.Request, secret string) (msuuid.UUID, error) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return msuuid.UUID{}, fmt.Errorf("missing bearer token")
	}
	raw := strings.TrimPrefix(auth, "Bearer ")

	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return msuuid.UUID{}, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return msuuid.UUID{}, fmt.Errorf("invalid token")
	}

	parsed, err := guuid.Parse(claims.Subject)
	if err != nil {
		return msuuid.UUID{}, fmt.Errorf("subject %q is not a valid UUID", claims.Subject)
	}
	return msuuid.UUID(parsed), nil
}
