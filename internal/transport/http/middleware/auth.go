package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/stylesam/luxuria/internal/domain"
)

type contextKey string

const RequesterKey contextKey = "requester"

// Auth validates the bearer token and stores the caller's identity and role
// in the request context. Everything below the middleware trusts the
// Requester as already verified.
func Auth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Missing or invalid token"}}`, http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")

			requester, err := ParseRequester(tokenStr, jwtSecret)
			if err != nil {
				http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Invalid or expired token"}}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), RequesterKey, requester)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ParseRequester extracts the caller identity from a signed token.
func ParseRequester(tokenStr, jwtSecret string) (domain.Requester, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return domain.Requester{}, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Requester{}, jwt.ErrTokenInvalidClaims
	}

	sub, _ := claims.GetSubject()
	userID, err := uuid.Parse(sub)
	if err != nil {
		return domain.Requester{}, jwt.ErrTokenInvalidClaims
	}

	role := domain.RoleUser
	if raw, ok := claims["role"].(string); ok && raw != "" {
		role = domain.Role(raw)
	}

	return domain.Requester{UserID: userID, Role: role}, nil
}

// GetRequester extracts the caller identity from the request context.
func GetRequester(ctx context.Context) domain.Requester {
	return ctx.Value(RequesterKey).(domain.Requester)
}
