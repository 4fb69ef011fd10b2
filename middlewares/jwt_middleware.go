package middlewares

import (
	"context"
	"net/http"
	"strings"

	"hrmproject/utils"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated user and the company (tenant) the token is
// scoped to. Every downstream query is scoped to that company's partition.
type Claims struct {
	Username  string `json:"username"`
	CompanyID string `json:"company_id"`
	jwt.RegisteredClaims
}

type contextKey string

const (
	UserContextKey   contextKey = "user"
	TenantContextKey contextKey = "tenant"
)

func JWTMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.HandleMessageResponse(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				utils.HandleMessageResponse(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
				return []byte(jwtSecret), nil
			})

			if err != nil {
				utils.HandleMessageResponse(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(*Claims)
			if !ok || !token.Valid {
				utils.HandleMessageResponse(w, "Invalid token claims", http.StatusUnauthorized)
				return
			}
			if claims.CompanyID == "" {
				utils.HandleMessageResponse(w, "Token missing company scope", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims.Username)
			ctx = context.WithValue(ctx, TenantContextKey, claims.CompanyID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUsernameFromContext(ctx context.Context) string {
	if username, ok := ctx.Value(UserContextKey).(string); ok {
		return username
	}
	return ""
}

// GetTenantFromContext returns the company ID the request token is scoped to,
// or "" when the request is unauthenticated.
func GetTenantFromContext(ctx context.Context) string {
	if tenantID, ok := ctx.Value(TenantContextKey).(string); ok {
		return tenantID
	}
	return ""
}
