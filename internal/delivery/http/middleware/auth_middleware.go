package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"nutrition-booking/pkg/jwt"
	"nutrition-booking/pkg/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	RoleKey      contextKey = "role"
	TokenIDKey   contextKey = "token_id"
)

// AccessTokenKeyPrefix is where the account service registers live access tokens
const AccessTokenKeyPrefix = "access_token:"

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

// NewAuthMiddleware builds the middleware. With a nil redisClient tokens are
// trusted until they expire.
func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		claims, status, message := m.verify(r.Context(), authHeader)
		if claims == nil {
			response.Error(w, status, message, nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}

// OptionalAuthenticate attaches the caller's identity when a token is sent and
// lets anonymous requests through. A bad token is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, status, message := m.verify(r.Context(), authHeader)
		if claims == nil {
			response.Error(w, status, message, nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}

func (m *AuthMiddleware) verify(ctx context.Context, authHeader string) (*jwt.Claims, int, string) {
	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, http.StatusUnauthorized, "Invalid authorization header format"
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, http.StatusUnauthorized, "Invalid or expired token"
	}

	if claims.TokenType != jwt.AccessToken {
		return nil, http.StatusUnauthorized, "Invalid token type"
	}

	if m.redisClient != nil {
		// Check if token exists in Redis (not revoked)
		tokenKey := fmt.Sprintf("%s%s:%s", AccessTokenKeyPrefix, claims.UserID.String(), claims.TokenID)
		exists, err := m.redisClient.Exists(ctx, tokenKey).Result()
		if err != nil {
			return nil, http.StatusInternalServerError, "Failed to validate token"
		}
		if exists == 0 {
			return nil, http.StatusUnauthorized, "Token has been revoked"
		}
	}

	return claims, 0, ""
}

// ContextWithClaims stores the caller's identity on ctx
func ContextWithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
	ctx = context.WithValue(ctx, RoleKey, claims.Role)
	ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)
	return ctx
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetRoleFromContext extracts role name from context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

// ActorFromContext returns the caller's user ID for audit entries, nil for anonymous callers
func ActorFromContext(ctx context.Context) *uuid.UUID {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}
