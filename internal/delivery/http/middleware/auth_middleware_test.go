package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nutrition-booking/config"
	"nutrition-booking/internal/domain/entity"
	"nutrition-booking/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute})
}

// echoIdentity writes back what the middleware put on the context
func echoIdentity(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := GetUserIDFromContext(r.Context()); ok {
			w.Header().Set("X-User-ID", userID.String())
		}
		if role, ok := GetRoleFromContext(r.Context()); ok {
			w.Header().Set("X-Role", role)
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func serve(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	h.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_WithoutRedis(t *testing.T) {
	jwtService := newJWTService()
	m := NewAuthMiddleware(jwtService, nil)
	h := m.Authenticate(echoIdentity(t))

	userID := uuid.New()
	token, _, err := jwtService.GenerateAccessToken(userID, "ana@example.com", entity.RoleClient)
	require.NoError(t, err)

	w := serve(h, "Bearer "+token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, userID.String(), w.Header().Get("X-User-ID"))
	assert.Equal(t, entity.RoleClient, w.Header().Get("X-Role"))

	assert.Equal(t, http.StatusUnauthorized, serve(h, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h, token).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "Bearer not.a.token").Code)
}

func TestAuthenticate_ChecksRedisRegistration(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	jwtService := newJWTService()
	h := NewAuthMiddleware(jwtService, client).Authenticate(echoIdentity(t))

	userID := uuid.New()
	token, tokenID, err := jwtService.GenerateAccessToken(userID, "ana@example.com", entity.RoleClient)
	require.NoError(t, err)

	// not registered yet
	assert.Equal(t, http.StatusUnauthorized, serve(h, "Bearer "+token).Code)

	key := AccessTokenKeyPrefix + userID.String() + ":" + tokenID
	require.NoError(t, mr.Set(key, "1"))
	assert.Equal(t, http.StatusNoContent, serve(h, "Bearer "+token).Code)

	// revoked
	mr.Del(key)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "Bearer "+token).Code)

	mr.Close()
	assert.Equal(t, http.StatusInternalServerError, serve(h, "Bearer "+token).Code)
}

func TestOptionalAuthenticate(t *testing.T) {
	jwtService := newJWTService()
	h := NewAuthMiddleware(jwtService, nil).OptionalAuthenticate(echoIdentity(t))

	w := serve(h, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("X-User-ID"))

	userID := uuid.New()
	token, _, err := jwtService.GenerateAccessToken(userID, "ana@example.com", entity.RoleClient)
	require.NoError(t, err)
	w = serve(h, "Bearer "+token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, userID.String(), w.Header().Get("X-User-ID"))

	assert.Equal(t, http.StatusUnauthorized, serve(h, "Bearer garbage").Code)
}

func TestRequireRole(t *testing.T) {
	jwtService := newJWTService()
	h := NewAuthMiddleware(jwtService, nil).Authenticate(RequireAdmin(echoIdentity(t)))

	adminToken, _, err := jwtService.GenerateAccessToken(uuid.New(), "admin@example.com", entity.RoleAdmin)
	require.NoError(t, err)
	clientToken, _, err := jwtService.GenerateAccessToken(uuid.New(), "ana@example.com", entity.RoleClient)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, serve(h, "Bearer "+adminToken).Code)
	assert.Equal(t, http.StatusForbidden, serve(h, "Bearer "+clientToken).Code)

	// no claims on the context at all
	assert.Equal(t, http.StatusUnauthorized, serve(RequireAdmin(echoIdentity(t)), "").Code)
}

func TestActorFromContext(t *testing.T) {
	assert.Nil(t, ActorFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))

	userID := uuid.New()
	ctx := ContextWithClaims(httptest.NewRequest(http.MethodGet, "/", nil).Context(), &jwt.Claims{UserID: userID})
	actor := ActorFromContext(ctx)
	require.NotNil(t, actor)
	assert.Equal(t, userID, *actor)
}
