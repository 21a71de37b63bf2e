package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshaygopinath16/Doddamagge/internal/helpers"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	authed := r.Group("/me")
	authed.Use(JWTAuthMiddleware())
	authed.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetString("user_id"),
			"username": c.GetString("username"),
			"role":     c.GetString("role"),
		})
	})

	admin := r.Group("/admin")
	admin.Use(JWTAuthMiddleware(), AdminRequired())
	admin.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware_MissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter()

	w := doRequest(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter()

	w := doRequest(r, "/me", "garbage.token.here")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter()

	token, err := helpers.GenerateToken("u1", "alice", "", "user", -time.Minute)
	require.NoError(t, err)

	w := doRequest(r, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_PopulatesIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter()

	token, err := helpers.GenerateToken("u1", "alice", "", "user", time.Hour)
	require.NoError(t, err)

	w := doRequest(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestAdminRequired_RejectsNonAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter()

	token, err := helpers.GenerateToken("u1", "alice", "", "user", time.Hour)
	require.NoError(t, err)

	w := doRequest(r, "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code, "valid token with wrong role is 403, not 401")
}

func TestAdminRequired_AllowsAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := newTestRouter()

	token, err := helpers.GenerateToken("u2", "root", "", "admin", time.Hour)
	require.NoError(t, err)

	w := doRequest(r, "/admin", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
