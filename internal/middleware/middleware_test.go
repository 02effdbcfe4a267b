package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eyewear-store/internal/auth"
	"eyewear-store/internal/kvstore"
)

const profile = "0b7a3c52-8f41-4d8e-a1f2-6c9d0e1f2a3b"

func newRouter(gate *auth.Gate, root *kvstore.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Profile())
	r.GET("/whoami", func(c *gin.Context) { c.String(http.StatusOK, ProfileID(c)) })
	r.GET("/admin", AdminGuard(gate, root), func(c *gin.Context) { c.String(http.StatusOK, c.GetString(adminKey)) })
	return r
}

func get(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProfileKeepsValidID(t *testing.T) {
	r := newRouter(auth.NewGate(auth.Credentials{}, time.Hour), kvstore.New(kvstore.NewMemoryBackend()))

	w := get(r, "/whoami", map[string]string{ProfileHeader: profile})
	assert.Equal(t, profile, w.Body.String())
	assert.Empty(t, w.Header().Get("Set-Cookie"))

	w = get(r, "/whoami", map[string]string{"Cookie": ProfileCookie + "=" + profile})
	assert.Equal(t, profile, w.Body.String())
}

func TestProfileReplacesInvalidID(t *testing.T) {
	r := newRouter(auth.NewGate(auth.Credentials{}, time.Hour), kvstore.New(kvstore.NewMemoryBackend()))

	w := get(r, "/whoami", map[string]string{ProfileHeader: "../../etc"})
	assert.NotEqual(t, "../../etc", w.Body.String())
	assert.Len(t, w.Body.String(), 36)
	assert.Contains(t, w.Header().Get("Set-Cookie"), ProfileCookie+"="+w.Body.String())
}

func TestAdminGuard(t *testing.T) {
	root := kvstore.New(kvstore.NewMemoryBackend())
	gate := auth.NewGate(auth.Credentials{Username: "admin", Password: "secret"}, time.Hour, auth.WithSecret("k"))
	r := newRouter(gate, root)

	w := get(r, "/admin", map[string]string{ProfileHeader: profile})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, _, err := gate.IssueToken("admin")
	require.NoError(t, err)
	w = get(r, "/admin", map[string]string{"Authorization": "bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())

	require.NoError(t, gate.Session(root.Scope(profile)).Login(context.Background(), "admin", "secret"))
	w = get(r, "/admin", map[string]string{ProfileHeader: profile})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "session", w.Body.String())

	// la sesión de un perfil no habilita a otro
	w = get(r, "/admin", map[string]string{ProfileHeader: "1c2d3e4f-5a6b-4c7d-8e9f-0a1b2c3d4e5f"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer  abc ", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", tc.header)

		token, ok := bearerToken(c)
		assert.Equal(t, tc.ok, ok, tc.header)
		assert.Equal(t, tc.token, token, tc.header)
	}
}
