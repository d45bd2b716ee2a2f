package middleware

import (
	"Couture/config"
	ctxutil "Couture/pkg/context"
	"Couture/pkg/jwt"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type stubRoles map[uint64]string

func (s stubRoles) HasRole(_ context.Context, id uint64, role string) (bool, error) {
	if id == 500 {
		return false, errors.New("db down")
	}
	return s[id] == role, nil
}

func newGuard() *Guard {
	conf := config.Default()
	conf.Jwt.Secret = "middleware-secret"
	return &Guard{Config: conf, Users: stubRoles{1: "admin", 2: "customer"}}
}

func token(t *testing.T, g *Guard, id uint64, role string, expire time.Duration) string {
	t.Helper()
	tok, err := jwt.GenerateToken([]byte(g.Config.Jwt.Secret), id, role, jwt.TypeAccess, expire)
	require.NoError(t, err)
	return tok
}

func newRouter(g *Guard) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", g.Authenticate(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetUint64(ctxutil.CtxUserID), "role": c.GetString(ctxutil.CtxRole)})
	})
	r.GET("/admin", g.RequireRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/users/:id", g.Authenticate(), ctxutil.Wrap(func(c *gin.Context) error {
		id, err := ctxutil.ParamID(c, "id")
		if err != nil {
			return err
		}
		if err := g.SelfOrAdmin(c, id); err != nil {
			return err
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return nil
	}))
	return r
}

func do(r http.Handler, path, tok string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if tok != "" {
		req.Header.Set("x-auth-token", tok)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuard_Authenticate(t *testing.T) {
	g := newGuard()
	r := newRouter(g)

	w := do(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token, authorization denied", gjson.Get(w.Body.String(), "message").String())

	w = do(r, "/me", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is not valid", gjson.Get(w.Body.String(), "message").String())

	w = do(r, "/me", token(t, g, 2, "customer", -time.Minute))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 头部只接受裸令牌
	w = do(r, "/me", "Bearer "+token(t, g, 2, "customer", time.Hour))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is not valid", gjson.Get(w.Body.String(), "message").String())

	w = do(r, "/me", token(t, g, 2, "customer", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(2), gjson.Get(w.Body.String(), "id").Int())
	assert.Empty(t, w.Header().Get(HeaderNewToken))

	// 临近过期时下发新令牌
	w = do(r, "/me", token(t, g, 2, "customer", time.Minute))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderNewToken))
}

func TestGuard_RequireRole(t *testing.T) {
	g := newGuard()
	r := newRouter(g)

	tests := []struct {
		name   string
		tok    string
		status int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"customer", token(t, g, 2, "customer", time.Hour), http.StatusForbidden},
		{"role claim is not trusted", token(t, g, 2, "admin", time.Hour), http.StatusForbidden},
		{"admin", token(t, g, 1, "admin", time.Hour), http.StatusOK},
		{"lookup failure", token(t, g, 500, "admin", time.Hour), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, "/admin", tt.tok)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusForbidden {
				assert.Equal(t, "Access denied", gjson.Get(w.Body.String(), "message").String())
			}
		})
	}
}

func TestGuard_SelfOrAdmin(t *testing.T) {
	g := newGuard()
	r := newRouter(g)

	assert.Equal(t, http.StatusOK, do(r, "/users/2", token(t, g, 2, "customer", time.Hour)).Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/users/3", token(t, g, 2, "customer", time.Hour)).Code)
	assert.Equal(t, http.StatusOK, do(r, "/users/3", token(t, g, 1, "admin", time.Hour)).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, "/users/abc", token(t, g, 1, "admin", time.Hour)).Code)
}

func TestGinZap_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinZap())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := do(r, "/ping", "")
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
}
