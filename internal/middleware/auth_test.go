package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"terminal-terrace/tutoring-service/config"
	"terminal-terrace/tutoring-service/internal/model/user"
	"terminal-terrace/tutoring-service/internal/pkg"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuth(), func(c *gin.Context) {
		caller, ok := Caller(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": caller.ID, "role": caller.Role})
	})
	return r
}

// TestJWTAuth 认证中间件
func TestJWTAuth(t *testing.T) {
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key",
			ExpireTime: 1,
		},
	}

	r := setupRouter()

	validToken, err := pkg.GenerateAccessToken(1, "tutor1", user.RoleTutor)
	assert.NoError(t, err)

	tests := []struct {
		name       string
		setAuth    func(req *http.Request)
		wantStatus int
	}{
		{
			name:       "缺少令牌",
			setAuth:    func(req *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "Bearer 令牌",
			setAuth: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer "+validToken)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "x-auth-token 令牌",
			setAuth: func(req *http.Request) {
				req.Header.Set("x-auth-token", validToken)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "cookie 令牌",
			setAuth: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: "access_token", Value: validToken})
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Authorization 格式错误",
			setAuth: func(req *http.Request) {
				req.Header.Set("Authorization", validToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "伪造令牌",
			setAuth: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer not.a.token")
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.setAuth(req)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

// TestJWTAuth_ExpiredToken 过期令牌一律 401，与其中编码的角色无关
func TestJWTAuth_ExpiredToken(t *testing.T) {
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key",
			ExpireTime: -1, // 立即过期
		},
	}

	r := setupRouter()

	for _, role := range []user.Role{user.RoleAdmin, user.RoleTutor, user.RoleStudent} {
		expiredToken, err := pkg.GenerateAccessToken(1, "someone", role)
		assert.NoError(t, err)

		time.Sleep(5 * time.Millisecond)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+expiredToken)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "role %s", role)
	}
}
