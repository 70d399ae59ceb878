package login

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"terminal-terrace/tutoring-service/config"
	"terminal-terrace/tutoring-service/internal/database"
	"terminal-terrace/tutoring-service/internal/model/user"
	"terminal-terrace/tutoring-service/internal/pkg"
	"terminal-terrace/tutoring-service/internal/response"
	"terminal-terrace/tutoring-service/internal/testutils"
	"terminal-terrace/tutoring-service/internal/users"
)

func setupConfig() {
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key-for-testing-only",
			ExpireTime: 1,
		},
		Login: config.LoginConfig{
			MaxAttempts:   3,
			AttemptWindow: time.Minute,
		},
	}
}

// TestServiceLogin 账号密码登录
func TestServiceLogin(t *testing.T) {
	setupConfig()
	db := testutils.SetupTestDB(t)
	service := NewService(users.NewRepository(db), NewAttemptRepository(database.RedisDB))

	testUser := testutils.CreateTestUser(db,
		testutils.WithRole(user.RoleTutor), testutils.WithPassword("password123"))

	tests := []struct {
		name        string
		req         LoginRequest
		expectError bool
		errorCode   response.ResponseCode
		checkResult func(t *testing.T, resp *LoginResponse)
	}{
		{
			name: "successful login",
			req:  LoginRequest{Username: testUser.Username, Password: "password123"},
			checkResult: func(t *testing.T, resp *LoginResponse) {
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, testUser.ID, resp.User.ID)
				assert.Equal(t, testUser.Username, resp.User.Username)
				assert.Equal(t, user.RoleTutor, resp.User.Role)

				// 令牌可验证，角色声明一致
				claims, err := pkg.ParseAccessToken(resp.Token)
				assert.NoError(t, err)
				assert.Equal(t, testUser.ID, claims.UserID)
				assert.Equal(t, user.RoleTutor, claims.Role)
			},
		},
		{
			name:        "invalid password",
			req:         LoginRequest{Username: testUser.Username, Password: "wrongpassword"},
			expectError: true,
			errorCode:   response.InvalidParameter,
		},
		{
			name:        "user not found",
			req:         LoginRequest{Username: "nonexistent", Password: "password123"},
			expectError: true,
			errorCode:   response.InvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, bizErr := service.Login(tt.req)

			if tt.expectError {
				assert.NotNil(t, bizErr)
				assert.Equal(t, tt.errorCode, bizErr.Code)
				// 不泄露具体哪一项错误
				assert.Equal(t, "用户名或密码错误", bizErr.Msg)
			} else {
				assert.Nil(t, bizErr)
				if tt.checkResult != nil {
					tt.checkResult(t, resp)
				}
			}
		})
	}
}

// TestServiceLogin_Throttle 连续失败后登录被限流
func TestServiceLogin_Throttle(t *testing.T) {
	setupConfig()
	db := testutils.SetupTestDB(t)
	if database.RedisDB == nil {
		t.Skip("redis not available, throttle degrades open")
	}

	service := NewService(users.NewRepository(db), NewAttemptRepository(database.RedisDB))
	testUser := testutils.CreateTestUser(db,
		testutils.WithRole(user.RoleStudent), testutils.WithPassword("password123"))

	// 连续失败到阈值
	for i := 0; i < config.Conf.Login.MaxAttempts; i++ {
		_, bizErr := service.Login(LoginRequest{Username: testUser.Username, Password: "wrong"})
		assert.NotNil(t, bizErr)
		assert.Equal(t, response.InvalidParameter, bizErr.Code)
	}

	// 即使密码正确也被拒绝
	_, bizErr := service.Login(LoginRequest{Username: testUser.Username, Password: "password123"})
	assert.NotNil(t, bizErr)
	assert.Equal(t, response.TooManyRequests, bizErr.Code)
}

// TestServiceLogin_ThrottleResetOnSuccess 成功登录清空失败计数
func TestServiceLogin_ThrottleResetOnSuccess(t *testing.T) {
	setupConfig()
	db := testutils.SetupTestDB(t)
	if database.RedisDB == nil {
		t.Skip("redis not available, throttle degrades open")
	}

	service := NewService(users.NewRepository(db), NewAttemptRepository(database.RedisDB))
	testUser := testutils.CreateTestUser(db,
		testutils.WithRole(user.RoleStudent), testutils.WithPassword("password123"))

	// 阈值以内的失败
	for i := 0; i < config.Conf.Login.MaxAttempts-1; i++ {
		_, bizErr := service.Login(LoginRequest{Username: testUser.Username, Password: "wrong"})
		assert.NotNil(t, bizErr)
	}

	// 成功登录
	_, bizErr := service.Login(LoginRequest{Username: testUser.Username, Password: "password123"})
	assert.Nil(t, bizErr)

	// 计数已清空，再次失败从零开始
	attempts := NewAttemptRepository(database.RedisDB)
	assert.Equal(t, int64(0), attempts.Count(testUser.Username))
}
