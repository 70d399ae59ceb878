package login

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"terminal-terrace/tutoring-service/config"
	"terminal-terrace/tutoring-service/internal/pkg"
	"terminal-terrace/tutoring-service/internal/response"
	"terminal-terrace/tutoring-service/internal/users"
)

const (
	defaultMaxAttempts   = 5
	defaultAttemptWindow = time.Minute
)

type Service struct {
	userRepo *users.Repository
	attempts *AttemptRepository
}

func NewService(userRepo *users.Repository, attempts *AttemptRepository) *Service {
	return &Service{userRepo: userRepo, attempts: attempts}
}

// Login 账号密码登录，签发无状态 JWT
// 不存在的用户和密码错误返回同一条消息，避免探测账号
func (s *Service) Login(req LoginRequest) (*LoginResponse, *response.BusinessError) {
	maxAttempts, window := s.throttleConfig()

	// 1. 失败次数超限直接拒绝，不触碰凭证存储
	if s.attempts.Count(req.Username) >= int64(maxAttempts) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.TooManyRequests),
			response.WithErrorMessage("尝试过于频繁，请稍后再试"),
		)
	}

	// 2. 查询用户
	foundUser, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.attempts.Fail(req.Username, window)
			return nil, invalidCredentials()
		}
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("登录失败"),
			response.WithError(err),
		)
	}

	// 3. 校验密码
	if !pkg.CheckPassword(req.Password, foundUser.PasswordHash) {
		s.attempts.Fail(req.Username, window)
		return nil, invalidCredentials()
	}

	// 4. 签发 access token (JWT)
	token, err := pkg.GenerateAccessToken(foundUser.ID, foundUser.Username, foundUser.Role)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成访问令牌失败"),
			response.WithError(err),
		)
	}

	// 5. 清空失败计数
	s.attempts.Reset(req.Username)

	return &LoginResponse{
		Token: token,
		User: LoginUser{
			ID:       foundUser.ID,
			Username: foundUser.Username,
			Role:     foundUser.Role,
		},
	}, nil
}

func (s *Service) throttleConfig() (int, time.Duration) {
	maxAttempts := defaultMaxAttempts
	window := defaultAttemptWindow
	if config.Conf != nil {
		if config.Conf.Login.MaxAttempts > 0 {
			maxAttempts = config.Conf.Login.MaxAttempts
		}
		if config.Conf.Login.AttemptWindow > 0 {
			window = config.Conf.Login.AttemptWindow
		}
	}
	return maxAttempts, window
}

func invalidCredentials() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.InvalidParameter),
		response.WithErrorMessage("用户名或密码错误"),
	)
}
