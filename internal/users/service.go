package users

import (
	"errors"

	"gorm.io/gorm"

	"terminal-terrace/tutoring-service/internal/model/user"
	"terminal-terrace/tutoring-service/internal/pkg"
	"terminal-terrace/tutoring-service/internal/policy"
	"terminal-terrace/tutoring-service/internal/response"
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create 创建用户（仅管理员）
// 学生的 tutor_id 在写入时强校验：必须指向一个已存在的 tutor 角色用户
func (s *Service) Create(caller policy.Caller, req CreateUserRequest) (*user.User, *response.BusinessError) {
	if !policy.Allow(caller, policy.UserCreate, policy.Target{}) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("没有权限创建用户"),
		)
	}

	role := user.Role(req.Role)
	if !role.Valid() {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("角色必须是 admin、tutor 或 student"),
		)
	}

	// 用户名唯一
	if _, err := s.repo.FindByUsername(req.Username); err == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("用户名已存在"),
		)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户失败"),
			response.WithError(err),
		)
	}

	// tutor_id 只有学生允许携带
	if req.TutorID != nil && role != user.RoleStudent {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("只有学生可以分配导师"),
		)
	}

	// 校验导师引用
	var tutorID *int
	if role == user.RoleStudent && req.TutorID != nil {
		tutor, err := s.repo.FindByID(*req.TutorID)
		if err != nil || tutor.Role != user.RoleTutor {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.InvalidParameter),
				response.WithErrorMessage("无效的导师"),
			)
		}
		tutorID = req.TutorID
	}

	hash, err := pkg.HashPassword(req.Password)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("密码加密失败"),
			response.WithError(err),
		)
	}

	newUser := &user.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		TutorID:      tutorID,
	}
	if req.Name != "" {
		newUser.Name = &req.Name
	}

	if err := s.repo.Create(newUser); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("用户创建失败"),
			response.WithError(err),
		)
	}

	return newUser, nil
}

// List 列出全部用户（仅管理员）
func (s *Service) List(caller policy.Caller) ([]user.User, *response.BusinessError) {
	if !policy.Allow(caller, policy.UserListAll, policy.Target{}) {
		return nil, forbidden()
	}
	return s.list("")
}

// ListTutors 列出全部导师（仅管理员）
func (s *Service) ListTutors(caller policy.Caller) ([]user.User, *response.BusinessError) {
	if !policy.Allow(caller, policy.UserListTutors, policy.Target{}) {
		return nil, forbidden()
	}
	return s.list(user.RoleTutor)
}

// ListOwnStudents 列出当前导师的学生（仅导师本人）
func (s *Service) ListOwnStudents(caller policy.Caller) ([]user.User, *response.BusinessError) {
	if !policy.Allow(caller, policy.UserListOwnStudents, policy.Target{}) {
		return nil, forbidden()
	}

	list, err := s.repo.ListByTutor(caller.ID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询学生列表失败"),
			response.WithError(err),
		)
	}
	return list, nil
}

func (s *Service) list(roleFilter user.Role) ([]user.User, *response.BusinessError) {
	list, err := s.repo.ListAll(roleFilter)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("查询用户列表失败"),
			response.WithError(err),
		)
	}
	return list, nil
}

func forbidden() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Forbidden),
		response.WithErrorMessage("没有权限执行此操作"),
	)
}
