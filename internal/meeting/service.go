package meeting

import (
	"errors"

	"gorm.io/gorm"

	"terminal-terrace/tutoring-service/internal/model/meeting"
	"terminal-terrace/tutoring-service/internal/model/user"
	"terminal-terrace/tutoring-service/internal/policy"
	"terminal-terrace/tutoring-service/internal/response"
	"terminal-terrace/tutoring-service/internal/users"
)

type Service struct {
	repo     *Repository
	userRepo *users.Repository
}

func NewService(repo *Repository, userRepo *users.Repository) *Service {
	return &Service{repo: repo, userRepo: userRepo}
}

// Create 创建会议记录（仅导师，导师即调用者本人）
// 学生必须存在且角色为 student，否则不落任何记录
func (s *Service) Create(caller policy.Caller, req CreateMeetingRequest) (*MeetingResponse, *response.BusinessError) {
	if !policy.Allow(caller, policy.MeetingCreate, policy.Target{}) {
		return nil, forbidden()
	}

	student, err := s.userRepo.FindByID(req.StudentID)
	if err != nil || student.Role != user.RoleStudent {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("无效的学生"),
		)
	}

	m := &meeting.Meeting{
		StudentID:       req.StudentID,
		TutorID:         caller.ID,
		Discussion:      req.Discussion,
		Recommendations: req.Recommendations,
		Referrals:       req.Referrals,
	}

	if err := s.repo.Create(m); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("会议记录创建失败"),
			response.WithError(err),
		)
	}

	// 重新读取，带上参与者投影返回
	created, err := s.repo.FindByID(m.ID)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("会议记录查询失败"),
			response.WithError(err),
		)
	}

	resp := toResponse(created)
	return &resp, nil
}

// ListByTutor 某导师的会议记录（管理员任意，导师仅本人）
func (s *Service) ListByTutor(caller policy.Caller, tutorID int) ([]MeetingResponse, *response.BusinessError) {
	if !policy.Allow(caller, policy.MeetingReadByTutor, policy.Target{TutorID: tutorID}) {
		return nil, forbidden()
	}

	list, err := s.repo.FindByTutor(tutorID)
	if err != nil {
		return nil, queryFailed(err)
	}
	return toResponseList(list), nil
}

// ListByStudent 某学生的会议记录
// 管理员任意；学生仅本人；导师要求是该学生当前分配的导师
func (s *Service) ListByStudent(caller policy.Caller, studentID int) ([]MeetingResponse, *response.BusinessError) {
	target := policy.Target{StudentID: studentID}

	// 导师的判定需要学生当前的导师分配关系
	if caller.Role == user.RoleTutor {
		student, err := s.userRepo.FindByID(studentID)
		if err == nil && student.Role == user.RoleStudent {
			target.AssignedTutorID = student.TutorID
		}
	}

	if !policy.Allow(caller, policy.MeetingReadByStudent, target) {
		return nil, forbidden()
	}

	list, err := s.repo.FindByStudent(studentID)
	if err != nil {
		return nil, queryFailed(err)
	}
	return toResponseList(list), nil
}

// ListAll 全部会议记录（仅管理员）
func (s *Service) ListAll(caller policy.Caller) ([]MeetingResponse, *response.BusinessError) {
	if !policy.Allow(caller, policy.MeetingReadAll, policy.Target{}) {
		return nil, forbidden()
	}

	list, err := s.repo.FindAll()
	if err != nil {
		return nil, queryFailed(err)
	}
	return toResponseList(list), nil
}

// GetByID 按 ID 查询会议记录（管理员、会议导师本人或会议学生本人）
func (s *Service) GetByID(caller policy.Caller, id int) (*MeetingResponse, *response.BusinessError) {
	m, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewBusinessError(
				response.WithErrorCode(response.NotFound),
				response.WithErrorMessage("会议记录不存在"),
			)
		}
		return nil, queryFailed(err)
	}

	if !policy.Allow(caller, policy.MeetingReadOne, policy.Target{TutorID: m.TutorID, StudentID: m.StudentID}) {
		return nil, forbidden()
	}

	resp := toResponse(m)
	return &resp, nil
}

func forbidden() *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Forbidden),
		response.WithErrorMessage("没有权限执行此操作"),
	)
}

func queryFailed(err error) *response.BusinessError {
	return response.NewBusinessError(
		response.WithErrorCode(response.Fail),
		response.WithErrorMessage("会议记录查询失败"),
		response.WithError(err),
	)
}
