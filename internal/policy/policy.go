// Package policy 集中实现角色权限矩阵。
// 所有授权决策都收敛到 Allow 这一个纯函数：输入只有调用者身份、
// 动作和目标资源的归属关系，不查库、不依赖请求顺序，可独立单测。
package policy

import (
	"terminal-terrace/tutoring-service/internal/model/user"
)

// Action 受控动作（闭合枚举）
type Action string

const (
	UserCreate           Action = "user.create"
	UserListAll          Action = "user.list_all"
	UserListTutors       Action = "user.list_tutors"
	UserListOwnStudents  Action = "user.list_own_students"
	MeetingCreate        Action = "meeting.create"
	MeetingReadByTutor   Action = "meeting.read_by_tutor"
	MeetingReadByStudent Action = "meeting.read_by_student"
	MeetingReadAll       Action = "meeting.read_all"
	MeetingReadOne       Action = "meeting.read_one"
)

// Caller 已认证的调用者
type Caller struct {
	ID   int
	Role user.Role
}

// Target 目标资源的归属关系。不同动作只使用其中相关的字段：
//   - MeetingReadByTutor / MeetingReadOne: TutorID
//   - MeetingReadByStudent / MeetingReadOne: StudentID
//   - MeetingReadByStudent: AssignedTutorID（该学生当前分配的导师）
type Target struct {
	TutorID         int
	StudentID       int
	AssignedTutorID *int
}

// Allow 权限矩阵：
//
//	动作                    admin      tutor              student
//	UserCreate              允许       拒绝               拒绝
//	UserListAll             允许       拒绝               拒绝
//	UserListTutors          允许       拒绝               拒绝
//	UserListOwnStudents     拒绝       允许(仅本人)        拒绝
//	MeetingCreate           拒绝       允许(本人为导师)    拒绝
//	MeetingReadByTutor      允许       仅本人             拒绝
//	MeetingReadByStudent    允许       仅所分配的学生      仅本人
//	MeetingReadAll          允许       拒绝               拒绝
//	MeetingReadOne          允许       仅会议导师本人      仅会议学生本人
//
// 未出现在矩阵中的 (角色, 动作) 组合一律拒绝。
func Allow(caller Caller, action Action, target Target) bool {
	switch action {
	case UserCreate, UserListAll, UserListTutors, MeetingReadAll:
		return caller.Role == user.RoleAdmin

	case UserListOwnStudents:
		// 自身范围：处理器以 caller.ID 作为导师查询，不接收外部导师参数
		return caller.Role == user.RoleTutor

	case MeetingCreate:
		// 导师只能以自己的身份创建；学生存在性/角色校验由存储层完成
		return caller.Role == user.RoleTutor

	case MeetingReadByTutor:
		if caller.Role == user.RoleAdmin {
			return true
		}
		return caller.Role == user.RoleTutor && target.TutorID == caller.ID

	case MeetingReadByStudent:
		switch caller.Role {
		case user.RoleAdmin:
			return true
		case user.RoleStudent:
			return target.StudentID == caller.ID
		case user.RoleTutor:
			return target.AssignedTutorID != nil && *target.AssignedTutorID == caller.ID
		}
		return false

	case MeetingReadOne:
		switch caller.Role {
		case user.RoleAdmin:
			return true
		case user.RoleTutor:
			return target.TutorID == caller.ID
		case user.RoleStudent:
			return target.StudentID == caller.ID
		}
		return false
	}

	return false
}
