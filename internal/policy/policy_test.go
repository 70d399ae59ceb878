package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"terminal-terrace/tutoring-service/internal/model/user"
)

var (
	admin   = Caller{ID: 1, Role: user.RoleAdmin}
	tutor   = Caller{ID: 2, Role: user.RoleTutor}
	student = Caller{ID: 3, Role: user.RoleStudent}
)

func intPtr(v int) *int { return &v }

// TestAllowAdminOnlyActions 管理员专属动作
func TestAllowAdminOnlyActions(t *testing.T) {
	adminOnly := []Action{UserCreate, UserListAll, UserListTutors, MeetingReadAll}

	for _, action := range adminOnly {
		t.Run(string(action), func(t *testing.T) {
			assert.True(t, Allow(admin, action, Target{}))
			assert.False(t, Allow(tutor, action, Target{}))
			assert.False(t, Allow(student, action, Target{}))
		})
	}
}

// TestAllowTutorOnlyActions 导师专属动作，管理员也无权限
func TestAllowTutorOnlyActions(t *testing.T) {
	tutorOnly := []Action{UserListOwnStudents, MeetingCreate}

	for _, action := range tutorOnly {
		t.Run(string(action), func(t *testing.T) {
			assert.False(t, Allow(admin, action, Target{}))
			assert.True(t, Allow(tutor, action, Target{}))
			assert.False(t, Allow(student, action, Target{}))
		})
	}
}

// TestAllowMeetingReadByTutor 按导师读取
func TestAllowMeetingReadByTutor(t *testing.T) {
	tests := []struct {
		name   string
		caller Caller
		target Target
		want   bool
	}{
		{"管理员读任意导师", admin, Target{TutorID: 99}, true},
		{"导师读本人", tutor, Target{TutorID: tutor.ID}, true},
		{"导师读他人", tutor, Target{TutorID: 99}, false},
		{"学生读任意导师", student, Target{TutorID: 99}, false},
		{"学生读自己的 ID 当导师", student, Target{TutorID: student.ID}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allow(tt.caller, MeetingReadByTutor, tt.target))
		})
	}
}

// TestAllowMeetingReadByStudent 按学生读取
func TestAllowMeetingReadByStudent(t *testing.T) {
	tests := []struct {
		name   string
		caller Caller
		target Target
		want   bool
	}{
		{"管理员读任意学生", admin, Target{StudentID: 99}, true},
		{"学生读本人", student, Target{StudentID: student.ID}, true},
		{"学生读他人", student, Target{StudentID: 99}, false},
		{"导师读所分配的学生", tutor, Target{StudentID: 99, AssignedTutorID: intPtr(tutor.ID)}, true},
		{"导师读未分配给自己的学生", tutor, Target{StudentID: 99, AssignedTutorID: intPtr(42)}, false},
		{"导师读无导师的学生", tutor, Target{StudentID: 99, AssignedTutorID: nil}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allow(tt.caller, MeetingReadByStudent, tt.target))
		})
	}
}

// TestAllowMeetingReadOne 按 ID 读取单条会议
func TestAllowMeetingReadOne(t *testing.T) {
	tests := []struct {
		name   string
		caller Caller
		target Target
		want   bool
	}{
		{"管理员读任意会议", admin, Target{TutorID: 88, StudentID: 99}, true},
		{"会议导师本人", tutor, Target{TutorID: tutor.ID, StudentID: 99}, true},
		{"其他导师", tutor, Target{TutorID: 88, StudentID: 99}, false},
		{"会议学生本人", student, Target{TutorID: 88, StudentID: student.ID}, true},
		{"其他学生", student, Target{TutorID: 88, StudentID: 99}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allow(tt.caller, MeetingReadOne, tt.target))
		})
	}
}

// TestAllowDenyByDefault 未知动作、未知角色一律拒绝
func TestAllowDenyByDefault(t *testing.T) {
	assert.False(t, Allow(admin, Action("user.delete"), Target{}))
	assert.False(t, Allow(Caller{ID: 7, Role: user.Role("superuser")}, UserListAll, Target{}))
	assert.False(t, Allow(Caller{}, MeetingReadOne, Target{}))
}

// TestAllowIsPure 相同输入重复判定结果一致
func TestAllowIsPure(t *testing.T) {
	target := Target{StudentID: 99, AssignedTutorID: intPtr(tutor.ID)}
	first := Allow(tutor, MeetingReadByStudent, target)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Allow(tutor, MeetingReadByStudent, target))
	}
}
