package meeting

import (
	"time"

	"terminal-terrace/tutoring-service/internal/model/meeting"
	"terminal-terrace/tutoring-service/internal/model/user"
)

// CreateMeetingRequest 创建会议记录请求（仅导师）
// 导师即当前调用者，不由客户端指定；日期取服务端创建时间
type CreateMeetingRequest struct {
	StudentID       int    `json:"student_id" binding:"required" example:"3"` // 学生
	Discussion      string `json:"discussion" example:"algebra review"`       // 讨论内容
	Recommendations string `json:"recommendations"`                           // 建议
	Referrals       string `json:"referrals"`                                 // 转介
}

// MeetingResponse 会议记录视图，参与者解析为公开投影
type MeetingResponse struct {
	ID              int          `json:"id"`
	Student         user.Profile `json:"student"`
	Tutor           user.Profile `json:"tutor"`
	Date            time.Time    `json:"date"`
	Discussion      string       `json:"discussion,omitempty"`
	Recommendations string       `json:"recommendations,omitempty"`
	Referrals       string       `json:"referrals,omitempty"`
}

func toResponse(m *meeting.Meeting) MeetingResponse {
	resp := MeetingResponse{
		ID:              m.ID,
		Date:            m.Date,
		Discussion:      m.Discussion,
		Recommendations: m.Recommendations,
		Referrals:       m.Referrals,
	}
	if m.Student != nil {
		resp.Student = m.Student.AsProfile()
	} else {
		resp.Student = user.Profile{ID: m.StudentID}
	}
	if m.Tutor != nil {
		resp.Tutor = m.Tutor.AsProfile()
	} else {
		resp.Tutor = user.Profile{ID: m.TutorID}
	}
	return resp
}

func toResponseList(list []meeting.Meeting) []MeetingResponse {
	out := make([]MeetingResponse, 0, len(list))
	for i := range list {
		out = append(out, toResponse(&list[i]))
	}
	return out
}
