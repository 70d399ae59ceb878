package meeting

import (
	"time"

	"terminal-terrace/tutoring-service/internal/model/user"
)

// Meeting 辅导会议记录，创建后 student/tutor 不可变更
type Meeting struct {
	ID              int        `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentID       int        `gorm:"column:student_id;not null;index" json:"student_id"`
	TutorID         int        `gorm:"column:tutor_id;not null;index" json:"tutor_id"`
	Student         *user.User `gorm:"foreignKey:StudentID" json:"-"`
	Tutor           *user.User `gorm:"foreignKey:TutorID" json:"-"`
	Date            time.Time  `gorm:"column:date;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"date"`
	Discussion      string     `gorm:"column:discussion;type:text" json:"discussion,omitempty"`
	Recommendations string     `gorm:"column:recommendations;type:text" json:"recommendations,omitempty"`
	Referrals       string     `gorm:"column:referrals;type:text" json:"referrals,omitempty"`
}

func (Meeting) TableName() string {
	return "tutoring_meetings"
}
