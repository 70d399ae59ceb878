package meeting

import (
	"gorm.io/gorm"

	"terminal-terrace/tutoring-service/internal/model/meeting"
)

// Repository 会议记录数据访问层
// 所有读操作按日期倒序返回，并预加载参与者用于投影
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(m *meeting.Meeting) error {
	return r.db.Create(m).Error
}

func (r *Repository) FindByID(id int) (*meeting.Meeting, error) {
	var m meeting.Meeting
	err := r.withParticipants().First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) FindByTutor(tutorID int) ([]meeting.Meeting, error) {
	var list []meeting.Meeting
	err := r.withParticipants().
		Where("tutor_id = ?", tutorID).
		Order("date DESC").
		Find(&list).Error
	return list, err
}

func (r *Repository) FindByStudent(studentID int) ([]meeting.Meeting, error) {
	var list []meeting.Meeting
	err := r.withParticipants().
		Where("student_id = ?", studentID).
		Order("date DESC").
		Find(&list).Error
	return list, err
}

func (r *Repository) FindAll() ([]meeting.Meeting, error) {
	var list []meeting.Meeting
	err := r.withParticipants().
		Order("date DESC").
		Find(&list).Error
	return list, err
}

func (r *Repository) withParticipants() *gorm.DB {
	return r.db.Preload("Student").Preload("Tutor")
}
