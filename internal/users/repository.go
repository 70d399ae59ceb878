package users

import (
	"gorm.io/gorm"

	"terminal-terrace/tutoring-service/internal/model/user"
)

// Repository 用户数据访问层
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *Repository) FindByUsername(username string) (*user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) FindByID(id int) (*user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListAll 列出用户，roleFilter 为空时不过滤
// 密码散列由模型的 json:"-" 保证不出现在任何投影中
func (r *Repository) ListAll(roleFilter user.Role) ([]user.User, error) {
	var list []user.User
	q := r.db.Order("id")
	if roleFilter != "" {
		q = q.Where("role = ?", roleFilter)
	}
	err := q.Find(&list).Error
	return list, err
}

// ListByTutor 列出分配给某导师的所有学生
func (r *Repository) ListByTutor(tutorID int) ([]user.User, error) {
	var list []user.User
	err := r.db.Where("role = ? AND tutor_id = ?", user.RoleStudent, tutorID).
		Order("id").
		Find(&list).Error
	return list, err
}
