package user

import "time"

// Role 用户角色（闭合枚举）
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTutor   Role = "tutor"
	RoleStudent Role = "student"
)

// Valid 判断角色是否为合法枚举值
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTutor, RoleStudent:
		return true
	}
	return false
}

type User struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(50);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"column:role;type:varchar(20);not null" json:"role"`
	Name         *string   `gorm:"column:name;type:varchar(100)" json:"name,omitempty"`
	TutorID      *int      `gorm:"column:tutor_id" json:"tutor_id,omitempty"`
	Tutor        *User     `gorm:"foreignKey:TutorID" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamp;default:CURRENT_TIMESTAMP;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "tutoring_users"
}

// Profile 参与者投影，会议记录等场景只暴露这几个字段
type Profile struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Name     *string `json:"name,omitempty"`
}

// AsProfile 返回用户的公开投影
func (u *User) AsProfile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
	}
}
