// Package seed 在服务启动时创建初始账号，便于本地联调和首次部署。
// 幂等：已存在的账号不会被覆盖。
package seed

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"terminal-terrace/tutoring-service/internal/model/user"
	"terminal-terrace/tutoring-service/internal/pkg"
)

// Run 创建初始的 admin / tutor / student 账号
func Run(db *gorm.DB, log *zap.Logger) error {
	if _, err := ensureUser(db, log, "admin", "adminpass", user.RoleAdmin, nil); err != nil {
		return err
	}

	tutor, err := ensureUser(db, log, "tutor1", "passone", user.RoleTutor, nil)
	if err != nil {
		return err
	}

	if _, err := ensureUser(db, log, "student1", "studentpass", user.RoleStudent, &tutor.ID); err != nil {
		return err
	}

	log.Info("seeding completed")
	return nil
}

func ensureUser(db *gorm.DB, log *zap.Logger, username, password string, role user.Role, tutorID *int) (*user.User, error) {
	var existing user.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("查询种子用户失败: %w", err)
	}

	hash, err := pkg.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("种子用户密码加密失败: %w", err)
	}

	u := &user.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		TutorID:      tutorID,
	}
	if err := db.Create(u).Error; err != nil {
		return nil, fmt.Errorf("创建种子用户失败: %w", err)
	}

	log.Info("seed user created",
		zap.String("username", username),
		zap.String("role", string(role)),
	)
	return u, nil
}
