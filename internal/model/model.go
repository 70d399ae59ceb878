package model

import (
	"fmt"

	"gorm.io/gorm"

	"terminal-terrace/tutoring-service/internal/model/meeting"
	"terminal-terrace/tutoring-service/internal/model/user"
)

// GetModels 返回所有需要迁移的模型
func GetModels() []interface{} {
	return []interface{}{
		&user.User{},
		&meeting.Meeting{},
	}
}

func InitTable(db *gorm.DB) error {
	models := GetModels()

	// 执行自动迁移
	err := db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("数据库表迁移失败: %v", err)
	}

	return nil
}
