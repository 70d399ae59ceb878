package database

import (
	"time"

	"gorm.io/gorm"

	"terminal-terrace/tutoring-service/config"
)

var (
	PostgresDB *gorm.DB
	RedisDB    *RedisClient
)

func InitDatabase() {
	databaseConf := config.Conf.Database
	redisConf := config.Conf.Redis

	logLevel := databaseConf.LogLevel
	if logLevel == "" {
		logLevel = "silent"
	}

	var err error
	PostgresDB, err = InitPostgres(
		&PostgresConfig{
			ServiceName:     "tutoring-service",
			Username:        databaseConf.Username,
			Password:        databaseConf.Password,
			Host:            databaseConf.Host,
			Port:            databaseConf.Port,
			Database:        databaseConf.Database,
			SSLMode:         databaseConf.SSLMode,
			LogLevel:        logLevel,
			MaxIdleConns:    databaseConf.MaxIdleConns,
			MaxOpenConns:    databaseConf.MaxOpenConns,
			ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
		},
	)

	if err != nil {
		panic(err)
	}

	// 初始化 Redis
	RedisDB, err = InitRedis(
		&RedisConfig{
			ServiceName: "tutoring-service",
			Host:        redisConf.Host,
			Port:        redisConf.Port,
			Password:    redisConf.Password,
			DB:          redisConf.DB,
			PoolSize:    redisConf.PoolSize,
		},
	)

	if err != nil {
		panic(err)
	}
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return PostgresDB
}
