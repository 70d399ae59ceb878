package main

import (
	"fmt"

	"go.uber.org/zap"

	"terminal-terrace/tutoring-service/config"
	"terminal-terrace/tutoring-service/internal/database"
	"terminal-terrace/tutoring-service/internal/logger"
	"terminal-terrace/tutoring-service/internal/model"
	"terminal-terrace/tutoring-service/internal/route"
	"terminal-terrace/tutoring-service/internal/seed"
)

func main() {
	config.MustLoad("config.yaml")

	log := logger.MustNew(config.Conf.Log)
	defer log.Sync()
	zap.ReplaceGlobals(log)

	database.InitDatabase()

	if err := model.InitTable(database.GetDB()); err != nil {
		log.Fatal("table migration failed", zap.Error(err))
	}

	// 初始账号
	if err := seed.Run(database.GetDB(), log); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}

	r := route.SetupRouter()

	addr := fmt.Sprintf("%s:%d", config.Conf.Server.Host, config.Conf.Server.Port)
	log.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
