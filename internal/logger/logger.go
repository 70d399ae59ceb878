package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"terminal-terrace/tutoring-service/config"
)

// New 根据日志配置构建 zap.Logger
func New(conf config.LogConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if conf.Level != "" {
		if err := level.UnmarshalText([]byte(conf.Level)); err != nil {
			level = zapcore.InfoLevel
		}
	}

	encoding := "json"
	if conf.Format == "text" {
		encoding = "console"
	}

	output := "stdout"
	if conf.Output == "file" && conf.Path != "" {
		output = conf.Path
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.Encoding = encoding
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{output}

	return cfg.Build()
}

// MustNew 构建日志器，失败则 panic
func MustNew(conf config.LogConfig) *zap.Logger {
	l, err := New(conf)
	if err != nil {
		panic(err)
	}
	return l
}
