package bootstrap

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger 创建进程日志并设为默认
func NewLogger(env *Env) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		ReportCaller:    true,
		TimeFormat:      time.DateTime,
		Prefix:          "rhythmiq",
	})

	level, err := log.ParseLevel(env.LogLevel)
	if err != nil {
		logger.Warn("未知日志级别，使用 info", "level", env.LogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	if env.AppEnv == "production" {
		logger.SetFormatter(log.JSONFormatter)
	}

	log.SetDefault(logger)
	return logger
}
