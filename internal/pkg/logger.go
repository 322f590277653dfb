package pkg

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger = zap.NewNop()

// InitLogger 初始化全局日志，level 不合法时落回 info
func InitLogger(logLevel string) {
	config := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	config.Level.SetLevel(level)
	Logger, _ = config.Build()
}
