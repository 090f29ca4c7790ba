package logger

import (
	"os"

	"techhub/internal/config"
	"techhub/internal/util"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	Log   = zap.NewNop()
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func newEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// LevelForMode debug 模式输出 Debug 日志，其余为 Info
func LevelForMode(mode string) zapcore.Level {
	if mode == util.ModeDebug {
		return zap.DebugLevel
	}
	return zap.InfoLevel
}

// SetMode 运行时切换日志级别，配置热更新时调用
func SetMode(mode string) {
	level.SetLevel(LevelForMode(mode))
}

// CurrentLevel 当前生效的日志级别
func CurrentLevel() zapcore.Level {
	return level.Level()
}

// InitLogger 文件输出为 JSON（lumberjack 滚动），控制台输出写到 stderr，避免和报告混在 stdout
func InitLogger(cfg *config.Config) *zap.Logger {
	encoderConfig := newEncoderConfig()
	level.SetLevel(LevelForMode(cfg.Server.Mode))

	var cores []zapcore.Core

	if cfg.Log.File != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			fileWriter,
			level,
		))
	}

	if cfg.Log.Console {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(os.Stderr),
			level,
		))
	}

	Log = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	return Log
}
