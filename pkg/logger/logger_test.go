package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"techhub/internal/config"

	"go.uber.org/zap"
)

func TestLevelForMode(t *testing.T) {
	if LevelForMode("debug") != zap.DebugLevel {
		t.Fatalf("expected debug level for debug mode")
	}
	if LevelForMode("release") != zap.InfoLevel {
		t.Fatalf("expected info level for release mode")
	}
}

func TestInitLoggerWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "techhub.log")
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "release"},
		Log:    config.LogConfig{File: path, MaxSize: 1, MaxBackups: 1, MaxAge: 1},
	}
	log := InitLogger(cfg)
	log.Debug("hidden in release mode")
	log.Info("attachee added", zap.String("division", "Engineering"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line, got %d: %s", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON log line: %v", err)
	}
	if entry["msg"] != "attachee added" || entry["division"] != "Engineering" || entry["level"] != "INFO" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestSetModeChangesLevel(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Mode: "release"}}
	InitLogger(cfg)
	if CurrentLevel() != zap.InfoLevel {
		t.Fatalf("expected info level, got %s", CurrentLevel())
	}
	SetMode("debug")
	if CurrentLevel() != zap.DebugLevel {
		t.Fatalf("expected debug level after SetMode, got %s", CurrentLevel())
	}
}
