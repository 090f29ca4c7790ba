package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ConfigFile != "" {
		t.Fatalf("expected no config file, got %s", cfg.ConfigFile)
	}
	if cfg.Server.Mode != "release" {
		t.Fatalf("expected release mode, got %s", cfg.Server.Mode)
	}
	if cfg.Log.File != "logs/techhub.log" || cfg.Log.MaxSize != 100 || !cfg.Log.Compress {
		t.Fatalf("unexpected log defaults: %+v", cfg.Log)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("expected metrics enabled by default")
	}
}

func TestLoadConfigParsesYaml(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, strings.TrimSpace(`
server:
  mode: debug
log:
  file: out/hub.log
  max_size: 10
  console: true
metrics:
  enabled: false
demo:
  roster_file: roster.yaml
watch:
  enabled: true
`))
	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Server.Mode != "debug" {
		t.Fatalf("expected debug mode, got %s", cfg.Server.Mode)
	}
	if cfg.Log.File != "out/hub.log" || cfg.Log.MaxSize != 10 || !cfg.Log.Console {
		t.Fatalf("unexpected log config: %+v", cfg.Log)
	}
	if cfg.Log.MaxBackups != 5 {
		t.Fatalf("expected default max_backups to survive, got %d", cfg.Log.MaxBackups)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
	if cfg.Demo.RosterFile != "roster.yaml" || !cfg.Watch.Enabled {
		t.Fatalf("unexpected demo/watch config: %+v %+v", cfg.Demo, cfg.Watch)
	}
	if !strings.HasSuffix(cfg.ConfigFile, "config.yaml") {
		t.Fatalf("expected config file path, got %q", cfg.ConfigFile)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "server:\n  mode: release\n")
	t.Setenv("TECHHUB_MODE", "debug")
	t.Setenv("TECHHUB_ROSTER_FILE", "/tmp/roster.yaml")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Server.Mode != "debug" {
		t.Fatalf("expected env to override mode, got %s", cfg.Server.Mode)
	}
	if cfg.Demo.RosterFile != "/tmp/roster.yaml" {
		t.Fatalf("expected env roster file, got %s", cfg.Demo.RosterFile)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad mode", "server:\n  mode: verbose\n", "server.mode"},
		{"no sink", "log:\n  file: \"\"\n  console: false\n", "nothing to log to"},
		{"broken yaml", "server: [\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.body)
			_, err := LoadConfig(dir)
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}
