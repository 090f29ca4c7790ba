package config

import (
	"errors"
	"fmt"

	"techhub/internal/util"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Demo    DemoConfig    `mapstructure:"demo"`
	Watch   WatchConfig   `mapstructure:"watch"`

	// 运行时信息（非配置项）
	ConfigFile string `mapstructure:"-"` // 实际读取到的配置文件，未找到时为空
}

type ServerConfig struct {
	Mode string
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
	Console    bool   `mapstructure:"console"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type DemoConfig struct {
	RosterFile string `mapstructure:"roster_file"`
}

type WatchConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.mode", util.ModeRelease)

	v.SetDefault("log.file", "logs/techhub.log")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("log.compress", true)
	v.SetDefault("log.console", false)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("demo.roster_file", "")
	v.SetDefault("watch.enabled", false)
}

// LoadConfig 从 path 目录读取 config.yaml；文件不存在时使用默认值，环境变量始终可覆盖
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("TECHHUB")
	v.AutomaticEnv()

	setDefaults(v)

	// Server
	v.BindEnv("server.mode", "TECHHUB_MODE")

	// Log
	v.BindEnv("log.file", "TECHHUB_LOG_FILE")
	v.BindEnv("log.console", "TECHHUB_LOG_CONSOLE")

	// Metrics
	v.BindEnv("metrics.enabled", "TECHHUB_METRICS_ENABLED")

	// Demo
	v.BindEnv("demo.roster_file", "TECHHUB_ROSTER_FILE")

	// Watch
	v.BindEnv("watch.enabled", "TECHHUB_WATCH_ENABLED")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if cfg.Server.Mode != util.ModeDebug && cfg.Server.Mode != util.ModeRelease {
		return nil, fmt.Errorf("server.mode must be debug or release, got %q", cfg.Server.Mode)
	}
	if cfg.Log.File == "" && !cfg.Log.Console {
		return nil, fmt.Errorf("log.file is empty and log.console is disabled, nothing to log to")
	}

	return &cfg, nil
}
