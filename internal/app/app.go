package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"techhub/internal/config"
	"techhub/internal/repository"
	"techhub/internal/service"
	"techhub/pkg/configwatcher"
	"techhub/pkg/logger"
	"techhub/pkg/monitoring"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Hub             *service.TechHubService
	Registry        *prometheus.Registry
	configCallbacks []func(*config.Config)
}

type repositories struct {
	attachee *repository.AttacheeRepository
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories() *repositories {
	return &repositories{
		attachee: repository.NewAttacheeRepository(),
	}
}

func (a *App) initMetrics(cfg *config.Config) (*monitoring.Metrics, error) {
	if !cfg.Metrics.Enabled {
		return nil, nil
	}
	metrics := monitoring.NewMetrics()
	if err := metrics.Register(a.Registry); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	return metrics, nil
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully", zap.String("mode", cfg.Server.Mode))

	app := &App{
		Config:   cfg,
		Registry: prometheus.NewRegistry(),
	}

	metrics, err := app.initMetrics(cfg)
	if err != nil {
		return nil, err
	}

	repos := app.initRepositories()
	app.Hub = service.NewTechHubService(repos.attachee, metrics, logger.Log)

	// 配置热更新时同步日志级别
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
	})

	return app, nil
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

// startWatcher 仅在读取到配置文件且开启 watch 时生效
func (a *App) startWatcher(ctx context.Context) {
	if !a.Config.Watch.Enabled || a.Config.ConfigFile == "" {
		return
	}
	w, err := configwatcher.New(a.Config.ConfigFile, a.applyConfig)
	if err != nil {
		logger.Log.Error("Failed to start config watcher", zap.Error(err))
		return
	}
	go func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

// Run 执行演示流程并把结果写到 out，结束后记录指标汇总
func (a *App) Run(ctx context.Context, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.startWatcher(ctx)

	var err error
	if a.Config.Demo.RosterFile != "" {
		err = a.RunRoster(out, a.Config.Demo.RosterFile)
	} else {
		err = a.RunDemo(out)
	}

	a.logMetrics()
	return err
}

func (a *App) logMetrics() {
	if !a.Config.Metrics.Enabled {
		return
	}
	snap, err := monitoring.Snapshot(a.Registry)
	if err != nil {
		logger.Log.Error("Failed to gather metrics", zap.Error(err))
		return
	}
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, zap.Float64(k, snap[k]))
	}
	logger.Log.Info("Metrics summary", fields...)
}
