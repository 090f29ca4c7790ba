package configwatcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"techhub/internal/config"
	"techhub/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DebounceInterval 连续写入合并为一次重载
var DebounceInterval = time.Second

type ConfigReloader func(cfg *config.Config)

type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	reloader ConfigReloader
}

// New 立即开始监听 configPath，返回后的写入不会丢失
func New(configPath string, reloader ConfigReloader) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create config watcher: %w", err)
	}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	if err := fw.Add(absPath); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch config file: %w", err)
	}

	return &Watcher{fs: fw, path: absPath, reloader: reloader}, nil
}

// Run 阻塞直到 ctx 取消或 fsnotify 通道关闭
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	timer := time.NewTimer(0)
	<-timer.C

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				// 防抖处理
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(DebounceInterval)
			}
		case <-timer.C:
			// 重新加载配置
			newCfg, err := config.LoadConfig(filepath.Dir(w.path))
			if err != nil {
				logger.Log.Error("Failed to reload config", zap.Error(err))
				continue
			}
			logger.Log.Info("Config reloaded", zap.String("file", w.path))
			w.reloader(newCfg)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}

func WatchConfig(ctx context.Context, configPath string, reloader ConfigReloader) error {
	w, err := New(configPath, reloader)
	if err != nil {
		return err
	}
	return w.Run(ctx)
}
