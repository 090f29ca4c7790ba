// Tech Hub 实习生管理演示程序
//
// 默认运行内置的演示脚本；指定 -roster 或 demo.roster_file 时改为导入花名册并输出报告。

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"techhub/internal/app"
	"techhub/internal/config"
	"techhub/internal/util"
	"techhub/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录（读取其中的 config.yaml）")
	roster := flag.String("roster", "", "花名册 YAML 文件，覆盖 demo.roster_file")
	debug := flag.Bool("debug", false, "以 debug 模式运行，输出 Debug 日志")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *roster != "" {
		cfg.Demo.RosterFile = *roster
	}
	if *debug {
		cfg.Server.Mode = util.ModeDebug
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer logger.Log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx, os.Stdout); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}
}
