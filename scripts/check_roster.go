// 手动校验花名册文件
//
// 把花名册导入一个空的注册表，打印统计和每一条失败原因，不输出绩效报告。
// 用于在把文件配置到 demo.roster_file 之前先检查格式和部门名称。
//
// 用法: go run scripts/check_roster.go configs/roster.example.yaml

package main

import (
	"log"
	"os"

	"techhub/internal/config"
	"techhub/internal/repository"
	"techhub/internal/service"
	"techhub/pkg/logger"

	"go.uber.org/multierr"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("用法: go run scripts/check_roster.go <roster.yaml>")
	}
	path := os.Args[1]

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	hub := service.NewTechHubService(repository.NewAttacheeRepository(), nil, logger.Log)

	log.Printf("校验花名册 %s ...", path)
	summary, err := hub.ImportRosterFile(path)
	log.Printf("attachees=%d tasks=%d feedback=%d scores=%d division_tasks=%d",
		summary.Attachees, summary.Tasks, summary.Feedback, summary.Scores, summary.DivisionTasks)

	errs := multierr.Errors(err)
	for _, e := range errs {
		log.Printf("  - %v", e)
	}
	if len(errs) > 0 {
		log.Fatalf("发现 %d 个问题", len(errs))
	}
	log.Println("完成！")
}
