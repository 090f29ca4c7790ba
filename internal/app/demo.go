package app

import (
	"fmt"
	"io"

	"techhub/internal/util"
)

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) result(msg string, err error) {
	p.println(util.Render(msg, err))
}

// RunDemo 固定的演示脚本：添加实习生、分配任务、反馈打分，最后输出报告
func (a *App) RunDemo(out io.Writer) error {
	hub := a.Hub
	p := &printer{w: out}

	// 各部门添加实习生
	p.result(hub.AddAttachee("John Smith", "Engineering"))
	p.result(hub.AddAttachee("Maria Garcia", "Engineering"))
	p.result(hub.AddAttachee("David Kim", "Tech Programs"))
	p.result(hub.AddAttachee("Sarah Johnson", "Tech Programs"))
	p.result(hub.AddAttachee("Michael Brown", "Radio Support"))
	p.result(hub.AddAttachee("Jennifer Lee", "Hub Support"))
	p.result(hub.AddAttachee("Robert Chen", "Hub Support"))

	// 不存在的部门
	p.result(hub.AddAttachee("Alex Wong", "Marketing"))

	// 单独分配任务
	if _, err := hub.GetAttachee("John Smith"); err == nil {
		p.result(hub.AssignTaskTo("John Smith", "Create a new web dashboard"))
		p.result(hub.AssignTaskTo("John Smith", "Fix login authentication bug"))
	}
	if _, err := hub.GetAttachee("David Kim"); err == nil {
		p.result(hub.AssignTaskTo("David Kim", "Develop program curriculum"))
	}

	// 按部门批量分配
	p.result(hub.AssignTaskByDivision("Engineering", "Complete code review"))
	p.result(hub.AssignTaskByDivision("Hub Support", "Update visitor registration system"))

	// 反馈与评分
	if _, err := hub.GetAttachee("John Smith"); err == nil {
		p.result(hub.AddFeedbackFor("John Smith", "Create a new web dashboard", "Great work! The dashboard looks amazing."))
		p.result(hub.AddScoreFor("John Smith", "Create a new web dashboard", 9))
		p.result(hub.AddFeedbackFor("John Smith", "Fix login authentication bug", "Security issue resolved correctly."))
		p.result(hub.AddScoreFor("John Smith", "Fix login authentication bug", 8))
		p.result(hub.AddScoreFor("John Smith", "Complete code review", 7))
	}
	if _, err := hub.GetAttachee("Jennifer Lee"); err == nil {
		p.result(hub.AssignTaskTo("Jennifer Lee", "Create hub usage guide"))
		p.result(hub.AddFeedbackFor("Jennifer Lee", "Update visitor registration system", "System works well but needs better UI."))
		p.result(hub.AddScoreFor("Jennifer Lee", "Update visitor registration system", 6))
	}

	// 未分配任务的反馈
	if _, err := hub.GetAttachee("David Kim"); err == nil {
		p.result(hub.AddFeedbackFor("David Kim", "Create marketing materials", "Not applicable."))
	}

	p.result(hub.DisplayDivisionPerformance("Engineering"))
	p.result(hub.DisplayDivisionPerformance("Hub Support"))
	p.println(hub.DisplayAllAttachees())

	return p.err
}

// RunRoster 导入花名册后输出各部门报告；单条导入错误只打印，不中断
func (a *App) RunRoster(out io.Writer, path string) error {
	hub := a.Hub
	p := &printer{w: out}

	summary, err := hub.ImportRosterFile(path)
	p.println(fmt.Sprintf("Imported %d attachees, %d tasks, %d scores from %s.",
		summary.Attachees, summary.Tasks, summary.Scores, path))
	if err != nil {
		p.println(util.Render("", err))
	}

	for _, d := range hub.Divisions() {
		p.result(hub.DisplayDivisionPerformance(d.String()))
	}
	p.println(hub.DisplayAllAttachees())
	return p.err
}
