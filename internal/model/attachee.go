package model

import (
	"fmt"
	"strings"
	"sync"

	"techhub/internal/util"
)

// Attachee 实习生记录：所属部门、任务列表以及按任务名记录的反馈和评分
//
// feedback 和 scores 以任务名为键，重复分配同名任务会在 tasks 中追加一条，
// 同时把该任务名已有的反馈和评分重置为默认值。
type Attachee struct {
	BaseModel

	name     string
	division Division

	mu           sync.RWMutex
	tasks        []string
	feedback     map[string]string
	scores       map[string]float64
	averageScore float64
}

// NewAttachee 只应由 TechHubService 调用，部门合法性由调用方保证
func NewAttachee(name string, division Division) *Attachee {
	return &Attachee{
		BaseModel: newBaseModel(),
		name:      name,
		division:  division,
		feedback:  make(map[string]string),
		scores:    make(map[string]float64),
	}
}

func (a *Attachee) Name() string {
	return a.name
}

func (a *Attachee) Division() Division {
	return a.division
}

// AssignTask 追加任务并初始化反馈（空字符串）和评分（0），不会失败
func (a *Attachee) AssignTask(task string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tasks = append(a.tasks, task)
	a.feedback[task] = ""
	a.scores[task] = 0
	return fmt.Sprintf("Task '%s' assigned to %s in %s division.", task, a.name, a.division)
}

// AddFeedback 为已分配的任务写入反馈
func (a *Attachee) AddFeedback(task, feedback string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.hasTaskLocked(task) {
		return "", a.unassignedLocked(task)
	}
	a.feedback[task] = feedback
	return fmt.Sprintf("Feedback added for %s's task: '%s'", a.name, task), nil
}

// AddScore 为已分配的任务打分并重新计算平均分，越界时状态不变
func (a *Attachee) AddScore(task string, score float64) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.hasTaskLocked(task) {
		return "", a.unassignedLocked(task)
	}
	if !util.InScoreRange(score) {
		return "", fmt.Errorf("%w: got %s", util.ErrScoreOutOfRange, util.FormatScore(score))
	}
	a.scores[task] = score
	a.updateAverageLocked()
	return fmt.Sprintf("Score of %s/10 added for %s's task: '%s'", util.FormatScore(score), a.name, task), nil
}

// AverageScore 最近一次打分后计算出的平均分；分配任务不会触发重新计算
func (a *Attachee) AverageScore() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.averageScore
}

// Tasks 返回任务列表副本，保持分配顺序
func (a *Attachee) Tasks() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]string, len(a.tasks))
	copy(out, a.tasks)
	return out
}

func (a *Attachee) HasTask(task string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.hasTaskLocked(task)
}

// Feedback 返回任务的反馈；任务未分配时 ok 为 false
func (a *Attachee) Feedback(task string) (feedback string, ok bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	feedback, ok = a.feedback[task]
	return feedback, ok
}

// Score 返回任务的评分；任务未分配时 ok 为 false
func (a *Attachee) Score(task string) (score float64, ok bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	score, ok = a.scores[task]
	return score, ok
}

// PerformanceSummary 生成个人绩效文本，纯读取
func (a *Attachee) PerformanceSummary() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "\n--- %s's Performance Summary (%s Division) ---\n", a.name, a.division)

	if len(a.tasks) == 0 {
		b.WriteString(util.NoTasksNotice + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Average Score: %s/10\n", util.FormatAverage(a.averageScore))
	b.WriteString("Tasks:\n")
	for _, task := range a.tasks {
		feedback := a.feedback[task]
		if feedback == "" {
			feedback = util.NoFeedbackPlaceholder
		}
		fmt.Fprintf(&b, "  - %s\n", task)
		fmt.Fprintf(&b, "    Score: %s/10\n", util.FormatScore(a.scores[task]))
		fmt.Fprintf(&b, "    Feedback: %s\n", feedback)
	}
	return b.String()
}

func (a *Attachee) hasTaskLocked(task string) bool {
	for _, t := range a.tasks {
		if t == task {
			return true
		}
	}
	return false
}

func (a *Attachee) unassignedLocked(task string) error {
	return fmt.Errorf("%w: '%s' is not assigned to %s", util.ErrUnassignedTask, task, a.name)
}

// 平均分覆盖 scores 中的全部取值，而不只是本次打分的任务
func (a *Attachee) updateAverageLocked() {
	if len(a.scores) == 0 {
		a.averageScore = 0
		return
	}
	var sum float64
	for _, s := range a.scores {
		sum += s
	}
	a.averageScore = sum / float64(len(a.scores))
}
