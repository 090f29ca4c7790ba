package service

import (
	"fmt"
	"strings"

	"techhub/internal/model"
	"techhub/internal/repository"
	"techhub/internal/util"
	"techhub/pkg/monitoring"

	"go.uber.org/zap"
)

// TechHubService 管理固定的四个部门以及所有实习生记录
type TechHubService struct {
	AttacheeRepo *repository.AttacheeRepository
	Metrics      *monitoring.Metrics
	log          *zap.Logger
}

func NewTechHubService(attacheeRepo *repository.AttacheeRepository, metrics *monitoring.Metrics, log *zap.Logger) *TechHubService {
	if log == nil {
		log = zap.NewNop()
	}
	return &TechHubService{
		AttacheeRepo: attacheeRepo,
		Metrics:      metrics,
		log:          log.Named("techhub"),
	}
}

// Divisions 固定部门列表
func (s *TechHubService) Divisions() []model.Division {
	return model.Divisions()
}

func (s *TechHubService) parseDivision(division string) (model.Division, error) {
	d, ok := model.ParseDivision(division)
	if !ok {
		s.Metrics.Rejected(monitoring.ReasonInvalidDivision)
		s.log.Warn("Rejected invalid division", zap.String("division", division))
		return "", fmt.Errorf("%w: %q", util.ErrInvalidDivision, division)
	}
	return d, nil
}

// AddAttachee 部门不合法时记录集合保持不变；不校验姓名唯一性
func (s *TechHubService) AddAttachee(name, division string) (string, error) {
	if _, err := s.addAttachee(name, division); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s added to %s division.", name, division), nil
}

func (s *TechHubService) addAttachee(name, division string) (*model.Attachee, error) {
	d, err := s.parseDivision(division)
	if err != nil {
		return nil, err
	}
	attachee := model.NewAttachee(name, d)
	if err := s.AttacheeRepo.Create(attachee); err != nil {
		return nil, fmt.Errorf("save attachee: %w", err)
	}
	s.Metrics.AttacheeAdded(d.String())
	s.log.Debug("Attachee added",
		zap.String("id", attachee.ID),
		zap.String("name", name),
		zap.String("division", d.String()),
	)
	return attachee, nil
}

// GetAttachee 不区分大小写按姓名查找，重名时返回最早加入的记录
func (s *TechHubService) GetAttachee(name string) (*model.Attachee, error) {
	attachee, err := s.AttacheeRepo.FindByName(name)
	if err != nil {
		s.Metrics.Rejected(monitoring.ReasonNotFound)
		return nil, fmt.Errorf("%w: %q", err, name)
	}
	return attachee, nil
}

// GetAttacheesByDivision 部门不合法返回 ErrInvalidDivision，合法但无成员返回空切片
func (s *TechHubService) GetAttacheesByDivision(division string) ([]*model.Attachee, error) {
	d, err := s.parseDivision(division)
	if err != nil {
		return nil, err
	}
	return s.AttacheeRepo.FindByDivision(d), nil
}

// AssignTaskByDivision 按加入顺序给部门内每个实习生分配同一任务
func (s *TechHubService) AssignTaskByDivision(division, task string) (string, error) {
	attachees, err := s.GetAttacheesByDivision(division)
	if err != nil {
		return "", err
	}
	if len(attachees) == 0 {
		return fmt.Sprintf("No attachees found in %s division.", division), nil
	}
	for _, a := range attachees {
		s.assignTask(a, task)
	}
	s.log.Info("Task assigned to division",
		zap.String("division", division),
		zap.String("task", task),
		zap.Int("attachees", len(attachees)),
	)
	return fmt.Sprintf("Task '%s' assigned to all attachees in %s division.", task, division), nil
}

// AssignTaskTo 按姓名查找后分配任务
func (s *TechHubService) AssignTaskTo(name, task string) (string, error) {
	a, err := s.GetAttachee(name)
	if err != nil {
		return "", err
	}
	return s.assignTask(a, task), nil
}

// AddFeedbackFor 按姓名查找后写入反馈
func (s *TechHubService) AddFeedbackFor(name, task, feedback string) (string, error) {
	a, err := s.GetAttachee(name)
	if err != nil {
		return "", err
	}
	return s.addFeedback(a, task, feedback)
}

// AddScoreFor 按姓名查找后打分
func (s *TechHubService) AddScoreFor(name, task string, score float64) (string, error) {
	a, err := s.GetAttachee(name)
	if err != nil {
		return "", err
	}
	return s.addScore(a, task, score)
}

func (s *TechHubService) assignTask(a *model.Attachee, task string) string {
	msg := a.AssignTask(task)
	s.Metrics.TaskAssigned(a.Division().String())
	s.log.Debug("Task assigned", zap.String("attachee", a.Name()), zap.String("task", task))
	return msg
}

func (s *TechHubService) addFeedback(a *model.Attachee, task, feedback string) (string, error) {
	msg, err := a.AddFeedback(task, feedback)
	if err != nil {
		s.Metrics.Rejected(monitoring.ReasonUnassignedTask)
		s.log.Warn("Feedback rejected", zap.String("attachee", a.Name()), zap.Error(err))
		return "", err
	}
	s.Metrics.FeedbackAdded(a.Division().String())
	s.log.Debug("Feedback added", zap.String("attachee", a.Name()), zap.String("task", task))
	return msg, nil
}

func (s *TechHubService) addScore(a *model.Attachee, task string, score float64) (string, error) {
	msg, err := a.AddScore(task, score)
	if err != nil {
		reason := monitoring.ReasonScoreOutOfRange
		if !a.HasTask(task) {
			reason = monitoring.ReasonUnassignedTask
		}
		s.Metrics.Rejected(reason)
		s.log.Warn("Score rejected", zap.String("attachee", a.Name()), zap.Error(err))
		return "", err
	}
	s.Metrics.ScoreRecorded(a.Division().String())
	s.log.Debug("Score recorded",
		zap.String("attachee", a.Name()),
		zap.String("task", task),
		zap.Float64("score", score),
		zap.Float64("average", a.AverageScore()),
	)
	return msg, nil
}

// DisplayDivisionPerformance 拼接部门内每个实习生的绩效摘要
func (s *TechHubService) DisplayDivisionPerformance(division string) (string, error) {
	attachees, err := s.GetAttacheesByDivision(division)
	if err != nil {
		return "", err
	}
	if len(attachees) == 0 {
		return fmt.Sprintf("No attachees found in %s division.", division), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n=== %s Division Performance ===\n", division)
	for _, a := range attachees {
		b.WriteString(a.PerformanceSummary())
	}
	return b.String(), nil
}

// DisplayAllAttachees 遍历全部固定部门（包括没有成员的部门）
func (s *TechHubService) DisplayAllAttachees() string {
	var b strings.Builder
	b.WriteString("\n=== All Attachees by Division ===\n")

	for _, d := range model.Divisions() {
		fmt.Fprintf(&b, "\n%s Division:\n", d)
		attachees := s.AttacheeRepo.FindByDivision(d)
		if len(attachees) == 0 {
			b.WriteString("  " + util.EmptyDivisionNotice + "\n")
			continue
		}
		for i, a := range attachees {
			fmt.Fprintf(&b, "  %d. %s - Avg Score: %s/10\n", i+1, a.Name(), util.FormatAverage(a.AverageScore()))
		}
	}
	return b.String()
}
