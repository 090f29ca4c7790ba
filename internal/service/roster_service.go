package service

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Roster 花名册文件格式
//
//	attachees:
//	  - name: John Smith
//	    division: Engineering
//	    tasks:
//	      - name: Fix login authentication bug
//	        feedback: Security issue resolved correctly.
//	        score: 8
//	division_tasks:
//	  - division: Hub Support
//	    task: Update visitor registration system
type Roster struct {
	Attachees     []RosterAttachee     `yaml:"attachees"`
	DivisionTasks []RosterDivisionTask `yaml:"division_tasks"`
}

type RosterAttachee struct {
	Name     string       `yaml:"name"`
	Division string       `yaml:"division"`
	Tasks    []RosterTask `yaml:"tasks"`
}

type RosterTask struct {
	Name     string   `yaml:"name"`
	Feedback string   `yaml:"feedback"`
	Score    *float64 `yaml:"score"` // 未填写时不打分
}

type RosterDivisionTask struct {
	Division string `yaml:"division"`
	Task     string `yaml:"task"`
}

// ImportSummary 导入统计，只计成功的操作
type ImportSummary struct {
	Attachees     int
	Tasks         int
	Feedback      int
	Scores        int
	DivisionTasks int
}

// ParseRoster 严格解析，未知字段视为错误；空文件得到空花名册
func ParseRoster(r io.Reader) (*Roster, error) {
	var roster Roster
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&roster); err != nil {
		if errors.Is(err, io.EOF) {
			return &roster, nil
		}
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	return &roster, nil
}

// ImportRoster 通过公开操作逐条回放花名册；单条失败不影响其余条目，所有错误合并返回
func (s *TechHubService) ImportRoster(r io.Reader) (ImportSummary, error) {
	var summary ImportSummary

	roster, err := ParseRoster(r)
	if err != nil {
		return summary, err
	}

	var errs error
	for i, entry := range roster.Attachees {
		a, err := s.addAttachee(entry.Name, entry.Division)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("attachees[%d] %s: %w", i, entry.Name, err))
			continue
		}
		summary.Attachees++

		for _, task := range entry.Tasks {
			s.assignTask(a, task.Name)
			summary.Tasks++

			if task.Feedback != "" {
				if _, err := s.addFeedback(a, task.Name, task.Feedback); err != nil {
					errs = multierr.Append(errs, fmt.Errorf("attachees[%d] %s: %w", i, entry.Name, err))
				} else {
					summary.Feedback++
				}
			}
			if task.Score != nil {
				if _, err := s.addScore(a, task.Name, *task.Score); err != nil {
					errs = multierr.Append(errs, fmt.Errorf("attachees[%d] %s: %w", i, entry.Name, err))
				} else {
					summary.Scores++
				}
			}
		}
	}

	for i, dt := range roster.DivisionTasks {
		if _, err := s.AssignTaskByDivision(dt.Division, dt.Task); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("division_tasks[%d]: %w", i, err))
			continue
		}
		summary.DivisionTasks++
	}

	s.log.Info("Roster imported",
		zap.Int("attachees", summary.Attachees),
		zap.Int("tasks", summary.Tasks),
		zap.Int("scores", summary.Scores),
		zap.Int("errors", len(multierr.Errors(errs))),
	)
	return summary, errs
}

func (s *TechHubService) ImportRosterFile(path string) (ImportSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()
	return s.ImportRoster(f)
}
