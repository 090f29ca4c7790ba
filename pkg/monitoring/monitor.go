package monitoring

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// 拒绝原因标签取值
const (
	ReasonInvalidDivision = "invalid_division"
	ReasonUnassignedTask  = "unassigned_task"
	ReasonScoreOutOfRange = "score_out_of_range"
	ReasonNotFound        = "not_found"
)

// Metrics 注册表操作计数器，nil 时所有方法为空操作
type Metrics struct {
	AttacheesAdded   *prometheus.CounterVec
	TasksAssigned    *prometheus.CounterVec
	ScoresRecorded   *prometheus.CounterVec
	FeedbackRecorded *prometheus.CounterVec
	Rejections       *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		AttacheesAdded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "techhub_attachees_added_total",
				Help: "Total number of attachees added to the hub",
			},
			[]string{"division"},
		),
		TasksAssigned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "techhub_tasks_assigned_total",
				Help: "Total number of task assignments",
			},
			[]string{"division"},
		),
		ScoresRecorded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "techhub_scores_recorded_total",
				Help: "Total number of accepted task scores",
			},
			[]string{"division"},
		),
		FeedbackRecorded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "techhub_feedback_recorded_total",
				Help: "Total number of feedback entries recorded",
			},
			[]string{"division"},
		),
		Rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "techhub_rejections_total",
				Help: "Total number of rejected operations by reason",
			},
			[]string{"reason"},
		),
	}
}

// Register 注册到指定的 Registerer，测试中使用独立的 prometheus.NewRegistry()
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.AttacheesAdded,
		m.TasksAssigned,
		m.ScoresRecorded,
		m.FeedbackRecorded,
		m.Rejections,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) AttacheeAdded(division string) {
	if m == nil {
		return
	}
	m.AttacheesAdded.WithLabelValues(division).Inc()
}

func (m *Metrics) TaskAssigned(division string) {
	if m == nil {
		return
	}
	m.TasksAssigned.WithLabelValues(division).Inc()
}

func (m *Metrics) ScoreRecorded(division string) {
	if m == nil {
		return
	}
	m.ScoresRecorded.WithLabelValues(division).Inc()
}

func (m *Metrics) FeedbackAdded(division string) {
	if m == nil {
		return
	}
	m.FeedbackRecorded.WithLabelValues(division).Inc()
}

func (m *Metrics) Rejected(reason string) {
	if m == nil {
		return
	}
	m.Rejections.WithLabelValues(reason).Inc()
}

// Snapshot 汇总 Gatherer 中的计数器，键为 "name{label=value,...}"，用于退出时打印日志
func Snapshot(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, mf := range families {
		if mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range mf.GetMetric() {
			out[seriesKey(mf.GetName(), m.GetLabel())] = m.GetCounter().GetValue()
		}
	}
	return out, nil
}

func seriesKey(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		parts = append(parts, l.GetName()+"="+l.GetValue())
	}
	sort.Strings(parts)
	return name + "{" + strings.Join(parts, ",") + "}"
}
