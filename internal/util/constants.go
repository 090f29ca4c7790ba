package util

// 评分范围（闭区间）
const (
	MinScore = 0
	MaxScore = 10
)

// 运行模式
const (
	ModeDebug   = "debug"
	ModeRelease = "release"
)

// 报告中的占位文案
const (
	NoFeedbackPlaceholder = "No feedback yet"
	NoTasksNotice         = "No tasks assigned yet."
	EmptyDivisionNotice   = "No attachees in this division."
)
