package util

import (
	"strconv"
)

// FormatScore 将分数格式化为最短的十进制表示，整数分数不带小数点（8 而不是 8.0）
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// FormatAverage 平均分统一保留一位小数
func FormatAverage(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 1, 64)
}

// InScoreRange 判断分数是否落在 [MinScore, MaxScore] 内
func InScoreRange(score float64) bool {
	return score >= MinScore && score <= MaxScore
}
