package util

import (
	"math"
	"strconv"
)

// FormatPercent 取整后输出 "NN%"，0.5 向远离零的方向进位
func FormatPercent(v float64) string {
	return strconv.FormatFloat(math.Round(v), 'f', 0, 64) + "%"
}

// ClampPercent 限制到 0-100，用于进度条宽度
func ClampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
