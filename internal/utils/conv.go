package utils

import (
	"strconv"
)

// QueryInt 解析查询参数，非法或非正数时返回默认值，并限制上限
func QueryInt(s string, def, max int) int {
	i, err := strconv.Atoi(s)
	if err != nil || i <= 0 {
		return def
	}
	if max > 0 && i > max {
		return max
	}
	return i
}
