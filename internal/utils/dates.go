package utils

import (
	"time"
)

const (
	dayKeyLayout = "2006-01-02"
	isoLayout    = "2006-01-02T15:04:05.000Z"
)

// Now 当前时间，测试里可替换
var Now = time.Now

// DayKey 返回 UTC 日历日期 YYYY-MM-DD
func DayKey(t time.Time) string {
	return t.UTC().Format(dayKeyLayout)
}

// UTCMidnight 归一化到当天 UTC 零点
func UTCMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween 两个时间按 UTC 零点归一化后相差的整天数（to - from）
func DaysBetween(from, to time.Time) int {
	return int(UTCMidnight(to).Sub(UTCMidnight(from)).Hours() / 24)
}

// ISOTime 与前端约定的时间格式，零值用当前时间代替
func ISOTime(t time.Time) string {
	if t.IsZero() {
		t = Now()
	}
	return t.UTC().Format(isoLayout)
}
