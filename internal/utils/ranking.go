package utils

import (
	"math"
	"time"
)

type RankConfig struct {
	Gravity        float64 // 时间重力 (1.5)
	WeightReply    float64 // 2.0
	WeightUpvote   float64 // 1.0
	WeightDownvote float64 // 1.5
	ScaleFactor    float64 // 放大系数 (100)
}

var DefaultConfig = RankConfig{
	Gravity:        1.5,
	WeightReply:    2.0,
	WeightUpvote:   1.0,
	WeightDownvote: 1.5,
	ScaleFactor:    100.0,
}

// HotScore 讨论热度：对数平滑的加权互动值除以时间衰减
func HotScore(createdAt time.Time, up, down, replies int) float64 {
	hours := Now().Sub(createdAt).Hours()
	if hours < 0 {
		hours = 0
	}

	weightedSum := (float64(up) * DefaultConfig.WeightUpvote) +
		(float64(replies) * DefaultConfig.WeightReply) -
		(float64(down) * DefaultConfig.WeightDownvote)

	// 防止负数无法取对数
	if weightedSum < 0 {
		weightedSum = 0
	}

	// log10(sum + 1) -> sum=0 时结果为 0
	logScore := math.Log10(weightedSum + 1)

	numerator := logScore * DefaultConfig.ScaleFactor
	decay := math.Pow(hours+2, DefaultConfig.Gravity)

	return numerator / decay
}
