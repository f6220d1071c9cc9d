package xsample

import "errors"

var (
	// ErrInvalidDistribution 表示概率向量非法：存在负概率或 NaN、
	// 类别数超出上限（>= 256），或概率之和偏离 1 超出容差。
	ErrInvalidDistribution = errors.New("xsample: invalid probability distribution")

	// ErrNegativeCount 表示采样数量 n 为负数。
	ErrNegativeCount = errors.New("xsample: sample count must be >= 0")
)
