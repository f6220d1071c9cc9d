package xsample

import (
	"fmt"
	"math"
	"math/rand/v2"
)

const (
	// maxCategories 类别数上限，保证索引落在单字节输出范围内
	maxCategories = 256

	// sumTolerance 概率之和与 1 的绝对容差
	sumTolerance = 1e-8
)

// Sample 按权重分布 p 确定性地采样 n 个类别索引。
//
// 相同的 (n, p, key) 在任何进程、任何平台上产生逐字节相同的输出序列。
// 随机源是本包的契约组成部分：PCG（math/rand/v2，种子 (key, 0)），
// 每个输出位置按索引序各取一次 [0, 1) 均匀抽样。
// 每次调用构造自己的随机源实例，绝不读取或推进全局随机状态，
// 因此可以在任意数量的 goroutine 中并发调用。
//
// 抽样值 x 按升序首配规则落桶：第一个满足 cp[i] <= x < cp[i+1] 的类别 i
// 胜出，其中 cp 是概率的累积边界序列。输出频率随 n 增大收敛于 p，
// 有限 n 下无精确频率保证。
//
// 校验失败返回 ErrInvalidDistribution（负概率、NaN、类别数 >= 256、
// 概率之和偏离 1 超过 1e-8）或 ErrNegativeCount（n < 0）。
func Sample(n int, p []float64, key uint64) ([]int8, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeCount, n)
	}
	cp, err := cumulative(p)
	if err != nil {
		return nil, err
	}

	r := rand.New(rand.NewPCG(key, 0))
	k := len(p)
	out := make([]int8, n)
	for i := range out {
		x := r.Float64()
		// 浮点累加可能使 cp[k] 略小于 1，x 超出最后一个边界时归入末类别
		idx := k - 1
		for j := 0; j < k; j++ {
			if x >= cp[j] && x < cp[j+1] {
				idx = j
				break
			}
		}
		out[i] = int8(idx)
	}
	return out, nil
}

// cumulative 校验概率向量并返回累积边界序列 cp，
// cp[0] = 0，cp[i] = cp[i-1] + p[i-1]，cp[len(p)] ≈ 1。
func cumulative(p []float64) ([]float64, error) {
	if len(p) >= maxCategories {
		return nil, fmt.Errorf("%w: %d categories, limit is %d", ErrInvalidDistribution, len(p), maxCategories)
	}
	cp := make([]float64, len(p)+1)
	for i, v := range p {
		if v < 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: p[%d]=%v", ErrInvalidDistribution, i, v)
		}
		cp[i+1] = cp[i] + v
	}
	if math.Abs(cp[len(p)]-1) > sumTolerance {
		return nil, fmt.Errorf("%w: probabilities sum to %v", ErrInvalidDistribution, cp[len(p)])
	}
	return cp, nil
}
