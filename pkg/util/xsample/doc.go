// Package xsample 提供确定性的加权类别采样。
//
// 给定目标数量 n、类别概率分布 p 和整数种子 key，[Sample] 产生固定长度的
// 类别索引序列，其经验频率随 n 增大逼近 p。输出是输入的纯函数：
// 相同的 (n, p, key) 在任何进程、任何平台上产生逐字节相同的序列。
// 典型场景是为分布式测试数据生成可复现的类别标签流。
//
// # 随机源契约
//
// 可复现性要求随机算法本身固定并公开，而不是调用时的自由选择。
// 本包承诺使用 math/rand/v2 的 PCG（PCG-XSL-RR 128/64），
// 种子固定为双字 (key, 0)，每个输出位置按索引序调用一次 Float64()。
// 更换算法即是破坏兼容的契约变更。
//
// 每次 Sample 调用构造调用本地的随机源实例，绝不读取或推进任何
// 全局随机状态——全局状态在并发下无法保证可复现。
//
// # 落桶规则
//
// 概率向量先展开为累积边界序列 cp[0]=0, cp[i]=cp[i-1]+p[i-1]。
// 抽样值 x 归入第一个满足 cp[i] <= x < cp[i+1] 的类别（半开区间，
// 升序首配）：x 恰好等于边界 cp[i] 时归入类别 i，绝不归入前一类别。
// 零概率类别的区间为空，永远不会被选中。
//
// # 校验
//
// 概率必须非负、类别数必须小于 256、概率之和与 1 的偏差不得超过 1e-8，
// 违反返回 [ErrInvalidDistribution]；n 为负返回 [ErrNegativeCount]。
// 索引以 int8 输出，类别数上限保证其落在单字节范围内。
//
// # 并发安全
//
// Sample 无 I/O、无共享状态，可在任意数量的 goroutine 中并发调用。
package xsample
