// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xblock: 行对齐的字节区间抽取，codec 注册表支持 gzip/zstd/lz4
//   - xsample: 确定性加权类别采样，固定 PCG 随机源保证跨平台可复现
//
// 设计原则：
//   - 每次调用语义自包含，无共享可变状态
//   - 边界行为精确声明并有测试背书
//   - 失败直接上抛，不在包内重试或恢复
package util
