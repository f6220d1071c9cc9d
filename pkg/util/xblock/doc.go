// Package xblock 提供行对齐的字节区间抽取。
//
// 从可寻址字节流中取出 [start, stop) 区间，并把边界扩展到整行：
// 返回的块从行首开始、到行尾结束，绝不截断任何一行。
// 典型场景是把大文本文件按字节切分给多个 worker 并行处理，
// 每个 worker 拿到的块都是自包含的完整行集合。
//
// # 核心函数
//
//   - [Extract]: 在已打开的流句柄上抽取行对齐区间
//   - [ExtractFile]: 按路径 + codec 名称打开文件并抽取，句柄自动关闭
//   - [Fingerprint]: 块内容的 xxhash 指纹，供调用方对边界重叠行去重
//
// # 边界语义
//
// start 落在行中间时，该残行被丢弃，抽取从下一行行首开始（start 为 0 除外）。
// stop 落在行中间时，包含 stop 的整行被完整纳入。stop 传 [ToEnd] 表示读到流末尾。
// 区间超出流末尾返回剩余字节（可能为空），不是错误。
//
// 注意：相邻的字节区间请求不保证在切点处精确切开：实际分界移动到
// 包含切点的那一行的行尾，跨越切点的整行归入前一个块。调用方应请求
// 互不重叠的字节区间，并可用 [Fingerprint] 对块做内容级去重或缓存。
//
// # codec 注册表
//
// ExtractFile 通过进程级注册表把 codec 名称解析为打开函数。
// 内置 codec：
//
//   - ""（空串）: 普通文件
//   - "gzip": github.com/klauspost/compress/gzip
//   - "zstd": github.com/klauspost/compress/zstd
//   - "lz4":  github.com/pierrec/lz4/v4
//
// 压缩句柄在解压后的字节空间上提供绝对 Seek：向后定位通过回卷重新解码实现，
// 代价与目标偏移成正比，适合一次抽取一个块的访问模式，不适合频繁随机访问。
// 自定义 codec 通过 [Register] 在进程启动阶段登记，注册表初始化后只读。
//
// # 错误处理
//
// 预定义错误变量支持 [errors.Is] 判断：
//
//	_, err := xblock.ExtractFile("data.txt", 0, 100, "br")
//	if errors.Is(err, xblock.ErrUnknownCodec) {
//	    // codec 未注册
//	}
//
// # 并发安全
//
// Extract 在一次调用内独占借用句柄，同一句柄不得被并发调用共享；
// 不同句柄（或不同路径）上的调用完全并行，无需任何协调。
package xblock
