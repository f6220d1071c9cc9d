package xblock

import "github.com/cespare/xxhash/v2"

// Fingerprint 返回字节块的 xxhash 指纹。
//
// 块是自包含的完整行集合，指纹可作为块的内容标识，
// 供调用方做去重、缓存键或跨进程比对。
// xxhash 是确定性哈希，同一内容在所有进程中产生相同指纹。
func Fingerprint(block []byte) uint64 {
	return xxhash.Sum64(block)
}
