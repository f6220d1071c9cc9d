package xblock

import "errors"

var (
	// ErrStream 表示底层流操作失败（seek/read/close 出错、句柄已关闭等）。
	// 具体原因通过错误链携带，可用 errors.Is / errors.As 继续展开。
	ErrStream = errors.New("xblock: stream operation failed")

	// ErrUnknownCodec 表示 codec 名称未在注册表中登记。
	ErrUnknownCodec = errors.New("xblock: unknown codec")

	// ErrInvalidRange 表示字节区间参数非法（start < 0，或 stop 既非 ToEnd 又小于 start）。
	ErrInvalidRange = errors.New("xblock: invalid byte range")
)
