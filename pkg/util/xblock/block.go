package xblock

import (
	"fmt"
	"io"
)

// ToEnd 作为 stop 传入时表示"读取到流末尾"。
const ToEnd int64 = -1

// Extract 从流句柄中取出 [start, stop) 字节区间，并向整行边界扩展。
//
// 返回的字节块总是从行首（或字节 0）开始，到行终止符（或流末尾）结束，
// 绝不在返回边界处截断任何一行：
//   - start > 0 时，先定位到 start-1 并烧掉 start 所落入的残行，
//     实际起点是包含 start-1 的那一行之后的第一个字节；
//   - stop 跨行时，包含 stop 边界的那一整行会被完整纳入；
//   - stop 为 ToEnd 时读取到流末尾。
//
// 区间超出流末尾不是错误，返回剩余字节（可能为空）。
// 底层流未变化时，相同参数的两次调用返回相同内容。
//
// 注意：相邻的字节区间请求不保证在调用方指定的切点处精确切开——
// 实际分界移动到包含切点的那一行的行尾，跨越切点的整行归入前一个块。
func Extract(h Handle, start, stop int64) ([]byte, error) {
	if start < 0 || (stop != ToEnd && stop < start) {
		return nil, fmt.Errorf("%w: start=%d stop=%d", ErrInvalidRange, start, stop)
	}

	if start > 0 {
		// 烧掉 start 落入的残行，起点移到下一行行首
		if err := h.Seek(start - 1); err != nil {
			return nil, wrapStream("seek", start-1, err)
		}
		line, err := h.ReadLine()
		if err != nil {
			return nil, wrapStream("read line", start-1, err)
		}
		start = start - 1 + int64(len(line))
	}

	if stop == ToEnd {
		if err := h.Seek(start); err != nil {
			return nil, wrapStream("seek", start, err)
		}
		data, err := io.ReadAll(h)
		if err != nil {
			return nil, wrapStream("read", start, err)
		}
		return data, nil
	}

	// 吃掉包含 stop-1 的整行，终点落在该行行尾
	stop--
	if err := h.Seek(stop); err != nil {
		return nil, wrapStream("seek", stop, err)
	}
	line, err := h.ReadLine()
	if err != nil {
		return nil, wrapStream("read line", stop, err)
	}
	stop += int64(len(line))

	if err := h.Seek(start); err != nil {
		return nil, wrapStream("seek", start, err)
	}
	buf := make([]byte, stop-start)
	n, err := io.ReadFull(h, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		// 区间超出流末尾：返回实际读到的字节
		err = nil
	}
	if err != nil {
		return nil, wrapStream("read", start, err)
	}
	return buf[:n], nil
}

// ExtractFile 打开 path 并委托 Extract，句柄在所有退出路径上保证关闭。
//
// codec 为空串时按普通文件打开；否则从注册表解析打开函数，
// 名称未登记时返回 ErrUnknownCodec。
func ExtractFile(path string, start, stop int64, codec string) (_ []byte, err error) {
	open, ok := lookup(codec)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, codec)
	}
	h, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrStream, path, err)
	}
	defer func() {
		if cerr := h.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrStream, path, cerr)
		}
	}()
	return Extract(h, start, stop)
}

func wrapStream(op string, offset int64, err error) error {
	return fmt.Errorf("%w: %s at offset %d: %w", ErrStream, op, offset, err)
}
