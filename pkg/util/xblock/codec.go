package xblock

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// OpenFunc 根据路径打开一个流句柄。
type OpenFunc func(path string) (Handle, error)

// registry 是进程级 codec 注册表：codec 名称 -> 打开函数。
// 初始化完成后只读，Extract 路径上只做查找，不做任何写入。
var registry = map[string]OpenFunc{
	"":     openPlain,
	"gzip": openCodec(newGzipReader),
	"zstd": openCodec(newZstdReader),
	"lz4":  openCodec(newLZ4Reader),
}

// Register 向注册表登记一个 codec 打开函数。
//
// 注册表在初始化完成后只读：Register 只应在进程启动阶段调用，
// 不得与 ExtractFile 并发执行。重复注册同名 codec 时后者覆盖前者。
func Register(name string, open OpenFunc) {
	registry[name] = open
}

func lookup(name string) (OpenFunc, bool) {
	open, ok := registry[name]
	return open, ok
}

// decodeFunc 将底层文件流包装为解压读取器，并返回解码器的关闭函数。
type decodeFunc func(r io.Reader) (io.Reader, func() error, error)

func newGzipReader(r io.Reader) (io.Reader, func() error, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	return zr, zr.Close, nil
}

func newZstdReader(r io.Reader) (io.Reader, func() error, error) {
	// 单 goroutine 解码：句柄本身不可并发使用，多 worker 解码没有收益
	d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, nil, err
	}
	return d, func() error { d.Close(); return nil }, nil
}

func newLZ4Reader(r io.Reader) (io.Reader, func() error, error) {
	return lz4.NewReader(r), func() error { return nil }, nil
}

// openCodec 把解码器工厂适配成 OpenFunc。
func openCodec(dec decodeFunc) OpenFunc {
	return func(path string) (Handle, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		dr, closeDec, err := dec(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return &codecHandle{
			f:        f,
			dec:      dec,
			closeDec: closeDec,
			br:       bufio.NewReader(dr),
		}, nil
	}
}

// codecHandle 在解压后的字节空间上提供绝对 Seek。
//
// 压缩流本身不可随机访问：向后 Seek 通过回卷底层文件并重建解码器实现，
// 向前 Seek 通过顺序解码丢弃实现。off 始终记录解压空间中的当前位置。
type codecHandle struct {
	f        *os.File
	dec      decodeFunc
	closeDec func() error
	br       *bufio.Reader
	off      int64
}

// rewind 回到解压流起点：底层文件归零并重建解码器。
func (h *codecHandle) rewind() error {
	_ = h.closeDec()
	if _, err := h.f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	dr, closeDec, err := h.dec(h.f)
	if err != nil {
		return err
	}
	h.closeDec = closeDec
	h.br.Reset(dr)
	h.off = 0
	return nil
}

func (h *codecHandle) Seek(offset int64) error {
	if offset < 0 {
		return fmt.Errorf("negative offset %d: %w", offset, os.ErrInvalid)
	}
	if offset < h.off {
		if err := h.rewind(); err != nil {
			return err
		}
	}
	if offset > h.off {
		n, err := io.CopyN(io.Discard, h.br, offset-h.off)
		h.off += n
		// 允许定位到流末尾之后，后续读取自然返回空
		if err != nil && err != io.EOF {
			return err
		}
	}
	return nil
}

func (h *codecHandle) ReadLine() ([]byte, error) {
	line, err := readLine(h.br)
	h.off += int64(len(line))
	return line, err
}

func (h *codecHandle) Read(p []byte) (int, error) {
	n, err := h.br.Read(p)
	h.off += int64(n)
	return n, err
}

func (h *codecHandle) Close() error {
	return errors.Join(h.closeDec(), h.f.Close())
}
