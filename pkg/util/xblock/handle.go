package xblock

import (
	"bufio"
	"io"
	"os"
)

// Handle 是字节流句柄抽象。
//
// Extract 在一次调用内独占借用句柄；seek/read 不可重入，
// 同一句柄不得被多个并发调用共享。
//
// 语义约定：
//   - Seek 以绝对字节偏移定位，允许定位到流末尾之后（后续读取返回空）。
//   - ReadLine 读取至下一个 '\n'（含）或流末尾，到达末尾时返回已读到的字节
//     （可能为空切片），不以 io.EOF 作为错误返回。
//   - Read 遵循 io.Reader 约定，流末尾返回 io.EOF。
type Handle interface {
	io.Reader
	io.Closer

	// Seek 定位到绝对字节偏移 offset。
	Seek(offset int64) error

	// ReadLine 读取一行（含行终止符），流末尾返回剩余字节。
	ReadLine() ([]byte, error)
}

// fileHandle 基于 *os.File 的普通文件句柄，Seek 直接下沉到文件系统。
type fileHandle struct {
	f  *os.File
	br *bufio.Reader
}

func newFileHandle(f *os.File) *fileHandle {
	return &fileHandle{f: f, br: bufio.NewReader(f)}
}

// openPlain 是 codec 为空时的默认打开方式。
func openPlain(path string) (Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return newFileHandle(f), nil
}

func (h *fileHandle) Seek(offset int64) error {
	if _, err := h.f.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	// bufio 缓冲与文件位置已不一致，必须重置
	h.br.Reset(h.f)
	return nil
}

func (h *fileHandle) ReadLine() ([]byte, error) {
	return readLine(h.br)
}

func (h *fileHandle) Read(p []byte) (int, error) {
	return h.br.Read(p)
}

func (h *fileHandle) Close() error {
	return h.f.Close()
}

// readLine 读取至 '\n'（含）或流末尾。末尾不足一行时返回已读字节，不报 io.EOF。
func readLine(br *bufio.Reader) ([]byte, error) {
	line, err := br.ReadBytes('\n')
	if err == io.EOF {
		return line, nil
	}
	return line, err
}
