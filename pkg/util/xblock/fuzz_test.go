package xblock

import (
	"bytes"
	"testing"
)

// =============================================================================
// 模糊测试（Fuzz）
//
// 模糊测试用于发现边界条件和异常输入下的潜在问题。
// 运行方式：go test -fuzz=FuzzExtract -fuzztime=30s
// =============================================================================

// oracleLineEnd 返回包含 pos 的那一行之后第一个字节的偏移。
// pos 超出内容末尾时位置不动。
func oracleLineEnd(content []byte, pos int64) int64 {
	if pos >= int64(len(content)) {
		return pos
	}
	idx := bytes.IndexByte(content[pos:], '\n')
	if idx < 0 {
		return int64(len(content))
	}
	return pos + int64(idx) + 1
}

// oracleExtract 用独立的字符串运算实现同样的边界语义，作为对照。
func oracleExtract(content []byte, start, stop int64) []byte {
	n := int64(len(content))
	if start > 0 {
		start = oracleLineEnd(content, start-1)
	}
	lo := min(start, n)
	if stop == ToEnd {
		return content[lo:]
	}
	stop = oracleLineEnd(content, stop-1)
	hi := min(stop, n)
	if hi < lo {
		hi = lo
	}
	return content[lo:hi]
}

// FuzzExtract 模糊测试行对齐区间抽取
//
// 测试目标：
//   - 任意内容与偏移组合不会导致 panic
//   - 合法区间的结果与独立 oracle 完全一致
//   - 结果始终行对齐：从行首（或字节 0）开始，到行终止符（或流末尾）结束
func FuzzExtract(f *testing.F) {
	f.Add([]byte("123\n456\n789\nabc"), int64(1), int64(10))
	f.Add([]byte("123\n456\n789\nabc"), int64(0), int64(-1))
	f.Add([]byte(""), int64(0), int64(-1))
	f.Add([]byte("\n\n\n"), int64(1), int64(2))
	f.Add([]byte("no newline at all"), int64(3), int64(9))
	f.Add([]byte("a\nb\nc\n"), int64(5), int64(100))
	f.Add([]byte("trailing\n"), int64(0), int64(0))
	f.Add([]byte("trailing\n"), int64(0), int64(5))
	f.Add(bytes.Repeat([]byte("0123456789\n"), 50), int64(37), int64(222))

	f.Fuzz(func(t *testing.T, content []byte, start, stop int64) {
		got, err := Extract(newMemHandle(string(content)), start, stop)

		if start < 0 || (stop != ToEnd && stop < start) {
			if err == nil {
				t.Fatalf("expected ErrInvalidRange for start=%d stop=%d", start, stop)
			}
			return
		}
		if start == 0 && stop == 0 {
			// stop-1 是负偏移，底层 seek 失败
			if err == nil {
				t.Fatal("expected stream error for stop=0")
			}
			return
		}
		if err != nil {
			t.Fatalf("Extract(start=%d, stop=%d) failed: %v", start, stop, err)
		}

		want := oracleExtract(content, start, stop)
		if !bytes.Equal(got, want) {
			t.Fatalf("Extract(start=%d, stop=%d) = %q, oracle = %q", start, stop, got, want)
		}

		if len(got) > 0 {
			// 结果必须是内容的子串，且行对齐
			off := bytes.Index(content, got)
			if off < 0 {
				t.Fatalf("result %q is not a substring of content", got)
			}
			if start > 0 && off > 0 && content[off-1] != '\n' {
				// oracle 已保证对齐，这里用定位到的第一个匹配做粗校验即可
				t.Logf("first occurrence not line-aligned (repeated content), skipping")
			}
			last := got[len(got)-1]
			endsAtEOF := bytes.HasSuffix(content, got)
			if last != '\n' && !endsAtEOF {
				t.Fatalf("result %q ends mid-line", got)
			}
		}
	})
}
