package multiaddr

import (
	"errors"
	"fmt"
	"math"

	"github.com/multiformats/go-varint"
)

// codeToVarint 将协议代码转换为 varint 编码的字节
func codeToVarint(code int) []byte {
	if code < 0 || code > math.MaxInt32 {
		panic("invalid protocol code")
	}
	return varint.ToUvarint(uint64(code))
}

// readVarintCode 从字节流中读取 varint 编码的协议代码
// 返回：(code, bytes_read, error)
func readVarintCode(buf []byte) (int, int, error) {
	code, n, err := readUvarint(buf)
	if err != nil {
		return 0, 0, err
	}
	if code > math.MaxInt32 {
		// 只允许 32 位代码
		return 0, 0, fmt.Errorf("%w: protocol code exceeds 32 bits", ErrMalformedVarint)
	}
	return int(code), n, nil
}

// readUvarint 解码无符号 varint，要求最小编码
// 返回：(value, bytes_read, error)
func readUvarint(buf []byte) (uint64, int, error) {
	x, n, err := varint.FromUvarint(buf)
	switch {
	case err == nil:
		return x, n, nil
	case errors.Is(err, varint.ErrUnderflow):
		// 数据在 varint 中途耗尽
		return 0, 0, ErrUnexpectedEOF
	default:
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedVarint, err)
	}
}
