package multiaddr

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/multiformats/go-varint"
)

// stringToBytes 将多地址字符串转换为二进制格式
func stringToBytes(s string) ([]byte, error) {
	// 尾部斜杠不参与解析
	s = strings.TrimRight(s, "/")

	if len(s) == 0 {
		return nil, ErrEmptyMultiaddr
	}

	if !strings.HasPrefix(s, "/") {
		return nil, ErrNoLeadingSlash
	}

	var buf bytes.Buffer

	// 跳过第一个空元素
	parts := strings.Split(s, "/")[1:]

	// 逐段解析：协议名称后跟该协议的值（如果有）
	// idx 记录当前部分在原字符串中的序号，用于错误定位
	for idx := 0; len(parts) > 0; {
		name := parts[0]
		if name == "" {
			return nil, fmt.Errorf("%w: empty protocol name at segment %d", ErrTrailingGarbage, idx)
		}

		proto := ProtocolWithName(name)
		if proto.Code == 0 {
			return nil, fmt.Errorf("%w: %s (segment %d)", ErrUnknownProtocol, name, idx)
		}

		// 写入协议代码（varint）
		buf.Write(proto.VCode)
		parts = parts[1:]
		idx++

		// 协议无数据，继续下一个
		if proto.Size == 0 {
			continue
		}

		if len(parts) < 1 {
			return nil, fmt.Errorf("%w: %s (segment %d)", ErrMissingValue, name, idx-1)
		}

		// 路径协议消费剩余所有部分
		if proto.Path {
			parts = []string{"/" + strings.Join(parts, "/")}
		}

		value := parts[0]
		valueBytes, err := proto.Transcoder.StringToBytes(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s value %q (segment %d): %w", name, value, idx, err)
		}

		// 变长协议写入长度前缀
		if proto.Size == LengthPrefixedVarSize {
			buf.Write(varint.ToUvarint(uint64(len(valueBytes))))
		}

		buf.Write(valueBytes)
		parts = parts[1:]
		idx++
	}

	return buf.Bytes(), nil
}

// readComponent 从字节流读取一个 (协议, 值) 段
// 返回：(协议, 值字节, 消费的字节数, error)
func readComponent(b []byte) (Protocol, []byte, int, error) {
	code, n, err := readVarintCode(b)
	if err != nil {
		return Protocol{}, nil, 0, fmt.Errorf("failed to read protocol code: %w", err)
	}

	proto := ProtocolWithCode(code)
	if proto.Code == 0 {
		return Protocol{}, nil, 0, fmt.Errorf("%w: code %d", ErrUnknownProtocol, code)
	}

	if proto.Size == 0 {
		return proto, nil, n, nil
	}

	prefixLen, dataLen, err := sizeForAddr(proto, b[n:])
	if err != nil {
		return Protocol{}, nil, 0, fmt.Errorf("failed to read %s value length: %w", proto.Name, err)
	}

	if len(b[n+prefixLen:]) < dataLen {
		return Protocol{}, nil, 0, fmt.Errorf("%w: %s needs %d value bytes, have %d",
			ErrUnexpectedEOF, proto.Name, dataLen, len(b[n+prefixLen:]))
	}

	value := b[n+prefixLen : n+prefixLen+dataLen]
	return proto, value, n + prefixLen + dataLen, nil
}

// bytesToString 将二进制格式的多地址转换为字符串
//
// 空缓冲区是合法的零段多地址，其字符串形式为空串。
func bytesToString(b []byte) (string, error) {
	var sb strings.Builder

	for offset := 0; len(b) > 0; {
		proto, value, n, err := readComponent(b)
		if err != nil {
			return "", fmt.Errorf("at offset %d: %w", offset, err)
		}
		b = b[n:]
		offset += n

		sb.WriteString("/")
		sb.WriteString(proto.Name)

		if proto.Size == 0 {
			continue
		}

		if err := proto.Transcoder.ValidateBytes(value); err != nil {
			return "", fmt.Errorf("invalid data for protocol %s: %w", proto.Name, err)
		}

		valueStr, err := proto.Transcoder.BytesToString(value)
		if err != nil {
			return "", fmt.Errorf("failed to convert bytes for protocol %s: %w", proto.Name, err)
		}

		// 路径协议的值本身以 '/' 开头
		if !proto.Path {
			sb.WriteString("/")
		}
		sb.WriteString(valueStr)
	}

	return sb.String(), nil
}

// validateBytes 验证二进制多地址的格式
//
// 解码是全有或全无的：任何一段无效都会使整个缓冲区被拒绝。
func validateBytes(b []byte) error {
	for offset := 0; len(b) > 0; {
		proto, value, n, err := readComponent(b)
		if err != nil {
			return fmt.Errorf("at offset %d: %w", offset, err)
		}
		b = b[n:]
		offset += n

		if proto.Size == 0 {
			continue
		}

		if err := proto.Transcoder.ValidateBytes(value); err != nil {
			return fmt.Errorf("invalid data for protocol %s: %w", proto.Name, err)
		}
	}

	return nil
}

// sizeForAddr 计算协议数据部分的大小
// 返回：(length_prefix_bytes, data_bytes, error)
func sizeForAddr(proto Protocol, b []byte) (int, int, error) {
	switch {
	case proto.Size == 0:
		return 0, 0, nil
	case proto.Size == LengthPrefixedVarSize:
		length, n, err := readUvarint(b)
		if err != nil {
			return 0, 0, err
		}
		if length > uint64(len(b)-n) {
			// 长度前缀声明的数据超过剩余缓冲区
			return 0, 0, fmt.Errorf("%w: declared length %d exceeds remaining %d",
				ErrUnexpectedEOF, length, len(b)-n)
		}
		return n, int(length), nil
	default:
		// 固定大小（位转字节）
		return 0, proto.Size / 8, nil
	}
}
