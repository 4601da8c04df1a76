package multiaddr

import "errors"

// 解析与解码错误
//
// 所有失败都以下列哨兵错误之一为根，具体出错位置通过 %w 包装附加，
// 调用方可用 errors.Is 判断类别。
var (
	// ErrEmptyMultiaddr 多地址字符串为空（或仅由斜杠组成）
	ErrEmptyMultiaddr = errors.New("empty multiaddr")

	// ErrNoLeadingSlash 多地址字符串必须以 '/' 开头
	ErrNoLeadingSlash = errors.New("multiaddr must begin with /")

	// ErrUnknownProtocol 协议名称或代码不在注册表中
	ErrUnknownProtocol = errors.New("unknown protocol")

	// ErrMissingValue 协议需要值但字符串已结束
	ErrMissingValue = errors.New("protocol requires a value")

	// ErrTrailingGarbage 协议名称位置出现无法解析的多余部分（如连续的 '/'）
	ErrTrailingGarbage = errors.New("unparsable segment")

	// ErrUnexpectedEOF 二进制数据在段结束前耗尽
	ErrUnexpectedEOF = errors.New("unexpected end of multiaddr bytes")

	// ErrMalformedVarint varint 编码无效（非最小编码或超出 uint64）
	ErrMalformedVarint = errors.New("malformed varint")

	// ErrInvalidAddressFormat IP 字面量不符合协议的地址语法
	ErrInvalidAddressFormat = errors.New("invalid address format")

	// ErrInvalidPort 端口不是有效的十进制整数
	ErrInvalidPort = errors.New("invalid port number")

	// ErrPortOutOfRange 端口超出 16 位范围
	ErrPortOutOfRange = errors.New("port out of range")
)
