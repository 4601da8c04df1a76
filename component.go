package multiaddr

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/multiformats/go-varint"
)

// Component 表示多地址的单个 (协议, 值) 段
type Component struct {
	protocol Protocol
	value    string
}

// Protocol 返回组件的协议
func (c Component) Protocol() Protocol {
	return c.protocol
}

// Value 返回组件的值（无数据协议为空串）
func (c Component) Value() string {
	return c.value
}

// String 返回组件的字符串表示
func (c Component) String() string {
	if c.protocol.Code == 0 {
		return ""
	}
	if c.protocol.Size == 0 {
		return "/" + c.protocol.Name
	}
	if c.protocol.Path {
		// 路径值自带前导 '/'
		return "/" + c.protocol.Name + c.value
	}
	return "/" + c.protocol.Name + "/" + c.value
}

// Bytes 返回组件的规范二进制编码
func (c Component) Bytes() []byte {
	if c.protocol.Code == 0 {
		return nil
	}

	var buf bytes.Buffer
	buf.Write(c.protocol.VCode)

	if c.protocol.Size != 0 {
		valueBytes, err := c.protocol.Transcoder.StringToBytes(c.value)
		if err != nil {
			// 组件构造时已验证
			panic(fmt.Errorf("component failed to encode value: %w", err))
		}
		if c.protocol.Size == LengthPrefixedVarSize {
			buf.Write(varint.ToUvarint(uint64(len(valueBytes))))
		}
		buf.Write(valueBytes)
	}

	return buf.Bytes()
}

// Multiaddr 返回仅包含该组件的多地址
func (c Component) Multiaddr() Multiaddr {
	return &multiaddr{bytes: c.Bytes()}
}

// NewComponent 从协议名称和值创建组件，应用与字符串解析相同的校验
//
// 无数据协议的 value 必须为空串。
func NewComponent(name, value string) (Component, error) {
	proto := ProtocolWithName(name)
	if proto.Code == 0 {
		return Component{}, fmt.Errorf("%w: %s", ErrUnknownProtocol, name)
	}

	if proto.Size == 0 {
		if value != "" {
			return Component{}, fmt.Errorf("protocol %s does not take a value", name)
		}
		return Component{protocol: proto}, nil
	}

	if value == "" {
		return Component{}, fmt.Errorf("%w: %s", ErrMissingValue, name)
	}

	// 路径值必须以 '/' 开头，否则字符串表示无法再解析
	if proto.Path && !strings.HasPrefix(value, "/") {
		return Component{}, fmt.Errorf("%s value must begin with '/': %s", name, value)
	}

	// 立即转换一轮以验证值并得到规范形式
	valueBytes, err := proto.Transcoder.StringToBytes(value)
	if err != nil {
		return Component{}, fmt.Errorf("failed to parse %s value %q: %w", name, value, err)
	}
	canonical, err := proto.Transcoder.BytesToString(valueBytes)
	if err != nil {
		return Component{}, fmt.Errorf("failed to canonicalize %s value %q: %w", name, value, err)
	}

	return Component{protocol: proto, value: canonical}, nil
}

// FromComponents 按顺序拼接组件，得到多地址
func FromComponents(comps ...Component) (Multiaddr, error) {
	var buf bytes.Buffer
	for i, c := range comps {
		if c.protocol.Code == 0 {
			return nil, fmt.Errorf("%w: zero component at index %d", ErrUnknownProtocol, i)
		}
		buf.Write(c.Bytes())
	}
	return &multiaddr{bytes: buf.Bytes()}, nil
}
