package multiaddr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
)

// Multiaddr 是自描述的网络地址接口
//
// 实现是不可变的：所有"修改"操作都返回新值，
// 因此 Multiaddr 可以在并发调用方之间无锁共享。
type Multiaddr interface {
	// Bytes 返回规范二进制表示（不要修改返回的字节，可能是共享的）
	Bytes() []byte

	// String 返回字符串表示
	String() string

	// Equal 判断两个地址是否相等（按规范二进制形式逐字节比较）
	Equal(Multiaddr) bool

	// Compare 按规范二进制形式比较两个地址
	// 返回值同 bytes.Compare
	Compare(Multiaddr) int

	// Protocols 返回地址包含的协议列表
	Protocols() []Protocol

	// Encapsulate 封装另一个地址
	Encapsulate(Multiaddr) Multiaddr

	// Decapsulate 解封装（移除匹配的后缀）
	Decapsulate(Multiaddr) Multiaddr

	// ValueForProtocol 获取指定协议代码的值
	ValueForProtocol(code int) (string, error)

	// ToTCPAddr 转换为 TCP 地址
	ToTCPAddr() (*net.TCPAddr, error)

	// ToUDPAddr 转换为 UDP 地址
	ToUDPAddr() (*net.UDPAddr, error)
}

// multiaddr 是 Multiaddr 接口的实现
type multiaddr struct {
	bytes []byte
}

// NewMultiaddr 从字符串创建多地址
func NewMultiaddr(s string) (Multiaddr, error) {
	b, err := stringToBytes(s)
	if err != nil {
		return nil, err
	}
	return &multiaddr{bytes: b}, nil
}

// NewMultiaddrBytes 从字节创建多地址
//
// 空缓冲区是合法输入，得到零段地址（String() 为空串）。
func NewMultiaddrBytes(b []byte) (Multiaddr, error) {
	if err := validateBytes(b); err != nil {
		return nil, err
	}
	// 复制一份避免外部修改
	buf := make([]byte, len(b))
	copy(buf, b)
	return &multiaddr{bytes: buf}, nil
}

// Cast 从字节强制创建多地址（不验证）
// 警告：仅用于已知有效的字节
func Cast(b []byte) Multiaddr {
	return &multiaddr{bytes: b}
}

// Bytes 返回规范二进制表示
func (m *multiaddr) Bytes() []byte {
	return m.bytes
}

// String 返回字符串表示
func (m *multiaddr) String() string {
	s, err := bytesToString(m.bytes)
	if err != nil {
		// 这不应该发生，因为我们在构造时已经验证了
		panic(fmt.Errorf("multiaddr failed to convert to string: %w", err))
	}
	return s
}

// Equal 判断两个地址是否相等
func (m *multiaddr) Equal(other Multiaddr) bool {
	if other == nil {
		return false
	}
	return bytes.Equal(m.bytes, other.Bytes())
}

// Compare 按规范二进制形式比较两个地址
func (m *multiaddr) Compare(other Multiaddr) int {
	if other == nil {
		return 1
	}
	return bytes.Compare(m.bytes, other.Bytes())
}

// Protocols 返回地址包含的协议列表
func (m *multiaddr) Protocols() []Protocol {
	var protocols []Protocol

	for b := m.bytes; len(b) > 0; {
		proto, _, n, err := readComponent(b)
		if err != nil {
			// 构造时已验证，不应该发生
			panic(err)
		}
		protocols = append(protocols, proto)
		b = b[n:]
	}

	return protocols
}

// Encapsulate 封装另一个地址
func (m *multiaddr) Encapsulate(other Multiaddr) Multiaddr {
	if other == nil {
		return m
	}

	mb := m.bytes
	ob := other.Bytes()

	result := make([]byte, len(mb)+len(ob))
	copy(result, mb)
	copy(result[len(mb):], ob)

	return &multiaddr{bytes: result}
}

// Decapsulate 解封装（移除匹配的后缀）
//
// 后缀匹配只发生在段边界上：逐段扫描找到与 other 完全重合的尾部。
// 单纯的字节后缀比较可能切在某一段中间，留下无法解码的字节。
func (m *multiaddr) Decapsulate(other Multiaddr) Multiaddr {
	if other == nil {
		return m
	}

	mb := m.bytes
	ob := other.Bytes()

	if len(ob) == 0 || len(ob) > len(mb) {
		return m
	}

	for off := 0; off < len(mb); {
		if len(mb)-off == len(ob) && bytes.Equal(mb[off:], ob) {
			return &multiaddr{bytes: mb[:off]}
		}

		_, _, n, err := readComponent(mb[off:])
		if err != nil {
			// 构造时已验证，不应该发生
			break
		}
		off += n
	}

	return m
}

// ValueForProtocol 获取指定协议代码的值
//
// 协议存在但无数据时返回空串；协议不在地址中时返回错误。
func (m *multiaddr) ValueForProtocol(code int) (string, error) {
	proto := ProtocolWithCode(code)
	if proto.Code == 0 {
		return "", fmt.Errorf("%w: code %d", ErrUnknownProtocol, code)
	}

	for b := m.bytes; len(b) > 0; {
		current, value, n, err := readComponent(b)
		if err != nil {
			return "", err
		}
		b = b[n:]

		if current.Code != code {
			continue
		}

		if current.Size == 0 {
			// 找到了，但无值
			return "", nil
		}
		return current.Transcoder.BytesToString(value)
	}

	return "", fmt.Errorf("protocol %s not found in multiaddr", proto.Name)
}

// MarshalBinary 实现 encoding.BinaryMarshaler
func (m *multiaddr) MarshalBinary() ([]byte, error) {
	return m.Bytes(), nil
}

// UnmarshalBinary 实现 encoding.BinaryUnmarshaler
func (m *multiaddr) UnmarshalBinary(data []byte) error {
	ma, err := NewMultiaddrBytes(data)
	if err != nil {
		return err
	}
	*m = *(ma.(*multiaddr))
	return nil
}

// MarshalText 实现 encoding.TextMarshaler
func (m *multiaddr) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (m *multiaddr) UnmarshalText(data []byte) error {
	ma, err := NewMultiaddr(string(data))
	if err != nil {
		return err
	}
	*m = *(ma.(*multiaddr))
	return nil
}

// MarshalJSON 实现 json.Marshaler
func (m *multiaddr) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON 实现 json.Unmarshaler
func (m *multiaddr) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	ma, err := NewMultiaddr(s)
	if err != nil {
		return err
	}
	*m = *(ma.(*multiaddr))
	return nil
}
