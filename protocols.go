package multiaddr

// Protocol 描述一个 multiaddr 协议
type Protocol struct {
	// Name 协议名称（如 "ip4", "tcp"）
	Name string

	// Code 协议代码
	Code int

	// VCode 预计算的 varint 编码
	VCode []byte

	// Size 协议数据大小（位）
	// 0 表示无数据
	// -1 表示变长（length-prefixed）
	Size int

	// Path 是否为路径协议（终端协议，消费字符串的剩余部分）
	Path bool

	// Transcoder 编解码器
	Transcoder Transcoder
}

// String 返回协议名称
func (p Protocol) String() string {
	return p.Name
}

// LengthPrefixedVarSize 表示变长数据（使用 varint 前缀）
const LengthPrefixedVarSize = -1

// 协议代码常量（与 multiformats/multicodec 对齐）
// 参考：https://github.com/multiformats/multicodec/blob/master/table.csv
const (
	P_IP4         = 0x0004
	P_TCP         = 0x0006
	P_UDP         = 0x0111
	P_DCCP        = 0x0021
	P_IP6         = 0x0029
	P_IP6ZONE     = 0x002A
	P_IPCIDR      = 0x002B
	P_DNS         = 0x0035
	P_DNS4        = 0x0036
	P_DNS6        = 0x0037
	P_DNSADDR     = 0x0038
	P_SCTP        = 0x0084
	P_UDT         = 0x012D
	P_UTP         = 0x012E
	P_UNIX        = 0x0190
	P_P2P         = 0x01A5
	P_IPFS        = 0x01A5 // 向后兼容别名
	P_HTTP        = 0x01E0
	P_HTTPS       = 0x01BB
	P_TLS         = 0x01C0
	P_NOISE       = 0x01C6
	P_QUIC        = 0x01CC
	P_QUIC_V1     = 0x01CD
	P_WS          = 0x01DD
	P_WSS         = 0x01DE
	P_ONION       = 0x01BC
	P_ONION3      = 0x01BD
	P_GARLIC64    = 0x01BE
	P_GARLIC32    = 0x01BF
	P_P2P_CIRCUIT = 0x0122
	P_CIRCUIT     = 0x0122 // 别名
)

// Protocols 注册的全部协议，按注册顺序排列
//
// 表内容在编译期固定，运行时只读，可被任意并发调用方安全共享。
var Protocols = []Protocol{
	{Name: "ip4", Code: P_IP4, VCode: codeToVarint(P_IP4), Size: 32, Transcoder: TranscoderIP4},
	{Name: "tcp", Code: P_TCP, VCode: codeToVarint(P_TCP), Size: 16, Transcoder: TranscoderPort},
	{Name: "udp", Code: P_UDP, VCode: codeToVarint(P_UDP), Size: 16, Transcoder: TranscoderPort},
	{Name: "dccp", Code: P_DCCP, VCode: codeToVarint(P_DCCP), Size: 16, Transcoder: TranscoderPort},
	{Name: "ip6", Code: P_IP6, VCode: codeToVarint(P_IP6), Size: 128, Transcoder: TranscoderIP6},
	{Name: "ip6zone", Code: P_IP6ZONE, VCode: codeToVarint(P_IP6ZONE), Size: LengthPrefixedVarSize, Transcoder: TranscoderIP6Zone},
	{Name: "ipcidr", Code: P_IPCIDR, VCode: codeToVarint(P_IPCIDR), Size: 8, Transcoder: TranscoderIPCIDR},
	{Name: "dns", Code: P_DNS, VCode: codeToVarint(P_DNS), Size: LengthPrefixedVarSize, Transcoder: TranscoderDNS},
	{Name: "dns4", Code: P_DNS4, VCode: codeToVarint(P_DNS4), Size: LengthPrefixedVarSize, Transcoder: TranscoderDNS},
	{Name: "dns6", Code: P_DNS6, VCode: codeToVarint(P_DNS6), Size: LengthPrefixedVarSize, Transcoder: TranscoderDNS},
	{Name: "dnsaddr", Code: P_DNSADDR, VCode: codeToVarint(P_DNSADDR), Size: LengthPrefixedVarSize, Transcoder: TranscoderDNS},
	{Name: "sctp", Code: P_SCTP, VCode: codeToVarint(P_SCTP), Size: 16, Transcoder: TranscoderPort},
	{Name: "udt", Code: P_UDT, VCode: codeToVarint(P_UDT), Size: 0},
	{Name: "utp", Code: P_UTP, VCode: codeToVarint(P_UTP), Size: 0},
	{Name: "unix", Code: P_UNIX, VCode: codeToVarint(P_UNIX), Size: LengthPrefixedVarSize, Path: true, Transcoder: TranscoderUnix},
	{Name: "p2p", Code: P_P2P, VCode: codeToVarint(P_P2P), Size: LengthPrefixedVarSize, Transcoder: TranscoderP2P},
	{Name: "http", Code: P_HTTP, VCode: codeToVarint(P_HTTP), Size: 0},
	{Name: "https", Code: P_HTTPS, VCode: codeToVarint(P_HTTPS), Size: 0},
	{Name: "tls", Code: P_TLS, VCode: codeToVarint(P_TLS), Size: 0},
	{Name: "noise", Code: P_NOISE, VCode: codeToVarint(P_NOISE), Size: 0},
	{Name: "quic", Code: P_QUIC, VCode: codeToVarint(P_QUIC), Size: 0},
	{Name: "quic-v1", Code: P_QUIC_V1, VCode: codeToVarint(P_QUIC_V1), Size: 0},
	{Name: "ws", Code: P_WS, VCode: codeToVarint(P_WS), Size: 0},
	{Name: "wss", Code: P_WSS, VCode: codeToVarint(P_WSS), Size: 0},
	{Name: "onion", Code: P_ONION, VCode: codeToVarint(P_ONION), Size: 96, Transcoder: TranscoderOnion},
	{Name: "onion3", Code: P_ONION3, VCode: codeToVarint(P_ONION3), Size: 296, Transcoder: TranscoderOnion3},
	{Name: "garlic64", Code: P_GARLIC64, VCode: codeToVarint(P_GARLIC64), Size: LengthPrefixedVarSize, Transcoder: TranscoderGarlic64},
	{Name: "garlic32", Code: P_GARLIC32, VCode: codeToVarint(P_GARLIC32), Size: LengthPrefixedVarSize, Transcoder: TranscoderGarlic32},
	{Name: "p2p-circuit", Code: P_P2P_CIRCUIT, VCode: codeToVarint(P_P2P_CIRCUIT), Size: 0},
}

// 按代码 / 名称索引的注册表，init 时从 Protocols 构建
var (
	protocolsByCode = make(map[int]Protocol)
	protocolsByName = make(map[string]Protocol)
)

func init() {
	for _, p := range Protocols {
		protocolsByCode[p.Code] = p
		protocolsByName[p.Name] = p
	}

	// ipfs 是 p2p 的历史名称，两个名称编码为同一个协议
	protocolsByName["ipfs"] = protocolsByCode[P_P2P]
}

// ProtocolWithCode 根据协议代码获取协议
// 如果协议不存在，返回零值协议（Code = 0）
func ProtocolWithCode(code int) Protocol {
	return protocolsByCode[code]
}

// ProtocolWithName 根据协议名称获取协议
// 如果协议不存在，返回零值协议（Code = 0）
func ProtocolWithName(name string) Protocol {
	return protocolsByName[name]
}

// ProtocolsWithString 返回多地址字符串中的所有协议名称
// 空字符串返回 nil
func ProtocolsWithString(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}

	m, err := NewMultiaddr(s)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, p := range m.Protocols() {
		names = append(names, p.Name)
	}
	return names, nil
}
