package multiaddr

import (
	"fmt"
	"net"
	"strconv"
)

// ipFromMultiaddr 提取地址中的 IP（IPv4 优先）
func (m *multiaddr) ipFromMultiaddr() (net.IP, error) {
	ipStr, err := m.ValueForProtocol(P_IP4)
	if err != nil {
		ipStr, err = m.ValueForProtocol(P_IP6)
		if err != nil {
			return nil, fmt.Errorf("no IP address in multiaddr")
		}
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return nil, fmt.Errorf("invalid IP address: %s", ipStr)
	}
	return ip, nil
}

// ToTCPAddr 将多地址转换为 *net.TCPAddr
func (m *multiaddr) ToTCPAddr() (*net.TCPAddr, error) {
	ip, err := m.ipFromMultiaddr()
	if err != nil {
		return nil, err
	}

	portStr, err := m.ValueForProtocol(P_TCP)
	if err != nil {
		return nil, fmt.Errorf("no TCP port in multiaddr")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port: %s", portStr)
	}

	return &net.TCPAddr{IP: ip, Port: port}, nil
}

// ToUDPAddr 将多地址转换为 *net.UDPAddr
func (m *multiaddr) ToUDPAddr() (*net.UDPAddr, error) {
	ip, err := m.ipFromMultiaddr()
	if err != nil {
		return nil, err
	}

	portStr, err := m.ValueForProtocol(P_UDP)
	if err != nil {
		return nil, fmt.Errorf("no UDP port in multiaddr")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port: %s", portStr)
	}

	return &net.UDPAddr{IP: ip, Port: port}, nil
}

// FromTCPAddr 从 *net.TCPAddr 创建多地址
func FromTCPAddr(addr *net.TCPAddr) (Multiaddr, error) {
	if addr == nil {
		return nil, fmt.Errorf("nil TCP address")
	}
	return fromIPAndPort(addr.IP, "tcp", addr.Port)
}

// FromUDPAddr 从 *net.UDPAddr 创建多地址
func FromUDPAddr(addr *net.UDPAddr) (Multiaddr, error) {
	if addr == nil {
		return nil, fmt.Errorf("nil UDP address")
	}
	return fromIPAndPort(addr.IP, "udp", addr.Port)
}

// FromNetAddr 从 net.Addr 创建多地址
func FromNetAddr(addr net.Addr) (Multiaddr, error) {
	if addr == nil {
		return nil, fmt.Errorf("nil address")
	}

	switch a := addr.(type) {
	case *net.TCPAddr:
		return FromTCPAddr(a)
	case *net.UDPAddr:
		return FromUDPAddr(a)
	default:
		return nil, fmt.Errorf("unsupported address type: %T", addr)
	}
}

// fromIPAndPort 按 IP 版本选择 ip4/ip6 并拼装地址
func fromIPAndPort(ip net.IP, transport string, port int) (Multiaddr, error) {
	proto := "ip6"
	if ip4 := ip.To4(); ip4 != nil {
		proto = "ip4"
		ip = ip4
	}

	return NewMultiaddr(fmt.Sprintf("/%s/%s/%s/%d", proto, ip.String(), transport, port))
}
