package multiaddr

import (
	"testing"
)

// TestSplit 测试传输地址与 PeerID 的分离
func TestSplit(t *testing.T) {
	tests := []struct {
		name          string
		addr          string
		wantTransport string
		wantPeerID    string
	}{
		{
			"With peer ID",
			"/ip4/1.2.3.4/tcp/4001/p2p/" + testPeerID,
			"/ip4/1.2.3.4/tcp/4001",
			testPeerID,
		},
		{
			"Without peer ID",
			"/ip4/1.2.3.4/tcp/4001",
			"/ip4/1.2.3.4/tcp/4001",
			"",
		},
		{
			"Peer ID only",
			"/p2p/" + testPeerID,
			"",
			testPeerID,
		},
		{
			"Relay suffix after peer ID",
			"/ip4/1.2.3.4/tcp/4001/p2p/" + testPeerID + "/p2p-circuit",
			"/ip4/1.2.3.4/tcp/4001",
			testPeerID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ma, err := NewMultiaddr(tt.addr)
			if err != nil {
				t.Fatalf("NewMultiaddr() error = %v", err)
			}

			transport, peerID := Split(ma)

			if tt.wantTransport == "" {
				if transport != nil {
					t.Errorf("Split() transport = %v, want nil", transport)
				}
			} else if transport == nil || transport.String() != tt.wantTransport {
				t.Errorf("Split() transport = %v, want %v", transport, tt.wantTransport)
			}

			if peerID != tt.wantPeerID {
				t.Errorf("Split() peerID = %v, want %v", peerID, tt.wantPeerID)
			}
		})
	}
}

// TestSplit_ValueContainsP2P 测试值里恰好出现 /p2p/ 不会被当作 P2P 组件
func TestSplit_ValueContainsP2P(t *testing.T) {
	cases := []string{
		"/unix/a/p2p/b",
		"/dns/p2p/tcp/80",
	}

	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			ma, err := NewMultiaddr(c)
			if err != nil {
				t.Fatalf("NewMultiaddr() error = %v", err)
			}

			transport, peerID := Split(ma)
			if peerID != "" {
				t.Errorf("Split() peerID = %q, want empty", peerID)
			}
			if !transport.Equal(ma) {
				t.Errorf("Split() transport = %v, want the whole address", transport)
			}

			if _, err := GetPeerID(ma); err == nil {
				t.Error("GetPeerID() should fail, the address has no p2p component")
			}
		})
	}
}

// TestJoin 测试传输地址与 PeerID 的合并
func TestJoin(t *testing.T) {
	transport, _ := NewMultiaddr("/ip4/1.2.3.4/tcp/4001")

	joined := Join(transport, testPeerID)
	expected := "/ip4/1.2.3.4/tcp/4001/p2p/" + testPeerID
	if joined.String() != expected {
		t.Errorf("Join() = %v, want %v", joined.String(), expected)
	}

	// 空 PeerID 返回原地址
	if !Join(transport, "").Equal(transport) {
		t.Error("Join(transport, \"\") should return transport")
	}

	// nil 传输地址只得到 P2P 组件
	p2pOnly := Join(nil, testPeerID)
	if p2pOnly.String() != "/p2p/"+testPeerID {
		t.Errorf("Join(nil, peerID) = %v, want /p2p/%s", p2pOnly.String(), testPeerID)
	}
}

// TestSplitJoinRoundTrip 测试分离再合并还原原地址
func TestSplitJoinRoundTrip(t *testing.T) {
	original, _ := NewMultiaddr("/ip4/1.2.3.4/tcp/4001/p2p/" + testPeerID)

	transport, peerID := Split(original)
	rejoined := Join(transport, peerID)

	if !rejoined.Equal(original) {
		t.Errorf("Join(Split(m)) = %v, want %v", rejoined.String(), original.String())
	}
}

// TestFilterAddrs 测试地址过滤
func TestFilterAddrs(t *testing.T) {
	addrs := []Multiaddr{}
	for _, s := range []string{
		"/ip4/127.0.0.1/tcp/4001",
		"/ip4/127.0.0.1/udp/4001/quic-v1",
		"/ip6/::1/tcp/4001",
	} {
		ma, err := NewMultiaddr(s)
		if err != nil {
			t.Fatalf("NewMultiaddr(%s) error = %v", s, err)
		}
		addrs = append(addrs, ma)
	}

	tcpOnly := FilterAddrs(addrs, IsTCPMultiaddr)
	if len(tcpOnly) != 2 {
		t.Errorf("FilterAddrs(TCP) count = %d, want 2", len(tcpOnly))
	}

	ip4Only := FilterAddrs(addrs, IsIP4Multiaddr)
	if len(ip4Only) != 2 {
		t.Errorf("FilterAddrs(IP4) count = %d, want 2", len(ip4Only))
	}

	none := FilterAddrs(addrs, func(Multiaddr) bool { return false })
	if len(none) != 0 {
		t.Errorf("FilterAddrs(none) count = %d, want 0", len(none))
	}
}

// TestUniqueAddrs 测试地址去重
func TestUniqueAddrs(t *testing.T) {
	ma1, _ := NewMultiaddr("/ip4/127.0.0.1/tcp/4001")
	ma2, _ := NewMultiaddr("/ip4/127.0.0.1/tcp/4001")
	ma3, _ := NewMultiaddr("/ip4/127.0.0.1/tcp/4002")

	unique := UniqueAddrs([]Multiaddr{ma1, ma2, ma3})
	if len(unique) != 2 {
		t.Fatalf("UniqueAddrs() count = %d, want 2", len(unique))
	}

	// 保持首次出现的顺序
	if !unique[0].Equal(ma1) || !unique[1].Equal(ma3) {
		t.Error("UniqueAddrs() should preserve first-seen order")
	}
}

// TestHasProtocol 测试协议包含检查
func TestHasProtocol(t *testing.T) {
	ma, _ := NewMultiaddr("/ip4/127.0.0.1/udp/4001/quic-v1")

	if !HasProtocol(ma, P_IP4) {
		t.Error("HasProtocol(P_IP4) = false, want true")
	}
	if !HasProtocol(ma, P_QUIC_V1) {
		t.Error("HasProtocol(P_QUIC_V1) = false, want true")
	}
	if HasProtocol(ma, P_TCP) {
		t.Error("HasProtocol(P_TCP) = true, want false")
	}
	if HasProtocol(nil, P_IP4) {
		t.Error("HasProtocol(nil) = true, want false")
	}

	if !IsUDPMultiaddr(ma) || IsTCPMultiaddr(ma) {
		t.Error("transport predicates disagree with address contents")
	}
	if !IsIPMultiaddr(ma) || IsIP6Multiaddr(ma) {
		t.Error("IP predicates disagree with address contents")
	}
}

// TestGetPeerID 测试 PeerID 提取
func TestGetPeerID(t *testing.T) {
	ma, _ := NewMultiaddr("/ip4/1.2.3.4/tcp/4001/p2p/" + testPeerID)

	peerID, err := GetPeerID(ma)
	if err != nil {
		t.Fatalf("GetPeerID() error = %v", err)
	}
	if peerID != testPeerID {
		t.Errorf("GetPeerID() = %v, want %v", peerID, testPeerID)
	}

	noPeer, _ := NewMultiaddr("/ip4/1.2.3.4/tcp/4001")
	if _, err := GetPeerID(noPeer); err == nil {
		t.Error("GetPeerID() should fail for address without peer ID")
	}
}

// TestWithPeerID 测试 PeerID 添加与替换
func TestWithPeerID(t *testing.T) {
	ma, _ := NewMultiaddr("/ip4/1.2.3.4/tcp/4001")

	withPeer, err := WithPeerID(ma, testPeerID)
	if err != nil {
		t.Fatalf("WithPeerID() error = %v", err)
	}
	expected := "/ip4/1.2.3.4/tcp/4001/p2p/" + testPeerID
	if withPeer.String() != expected {
		t.Errorf("WithPeerID() = %v, want %v", withPeer.String(), expected)
	}

	// 替换已有的 PeerID
	otherPeerID := "QmcgpsyWgH8Y8ajJz1Cu72KnS5uo2Aa2LpzU7kinSupNKC"
	replaced, err := WithPeerID(withPeer, otherPeerID)
	if err != nil {
		t.Fatalf("WithPeerID() error = %v", err)
	}
	if replaced.String() != "/ip4/1.2.3.4/tcp/4001/p2p/"+otherPeerID {
		t.Errorf("WithPeerID() replace = %v", replaced.String())
	}
}

// TestWithoutPeerID 测试 PeerID 移除
func TestWithoutPeerID(t *testing.T) {
	ma, _ := NewMultiaddr("/ip4/1.2.3.4/tcp/4001/p2p/" + testPeerID)

	stripped := WithoutPeerID(ma)
	if stripped.String() != "/ip4/1.2.3.4/tcp/4001" {
		t.Errorf("WithoutPeerID() = %v, want /ip4/1.2.3.4/tcp/4001", stripped.String())
	}

	if WithoutPeerID(nil) != nil {
		t.Error("WithoutPeerID(nil) should return nil")
	}
}

// TestSplitFirst 测试首组件分离
func TestSplitFirst(t *testing.T) {
	ma, _ := NewMultiaddr("/ip4/127.0.0.1/tcp/4001")

	first, rest := SplitFirst(ma)
	if first.Protocol().Code != P_IP4 {
		t.Errorf("SplitFirst() first.Code = %d, want %d", first.Protocol().Code, P_IP4)
	}
	if first.Value() != "127.0.0.1" {
		t.Errorf("SplitFirst() first.Value = %v, want 127.0.0.1", first.Value())
	}
	if rest == nil || rest.String() != "/tcp/4001" {
		t.Errorf("SplitFirst() rest = %v, want /tcp/4001", rest)
	}

	// 单组件地址的剩余部分为 nil
	single, _ := NewMultiaddr("/tcp/4001")
	_, rest = SplitFirst(single)
	if rest != nil {
		t.Errorf("SplitFirst(single) rest = %v, want nil", rest)
	}

	// 零段地址
	empty, _ := NewMultiaddrBytes(nil)
	comp, rest := SplitFirst(empty)
	if comp.Protocol().Code != 0 || rest != nil {
		t.Error("SplitFirst(empty) should return zero component and nil")
	}
}

// TestForEach 测试组件遍历
func TestForEach(t *testing.T) {
	ma, _ := NewMultiaddr("/ip4/127.0.0.1/udp/4001/quic-v1")

	var names []string
	ForEach(ma, func(c Component) bool {
		names = append(names, c.Protocol().Name)
		return true
	})

	want := []string{"ip4", "udp", "quic-v1"}
	if len(names) != len(want) {
		t.Fatalf("ForEach() visited %d components, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ForEach()[%d] = %s, want %s", i, names[i], want[i])
		}
	}

	// 提前终止
	count := 0
	ForEach(ma, func(Component) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("ForEach() early stop visited %d, want 1", count)
	}
}
