// Package multiaddr 提供多地址（Multiaddr）的实现
//
// Multiaddr 是一种自描述的网络地址格式：一组有序的 (协议, 值) 段，
// 同时拥有人类可读的字符串表示和规范二进制表示，两者可双向转换。
//
// # 基本用法
//
//	// 从字符串创建
//	ma, err := multiaddr.NewMultiaddr("/ip4/127.0.0.1/tcp/4001")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// 字符串表示
//	fmt.Println(ma.String()) // /ip4/127.0.0.1/tcp/4001
//
//	// 规范二进制表示
//	b := ma.Bytes()
//
//	// 从二进制恢复
//	ma2, err := multiaddr.NewMultiaddrBytes(b)
//
//	// 程序化构造
//	ip, _ := multiaddr.NewComponent("ip4", "1.2.3.4")
//	port, _ := multiaddr.NewComponent("tcp", "567")
//	ma3, _ := multiaddr.FromComponents(ip, port)
//
// # 地址格式
//
// 字符串格式（以 '/' 开头，段按从内到外的传输栈顺序排列）：
//
//	/ip4/127.0.0.1/tcp/4001
//	/ip6/::1/tcp/8080
//	/ip4/192.168.1.1/udp/4001/quic-v1
//	/ip4/1.2.3.4/tcp/4001/p2p/QmcEPrat8ShnCph8WjkREzt5CPXF2RwhYxYBALDcLC1iV6
//	/dns/example.com/tcp/443/wss
//	/unix/var/run/example.sock
//
// 二进制格式（与 go-multiaddr 标准实现逐字节兼容）：
//
//	[varint:protocol_code][value_bytes]...
//
// 固定宽度协议的值直接跟在代码后；变长协议先写 varint 长度前缀。
//
// # 相等与排序
//
// 相等按规范二进制形式逐字节比较；Compare 给出同样基准的全序。
// 两个段序列相同的地址必然产生相同的字节。
//
// # 空地址
//
// 零段多地址是合法值：NewMultiaddrBytes(nil) 成功，其 Bytes() 为空、
// String() 为空串。字符串语法没有零段的写法，因此 NewMultiaddr("")
// 返回 ErrEmptyMultiaddr。
//
// # 不可变性
//
// Multiaddr 构造后不可变，Encapsulate/Decapsulate 返回新值，
// 可在并发调用方之间无锁共享。
//
// # 与 multiformats 对齐
//
// 所有协议代码与 multiformats/multicodec 对齐：
// https://github.com/multiformats/multicodec/blob/master/table.csv
package multiaddr
