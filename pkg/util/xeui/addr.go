package xeui

import "net"

// 各类型的字节长度。
const (
	// Len48 是 EUI-48 的字节长度。
	Len48 = 6
	// Len64 是 EUI-64 的字节长度。
	Len64 = 8
)

// Address 是 [EUI48] 与 [EUI64] 共享的能力接口。
//
// 两种类型仅长度不同，格式化规则完全一致。
type Address interface {
	// Len 返回地址字节数（6 或 8）。
	Len() int
	// AppendBytes 将地址字节追加到 dst 并返回结果。
	AppendBytes(dst []byte) []byte
	// Canonical 返回短线分隔格式：AA-BB-CC-DD-EE-FF。
	Canonical() string
	// Colon 返回冒号分隔格式：AA:BB:CC:DD:EE:FF。
	Colon() string
	// Dot 返回点分隔格式：AABB.CCDD.EEFF。
	Dot() string
	// FormatString 按指定格式返回字符串。
	FormatString(f Format) string
	// String 返回 Canonical 格式。
	String() string
}

var (
	_ Address = EUI48{}
	_ Address = EUI64{}
)

// EUI48 表示 48 位 IEEE 扩展唯一标识符（MAC-48/EUI-48）。
//
// EUI48 是不可变值类型：
//   - 可直接比较（==），按字节逐一相等
//   - 可用作 map key
//   - 并发安全，无需加锁
//
// 零值即全零地址 00-00-00-00-00-00，是合法地址。
type EUI48 struct {
	bytes [Len48]byte
}

// EUI64 表示 64 位 IEEE 扩展唯一标识符（EUI-64）。
//
// 语义与 [EUI48] 相同，仅长度为 8 字节。
type EUI64 struct {
	bytes [Len64]byte
}

// EUI48From6 从 6 字节数组创建 EUI-48 地址。
func EUI48From6(b [Len48]byte) EUI48 {
	return EUI48{bytes: b}
}

// EUI64From8 从 8 字节数组创建 EUI-64 地址。
func EUI64From8(b [Len64]byte) EUI64 {
	return EUI64{bytes: b}
}

// Bytes 返回地址字节。返回副本，修改不影响原值。
func (a EUI48) Bytes() [Len48]byte { return a.bytes }

// Bytes 返回地址字节。返回副本，修改不影响原值。
func (a EUI64) Bytes() [Len64]byte { return a.bytes }

// Len 返回 6。
func (a EUI48) Len() int { return Len48 }

// Len 返回 8。
func (a EUI64) Len() int { return Len64 }

// AppendBytes 将 6 个地址字节追加到 dst。
func (a EUI48) AppendBytes(dst []byte) []byte { return append(dst, a.bytes[:]...) }

// AppendBytes 将 8 个地址字节追加到 dst。
func (a EUI64) AppendBytes(dst []byte) []byte { return append(dst, a.bytes[:]...) }

// IsZero 报告 a 是否为全零地址。
func (a EUI48) IsZero() bool { return a == EUI48{} }

// IsZero 报告 a 是否为全零地址。
func (a EUI64) IsZero() bool { return a == EUI64{} }

// HardwareAddr 返回 [net.HardwareAddr] 表示（新分配的切片）。
func (a EUI48) HardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(a.AppendBytes(make([]byte, 0, Len48)))
}

// HardwareAddr 返回 [net.HardwareAddr] 表示（新分配的切片）。
func (a EUI64) HardwareAddr() net.HardwareAddr {
	return net.HardwareAddr(a.AppendBytes(make([]byte, 0, Len64)))
}

// FromHardwareAddr48 从 [net.HardwareAddr] 创建 EUI-48 地址，长度必须为 6。
func FromHardwareAddr48(hw net.HardwareAddr) (EUI48, error) {
	return ParseBytes48(hw)
}

// FromHardwareAddr64 从 [net.HardwareAddr] 创建 EUI-64 地址，长度必须为 8。
func FromHardwareAddr64(hw net.HardwareAddr) (EUI64, error) {
	return ParseBytes64(hw)
}
