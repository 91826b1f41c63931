package xeui

import (
	"fmt"
	"strings"
)

// Format 定义地址的文本格式。
type Format uint8

const (
	// FormatCanonical 使用短线分隔（IEEE 规范格式）：AA-BB-CC-DD-EE-FF
	FormatCanonical Format = iota
	// FormatColon 使用冒号分隔：AA:BB:CC:DD:EE:FF
	FormatColon
	// FormatDot 每两个字节一组，点分隔：AABB.CCDD.EEFF
	FormatDot
)

// hexUpper 十六进制字符表。输出统一大写。
const hexUpper = "0123456789ABCDEF"

// maxFormatLen 是 EUI-64 分隔格式的长度：8*2 + 7 = 23。
const maxFormatLen = Len64*3 - 1

// String 返回格式名称。
func (f Format) String() string {
	switch f {
	case FormatCanonical:
		return "canonical"
	case FormatColon:
		return "colon"
	case FormatDot:
		return "dot"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat 将格式名称（大小写不敏感）转换为 [Format]。
// "dash" 是 "canonical" 的别名。
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "canonical", "dash":
		return FormatCanonical, nil
	case "colon":
		return FormatColon, nil
	case "dot":
		return FormatDot, nil
	default:
		return 0, fmt.Errorf("xeui: unknown format %q", name)
	}
}

// String 返回 Canonical 格式。
func (a EUI48) String() string { return a.Canonical() }

// String 返回 Canonical 格式。
func (a EUI64) String() string { return a.Canonical() }

// Canonical 返回短线分隔格式：0A-1B-2C-3D-4E-5F。
func (a EUI48) Canonical() string { return formatWithSep(a.bytes[:], '-') }

// Canonical 返回短线分隔格式：00-FF-0A-1B-2C-3D-4E-5F。
func (a EUI64) Canonical() string { return formatWithSep(a.bytes[:], '-') }

// Colon 返回冒号分隔格式：0A:1B:2C:3D:4E:5F。
func (a EUI48) Colon() string { return formatWithSep(a.bytes[:], ':') }

// Colon 返回冒号分隔格式：00:FF:0A:1B:2C:3D:4E:5F。
func (a EUI64) Colon() string { return formatWithSep(a.bytes[:], ':') }

// Dot 返回点分隔格式（3 组）：0A1B.2C3D.4E5F。
func (a EUI48) Dot() string { return formatDot(a.bytes[:]) }

// Dot 返回点分隔格式（4 组）：00FF.0A1B.2C3D.4E5F。
func (a EUI64) Dot() string { return formatDot(a.bytes[:]) }

// FormatString 按指定格式返回地址字符串。未知格式按 Canonical 输出。
func (a EUI48) FormatString(f Format) string { return formatAs(a.bytes[:], f) }

// FormatString 按指定格式返回地址字符串。未知格式按 Canonical 输出。
func (a EUI64) FormatString(f Format) string { return formatAs(a.bytes[:], f) }

func formatAs(b []byte, f Format) string {
	switch f {
	case FormatColon:
		return formatWithSep(b, ':')
	case FormatDot:
		return formatDot(b)
	default:
		return formatWithSep(b, '-')
	}
}

// formatWithSep 每字节两位十六进制，以 sep 连接。
// 使用栈上定长缓冲区，仅在转换为 string 时分配一次。
func formatWithSep(b []byte, sep byte) string {
	var buf [maxFormatLen]byte
	n := 0
	for i, v := range b {
		if i > 0 {
			buf[n] = sep
			n++
		}
		buf[n] = hexUpper[v>>4]
		buf[n+1] = hexUpper[v&0x0f]
		n += 2
	}
	return string(buf[:n])
}

// formatDot 按原顺序两字节一组，每组四位十六进制，以 '.' 连接。
// len(b) 必须为偶数，EUI-48 与 EUI-64 均满足。
func formatDot(b []byte) string {
	var buf [maxFormatLen]byte
	n := 0
	for i := 0; i+1 < len(b); i += 2 {
		if i > 0 {
			buf[n] = '.'
			n++
		}
		buf[n] = hexUpper[b[i]>>4]
		buf[n+1] = hexUpper[b[i]&0x0f]
		buf[n+2] = hexUpper[b[i+1]>>4]
		buf[n+3] = hexUpper[b[i+1]&0x0f]
		n += 4
	}
	return string(buf[:n])
}
