package xeui

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Parse48 解析 EUI-48 地址字符串。
//
// 支持的格式（大小写不敏感）：
//   - 短线分隔：0A-1B-2C-3D-4E-5F
//   - 冒号分隔：0a:1b:2c:3d:4e:5f
//   - 点分隔：0A1B.2C3D.4E5F
//
// 解析是宽松的：输入中任意位置、任意数量的 '.'、':'、'-' 都会被先行去除，
// 不校验分隔符位置。不去除空白，空白按非法字符处理。
//
// 失败时返回 *[ParseError]，可用 errors.Is 区分：
//   - [ErrInvalidHexCharacter]：存在非十六进制字符（优先报告）
//   - [ErrOddLength]：字符均合法但个数为奇数
//   - [ErrInvalidStringLength]：解码成功但不是 6 字节
func Parse48(s string) (EUI48, error) {
	var a EUI48
	if err := decodeInto(a.bytes[:], s); err != nil {
		return EUI48{}, err
	}
	return a, nil
}

// Parse64 解析 EUI-64 地址字符串，规则同 [Parse48]，目标长度为 8 字节。
func Parse64(s string) (EUI64, error) {
	var a EUI64
	if err := decodeInto(a.bytes[:], s); err != nil {
		return EUI64{}, err
	}
	return a, nil
}

// ParseAny 按解码后的字节数选择类型：6 字节返回 [EUI48]，8 字节返回 [EUI64]。
// 其他长度返回 [ErrInvalidStringLength]，此时 ParseError.Want 为 0。
func ParseAny(s string) (Address, error) {
	b, err := decode(s)
	if err != nil {
		return nil, err
	}
	switch len(b) {
	case Len48:
		var a EUI48
		copy(a.bytes[:], b)
		return a, nil
	case Len64:
		var a EUI64
		copy(a.bytes[:], b)
		return a, nil
	default:
		return nil, &ParseError{Input: s, Kind: ErrInvalidStringLength, Got: len(b)}
	}
}

// MustParse48 类似 [Parse48]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse48(s string) EUI48 {
	a, err := Parse48(s)
	if err != nil {
		panic(fmt.Sprintf("xeui.MustParse48(%q): %v", s, err))
	}
	return a
}

// MustParse64 类似 [Parse64]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse64(s string) EUI64 {
	a, err := Parse64(s)
	if err != nil {
		panic(fmt.Sprintf("xeui.MustParse64(%q): %v", s, err))
	}
	return a
}

// ParseBytes48 从字节切片创建 EUI-48 地址，切片长度必须为 6。
func ParseBytes48(b []byte) (EUI48, error) {
	if len(b) != Len48 {
		return EUI48{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidStringLength, Len48, len(b))
	}
	var a EUI48
	copy(a.bytes[:], b)
	return a, nil
}

// ParseBytes64 从字节切片创建 EUI-64 地址，切片长度必须为 8。
func ParseBytes64(b []byte) (EUI64, error) {
	if len(b) != Len64 {
		return EUI64{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidStringLength, Len64, len(b))
	}
	var a EUI64
	copy(a.bytes[:], b)
	return a, nil
}

// decodeInto 解码 s 并写入 dst，解码结果长度必须等于 len(dst)。
func decodeInto(dst []byte, s string) error {
	b, err := decode(s)
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return &ParseError{Input: s, Kind: ErrInvalidStringLength, Got: len(b), Want: len(dst)}
	}
	copy(dst, b)
	return nil
}

// decode 去除分隔符后做十六进制解码，不校验结果长度。
//
// encoding/hex 自左向右成对扫描，遇到第一个非法字符即返回；
// 奇数长度只在扫描到末尾孤立字符且其合法时才报告。
// 因此非法字符总是优先于奇数长度。
func decode(s string) ([]byte, error) {
	clean := stripSeparators(s)
	dst := make([]byte, hex.DecodedLen(len(clean)))
	n, err := hex.Decode(dst, clean)
	if err == nil {
		return dst[:n], nil
	}

	var invalid hex.InvalidByteError
	switch {
	case errors.As(err, &invalid):
		pos := firstInvalid(s)
		return nil, &ParseError{Input: s, Kind: ErrInvalidHexCharacter, Char: byte(invalid), Pos: pos}
	case errors.Is(err, hex.ErrLength):
		return nil, &ParseError{Input: s, Kind: ErrOddLength}
	default:
		// encoding/hex 只返回以上两类错误。
		return nil, &ParseError{Input: s, Kind: ErrInvalidHexCharacter, Pos: -1}
	}
}

// stripSeparators 去除所有 '.'、':'、'-'，按字节处理，不做 UTF-8 解码。
func stripSeparators(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if isSeparator(s[i]) {
			continue
		}
		out = append(out, s[i])
	}
	return out
}

// firstInvalid 返回原始输入中第一个既非分隔符也非十六进制字符的字节偏移。
// 与 encoding/hex 报告的非法字符一致：该字符之前的字符均合法。
func firstInvalid(s string) int {
	for i := 0; i < len(s); i++ {
		if !isSeparator(s[i]) && !isHex(s[i]) {
			return i
		}
	}
	return -1
}

func isSeparator(c byte) bool {
	return c == '.' || c == ':' || c == '-'
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	default:
		return false
	}
}
