package xeui

import (
	"errors"
	"fmt"
)

// 解析错误分类，共三种，支持 errors.Is 判断。
var (
	// ErrInvalidHexCharacter 表示去除分隔符后的输入包含非十六进制字符。
	ErrInvalidHexCharacter = errors.New("xeui: invalid hex character")

	// ErrInvalidStringLength 表示十六进制解码成功，但字节数与目标类型不符。
	ErrInvalidStringLength = errors.New("xeui: invalid string length")

	// ErrOddLength 表示去除分隔符后的十六进制字符个数为奇数。
	ErrOddLength = errors.New("xeui: odd length hex string")
)

// 序列化相关错误，不属于解析错误分类。
var (
	// ErrNilReceiver 表示在 nil 指针上调用反序列化方法。
	ErrNilReceiver = errors.New("xeui: nil receiver")

	// ErrUnsupportedType 表示 Scan 收到不支持的源类型。
	ErrUnsupportedType = errors.New("xeui: unsupported source type")
)

// ParseError 描述一次解析失败。
//
// Kind 始终是 [ErrInvalidHexCharacter]、[ErrInvalidStringLength]、[ErrOddLength] 之一，
// Unwrap 返回 Kind，因此调用方只需 errors.Is 即可区分失败原因：
//
//	_, err := xeui.Parse48(s)
//	if errors.Is(err, xeui.ErrOddLength) {
//	    // 少了一个十六进制字符
//	}
type ParseError struct {
	// Input 原始输入。
	Input string
	// Kind 错误分类。
	Kind error
	// Char 非法字符，仅 ErrInvalidHexCharacter 时有效。
	Char byte
	// Pos Char 在原始输入中的字节偏移，仅 ErrInvalidHexCharacter 时有效。
	Pos int
	// Got 解码得到的字节数，仅 ErrInvalidStringLength 时有效。
	Got int
	// Want 目标类型的字节数。
	Want int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrInvalidHexCharacter:
		return fmt.Sprintf("%v: %s at position %d in %q", e.Kind, quoteByte(e.Char), e.Pos, e.Input)
	case ErrInvalidStringLength:
		if e.Want == 0 {
			return fmt.Sprintf("%v: expected %d or %d bytes, got %d in %q", e.Kind, Len48, Len64, e.Got, e.Input)
		}
		return fmt.Sprintf("%v: expected %d bytes, got %d in %q", e.Kind, e.Want, e.Got, e.Input)
	default:
		return fmt.Sprintf("%v: %q", e.Kind, e.Input)
	}
}

// Unwrap 返回错误分类哨兵值。
func (e *ParseError) Unwrap() error {
	return e.Kind
}

// quoteByte 可打印 ASCII 字节输出为 'x'，其余（含多字节 UTF-8 的首字节）输出为 0xC3。
func quoteByte(c byte) string {
	if c >= 0x20 && c < 0x7f {
		return fmt.Sprintf("%q", c)
	}
	return fmt.Sprintf("0x%02X", c)
}
