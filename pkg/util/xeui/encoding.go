package xeui

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// 两种地址类型的序列化行为一致：
//   - Text/JSON/SQL 输出 Canonical 格式，输入接受 Parse 支持的所有格式
//   - Binary/CBOR 使用原始字节（CBOR 为 byte string）
//   - 空文本、JSON null、SQL NULL 设置为零值
//
// 全零地址是合法值，始终输出 "00-00-..."，不会输出空字符串。

// MarshalText 实现 [encoding.TextMarshaler]，输出 Canonical 格式。
func (a EUI48) MarshalText() ([]byte, error) { return []byte(a.Canonical()), nil }

// MarshalText 实现 [encoding.TextMarshaler]，输出 Canonical 格式。
func (a EUI64) MarshalText() ([]byte, error) { return []byte(a.Canonical()), nil }

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 空输入设置为零值。
func (a *EUI48) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	return unmarshalText(a.bytes[:], text)
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 空输入设置为零值。
func (a *EUI64) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	return unmarshalText(a.bytes[:], text)
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的 Canonical 格式。
// 地址字符串只含 [0-9A-F-]，无需转义。
func (a EUI48) MarshalJSON() ([]byte, error) { return quote(a.Canonical()), nil }

// MarshalJSON 实现 [json.Marshaler]，输出带引号的 Canonical 格式。
func (a EUI64) MarshalJSON() ([]byte, error) { return quote(a.Canonical()), nil }

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 或空字符串设置为零值。
func (a *EUI48) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	return unmarshalJSON(a.bytes[:], data)
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 或空字符串设置为零值。
func (a *EUI64) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	return unmarshalJSON(a.bytes[:], data)
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]，输出 6 字节。
func (a EUI48) MarshalBinary() ([]byte, error) { return a.AppendBytes(nil), nil }

// MarshalBinary 实现 [encoding.BinaryMarshaler]，输出 8 字节。
func (a EUI64) MarshalBinary() ([]byte, error) { return a.AppendBytes(nil), nil }

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]，输入必须为 6 字节。
func (a *EUI48) UnmarshalBinary(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseBytes48(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]，输入必须为 8 字节。
func (a *EUI64) UnmarshalBinary(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseBytes64(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalCBOR 实现 [cbor.Marshaler]，编码为 CBOR byte string。
func (a EUI48) MarshalCBOR() ([]byte, error) { return cbor.Marshal(a.bytes[:]) }

// MarshalCBOR 实现 [cbor.Marshaler]，编码为 CBOR byte string。
func (a EUI64) MarshalCBOR() ([]byte, error) { return cbor.Marshal(a.bytes[:]) }

// UnmarshalCBOR 实现 [cbor.Unmarshaler]。
// CBOR null 或空 byte string 设置为零值。
func (a *EUI48) UnmarshalCBOR(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	return unmarshalCBOR(a.bytes[:], data)
}

// UnmarshalCBOR 实现 [cbor.Unmarshaler]。
// CBOR null 或空 byte string 设置为零值。
func (a *EUI64) UnmarshalCBOR(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	return unmarshalCBOR(a.bytes[:], data)
}

// Value 实现 [driver.Valuer]，写入 Canonical 格式字符串。
func (a EUI48) Value() (driver.Value, error) { return a.Canonical(), nil }

// Value 实现 [driver.Valuer]，写入 Canonical 格式字符串。
func (a EUI64) Value() (driver.Value, error) { return a.Canonical(), nil }

// Scan 实现 [database/sql.Scanner]。
// 支持 string、[]byte（文本或 6 字节原始值，适用于 BINARY(6) 列）、nil。
func (a *EUI48) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	return scan(a.bytes[:], src)
}

// Scan 实现 [database/sql.Scanner]。
// 支持 string、[]byte（文本或 8 字节原始值，适用于 BINARY(8) 列）、nil。
func (a *EUI64) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	return scan(a.bytes[:], src)
}

// unmarshalText 解析 text 写入 dst。失败时 dst 保持不变。
func unmarshalText(dst []byte, text []byte) error {
	if len(text) == 0 {
		clear(dst)
		return nil
	}
	return decodeInto(dst, string(text))
}

func unmarshalJSON(dst []byte, data []byte) error {
	if string(data) == "null" {
		clear(dst)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("xeui: decode json: %w", err)
	}
	return unmarshalText(dst, []byte(s))
}

func unmarshalCBOR(dst []byte, data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("xeui: decode cbor: %w", err)
	}
	if len(raw) == 0 {
		clear(dst)
		return nil
	}
	if len(raw) != len(dst) {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidStringLength, len(dst), len(raw))
	}
	copy(dst, raw)
	return nil
}

func scan(dst []byte, src any) error {
	switch v := src.(type) {
	case nil:
		clear(dst)
		return nil
	case string:
		return unmarshalText(dst, []byte(v))
	case []byte:
		// 原始字节长度（6/8）小于任何文本格式的最短长度（12/16），不会混淆。
		if len(v) == len(dst) {
			copy(dst, v)
			return nil
		}
		return unmarshalText(dst, v)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, src)
	}
}

func quote(s string) []byte {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf
}
