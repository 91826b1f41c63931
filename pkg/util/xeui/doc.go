// Package xeui 提供 IEEE EUI-48 与 EUI-64 标识符（如 MAC 地址）的值类型与文本转换。
//
// 两种类型 [EUI48]（6 字节）与 [EUI64]（8 字节）共享 [Address] 接口：
//
//   - 三种输出格式：Canonical（AA-BB-CC-DD-EE-FF）、Colon（AA:BB:CC:DD:EE:FF）、
//     Dot（AABB.CCDD.EEFF），统一大写、每字节两位
//   - 宽松解析：去除全部 '.'、':'、'-' 后按十六进制解码，大小写不敏感
//   - 三类解析错误，支持 errors.Is 判断
//   - Text/JSON/Binary/CBOR/SQL 序列化支持
//
// # 快速示例
//
//	addr, err := xeui.Parse48("0a:1b:2c:3d:4e:5f")
//	fmt.Println(addr.Canonical()) // 0A-1B-2C-3D-4E-5F
//	fmt.Println(addr.Dot())       // 0A1B.2C3D.4E5F
//
//	eui, _ := xeui.Parse64("00FF.0A1B.2C3D.4E5F")
//	fmt.Println(eui.Colon())      // 00:FF:0A:1B:2C:3D:4E:5F
//
// # 错误处理
//
// 解析失败返回 *[ParseError]，其 Kind 为以下之一：
//
//   - [ErrInvalidHexCharacter]：去除分隔符后含非十六进制字符。只要存在非法字符就报告此错误，
//     即使长度同样不对
//   - [ErrOddLength]：所有字符合法，但个数为奇数
//   - [ErrInvalidStringLength]：解码成功但字节数不等于目标类型长度
//
// 示例：
//
//	_, err := xeui.Parse48("0A-1B-2C-3D-4E-5")
//	errors.Is(err, xeui.ErrOddLength) // true
//
// # 设计决策
//
//   - 使用 [6]byte/[8]byte 固定数组：值语义、可比较、可作 map key
//   - 分隔符位置不做校验，"0A1B2C-3D:4E.5F"、"-0A1B2C3D4E5F-" 均可解析为同一地址
//   - 不去除首尾空白，空白按非法字符处理
//   - 零值即全零地址，是合法地址，格式化输出 "00-00-00-00-00-00"
//   - 不支持地址运算、排序、OUI 注册信息查询
package xeui
