// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xeui: EUI-48/EUI-64 地址值类型，三种格式互转、三类解析错误、序列化支持
package util
