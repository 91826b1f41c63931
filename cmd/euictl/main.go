// euictl 是 EUI-48/EUI-64 地址的命令行转换工具。
//
// 用法:
//
//	euictl [全局选项] <命令> [命令选项] [地址...]
//
// 全局选项:
//
//	-c, --config      配置文件路径（.yaml/.yml/.json）
//	-w, --width       地址宽度：48、64 或 auto（默认: auto）
//	    --log-level   日志级别：debug/info/warn/error（默认: warn）
//	    --log-format  日志格式：text/json（默认: text）
//
// 命令:
//
//	parse     解析地址并输出三种格式（-o text|json|yaml）
//	format    以指定格式重新输出地址（-n canonical|colon|dot）
//	check     仅校验地址，输出错误类别
//
// 未给出地址参数时从标准输入逐行读取，空行忽略。
//
// 退出码:
//
//	0: 全部地址有效
//	1: 至少一个地址无效，或执行失败
//	2: 参数错误（未知命令、未知 flag、非法配置值等）
//
// 示例:
//
//	euictl parse 0a:1b:2c:3d:4e:5f
//	euictl -w 64 format -n dot 00-FF-0A-1B-2C-3D-4E-5F
//	cat macs.txt | euictl check
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// exitError 表示命令已完成输出，只需设置非零退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数错误，退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// run 执行命令并返回退出码。
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	app := &app{in: in, out: out, errOut: errOut}
	root := app.command()

	if err := root.Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(errOut, "参数错误: %v\n", usageErr)
			return 2
		}
		if isCLIUsageError(err) {
			fmt.Fprintf(errOut, "参数错误: %v\n", err)
			return 2
		}
		fmt.Fprintf(errOut, "错误: %v\n", err)
		return 1
	}
	return 0
}

// app 持有命令的输入输出，便于测试时替换。
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "euictl",
		Usage:     "EUI-48/EUI-64 地址解析与格式转换",
		Version:   fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Reader:    a.in,
		Writer:    a.out,
		ErrWriter: a.errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
			&cli.StringFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Usage:   "地址宽度：48、64 或 auto",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别：debug/info/warn/error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式：text/json",
			},
		},
		Commands: []*cli.Command{
			a.parseCommand(),
			a.formatCommand(),
			a.checkCommand(),
		},
		// 由 run() 统一映射退出码，禁止 urfave/cli 直接调用 os.Exit。
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// isCLIUsageError 识别 urfave/cli 自身产生的参数错误。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{
		"flag provided but not defined",
		"invalid value",
		"No help topic for",
	} {
		if strings.Contains(msg, prefix) {
			return true
		}
	}
	return false
}
