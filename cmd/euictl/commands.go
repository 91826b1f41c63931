package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xeui/internal/cliconf"
	"github.com/omeyang/xeui/pkg/util/xeui"
)

// session 是单次命令执行的上下文：合并后的配置与日志。
type session struct {
	cfg    cliconf.Config
	logger *slog.Logger
}

func (a *app) parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "解析地址并输出 canonical/colon/dot 三种格式",
		ArgsUsage: "[地址...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "输出格式：text/json/yaml",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := a.newSession(cmd)
			if err != nil {
				return err
			}
			inputs, err := a.inputs(cmd)
			if err != nil {
				return err
			}

			records := make([]record, 0, len(inputs))
			failed := 0
			for _, in := range inputs {
				if err := ctx.Err(); err != nil {
					return err
				}
				rec := s.parse(in)
				if rec.Error != "" {
					failed++
				}
				records = append(records, rec)
			}

			if err := render(a.out, a.errOut, s.cfg.Output, records); err != nil {
				return err
			}
			return exitStatus(failed)
		},
	}
}

func (a *app) formatCommand() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Aliases:   []string{"f"},
		Usage:     "以指定格式重新输出地址",
		ArgsUsage: "[地址...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "notation",
				Aliases: []string{"n"},
				Usage:   "输出格式：canonical/colon/dot",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := a.newSession(cmd)
			if err != nil {
				return err
			}
			inputs, err := a.inputs(cmd)
			if err != nil {
				return err
			}

			notation := s.cfg.NotationFormat()
			failed := 0
			for _, in := range inputs {
				if err := ctx.Err(); err != nil {
					return err
				}
				addr, err := s.parseAddress(in)
				if err != nil {
					failed++
					continue
				}
				fmt.Fprintln(a.out, addr.FormatString(notation))
			}
			return exitStatus(failed)
		},
	}
}

func (a *app) checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"c"},
		Usage:     "校验地址，逐行输出 ok 或错误类别",
		ArgsUsage: "[地址...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := a.newSession(cmd)
			if err != nil {
				return err
			}
			inputs, err := a.inputs(cmd)
			if err != nil {
				return err
			}

			failed := 0
			for _, in := range inputs {
				if err := ctx.Err(); err != nil {
					return err
				}
				status := "ok"
				if _, err := s.parseAddress(in); err != nil {
					status = errorKind(err)
					failed++
				}
				fmt.Fprintf(a.out, "%s\t%s\n", status, in)
			}
			return exitStatus(failed)
		},
	}
}

// newSession 合并默认值、配置文件与命令行参数，并创建日志。
func (a *app) newSession(cmd *cli.Command) (*session, error) {
	cfg, err := cliconf.Load(cmd.String("config"))
	if err != nil {
		if errors.Is(err, cliconf.ErrInvalidConfig) || errors.Is(err, cliconf.ErrUnsupportedFormat) {
			return nil, &usageError{msg: err.Error()}
		}
		return nil, err
	}

	overrides := []struct {
		flag   string
		target *string
	}{
		{"width", &cfg.Width},
		{"log-level", &cfg.Log.Level},
		{"log-format", &cfg.Log.Format},
		{"output", &cfg.Output},
		{"notation", &cfg.Notation},
	}
	for _, o := range overrides {
		if cmd.IsSet(o.flag) {
			*o.target = strings.ToLower(cmd.String(o.flag))
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &usageError{msg: err.Error()}
	}

	logger, err := newLogger(a.errOut, cfg.Log)
	if err != nil {
		return nil, &usageError{msg: err.Error()}
	}
	logger.Debug("config resolved",
		slog.String("width", cfg.Width),
		slog.String("notation", cfg.Notation),
		slog.String("output", cfg.Output),
	)
	return &session{cfg: cfg, logger: logger}, nil
}

// inputs 返回待处理的地址：优先使用参数，否则逐行读取标准输入。
func (a *app) inputs(cmd *cli.Command) ([]string, error) {
	if cmd.Args().Len() > 0 {
		return cmd.Args().Slice(), nil
	}

	var lines []string
	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

// parseAddress 按配置的宽度解析地址，失败时记录日志。
func (s *session) parseAddress(in string) (xeui.Address, error) {
	addr, err := parseWidth(in, s.cfg.Width)
	if err != nil {
		s.logger.Warn("invalid address",
			slog.String("input", in),
			slog.String("kind", errorKind(err)),
			slog.Any("error", err),
		)
		return nil, err
	}
	s.logger.Debug("address parsed",
		slog.String("input", in),
		slog.Int("bits", addr.Len()*8),
	)
	return addr, nil
}

func (s *session) parse(in string) record {
	addr, err := s.parseAddress(in)
	if err != nil {
		return record{Input: in, Kind: errorKind(err), Error: err.Error()}
	}
	return record{
		Input:     in,
		Bits:      addr.Len() * 8,
		Canonical: addr.Canonical(),
		Colon:     addr.Colon(),
		Dot:       addr.Dot(),
	}
}

func parseWidth(in, width string) (xeui.Address, error) {
	switch width {
	case cliconf.Width48:
		a, err := xeui.Parse48(in)
		if err != nil {
			return nil, err
		}
		return a, nil
	case cliconf.Width64:
		a, err := xeui.Parse64(in)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return xeui.ParseAny(in)
	}
}

// errorKind 返回解析错误的类别名称。
func errorKind(err error) string {
	switch {
	case errors.Is(err, xeui.ErrInvalidHexCharacter):
		return "invalid-hex-character"
	case errors.Is(err, xeui.ErrOddLength):
		return "odd-length"
	case errors.Is(err, xeui.ErrInvalidStringLength):
		return "invalid-string-length"
	default:
		return "error"
	}
}

func exitStatus(failed int) error {
	if failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}
