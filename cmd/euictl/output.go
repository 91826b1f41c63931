package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/omeyang/xeui/internal/cliconf"
)

// record 是 parse 命令对单个输入的结果。
type record struct {
	Input     string `json:"input" yaml:"input"`
	Bits      int    `json:"bits,omitempty" yaml:"bits,omitempty"`
	Canonical string `json:"canonical,omitempty" yaml:"canonical,omitempty"`
	Colon     string `json:"colon,omitempty" yaml:"colon,omitempty"`
	Dot       string `json:"dot,omitempty" yaml:"dot,omitempty"`
	Kind      string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// render 按输出格式写出结果。
// text 格式下成功记录写入 w，失败记录以 "类别<TAB>输入" 写入 errW，
// 与 check 命令的输出一致，且不受日志级别影响。
func render(w, errW io.Writer, output string, records []record) error {
	switch output {
	case cliconf.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case cliconf.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range records {
			if r.Error != "" {
				if _, err := fmt.Fprintf(errW, "%s\t%s\n", r.Kind, r.Input); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.Canonical, r.Colon, r.Dot); err != nil {
				return err
			}
		}
		return nil
	}
}

// newLogger 按配置创建写往 w 的 slog 日志。
func newLogger(w io.Writer, cfg cliconf.LogConfig) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(slog.String("app", "euictl")), nil
}
