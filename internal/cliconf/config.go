// Package cliconf 加载 euictl 的配置文件。
//
// 配置来源优先级：命令行参数 > 配置文件 > 默认值。
// 本包只处理后两者，命令行覆盖由 cmd/euictl 完成。
//
// 配置文件示例（YAML）：
//
//	width: auto       # 48 | 64 | auto
//	notation: colon   # canonical | colon | dot
//	output: text      # text | json | yaml
//	log:
//	  level: warn     # debug | info | warn | error
//	  format: text    # text | json
package cliconf

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/xeui/pkg/util/xeui"
)

// FileFormat 定义配置文件格式。
type FileFormat string

// 支持的配置文件格式。
const (
	FileFormatYAML FileFormat = "yaml"
	FileFormatJSON FileFormat = "json"
)

// 地址宽度取值。
const (
	Width48   = "48"
	Width64   = "64"
	WidthAuto = "auto"
)

// 输出格式取值。
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var (
	// ErrUnsupportedFormat 表示不支持的配置文件格式。
	ErrUnsupportedFormat = errors.New("cliconf: unsupported config format")

	// ErrLoadFailed 表示配置文件读取或解析失败。
	ErrLoadFailed = errors.New("cliconf: failed to load config")

	// ErrInvalidConfig 表示配置值非法。
	ErrInvalidConfig = errors.New("cliconf: invalid config")
)

// Config 是 euictl 的运行配置。
type Config struct {
	Width    string    `koanf:"width"`
	Notation string    `koanf:"notation"`
	Output   string    `koanf:"output"`
	Log      LogConfig `koanf:"log"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default 返回默认配置。
func Default() Config {
	return Config{
		Width:    WidthAuto,
		Notation: xeui.FormatCanonical.String(),
		Output:   OutputText,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load 从文件加载配置，按扩展名（.yaml/.yml/.json）识别格式。
// path 为空时返回默认配置。文件中未出现的字段保留默认值。
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	format, err := detectFormat(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return LoadBytes(data, format)
}

// LoadBytes 从字节数据加载配置。
// 空数据返回默认配置。
func LoadBytes(data []byte, format FileFormat) (Config, error) {
	var parser koanf.Parser
	switch format {
	case FileFormatYAML:
		parser = yaml.Parser()
	case FileFormatJSON:
		parser = json.Parser()
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate 校验配置取值。
func (c Config) Validate() error {
	switch c.Width {
	case Width48, Width64, WidthAuto:
	default:
		return fmt.Errorf("%w: width %q (want 48, 64 or auto)", ErrInvalidConfig, c.Width)
	}
	if _, err := xeui.ParseFormat(c.Notation); err != nil {
		return fmt.Errorf("%w: notation: %w", ErrInvalidConfig, err)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: output %q (want text, json or yaml)", ErrInvalidConfig, c.Output)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// NotationFormat 返回 Notation 对应的 [xeui.Format]。
// 非法值按 Canonical 处理，调用前应先 Validate。
func (c Config) NotationFormat() xeui.Format {
	f, err := xeui.ParseFormat(c.Notation)
	if err != nil {
		return xeui.FormatCanonical
	}
	return f
}

// SlogLevel 返回日志级别。
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, l.Level)
	}
	return level, nil
}

func detectFormat(path string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FileFormatYAML, nil
	case ".json":
		return FileFormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}
