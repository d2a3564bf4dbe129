package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ModeTUI   = "tui"
	ModePlain = "plain"
)

type UIConfig struct {
	Locale    string `json:"locale" yaml:"locale"`
	Mode      string `json:"mode" yaml:"mode"`
	AltScreen bool   `json:"alt_screen" yaml:"alt_screen"`

	// StartRoute 启动时打开的路由，空为课程表
	// StartRoute is the destination the TUI opens on; empty means the schedule.
	StartRoute string `json:"start_route" yaml:"start_route"`
}

type LoggingConfig struct {
	// File 为空时丢弃日志；TUI 占用终端，日志只能写文件。
	// File is where logs go; empty discards them since the TUI owns the terminal.
	File   string `json:"file" yaml:"file"`
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

type REPLConfig struct {
	HistoryFile string `json:"history_file" yaml:"history_file"`
}

type Config struct {
	UI      UIConfig      `json:"ui" yaml:"ui"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
	REPL    REPLConfig    `json:"repl" yaml:"repl"`
}

type fileUIConfig struct {
	Locale     *string `json:"locale" yaml:"locale"`
	Mode       *string `json:"mode" yaml:"mode"`
	AltScreen  *bool   `json:"alt_screen" yaml:"alt_screen"`
	StartRoute *string `json:"start_route" yaml:"start_route"`
}

type fileConfig struct {
	UI      *fileUIConfig  `json:"ui" yaml:"ui"`
	Logging *LoggingConfig `json:"logging" yaml:"logging"`
	REPL    *REPLConfig    `json:"repl" yaml:"repl"`
}

func Default() Config {
	return Config{
		UI: UIConfig{
			Locale:    "ru",
			Mode:      ModeTUI,
			AltScreen: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load 按 默认值 -> 全局配置 -> 项目配置 -> 环境变量 的顺序合并配置
// Load merges defaults, the global file, the project file and env overrides, in that order
func Load(path string) (Config, error) {
	cfg := Default()

	for _, globalPath := range globalConfigPaths() {
		if err := mergeFromFile(&cfg, globalPath); err != nil {
			return Config{}, err
		}
	}

	resolvedPath := strings.TrimSpace(path)
	if envPath := strings.TrimSpace(os.Getenv("SCHOOLBAG_CONFIG_PATH")); envPath != "" {
		resolvedPath = envPath
	}
	if resolvedPath == "" {
		resolvedPath = findProjectConfigPath()
	}
	if err := mergeFromFile(&cfg, resolvedPath); err != nil {
		return Config{}, err
	}

	cfg = applyEnv(cfg)
	if err := normalize(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func globalConfigPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".schoolbag", "config.json"),
		filepath.Join(home, ".schoolbag", "config.yaml"),
	}
}

func findProjectConfigPath() string {
	candidates := []string{
		"schoolbag.config.json",
		".schoolbag/config.json",
		".schoolbag/config.yaml",
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func mergeFromFile(cfg *Config, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("expand config path %q: %w", path, err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %q: %w", resolved, err)
	}

	var fileCfg fileConfig
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return fmt.Errorf("parse config %q: %w", resolved, err)
		}
	default:
		if err := json.Unmarshal(stripJSONComments(data), &fileCfg); err != nil {
			return fmt.Errorf("parse config %q: %w", resolved, err)
		}
	}
	applyFileConfig(cfg, fileCfg)
	return nil
}

func applyFileConfig(cfg *Config, fc fileConfig) {
	if fc.UI != nil {
		if fc.UI.Locale != nil {
			cfg.UI.Locale = *fc.UI.Locale
		}
		if fc.UI.Mode != nil {
			cfg.UI.Mode = *fc.UI.Mode
		}
		if fc.UI.AltScreen != nil {
			cfg.UI.AltScreen = *fc.UI.AltScreen
		}
		if fc.UI.StartRoute != nil {
			cfg.UI.StartRoute = *fc.UI.StartRoute
		}
	}
	if fc.Logging != nil {
		cfg.Logging = mergeLogging(cfg.Logging, *fc.Logging)
	}
	if fc.REPL != nil && strings.TrimSpace(fc.REPL.HistoryFile) != "" {
		cfg.REPL.HistoryFile = fc.REPL.HistoryFile
	}
}

func mergeLogging(base LoggingConfig, override LoggingConfig) LoggingConfig {
	if strings.TrimSpace(override.File) != "" {
		base.File = override.File
	}
	if strings.TrimSpace(override.Level) != "" {
		base.Level = override.Level
	}
	if strings.TrimSpace(override.Format) != "" {
		base.Format = override.Format
	}
	return base
}

func applyEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv("SCHOOLBAG_LANG")); v != "" {
		cfg.UI.Locale = v
	}
	if v := strings.TrimSpace(os.Getenv("SCHOOLBAG_MODE")); v != "" {
		cfg.UI.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv("SCHOOLBAG_LOG_FILE")); v != "" {
		cfg.Logging.File = v
	}
	if v := strings.TrimSpace(os.Getenv("SCHOOLBAG_LOG_LEVEL")); v != "" {
		cfg.Logging.Level = v
	}
	return cfg
}

func normalize(cfg *Config) error {
	cfg.UI.Locale = strings.TrimSpace(cfg.UI.Locale)
	cfg.UI.StartRoute = strings.TrimSpace(cfg.UI.StartRoute)
	if cfg.UI.Locale == "" {
		cfg.UI.Locale = Default().UI.Locale
	}

	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	switch cfg.UI.Mode {
	case "":
		cfg.UI.Mode = ModeTUI
	case ModeTUI, ModePlain:
	default:
		return fmt.Errorf("unsupported ui.mode %q", cfg.UI.Mode)
	}

	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	switch cfg.Logging.Level {
	case "":
		cfg.Logging.Level = Default().Logging.Level
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported logging.level %q", cfg.Logging.Level)
	}

	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if cfg.Logging.Format != "json" {
		cfg.Logging.Format = "text"
	}

	logFile, err := expandPath(cfg.Logging.File)
	if err != nil {
		return err
	}
	cfg.Logging.File = logFile

	history, err := expandPath(cfg.REPL.HistoryFile)
	if err != nil {
		return err
	}
	cfg.REPL.HistoryFile = history
	return nil
}

// WriteScaffold 在 dir 下写入默认配置模板（已存在则保留）
// WriteScaffold writes the default config to dir/config.json unless one exists
func WriteScaffold(dir string) (string, error) {
	resolved, err := expandPath(dir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(resolved, "config.json")

	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return "", fmt.Errorf("config path is a directory: %s", path)
		}
		return path, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config: %w", err)
	}

	if err := os.MkdirAll(resolved, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", resolved, err)
	}
	data, err := json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, strings.TrimPrefix(path, "~/"))
		}
	}
	return filepath.Abs(path)
}

func stripJSONComments(data []byte) []byte {
	const (
		stateNormal = iota
		stateString
		stateLineComment
		stateBlockComment
	)

	state := stateNormal
	escaped := false
	out := bytes.Buffer{}

	for i := 0; i < len(data); i++ {
		c := data[i]
		next := byte(0)
		if i+1 < len(data) {
			next = data[i+1]
		}

		switch state {
		case stateNormal:
			if c == '"' {
				state = stateString
				out.WriteByte(c)
				continue
			}
			if c == '/' && next == '/' {
				state = stateLineComment
				i++
				continue
			}
			if c == '/' && next == '*' {
				state = stateBlockComment
				i++
				continue
			}
			out.WriteByte(c)
		case stateString:
			out.WriteByte(c)
			if escaped {
				escaped = false
				continue
			}
			if c == '\\' {
				escaped = true
				continue
			}
			if c == '"' {
				state = stateNormal
			}
		case stateLineComment:
			if c == '\n' {
				state = stateNormal
				out.WriteByte(c)
			}
		case stateBlockComment:
			if c == '*' && next == '/' {
				state = stateNormal
				i++
			}
		}
	}
	return out.Bytes()
}
