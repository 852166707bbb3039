package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/foamtab/foamtab/internal/utils/logger"
	"github.com/foamtab/foamtab/pkg/errors"
)

// GlobalConfig is the root of the YAML configuration file.
// GlobalConfig 是 YAML 配置文件的根。
type GlobalConfig struct {
	Logging logger.LoggingConfig `yaml:"logging"`
	Convert ConvertConfig        `yaml:"convert"`
}

// ConvertConfig holds defaults for the conversion run. Command-line
// flags override these per invocation.
// ConvertConfig 保存转换运行的默认值。命令行标志在每次调用时覆盖它们。
type ConvertConfig struct {
	Force  bool   `yaml:"force"`
	Follow bool   `yaml:"follow"`
	Where  string `yaml:"where"`
}

// Default returns the built-in configuration.
// Default 返回内置配置。
func Default() *GlobalConfig {
	return &GlobalConfig{
		Logging: logger.LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Path:       "/var/log/foamtab/foamtab.log",
			MaxSize:    10, // 10MB
			MaxBackups: 3,
			MaxAge:     30, // 30 days
			Compress:   true,
		},
		Convert: ConvertConfig{
			Force:  false,
			Follow: false,
			Where:  "",
		},
	}
}

// LoadGlobalConfig loads the configuration from a YAML file, filling
// unset keys from the defaults.
// LoadGlobalConfig 从 YAML 文件加载配置，未设置的键使用默认值填充。
func LoadGlobalConfig(path string) (*GlobalConfig, error) {
	safePath := filepath.Clean(path) // Sanitize path to prevent directory traversal
	data, err := os.ReadFile(safePath)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("yaml", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work.
// Validate 检查配置中无法工作的值。
func (c *GlobalConfig) Validate() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.NewConfigError("logging.level", c.Logging.Level)
	}
	if c.Logging.Enabled && c.Logging.Path == "" {
		return errors.NewConfigError("logging.path", c.Logging.Path)
	}
	return nil
}
