package config

import (
	"sync"

	"github.com/foamtab/foamtab/internal/utils/logger"
)

// Manager handles all configuration-related operations in a centralized manner
// Manager 以集中方式处理所有配置相关操作
type Manager struct {
	configPath string
	mutex      sync.RWMutex
	config     *GlobalConfig
}

// NewManager creates a new configuration manager instance
// NewManager 创建新的配置管理器实例
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
	}
}

// Load loads the configuration from the configured path
// Load 从配置的路径加载配置
func (m *Manager) Load() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	config, err := LoadGlobalConfig(m.configPath)
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// GetConfig returns a copy of the current configuration
// GetConfig 返回当前配置的副本
func (m *Manager) GetConfig() *GlobalConfig {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.config == nil {
		return Default()
	}

	// Return a copy to prevent external modifications
	// 返回副本以防止外部修改
	cfgCopy := *m.config
	return &cfgCopy
}

// GetLoggingConfig returns the logging configuration
// GetLoggingConfig 返回日志配置
func (m *Manager) GetLoggingConfig() *logger.LoggingConfig {
	cfg := m.GetConfig()
	return &cfg.Logging
}

// GetConvertConfig returns the conversion defaults
// GetConvertConfig 返回转换默认值
func (m *Manager) GetConvertConfig() *ConvertConfig {
	cfg := m.GetConfig()
	return &cfg.Convert
}

// GetConfigPath returns the configuration file path
// GetConfigPath 返回配置文件路径
func (m *Manager) GetConfigPath() string {
	return m.configPath
}
