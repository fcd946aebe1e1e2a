package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Manager holds the application configuration and provides thread-safe
// access to it.
type Manager struct {
	mu     sync.RWMutex
	config *Config
}

// NewManager creates a new Manager.
func NewManager(config *Config) *Manager {
	return &Manager{config: config}
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Update replaces the configuration.
func (m *Manager) Update(config *Config) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = config
}

// EnsureOutputDirs creates the output directory tree the emitter writes
// into.
func (m *Manager) EnsureOutputDirs() error {
	cfg := m.Get()
	for _, dir := range []string{
		cfg.Output.Dir,
		filepath.Join(cfg.Output.Dir, "lp-ep"),
		filepath.Join(cfg.Output.Dir, "singles"),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	slog.Debug("Output directories created/verified", "dir", cfg.Output.Dir)
	return nil
}

// redactedCfg gets a redacted copy of the Config.
func (m *Manager) redactedCfg() Config {
	var cfgCpy = *m.Get()
	if cfgCpy.Sources.Spotify.ClientSecret != "" {
		cfgCpy.Sources.Spotify.ClientSecret = "<redacted>"
	}
	return cfgCpy
}

// GetYAML returns the current configuration as a YAML string, secrets
// redacted.
func (m *Manager) GetYAML() string {
	yamlBytes, err := yaml.Marshal(m.redactedCfg())
	if err != nil {
		slog.Error("failed to marshal config to YAML", "error", err)
		return err.Error()
	}
	return string(yamlBytes)
}
