// Package testutil provides test doubles for the domain ports.
package testutil

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// MockTaskRepository is an in-memory domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	LoadErr   error
	SaveErr   error
	Tasks     []domain.Task
	SaveCalls int
	LoadCalls int
}

// Ensure MockTaskRepository implements domain.TaskRepository interface.
var _ domain.TaskRepository = (*MockTaskRepository)(nil)

// NewMockTaskRepository creates a repository preloaded with descriptions.
// A description prefixed with "x:" is stored as done.
func NewMockTaskRepository(descriptions ...string) *MockTaskRepository {
	m := &MockTaskRepository{}
	for _, d := range descriptions {
		t := domain.Task{Description: d}
		if len(d) > 2 && d[:2] == "x:" {
			t = domain.Task{Description: d[2:], Done: true}
		}
		m.Tasks = append(m.Tasks, t)
	}
	domain.Reindex(m.Tasks)
	return m
}

// Load returns a copy of the stored tasks.
func (m *MockTaskRepository) Load(_ context.Context) ([]domain.Task, error) {
	m.LoadCalls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	out := make([]domain.Task, len(m.Tasks))
	copy(out, m.Tasks)
	domain.Reindex(out)
	return out, nil
}

// Save replaces the stored tasks.
func (m *MockTaskRepository) Save(_ context.Context, tasks []domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCalls++
	m.Tasks = make([]domain.Task, len(tasks))
	copy(m.Tasks, tasks)
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
// Fields are ordered to minimize memory padding.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config
	LoadErr      error
	GlobalErr    error
}

// NewMockConfigLoader creates a loader returning default configs.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config:       domain.NewDefaultConfig(),
		GlobalConfig: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured global config or error.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	return m.GlobalConfig, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitLocalErr     error
	InitGlobalErr    error
	InitConfig       *domain.Config
	LocalConfigInfo  domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitLocalCalled  bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		LocalConfigInfo: domain.ConfigInfo{
			Path:   "/test/.todo.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/todo/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetLocalConfigInfo returns the configured local config info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitLocalConfig records the call and returns configured error.
func (m *MockConfigManager) InitLocalConfig(cfg *domain.Config) error {
	m.InitLocalCalled = true
	m.InitConfig = cfg
	return m.InitLocalErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	return m.InitGlobalErr
}

// MockLogger records every entry as "LEVEL category: msg".
type MockLogger struct {
	Entries []string
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) add(level, category, msg string) {
	m.Entries = append(m.Entries, fmt.Sprintf("%s %s: %s", level, category, msg))
}

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }
