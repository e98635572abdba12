// Package config handles configuration loading and defaults.
package config

import (
	"github.com/nibzard/quickdo/internal/quickdodir"
	"github.com/nibzard/quickdo/internal/remind"
	"github.com/nibzard/quickdo/internal/task"
)

// Default values.
const (
	DefaultLogLevel = "warn"
)

// Config holds the full configuration for quickdo.
type Config struct {
	// Paths
	DataDir       string `toml:"data_dir"`
	TasksFile     string `toml:"tasks_file"`
	RemindersFile string `toml:"reminders_file"`

	// Task defaults
	DefaultPriority string `toml:"default_priority"`
	DefaultCategory string `toml:"default_category"`

	// Notifications
	NotifyApp string `toml:"notify_app"`

	// Logging
	LogLevel string `toml:"log_level"`
}

// setDefaults fills cfg with the built-in defaults.
func setDefaults(cfg *Config) {
	cfg.DataDir = quickdodir.Default()
	cfg.TasksFile = quickdodir.DefaultTasksFile
	cfg.RemindersFile = quickdodir.DefaultRemindersFile
	cfg.DefaultPriority = string(task.PriorityMedium)
	cfg.DefaultCategory = task.DefaultCategory
	cfg.NotifyApp = remind.DefaultAppName
	cfg.LogLevel = DefaultLogLevel
}
