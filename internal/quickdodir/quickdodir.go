// Package quickdodir provides constants and utilities for the .quickdo directory structure.
package quickdodir

import (
	"os"
	"path/filepath"
)

const (
	// Dir is the name of the quickdo data directory.
	Dir = ".quickdo"

	// DefaultTasksFile is the default tasks file name (inside .quickdo).
	DefaultTasksFile = "tasks.txt"

	// DefaultRemindersFile is the default reminders log name (inside .quickdo).
	DefaultRemindersFile = "reminders.txt"

	// DefaultConfigFile is the default config file name (inside .quickdo).
	DefaultConfigFile = "quickdo.toml"
)

// Default returns the per-user data directory (~/.quickdo). When the home
// directory cannot be resolved it falls back to a relative .quickdo.
func Default() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return Dir
	}
	return filepath.Join(home, Dir)
}

// TasksPath returns the full path to the tasks file within a data directory.
func TasksPath(dataDir string) string {
	return filepath.Join(dataDir, DefaultTasksFile)
}

// RemindersPath returns the full path to the reminders log within a data directory.
func RemindersPath(dataDir string) string {
	return filepath.Join(dataDir, DefaultRemindersFile)
}

// ConfigPath returns the full path to the config file within a data directory.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, DefaultConfigFile)
}
