package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/nibzard/quickdo/internal/quickdodir"
)

func load(t *testing.T, args ...string) *Config {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := Load(fs, args)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUICKDO_HOME", dir)

	cfg := load(t)
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, dir)
	}
	if cfg.TasksFile != quickdodir.DefaultTasksFile {
		t.Errorf("TasksFile = %q", cfg.TasksFile)
	}
	if cfg.RemindersFile != quickdodir.DefaultRemindersFile {
		t.Errorf("RemindersFile = %q", cfg.RemindersFile)
	}
	if cfg.DefaultPriority != "medium" || cfg.DefaultCategory != "personal" {
		t.Errorf("task defaults: priority %q category %q", cfg.DefaultPriority, cfg.DefaultCategory)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUICKDO_HOME", dir)

	content := "default_category = \"work\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(filepath.Join(dir, quickdodir.DefaultConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := load(t)
	if cfg.DefaultCategory != "work" {
		t.Errorf("DefaultCategory = %q, want work", cfg.DefaultCategory)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	// Unset fields keep their defaults.
	if cfg.DefaultPriority != "medium" {
		t.Errorf("DefaultPriority = %q, want medium", cfg.DefaultPriority)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUICKDO_HOME", dir)

	content := "log_level = \"debug\"\n"
	if err := os.WriteFile(filepath.Join(dir, quickdodir.DefaultConfigFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QUICKDO_LOG_LEVEL", "error")
	t.Setenv("QUICKDO_CATEGORY", "chores")

	cfg := load(t)
	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error (env wins over file)", cfg.LogLevel)
	}
	if cfg.DefaultCategory != "chores" {
		t.Errorf("DefaultCategory = %q, want chores", cfg.DefaultCategory)
	}
}

func TestFlagsOverrideEverything(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUICKDO_HOME", dir)
	t.Setenv("QUICKDO_LOG_LEVEL", "error")

	other := t.TempDir()
	cfg := load(t, "-data-dir", other, "-log-level", "debug")
	if cfg.DataDir != other {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, other)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}
