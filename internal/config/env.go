package config

import "os"

// loadFromEnv overrides config from environment variables. QUICKDO_HOME is
// handled earlier in Load so the config file lookup honors it.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("QUICKDO_HOME"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("QUICKDO_TASKS_FILE"); v != "" {
		cfg.TasksFile = v
	}
	if v := os.Getenv("QUICKDO_REMINDERS_FILE"); v != "" {
		cfg.RemindersFile = v
	}
	if v := os.Getenv("QUICKDO_PRIORITY"); v != "" {
		cfg.DefaultPriority = v
	}
	if v := os.Getenv("QUICKDO_CATEGORY"); v != "" {
		cfg.DefaultCategory = v
	}
	if v := os.Getenv("QUICKDO_NOTIFY_APP"); v != "" {
		cfg.NotifyApp = v
	}
	if v := os.Getenv("QUICKDO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
