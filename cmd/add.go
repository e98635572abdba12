package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/quickdo/internal/config"
	"github.com/nibzard/quickdo/internal/task"
)

// addCommand adds a new task and prints a confirmation.
func addCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("quickdo add", flag.ContinueOnError)
	due := fs.String("due", "", "Due date (free-form, e.g. 2025-01-10)")
	priority := fs.String("priority", cfg.DefaultPriority, "Priority (low|medium|high)")
	category := fs.String("category", cfg.DefaultCategory, "Category")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("add requires a task title")
	}
	title := strings.Join(fs.Args(), " ")

	p := task.Priority(*priority)
	if !p.Valid() {
		return fmt.Errorf("invalid priority %q: want low, medium or high", *priority)
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	added, err := st.Add(title, *due, p, *category)
	if err != nil {
		return err
	}

	dueStr := added.DueDate
	if dueStr == "" {
		dueStr = "none"
	}
	fmt.Printf("[✔] Added task: %q [due: %s, priority: %s]\n", added.Title, dueStr, added.Priority)
	return nil
}
