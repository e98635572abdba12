package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/nibzard/quickdo/internal/config"
)

// listCommand prints tasks in insertion order. Numbers are positions in
// the full sequence, so hiding completed tasks never renumbers the rest.
func listCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("quickdo list", flag.ContinueOnError)
	all := fs.Bool("all", false, "Include completed tasks")
	if err := fs.Parse(args); err != nil {
		return err
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	if st.Len() == 0 {
		fmt.Println("No active tasks")
		return nil
	}

	fmt.Println("🕒 Current tasks:")
	for pos, t := range st.List(*all) {
		status := "-"
		if t.Completed {
			status = "✓"
		}
		due := ""
		if t.DueDate != "" {
			due = fmt.Sprintf(" [%s]", t.DueDate)
		}
		fmt.Printf("%d. [%s] %s %s [%s]%s\n", pos, status, t.Priority.Symbol(), t.Title, t.Category, due)
	}
	return nil
}
