package cmd

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/nibzard/quickdo/internal/config"
)

// completeCommand toggles the completed flag of the task at the given
// 1-based position.
func completeCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("quickdo complete", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("complete requires a task number")
	}
	pos, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid task number %q", fs.Arg(0))
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	t, err := st.Complete(pos)
	if err != nil {
		return err
	}
	if t.Completed {
		fmt.Printf("[✔] Task %q marked as completed\n", t.Title)
	} else {
		fmt.Printf("[✔] Task %q marked as active\n", t.Title)
	}
	return nil
}
