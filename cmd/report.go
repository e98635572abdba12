package cmd

import (
	"flag"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/quickdo/internal/config"
	"github.com/nibzard/quickdo/internal/report"
)

// reportCommand prints completed/remaining counts and a per-category
// breakdown for tasks created in the trailing window.
func reportCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("quickdo report", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	period := report.PeriodWeek
	if fs.NArg() > 0 {
		period = report.Period(fs.Arg(0))
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	sum, err := report.Aggregate(st.Tasks(), time.Now(), period, logger)
	if err != nil {
		return err
	}

	fmt.Printf("📊 Report for the last %s:\n", sum.Period)
	fmt.Printf("Completed: %d tasks\n", sum.Completed)
	fmt.Printf("Remaining: %d tasks\n", sum.Remaining)
	fmt.Println("\nBy category:")
	for _, c := range sum.Categories {
		fmt.Printf("- %s: %d tasks\n", c.Category, c.Count)
	}
	return nil
}
