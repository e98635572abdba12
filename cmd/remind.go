package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/quickdo/internal/config"
	"github.com/nibzard/quickdo/internal/remind"
)

// remindCommand schedules a one-shot desktop reminder. Scheduling is
// fire-and-forget: the command returns immediately and a reminder still
// pending at process exit is lost. The reminders log keeps the record.
func remindCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("quickdo remind", flag.ContinueOnError)
	in := fs.String("in", "10m", "Delay before the reminder fires (e.g. 30m, 2h, 1d)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("remind requires a message")
	}
	message := strings.Join(fs.Args(), " ")

	delay, err := remind.ParseDelay(*in)
	if err != nil {
		return err
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	scheduler := remind.NewScheduler(remind.DesktopNotifier{AppName: cfg.NotifyApp}, st, logger)
	scheduler.Schedule(message, delay)

	fmt.Printf("[✔] Reminder set: %q (in %s)\n", message, *in)
	return nil
}
