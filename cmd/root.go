// Package cmd implements the CLI command structure for quickdo.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/quickdo/internal/config"
	"github.com/nibzard/quickdo/internal/logging"
	"github.com/nibzard/quickdo/internal/store"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the quickdo CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("quickdo", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		fmt.Println(Version)
		return nil
	}

	subcommand := ""
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	logger := logging.New(logging.Options{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Prefix: "quickdo",
	})

	switch subcommand {
	case "add":
		return addCommand(cfg, logger, remainingArgs)
	case "list":
		return listCommand(cfg, logger, remainingArgs)
	case "complete":
		return completeCommand(cfg, logger, remainingArgs)
	case "remind":
		return remindCommand(cfg, logger, remainingArgs)
	case "report":
		return reportCommand(cfg, logger, remainingArgs)
	case "tui":
		return tuiCommand(ctx, cfg, logger)
	case "version", "--version", "-v":
		fmt.Println(Version)
		return nil
	case "", "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// openStore opens the configured task store, creating the data directory
// and backing files on first use.
func openStore(cfg *config.Config, logger *log.Logger) (*store.Store, error) {
	return store.Open(cfg.DataDir, cfg.TasksFile, cfg.RemindersFile, logger)
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `quickdo - simple personal task tracking

Usage:
  quickdo add <title> [--due DATE] [--priority low|medium|high] [--category NAME]
  quickdo list [--all]
  quickdo complete <task_id>
  quickdo remind <message> [--in DELAY]
  quickdo report <day|week>
  quickdo tui
  quickdo version

Commands:
  add       Add a task
  list      Show tasks (--all includes completed ones)
  complete  Toggle a task's completed flag by its list number
  remind    Schedule a one-shot desktop reminder (DELAY like 30m, 2h, 1d)
  report    Summarize tasks created in the last day or week
  tui       Browse tasks interactively
  version   Print the version

Global flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
