package cmd

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/nibzard/quickdo/internal/config"
	"github.com/nibzard/quickdo/internal/ui"
)

// tuiCommand opens the interactive task browser.
func tuiCommand(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	return ui.Run(ctx, st)
}
