package root

import (
	"context"

	"github.com/spf13/cobra"

	"hourlog/internal/cli"
	applog "hourlog/internal/log"
	"hourlog/internal/services"
)

// openStore loads configuration and the entry store for one command run.
// With assumeYes every confirmation is approved without asking.
func openStore(ctx context.Context, cmd *cobra.Command, p *prompter, assumeYes bool) (*services.EntryStore, func(), error) {
	cli.LoadEnvFile()
	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := cli.SetupLogger(cfg, cmd.ErrOrStderr()).WithComponent(applog.ComponentCLI)

	var confirm services.Confirmer = p
	if assumeYes || p == nil {
		confirm = services.AlwaysConfirm
	}

	store, closeStore, err := cli.OpenStore(ctx, cfg, logger, confirm)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := closeStore(); err != nil {
			logger.Warn("Failed to close store", applog.FieldError, err)
		}
	}
	return store, cleanup, nil
}
