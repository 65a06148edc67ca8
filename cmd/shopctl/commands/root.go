package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/dddshop/backend/pkg/config"
	"github.com/dddshop/backend/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	applog *zap.SugaredLogger
)

func Execute() error {
	root := &cobra.Command{
		Use:          "shopctl",
		Short:        "Operate the shop backend from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error

			applog, err = logger.NewAppLogger()
			if err != nil {
				return err
			}

			cfg, err = config.LoadConfig()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync(applog)
		},
	}

	root.AddCommand(seedCmd(), eventsCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return root.ExecuteContext(ctx)
}
