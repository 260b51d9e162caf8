// Command bloglist runs the blog list and phonebook API and its
// maintenance tasks.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/stacygol/bloglist/internal/config"
	"github.com/stacygol/bloglist/internal/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// errUsage marks errors whose message was already printed with the usage.
var errUsage = errors.New("usage error")

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:           "bloglist",
		Short:         "Blog list and phonebook API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve, newMigrateCommand(), newPhonebookCommand())
	return root
}

// bootstrap loads the configuration and builds the root logger.
func bootstrap() (*config.Config, *logger.LoggerService, *zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	return cfg, loggerService, &log, nil
}
