package cmd

import (
	"fmt"
	"os"

	"github.com/Hikari118/mercari-build-training/pkg/app"
	"github.com/Hikari118/mercari-build-training/pkg/config"
	"github.com/Hikari118/mercari-build-training/pkg/logger"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the CLI around opts. Flags registered on it override
// whatever opts already holds.
func NewRootCmd(opts *config.Options) *cobra.Command {
	var log *logger.Logger

	rootCmd := &cobra.Command{
		Use:   "mercari",
		Short: "Browse the simple-mercari marketplace",
		Long:  "Browse the items listed on a simple-mercari backend with a TUI and CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logger.NewLogger(opts.LogLevel, opts.LogFile)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			// Launch TUI by default
			a := app.NewApp(opts, log)
			if err := a.Run(); err != nil {
				cobra.CheckErr(err)
			}
		},
	}

	opts.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newListCmd(opts, func() *logger.Logger { return log }))

	return rootCmd
}

func Execute() {
	opts := config.NewOptions()
	if err := opts.LoadEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := NewRootCmd(opts).Execute(); err != nil {
		os.Exit(1)
	}
}
