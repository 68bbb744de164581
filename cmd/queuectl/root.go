package main

import (
	"github.com/spf13/cobra"

	"arcade_queue/internal/logger"
)

func newRootCommand() *cobra.Command {
	var serverFlag string
	var configFlag string
	var logLevel string
	var lat, lon float64
	var force bool

	ctx := newCommandContext(&serverFlag, &configFlag, &lat, &lon, &force)

	rootCmd := &cobra.Command{
		Use:           "queuectl",
		Short:         "Arcade play queue client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init(logLevel, cmd.ErrOrStderr())
			if err := ctx.bindLocationFlags(cmd); err != nil {
				return err
			}
			_, err := ctx.ensureSettings()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&serverFlag, "server", "s", "", "Queue server base URL (default from config, then "+defaultServer+")")
	flags.StringVarP(&configFlag, "config", "c", "", "Configuration file path (default ~/.config/queuectl/config.toml)")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.Float64Var(&lat, "lat", 0, "Your latitude, for the venue edit check")
	flags.Float64Var(&lon, "lon", 0, "Your longitude, for the venue edit check")
	flags.BoolVar(&force, "force", false, "Skip the venue edit check")

	rootCmd.AddCommand(newCabinetsCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	for _, cmd := range newEntryCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newHealthCommand(ctx))
	rootCmd.AddCommand(newWhereCommand(ctx))

	return rootCmd
}
