package main

import (
	"context"
	"fmt"
	"os"
	"presence/internal/di"
	"presence/internal/structures"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	flags := &structures.CliFlags{}

	root := &cobra.Command{
		Use:           "presence",
		Short:         "Presence analyzer: weekday charts of office presence",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config/config.yaml", "path to the yaml config")
	root.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "also log to the console")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the http server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := di.InitApp(flags)
			return err
		},
	}

	fetch := &cobra.Command{
		Use:   "fetchxml",
		Short: "Download the user metadata xml once and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			refresher, err := di.InitRefresher(flags)
			if err != nil {
				return err
			}
			return refresher.Refresh(cmd.Context())
		},
	}

	root.AddCommand(serve, fetch)
	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
