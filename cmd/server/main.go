package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFile is shared by every subcommand.
var configFile string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "rms",
		Short:         "EEE academic records management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCommand, // serve by default
	}
	root.PersistentFlags().StringVar(&configFile, "config", "",
		"Path to a config file (default: ./config/config.yaml or ./config.yaml)")

	root.AddCommand(newServeCommand())
	root.AddCommand(newMigrateCommand())
	root.AddCommand(newCreateAdminCommand())
	return root
}
