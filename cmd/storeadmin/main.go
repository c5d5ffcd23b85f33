// Storeadmin is a terminal client for the storefront admin API.
//
// It edits a store's billboard through an interactive form, or directly
// from the command line, and keeps a local registry of known stores.
//
// Usage:
//
//	storeadmin [command] [flags]
//
// Running without arguments opens the interactive form for the store given
// by --store. See 'storeadmin --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/storeadmin/internal/logging"
	"github.com/muurk/storeadmin/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logging.Error("Command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "storeadmin",
	Short: "Storefront billboard admin",
	Long: `A terminal client for the storefront admin API.

Edits a store's billboard label, deletes it behind a confirmation,
and remembers known stores in a local registry.

If no command is specified, the interactive form opens for --store.`,
	Version:       version.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "storeadmin %s\n", version.Full())
	},
}
