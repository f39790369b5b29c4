// Package cli provides the command-line interface for the startup
// inventory and control engine.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/logging"
)

var (
	verbose bool
	debug   bool

	logger *logging.Logger

	rootContext context.Context
	cancelFunc  context.CancelFunc
)

// Version information, set by main at startup.
var (
	Version   = "v0.1.0-dev"
	BuildTime = "2026-07-30"
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tidywindow",
		Short: "Inventory and reversibly control what launches at Windows startup",
		Long: `tidywindow ` + Version + ` - Built: ` + BuildTime + `

Discovers everything Windows will run at boot or logon across run keys,
the startup folder, scheduled tasks, services, packaged apps, and a set
of higher-blast-radius extension points (Winlogon, IFEO, LSA packages,
KnownDLLs, and more), classifies how safe each one is to touch, and
performs reversible enable/disable/defer mutations with a backup catalog
so every change can be undone.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewLogger()
			if verbose || debug {
				logging.SetGlobalLevel(-1)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as --verbose)")

	rootCmd.Version = Version + " (" + BuildTime + ")"
	rootCmd.CompletionOptions.DisableDefaultCmd = false

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	rootContext, cancelFunc = context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		for sig := range sigChan {
			if sig != nil {
				fmt.Fprintf(os.Stderr, "\nreceived signal %v, cancelling...\n", sig)
				cancelFunc()
			}
		}
	}()

	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	err := rootCmd.Execute()

	signal.Stop(sigChan)
	close(sigChan)

	return err
}

// AddCommands registers every subcommand on the root command.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newEnableCmd())
	rootCmd.AddCommand(newDisableCmd())
	rootCmd.AddCommand(newDelayCmd())
	rootCmd.AddCommand(newRestoreCmd())
}

// GetLogger returns the global CLI logger, creating a default one if
// Execute hasn't run yet (e.g. under `go test`).
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return logger
}

// GetContext returns the signal-cancellable root context.
func GetContext() context.Context {
	if rootContext == nil {
		return context.Background()
	}
	return rootContext
}
