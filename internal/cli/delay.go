package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// newDelayCmd creates the 'delay' command: defers an entry's launch instead
// of disabling it outright.
func newDelayCmd() *cobra.Command {
	var flags scanFlags
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "delay <id>",
		Short: "Defer a startup entry's launch instead of disabling it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine()
			if err != nil {
				return err
			}

			item, err := findItem(e, flags.options(), args[0])
			if err != nil {
				return err
			}

			plan, err := e.delay.Delay(GetContext(), item, duration)
			if err != nil {
				return fmt.Errorf("delay failed: %w", err)
			}

			fmt.Printf("deferred %q by %s; registered as %s\n", item.Name, plan.Delay, plan.ReplacementTaskPath)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&duration, "for", 30*time.Second, "How long to defer the entry's launch after logon (clamped to [15s, 10m])")
	return cmd
}
