package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRestoreCmd creates the 'restore' command: undoes a delay plan (removing
// the replacement task) and re-enables the original entry via the backup
// the disable step left behind.
func newRestoreCmd() *cobra.Command {
	var flags scanFlags

	cmd := &cobra.Command{
		Use:   "restore <id>",
		Short: "Cancel a deferred entry's delay plan and re-enable it at its original location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine()
			if err != nil {
				return err
			}

			id := args[0]
			if _, ok := e.plans.Get(id); ok {
				if err := e.delay.Cancel(GetContext(), id); err != nil {
					return fmt.Errorf("cancel delay plan: %w", err)
				}
			}

			item, err := findItem(e, flags.options(), id)
			if err != nil {
				return err
			}

			updated, err := e.control.Enable(GetContext(), item)
			if err != nil {
				return fmt.Errorf("restore failed: %w", err)
			}

			fmt.Printf("restored %q\n", updated.Name)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
