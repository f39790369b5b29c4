package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newEnableCmd creates the 'enable' command: re-enables a previously
// disabled entry using the backup the Control Service saved when it was
// disabled.
func newEnableCmd() *cobra.Command {
	var flags scanFlags

	cmd := &cobra.Command{
		Use:   "enable <id>",
		Short: "Re-enable a previously disabled startup entry",
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

			updated, err := e.control.Enable(GetContext(), item)
			if err != nil {
				return fmt.Errorf("enable failed: %w", err)
			}

			fmt.Printf("enabled %q\n", updated.Name)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
