package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/classifier"
)

// newDisableCmd creates the 'disable' command: classifies the target entry,
// refuses system-critical ones outright, and otherwise asks for
// confirmation before calling the Control Service unless --yes is set.
func newDisableCmd() *cobra.Command {
	var flags scanFlags
	var yes bool

	cmd := &cobra.Command{
		Use:   "disable <id>",
		Short: "Disable a startup entry, keeping a backup to restore it later",
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

			verdict := classifier.Classify(item)
			if verdict.IsSystemCritical {
				return fmt.Errorf("%q is classified system-critical and will not be disabled", item.Name)
			}

			if !yes && !confirm(fmt.Sprintf("Disable %q (%s)?", item.Name, item.SourceKind)) {
				fmt.Println("cancelled")
				return nil
			}

			updated, err := e.control.Disable(GetContext(), item)
			if err != nil {
				return fmt.Errorf("disable failed: %w", err)
			}

			fmt.Printf("disabled %q; backup saved, use 'restore %s' to undo\n", updated.Name, updated.ID)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
