package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/classifier"
)

// newShowCmd creates the 'show' command: scans and prints the full detail
// of a single entry by id.
func newShowCmd() *cobra.Command {
	var flags scanFlags
	var out jsonOutputFlags

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show full detail for one startup entry",
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

			if handled, err := out.emit(item); handled || err != nil {
				return err
			}

			verdict := classifier.Classify(item)

			fmt.Printf("id:              %s\n", item.ID)
			fmt.Printf("name:            %s\n", item.Name)
			fmt.Printf("source:          %s (%s)\n", item.SourceKind, item.SourceTag)
			fmt.Printf("location:        %s\n", item.EntryLocation)
			fmt.Printf("user context:    %s\n", item.UserContext)
			fmt.Printf("enabled:         %v\n", item.IsEnabled)
			fmt.Printf("command:         %s\n", item.RawCommand)
			fmt.Printf("publisher:       %s\n", item.Publisher)
			fmt.Printf("signature:       %s\n", item.Signature)
			fmt.Printf("impact:          %s\n", item.Impact)
			fmt.Printf("file size:       %d bytes\n", item.FileSizeBytes)
			fmt.Printf("system critical: %v\n", verdict.IsSystemCritical)
			fmt.Printf("safe to disable: %v\n", verdict.IsSafeToDisable)
			fmt.Printf("mutable:         %v\n", item.SourceKind.Mutable())

			return nil
		},
	}

	flags.register(cmd)
	out.register(cmd)
	return cmd
}

// findItem runs a scan and locates a single item by (case-insensitive) id.
func findItem(e *engine, opts models.StartupInventoryOptions, id string) (models.StartupItem, error) {
	snapshot, err := e.scanner.GetInventory(GetContext(), opts)
	if err != nil {
		return models.StartupItem{}, fmt.Errorf("scan failed: %w", err)
	}

	target := models.NormalizeID(id)
	for _, item := range snapshot.Items {
		if models.NormalizeID(item.ID) == target {
			return item, nil
		}
	}

	return models.StartupItem{}, fmt.Errorf("no startup entry found with id %q", id)
}
