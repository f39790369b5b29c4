package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/startup/classifier"
)

// newListCmd creates the 'list' command: runs a pass and renders every
// entry as a width-aware table, annotated with the safety classification.
func newListCmd() *cobra.Command {
	var flags scanFlags
	var out jsonOutputFlags
	var sourceFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Scan and list every discovered startup entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine()
			if err != nil {
				return err
			}

			snapshot, err := runScanWithSpinner(e, flags.options())
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			items := snapshot.Items
			if sourceFilter != "" {
				items = filterBySourceKind(items, sourceFilter)
			}

			if handled, err := out.emit(items); handled || err != nil {
				return err
			}

			renderItemTable(items)
			return nil
		},
	}

	flags.register(cmd)
	out.register(cmd)
	cmd.Flags().StringVar(&sourceFilter, "source", "", "Only list entries of this source kind (e.g. RunKey, Service, ScheduledTask)")
	return cmd
}

func filterBySourceKind(items []models.StartupItem, kind string) []models.StartupItem {
	var filtered []models.StartupItem
	for _, item := range items {
		if strings.EqualFold(string(item.SourceKind), kind) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// terminalWidth returns the current stdout width, falling back to 100
// columns when it can't be determined (piped output, non-interactive CI).
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 100
	}
	return width
}

func renderItemTable(items []models.StartupItem) {
	width := terminalWidth()
	nameWidth := 28
	cmdWidth := width - nameWidth - 32
	if cmdWidth < 20 {
		cmdWidth = 20
	}

	fmt.Printf("%-*s  %-16s  %-7s  %-6s  %-*s\n", nameWidth, "NAME", "SOURCE", "ENABLED", "IMPACT", cmdWidth, "COMMAND")
	for _, item := range items {
		verdict := classifier.Classify(item)
		name := truncate(item.Name, nameWidth)
		enabled := "yes"
		if !item.IsEnabled {
			enabled = "no"
		}
		if verdict.IsSystemCritical {
			name += " *"
		}
		cmd := truncate(item.RawCommand, cmdWidth)
		fmt.Printf("%-*s  %-16s  %-7s  %-6s  %-*s\n", nameWidth, name, item.SourceKind, enabled, item.Impact, cmdWidth, cmd)
	}
	fmt.Printf("\n%d entries (* marks system-critical entries the engine refuses to mutate)\n", len(items))
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
