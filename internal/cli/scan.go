package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/models"
)

// scanFlags are the collector toggles shared by every command that runs a
// fresh inventory pass.
type scanFlags struct {
	includeExtended bool
	includeDisabled bool
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.includeExtended, "extended", true, "Include the extended high-impact collectors (Winlogon, IFEO, LSA packages, KnownDLLs, ...)")
	cmd.Flags().BoolVar(&f.includeDisabled, "include-disabled", true, "Include entries that are currently disabled")
}

func (f *scanFlags) options() models.StartupInventoryOptions {
	opts := models.DefaultInventoryOptions()
	opts.IncludeExtended = f.includeExtended
	opts.IncludeDisabled = f.includeDisabled
	return opts
}

func runScanWithSpinner(e *engine, opts models.StartupInventoryOptions) (models.StartupInventorySnapshot, error) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("scanning startup locations"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() { fmt.Fprint(os.Stderr, "\n") }),
	)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				_ = bar.Add(1)
			}
		}
	}()

	snapshot, err := e.scanner.GetInventory(GetContext(), opts)
	close(done)
	_ = bar.Finish()

	return snapshot, err
}

// newScanCmd creates the 'scan' command: runs a pass and reports a summary
// without rendering the full item table.
func newScanCmd() *cobra.Command {
	var flags scanFlags
	var out jsonOutputFlags

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run an inventory pass and print a summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine()
			if err != nil {
				return err
			}

			snapshot, err := runScanWithSpinner(e, flags.options())
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if handled, err := out.emit(snapshot); handled || err != nil {
				return err
			}

			fmt.Printf("scanned %d entries in %s\n", len(snapshot.Items), snapshot.Duration.Round(1e6))
			if snapshot.IsPartial() {
				fmt.Printf("%d collector(s) reported warnings:\n", len(snapshot.Warnings))
				for _, w := range snapshot.Warnings {
					fmt.Printf("  %s: %s\n", w.SourceKind, w.Message)
				}
			}

			return nil
		},
	}

	flags.register(cmd)
	out.register(cmd)
	return cmd
}
