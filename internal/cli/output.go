package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/pathutil"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/validation"
)

// jsonOutputFlags are shared by every read command: render as JSON instead
// of a table, optionally to a file instead of stdout.
type jsonOutputFlags struct {
	asJSON bool
	output string
}

func (f *jsonOutputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print the result as JSON instead of a table")
	cmd.Flags().StringVar(&f.output, "output", "", "Write JSON output to this file instead of stdout (implies --json)")
}

// emit renders v as JSON to f.output (or stdout) when either --json or
// --output was given, and reports whether it handled the output (the
// caller should fall back to its normal table rendering if not).
func (f *jsonOutputFlags) emit(v interface{}) (bool, error) {
	if !f.asJSON && f.output == "" {
		return false, nil
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return true, fmt.Errorf("marshal JSON: %w", err)
	}

	if f.output == "" {
		fmt.Println(string(data))
		return true, nil
	}

	if err := validation.ValidateFilePath(f.output); err != nil {
		return true, fmt.Errorf("invalid --output path: %w", err)
	}
	resolved, err := pathutil.ResolveAbsolutePath(f.output)
	if err != nil {
		return true, fmt.Errorf("resolve --output path: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o600); err != nil {
		return true, fmt.Errorf("write %s: %w", resolved, err)
	}
	fmt.Printf("wrote JSON output to %s\n", resolved)
	return true, nil
}
