// tidywindow inventories and reversibly controls Windows startup entries.
package main

import (
	"fmt"
	"os"

	"github.com/Cosmos-0118/TidyWindow-sub010/internal/cli"
	"github.com/Cosmos-0118/TidyWindow-sub010/internal/version"
)

func main() {
	cli.Version = version.Version
	cli.BuildTime = version.BuildTime

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
