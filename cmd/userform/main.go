// cmd/userform/main.go
//
// userform – entry point.
//
// Subcommands
// -----------
//
//	serve   run the HTTP form (pages + JSON API + /metrics)
//	tui     run the same form in the terminal
//	check   validate one set of values from flags and exit
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yanizio/userform/internal/form"

	_ "github.com/yanizio/userform/components/signup" // registers the form routes
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "userform",
		Short:        "A single-page user registration form",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringP("form", "f", "", "form definition YAML (default: embedded registration form)")

	root.AddCommand(newServeCmd(), newTUICmd(), newCheckCmd())
	return root
}

// formDef returns the --form override or the embedded definition.
func formDef(cmd *cobra.Command) (*form.FormDef, error) {
	path, _ := cmd.Flags().GetString("form")
	if path == "" {
		return form.Default(), nil
	}
	fd, err := form.LoadFormDef(path)
	if err != nil {
		return nil, fmt.Errorf("form definition: %w", err)
	}
	return fd, nil
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
