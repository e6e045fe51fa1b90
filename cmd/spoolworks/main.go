package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/spoolworks/internal/cli"
	"github.com/example/spoolworks/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "spoolworks",
		Short:   "Spoolworks - work order tracking for wire production",
		Version: version.String(),
		Long: `Spoolworks tracks manufacturing work orders for a cable/wire producer.
It composes orders (customer, header, spools, production spec) and derives
production quality metrics against the specification.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.WorkOrderCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
