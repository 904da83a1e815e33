package main

import (
	"os"

	"github.com/spf13/cobra"

	"fieldops/internal/interfaces/cli/migrate"
	"fieldops/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldops",
		Short: "FieldOps - field service coordination",
		Long:  `FieldOps coordinates client tickets, service orders and field technicians, with a realtime dispatcher dashboard.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
