package main

import (
	"os"

	"github.com/spf13/cobra"

	"campusdesk/internal/interfaces/cli/migrate"
	"campusdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campusdesk",
		Short: "Campus IT Support portal",
		Long:  `CampusDesk is the university IT support portal: ticketing, notifications, and the admin back-office.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
