// The vitrine CLI manages the catalogue backend: serve, migrate, seed,
// route:list.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import migrations and seeders so their init() funcs run and register
	// themselves before any command executes.
	_ "github.com/vitrinehq/vitrine/database/migrations"
	_ "github.com/vitrinehq/vitrine/database/seeders"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vitrine",
	Short: "Vitrine product catalogue backend",
	Long:  "Vitrine is the product catalogue administration backend. Use this CLI to run the server and manage the database.",
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Database
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}
