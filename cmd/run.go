package cmd

import (
	"fmt"

	"github.com/asadk/hikmah/internal/app"
	"github.com/spf13/cobra"
)

// runApp resolves the storage paths and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}
	return app.Run(app.Options{DBPath: dbPath})
}
