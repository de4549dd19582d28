package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/asadk/hikmah/internal/profile"
	"github.com/asadk/hikmah/internal/storage"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all profiles and sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("This deletes every profile, bookmark, and counter. Continue? [y/N] ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		store, closeStore, err := openProfileStore(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		if err := store.Wipe(context.Background()); err != nil {
			return fmt.Errorf("wipe profiles: %w", err)
		}
		fmt.Println("All profiles deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}

// openProfileStore opens the durable database and the session slot the
// same way the TUI does. The returned func closes the database.
func openProfileStore(cmd *cobra.Command) (*profile.Store, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	stateDir, err := storage.DefaultStateDir()
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	files, err := storage.NewFileStore(stateDir)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	return profile.NewStore(db, files), func() { db.Close() }, nil
}
