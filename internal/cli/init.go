package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/spoolworks/internal/config"
	"github.com/example/spoolworks/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the spoolworks config and database",
	RunE: func(cmd *cobra.Command, args []string) error {
		plant, _ := cmd.Flags().GetString("plant")
		dbPath, _ := cmd.Flags().GetString("db-path")

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		cfg := &config.Config{
			Version:      "1",
			PlantName:    plant,
			DatabasePath: dbPath,
		}
		if err := config.SaveConfig(cwd, cfg); err != nil {
			return err
		}

		// The config must exist before the database opens, so a db-path
		// override applies to this first initialization as well.
		if _, err := db.GetDB(); err != nil {
			return err
		}
		resolved, err := db.GetDBPath()
		if err != nil {
			return err
		}

		fmt.Printf("✓ Wrote .spoolworks/config.json\n")
		fmt.Printf("✓ Database ready at %s\n", resolved)
		return nil
	},
}

// InitCmd returns the init command.
func InitCmd() *cobra.Command {
	initCmd.Flags().String("plant", "", "Plant display name for report headers")
	initCmd.Flags().String("db-path", "", "Database file path (default ~/.spoolworks/spoolworks.db)")
	return initCmd
}
