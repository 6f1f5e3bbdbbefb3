package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dojohq/portal-api/internal/database"
	"github.com/dojohq/portal-api/internal/models"
	"github.com/dojohq/portal-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply the database schema for the Dojo Portal API.

The serve command migrates on startup; this command exists for
provisioning a database ahead of a deploy.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	all := models.AllModels()
	if err := db.AutoMigrate(all...); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d model(s) at %s\n", len(all), cfg.Database.Path)
	return nil
}
