package system

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/glider_backend/pkg/database"
)

func NewMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := database.OpenFromCentral(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			applied, err := database.Migrate(ctx, db)
			if err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			version, err := database.SchemaVersion(ctx, db)
			if err != nil {
				return fmt.Errorf("failed to read schema version: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s); schema is at version %d (%s).\n",
				applied, version, db.Config().Path())
			return nil
		},
	}

	return cmd
}
