package system

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/glider_backend/internal/repo"
	"github.com/Alijeyrad/glider_backend/pkg/database"
	"github.com/Alijeyrad/glider_backend/pkg/util/password"
)

func NewAddUserCommand() *cobra.Command {
	var username, email, plain string

	cmd := &cobra.Command{
		Use:   "adduser",
		Short: "Create an operator user",
		RunE: func(cmd *cobra.Command, args []string) error {
			username = strings.TrimSpace(username)
			email = strings.TrimSpace(email)
			if username == "" || email == "" {
				return errors.New("--username and --email are required")
			}

			hash, err := password.Hash(plain)
			if err != nil {
				return fmt.Errorf("invalid password: %w", err)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := database.OpenFromCentral(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			ctx := context.Background()
			if _, err := database.Migrate(ctx, db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			u, err := repo.NewClient(db).User.Create(ctx, repo.CreateUserInput{
				Username:     username,
				Email:        email,
				PasswordHash: hash,
			})
			if errors.Is(err, repo.ErrConflict) {
				return fmt.Errorf("username or email already taken")
			}
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s).\n", u.Username, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name (unique)")
	cmd.Flags().StringVar(&email, "email", "", "email address (unique)")
	cmd.Flags().StringVar(&plain, "password", "", "password, 8 to 72 bytes")

	return cmd
}
