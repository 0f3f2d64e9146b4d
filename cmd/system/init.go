package system

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/glider_backend/pkg/constants"
	"github.com/Alijeyrad/glider_backend/pkg/database"
)

const starterConfig = `server:
  port: 3000
  environment: development
  cors:
    enabled: true
    allow_origins: ["*"]
  rate_limit:
    enabled: true
    requests_per_window: 20
    window_seconds: 30

database:
  data_dir: data
  file_name: glider.db

redis:
  addr: ""

admin:
  token: ""

email:
  enabled: false
  from: ""
  admin_address: ""
  smtp:
    host: smtp.gmail.com
    port: 587
    username: ""
    password: ""

prices:
  enabled: true
  token_ids: [solana, ethereum, moonriver]
  poll_interval_seconds: 60

observability:
  enabled: false
  metrics:
    enabled: true
    path: /metrics

logging:
  level: info
  format: text
  output:
    stdout: true
`

func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file and create the data directory",
		Long: `Write a starter config.yaml into the directory of --config and create the
data directory next to it. An existing config file is left alone unless --force
is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flagPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			// The reader only looks for config.yaml inside the flag's directory.
			dir := filepath.Dir(flagPath)
			cfgPath := filepath.Join(dir, constants.ConfigName+"."+constants.ConfigFormat)

			dataDir := filepath.Join(dir, database.DefaultConfig().DataDir)
			if err := os.MkdirAll(dataDir, 0o755); err != nil {
				return fmt.Errorf("failed to create data directory %q: %w", dataDir, err)
			}

			if !force {
				if _, err := os.Stat(cfgPath); err == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, skipping.\n", cfgPath)
					return nil
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("failed to stat %s: %w", cfgPath, err)
				}
			}

			if err := os.WriteFile(cfgPath, []byte(starterConfig), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", cfgPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s. Run `glider system migrate` next.\n", cfgPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}
