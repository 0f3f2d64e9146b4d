package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	contactscmd "github.com/Alijeyrad/glider_backend/cmd/contacts"
	httpcmd "github.com/Alijeyrad/glider_backend/cmd/http"
	systemcmd "github.com/Alijeyrad/glider_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "glider",
	Short: "Glider landing site backend: waitlist, chat assistant and price feed.",
	Long: `Glider serves the backend of the Glider landing site. It stores waitlist
signups in an embedded SQLite file, answers the chat widget with canned
replies and keeps a cached token price feed.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(contactscmd.NewContactsCommand())
}
