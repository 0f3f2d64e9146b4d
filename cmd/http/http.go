package http

import "github.com/spf13/cobra"

func NewHTTPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Run the public API",
		Long: `Run the public API that backs the landing site: waitlist signups,
the chat widget and the price ticker.`,
	}

	cmd.AddCommand(NewStartCommand())

	return cmd
}
