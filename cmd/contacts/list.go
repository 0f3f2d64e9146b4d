package contacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Alijeyrad/glider_backend/internal/repo"
	"github.com/Alijeyrad/glider_backend/pkg/constants"
	"github.com/Alijeyrad/glider_backend/pkg/database"
)

func NewListCommand() *cobra.Command {
	var (
		entryType string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if entryType != "" && !lo.Contains(constants.ContactTypes, entryType) {
				return fmt.Errorf("--type must be one of %v", constants.ContactTypes)
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

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := database.Migrate(ctx, db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			entries, err := repo.NewClient(db).Contact.GetAll(ctx, repo.ContactFilter{Type: entryType})
			if err != nil {
				return fmt.Errorf("failed to fetch contacts: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			renderTable(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&entryType, "type", "", "only show entries of this type (contact, waitlist)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func renderTable(w io.Writer, entries []*repo.Contact) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Created", "Type", "Email", "Name", "Message"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, e := range entries {
		table.Append([]string{
			e.CreatedAt.UTC().Format(time.RFC3339),
			e.Type,
			e.Email,
			e.Name,
			truncate(e.Message, 60),
		})
	}
	table.Render()

	fmt.Fprintf(w, "\n%d entr%s\n", len(entries), lo.Ternary(len(entries) == 1, "y", "ies"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
