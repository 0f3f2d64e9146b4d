package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func NewGenDocsCommand() *cobra.Command {
	var (
		outDir      string
		frontMatter bool
	)

	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Generate Markdown docs for the glider CLI",
		Long: `Generate one Markdown file per glider command into --outdir.

With --front-matter each file starts with a YAML title block, which is what
most static site generators expect.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create docs directory %q: %w", outDir, err)
			}
			absOutDir, err := filepath.Abs(outDir)
			if err != nil {
				return fmt.Errorf("failed to resolve %q: %w", outDir, err)
			}

			prepender := func(string) string { return "" }
			if frontMatter {
				prepender = titleBlock
			}
			link := func(name string) string { return name }

			if err := doc.GenMarkdownTreeCustom(cmd.Root(), absOutDir, prepender, link); err != nil {
				return fmt.Errorf("failed to generate CLI docs: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "CLI docs generated in %s\n", absOutDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "outdir", "docs/cli", "output directory")
	cmd.Flags().BoolVar(&frontMatter, "front-matter", false, "prepend a YAML title block to each page")

	return cmd
}

// titleBlock turns ".../glider_system_migrate.md" into a "glider system migrate" title.
func titleBlock(filename string) string {
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return fmt.Sprintf("---\ntitle: %q\n---\n\n", strings.ReplaceAll(name, "_", " "))
}
