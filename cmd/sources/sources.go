// Package sources implements the command-line interface for inspecting
// the source registry, displaying the configured endpoints in a formatted
// table.
package sources

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ethodata/datascout/internal/config"
	"github.com/ethodata/datascout/internal/domain"
	internalsources "github.com/ethodata/datascout/internal/sources"
)

// Command creates the sources command with its subcommands.
func Command(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Inspect the source registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newListCommand(cfgFile))

	return cmd
}

// newListCommand creates the list subcommand.
func newListCommand(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered source endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			registry, err := internalsources.New(cfg.Sources...)
			if err != nil {
				return fmt.Errorf("build source registry: %w", err)
			}

			renderTable(registry.Endpoints())
			return nil
		},
	}
}

// renderTable formats and displays the endpoints in a table.
func renderTable(endpoints []domain.SourceEndpoint) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Name", "URL", "Timeout", "Retry Budget"})

	for _, e := range endpoints {
		timeout := "default"
		if e.Timeout > 0 {
			timeout = e.Timeout.String()
		}

		t.AppendRow(table.Row{e.Name, e.URL, timeout, e.RetryBudget})
	}

	t.Render()
}
