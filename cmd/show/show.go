// Package show implements the command that renders a previously exported
// CSV table in the terminal. It reads the export file only; it has no
// knowledge of the pipeline that produced it.
package show

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ethodata/datascout/internal/exporter"
)

// Command creates the show command.
func Command() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render an exported dataset table in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(path)
		},
	}

	cmd.Flags().StringVar(&path, "file", exporter.DefaultCSVPath, "exported CSV file to render")

	return cmd
}

// run reads the CSV export and renders it.
func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open export: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("read export: %w", err)
	}

	if len(rows) == 0 {
		fmt.Println("export is empty")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	header := table.Row{}
	for _, col := range rows[0] {
		header = append(header, col)
	}
	t.AppendHeader(header)

	for _, row := range rows[1:] {
		r := table.Row{}
		for _, cell := range row {
			r = append(r, cell)
		}
		t.AppendRow(r)
	}

	t.Render()
	fmt.Printf("%d dataset(s)\n", len(rows)-1)

	return nil
}
