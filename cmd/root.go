// Package cmd implements the command-line interface for datascout.
// It provides the root command and subcommands for harvesting dataset
// metadata and inspecting the results.
package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ethodata/datascout/cmd/harvest"
	"github.com/ethodata/datascout/cmd/show"
	cmdsources "github.com/ethodata/datascout/cmd/sources"
)

// version is overridable at build time via -ldflags.
var version = "1.0.0"

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// debug enables debug logging for all commands.
	debug bool

	// rootCmd represents the root command for the datascout CLI.
	rootCmd = &cobra.Command{
		Use:   "datascout",
		Short: "Harvest research dataset metadata from remote sources",
		Long: `datascout visits a fixed registry of dataset listing pages, extracts
candidate dataset names, normalizes them into uniform records, and exports
the deduplicated result as a CSV/JSON table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env early so environment variables are visible to viper.
	_ = godotenv.Load()

	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./datascout.yaml or ./config/datascout.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "datascout version %s\n", version)
		},
	})

	rootCmd.AddCommand(harvest.Command(&cfgFile, &debug))
	rootCmd.AddCommand(cmdsources.Command(&cfgFile))
	rootCmd.AddCommand(show.Command())
}
