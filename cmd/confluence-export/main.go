// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the confluence-export CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; running it with no arguments performs the
// export.
var rootCmd = &cobra.Command{
	Use:   "confluence-export",
	Short: "Export Confluence pages to a single Markdown document",
	Long: `confluence-export reads Confluence page URLs from a text file, fetches each
page's content and metadata from the Confluence REST API, converts the body
to Markdown, and writes one aggregated, timestamped document plus a YAML run
manifest under the output directory.

Pages that cannot be resolved or fetched are skipped with a logged reason;
only configuration and output-write errors abort the run.

Credentials come from CONFLUENCE_USER_NAME and CONFLUENCE_API_TOKEN, set in
the environment or a local .env file.`,
	SilenceUsage: true,
	RunE:         runExport,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./confluence-export.yaml or ~/.config/confluence-export/config.yaml)")

	rootCmd.Flags().String("urls-file", "", "text file listing page URLs, one per line (default urls.txt)")
	rootCmd.Flags().String("output-dir", "", "directory for the exported document (default outputs)")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	rootCmd.Flags().String("env-file", "", "dotenv file with credentials (default .env)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("confluence-export")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "confluence-export"))
		}
	}

	viper.SetEnvPrefix("CONFLUENCE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
