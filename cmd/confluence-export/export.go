// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/confluence-export/internal/confluence"
	"github.com/pdiddy/confluence-export/internal/convert"
	"github.com/pdiddy/confluence-export/internal/credentials"
	"github.com/pdiddy/confluence-export/internal/export"
	"github.com/pdiddy/confluence-export/internal/pagelist"
	"github.com/pdiddy/confluence-export/pkg/types"
)

const (
	defaultURLFile   = "urls.txt"
	defaultOutputDir = "outputs"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "confluence-export/0.1"
)

// runExport is the root command body: load configuration and credentials,
// read the URL list, run the pipeline, and write the document and
// manifest. Per-page skips do not affect the exit code; configuration,
// URL-file, and output-write errors do.
func runExport(cmd *cobra.Command, args []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	creds, err := credentials.Load(envFile)
	if err != nil {
		return err
	}

	urlFile, _ := cmd.Flags().GetString("urls-file")
	if urlFile == "" {
		urlFile = viper.GetString("url_file")
	}
	if urlFile == "" {
		urlFile = defaultURLFile
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = viper.GetString("output_dir")
	}
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	userAgent := viper.GetString("user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	urls, err := pagelist.ReadFile(urlFile)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintf(os.Stderr, "no page URLs in %s; the output document will be empty\n", urlFile)
	}

	client, err := confluence.NewClient(types.ClientConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: userAgent,
		},
		BaseURL:  viper.GetString("base_url"),
		Username: creds.Username,
		APIToken: creds.APIToken,
	})
	if err != nil {
		return err
	}

	result := export.Run(context.Background(), client, convert.NewStorageConverter(), urls, os.Stdout)

	now := time.Now()
	docPath := export.OutputPath(outputDir, now)
	if err := export.WriteDocument(docPath, export.Assemble(result.Sections)); err != nil {
		return err
	}
	if err := export.WriteManifest(export.ManifestPath(docPath), export.NewManifest(docPath, result, now)); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d pages exported, %d skipped)\n", docPath, result.Exported, result.Skipped)
	return nil
}
