// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "confluence-export/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ClientConfig holds settings for the Confluence REST client.
type ClientConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the Confluence wiki base, e.g. "https://acme.atlassian.net/wiki".
	// When empty the base is derived from each page URL.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Username is the Atlassian account email used for basic auth.
	Username string `json:"username,omitempty" yaml:"username,omitempty"`

	// APIToken is the Atlassian API token paired with Username.
	APIToken string `json:"api_token,omitempty" yaml:"api_token,omitempty"`
}

// ExportConfig holds settings for an export run.
type ExportConfig struct {
	// URLFile is the path to the text file listing page URLs, one per line.
	URLFile string `json:"url_file" yaml:"url_file"`

	// OutputDir is the directory the aggregated Markdown document and the
	// run manifest are written to. Created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}
