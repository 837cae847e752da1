// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// PageRef identifies a Confluence page resolved from an input URL.
type PageRef struct {
	// SourceURL is the URL as it appeared in the input file.
	SourceURL string `json:"source_url" yaml:"source_url"`

	// BaseURL is the wiki base derived from the URL,
	// e.g. "https://acme.atlassian.net/wiki".
	BaseURL string `json:"base_url" yaml:"base_url"`

	// PageID is the numeric page identifier as a string.
	PageID string `json:"page_id" yaml:"page_id"`
}

// Page holds the metadata and storage-format body of a fetched page.
type Page struct {
	// ID is the numeric page identifier.
	ID string `json:"id" yaml:"id"`

	// Title is the page title.
	Title string `json:"title" yaml:"title"`

	// SpaceKey is the short key of the containing space (e.g. "ENG").
	SpaceKey string `json:"space_key" yaml:"space_key"`

	// SpaceName is the display name of the containing space. Falls back to
	// SpaceKey when the API returns no name.
	SpaceName string `json:"space_name" yaml:"space_name"`

	// AuthorName is the display name of the page author.
	AuthorName string `json:"author_name" yaml:"author_name"`

	// WebURL is the browser link to the page.
	WebURL string `json:"web_url" yaml:"web_url"`

	// LastUpdated is the timestamp of the current page version.
	LastUpdated time.Time `json:"last_updated" yaml:"last_updated"`

	// HTMLBody is the storage-format HTML returned by the API.
	HTMLBody string `json:"-" yaml:"-"`
}
