// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export drives the page export pipeline: resolve each input URL,
// fetch the page, convert its body to Markdown, and assemble one ordered
// document plus a run manifest.
package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/confluence-export/internal/convert"
	"github.com/pdiddy/confluence-export/internal/pagelist"
	"github.com/pdiddy/confluence-export/pkg/types"
)

// Fetcher retrieves a page for a resolved reference. *confluence.Client
// satisfies it; tests substitute fakes.
type Fetcher interface {
	GetPage(ctx context.Context, ref types.PageRef) (*types.Page, error)
}

// Status tags the outcome of one input URL.
type Status string

const (
	StatusExported Status = "exported"
	StatusSkipped  Status = "skipped"
)

// PageResult records the outcome of processing one input URL.
type PageResult struct {
	URL    string `yaml:"url"`
	PageID string `yaml:"page_id,omitempty"`
	Title  string `yaml:"title,omitempty"`
	Status Status `yaml:"status"`
	Reason string `yaml:"reason,omitempty"`
}

// Section is one page's contribution to the aggregated document: a
// metadata header followed by the converted Markdown body.
type Section struct {
	Header string
	Body   string
}

// BatchResult holds the outcome of an export run. Sections preserve input
// URL order.
type BatchResult struct {
	Exported int
	Skipped  int
	Results  []PageResult
	Sections []Section
}

// Total returns the number of input URLs processed.
func (r BatchResult) Total() int {
	return r.Exported + r.Skipped
}

// HasSkips reports whether any pages were skipped.
func (r BatchResult) HasSkips() bool {
	return r.Skipped > 0
}

// Run processes the URLs strictly in order. A URL that cannot be resolved,
// fetched, or converted is recorded as skipped with its reason and the run
// continues; nothing in the loop is fatal. Per-item status lines and a
// batch summary are written to w. Duplicate URLs are re-fetched, not
// deduplicated.
func Run(ctx context.Context, fetcher Fetcher, conv convert.Converter, urls []string, w io.Writer) BatchResult {
	var result BatchResult

	for _, rawURL := range urls {
		ref, err := pagelist.Resolve(rawURL)
		if err != nil {
			result.skip(w, PageResult{URL: rawURL}, err)
			continue
		}

		page, err := fetcher.GetPage(ctx, ref)
		if err != nil {
			result.skip(w, PageResult{URL: rawURL, PageID: ref.PageID}, err)
			continue
		}

		body, err := conv.Convert(page.HTMLBody)
		if err != nil {
			result.skip(w, PageResult{URL: rawURL, PageID: page.ID, Title: page.Title}, err)
			continue
		}

		result.Sections = append(result.Sections, BuildSection(page, body))
		result.Results = append(result.Results, PageResult{
			URL:    rawURL,
			PageID: page.ID,
			Title:  page.Title,
			Status: StatusExported,
		})
		result.Exported++
		fmt.Fprintf(w, "exported: %s (page %s)\n", page.Title, page.ID)
	}

	fmt.Fprintf(w, "\nBatch summary: %d exported, %d skipped (total: %d)\n",
		result.Exported, result.Skipped, result.Total())
	return result
}

func (r *BatchResult) skip(w io.Writer, pr PageResult, err error) {
	pr.Status = StatusSkipped
	pr.Reason = err.Error()
	r.Results = append(r.Results, pr)
	r.Skipped++
	fmt.Fprintf(w, "skipped: %s (%v)\n", pr.URL, err)
}

// headerTimeFormat renders the last-updated timestamp in the section header.
const headerTimeFormat = "2006-01-02 15:04 MST"

// BuildSection formats the metadata header for a page and pairs it with
// the converted body.
func BuildSection(page *types.Page, body string) Section {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", page.Title)
	fmt.Fprintf(&b, "URL: %s\n", page.WebURL)
	fmt.Fprintf(&b, "Space: %s\n", page.SpaceName)
	fmt.Fprintf(&b, "Author: %s\n", page.AuthorName)
	if !page.LastUpdated.IsZero() {
		fmt.Fprintf(&b, "Last updated: %s\n", page.LastUpdated.Format(headerTimeFormat))
	}
	return Section{Header: b.String(), Body: body}
}

// Assemble concatenates sections in order into the final document. Zero
// sections yield an empty document, which is still written.
func Assemble(sections []Section) string {
	var b strings.Builder
	for _, s := range sections {
		b.WriteString(s.Header)
		b.WriteString("\n")
		b.WriteString(s.Body)
		b.WriteString("\n\n")
	}
	return b.String()
}
