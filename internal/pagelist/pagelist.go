// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagelist reads page URL lists and resolves URLs to page identifiers.
package pagelist

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/pdiddy/confluence-export/pkg/types"
)

// pagesPathPattern matches the modern page URL shape:
// "/spaces/ENG/pages/123456789/Some+Title".
var pagesPathPattern = regexp.MustCompile(`/pages/(\d+)(?:/|$)`)

// pageIDParam is the query parameter carried by legacy
// "/pages/viewpage.action?pageId=123456789" URLs.
const pageIDParam = "pageId"

// ReadFile reads a URL list file and returns its non-empty, trimmed lines
// in file order. Blank lines and lines starting with '#' are skipped.
// A missing or unreadable file is an error; an empty file yields an empty
// slice.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading URL file %s: %w", path, err)
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, nil
}

// Resolve extracts the wiki base URL and numeric page ID from a Confluence
// page URL. Two shapes are recognized: a path-embedded ID
// ("/spaces/KEY/pages/<digits>/Title") and the legacy viewpage.action form
// ("?pageId=<digits>"). Any other shape is an error; callers skip the page
// and continue.
func Resolve(rawURL string) (types.PageRef, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return types.PageRef{}, fmt.Errorf("parsing URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return types.PageRef{}, fmt.Errorf("unsupported URL scheme in %q", rawURL)
	}
	if u.Host == "" {
		return types.PageRef{}, fmt.Errorf("URL %q has no host", rawURL)
	}

	ref := types.PageRef{
		SourceURL: rawURL,
		BaseURL:   u.Scheme + "://" + u.Host + "/wiki",
	}

	if strings.Contains(u.Path, "viewpage.action") {
		if id := u.Query().Get(pageIDParam); id != "" && isDigits(id) {
			ref.PageID = id
			return ref, nil
		}
	}

	if m := pagesPathPattern.FindStringSubmatch(u.Path); m != nil {
		ref.PageID = m[1]
		return ref, nil
	}

	return types.PageRef{}, fmt.Errorf("no page ID found in URL %q", rawURL)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
