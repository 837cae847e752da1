// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package confluence implements a read-only client for the Confluence
// Cloud REST API. It fetches page content in storage format together with
// version, space, and author metadata.
package confluence

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/confluence-export/internal/httputil"
	"github.com/pdiddy/confluence-export/pkg/types"
)

// pageExpansions lists the response fields requested alongside the page body.
const pageExpansions = "body.storage,version,history.createdBy,space"

// unknownAuthor is used when neither the version author nor the creator
// can be resolved to a display name.
const unknownAuthor = "unknown"

// Client performs authenticated reads against a Confluence instance.
// Display-name lookups are cached for the lifetime of the client, so a
// run never asks the user endpoint twice for the same account.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userCache  map[string]string
}

// NewClient builds a Client from cfg. Username and APIToken are required;
// BaseURL may be empty, in which case each request uses the base derived
// from the page's own URL.
func NewClient(cfg types.ClientConfig) (*Client, error) {
	if strings.TrimSpace(cfg.Username) == "" {
		return nil, fmt.Errorf("confluence username is required")
	}
	if strings.TrimSpace(cfg.APIToken) == "" {
		return nil, fmt.Errorf("confluence API token is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Client{
		httpClient: httputil.NewClient(cfg),
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		userCache:  make(map[string]string),
	}, nil
}

// Confluence content API response structures. Only the fields the
// exporter reads are declared.
type contentResponse struct {
	ID      string            `json:"id"`
	Title   string            `json:"title"`
	Space   spaceInfo         `json:"space"`
	Body    bodyInfo          `json:"body"`
	Version versionInfo       `json:"version"`
	History historyInfo       `json:"history"`
	Links   map[string]string `json:"_links"`
}

type spaceInfo struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type bodyInfo struct {
	Storage storageInfo `json:"storage"`
}

type storageInfo struct {
	Value string `json:"value"`
}

type versionInfo struct {
	When string   `json:"when"`
	By   userInfo `json:"by"`
}

type historyInfo struct {
	CreatedBy userInfo `json:"createdBy"`
}

type userInfo struct {
	AccountID   string `json:"accountId"`
	DisplayName string `json:"displayName"`
}

// GetPage fetches the page identified by ref and maps the response into a
// types.Page. It issues a single GET with no retry; any transport error,
// non-2xx status, or malformed JSON body is returned to the caller, which
// skips the page.
func (c *Client) GetPage(ctx context.Context, ref types.PageRef) (*types.Page, error) {
	base := c.resolveBase(ref)
	if base == "" {
		return nil, fmt.Errorf("no base URL for page %s", ref.PageID)
	}

	endpoint := fmt.Sprintf("%s/rest/api/content/%s?expand=%s", base, ref.PageID, url.QueryEscape(pageExpansions))

	var content contentResponse
	if err := c.getJSON(ctx, endpoint, &content); err != nil {
		return nil, err
	}

	page := &types.Page{
		ID:        content.ID,
		Title:     content.Title,
		SpaceKey:  content.Space.Key,
		SpaceName: content.Space.Name,
		HTMLBody:  content.Body.Storage.Value,
	}
	if page.ID == "" {
		page.ID = ref.PageID
	}
	if page.SpaceName == "" {
		page.SpaceName = content.Space.Key
	}

	if content.Version.When != "" {
		when, err := time.Parse(time.RFC3339, content.Version.When)
		if err != nil {
			return nil, fmt.Errorf("parsing version timestamp for page %s: %w", ref.PageID, err)
		}
		page.LastUpdated = when
	}

	page.AuthorName = c.resolveAuthor(ctx, base, content)
	page.WebURL = webURL(base, content.Links, ref)

	return page, nil
}

// resolveAuthor prefers the version author's display name and falls back
// to a user-endpoint lookup by account ID, trying the version author
// first and then the page creator.
func (c *Client) resolveAuthor(ctx context.Context, base string, content contentResponse) string {
	if name := strings.TrimSpace(content.Version.By.DisplayName); name != "" {
		return name
	}
	for _, accountID := range []string{content.Version.By.AccountID, content.History.CreatedBy.AccountID} {
		if accountID != "" {
			return c.GetUserDisplayName(ctx, base, accountID)
		}
	}
	if name := strings.TrimSpace(content.History.CreatedBy.DisplayName); name != "" {
		return name
	}
	return unknownAuthor
}

// GetUserDisplayName looks up a user's display name by account ID, caching
// results. Lookup failures degrade to the account ID itself rather than
// failing the page.
func (c *Client) GetUserDisplayName(ctx context.Context, base, accountID string) string {
	if accountID == "" {
		return unknownAuthor
	}
	if name, ok := c.userCache[accountID]; ok {
		return name
	}

	endpoint := fmt.Sprintf("%s/rest/api/user?accountId=%s", base, url.QueryEscape(accountID))

	var user userInfo
	if err := c.getJSON(ctx, endpoint, &user); err != nil || user.DisplayName == "" {
		return accountID
	}

	c.userCache[accountID] = user.DisplayName
	return user.DisplayName
}

// getJSON issues one GET and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		} else {
			var errResp struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(body, &errResp); err == nil && strings.TrimSpace(errResp.Message) != "" {
				message = strings.TrimSpace(errResp.Message)
			}
		}
		return fmt.Errorf("confluence API GET %s failed (%d): %s", endpoint, resp.StatusCode, message)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing confluence response: %w", err)
	}
	return nil
}

// resolveBase returns the configured base URL, or the base derived from
// the page reference when none was configured.
func (c *Client) resolveBase(ref types.PageRef) string {
	if c.baseURL != "" {
		return c.baseURL
	}
	return strings.TrimRight(ref.BaseURL, "/")
}

// webURL builds the browser link for a page from the API's _links block,
// falling back to the input URL.
func webURL(base string, links map[string]string, ref types.PageRef) string {
	if webui := links["webui"]; webui != "" {
		if linkBase := links["base"]; linkBase != "" {
			return strings.TrimRight(linkBase, "/") + webui
		}
		return base + webui
	}
	return ref.SourceURL
}
