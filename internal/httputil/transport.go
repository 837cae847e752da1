// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"net/http"

	"github.com/pdiddy/confluence-export/pkg/types"
)

// authTransport decorates every outgoing request with basic-auth
// credentials, a User-Agent, and a JSON Accept header, so callers build
// plain requests without repeating header plumbing.
type authTransport struct {
	base      http.RoundTripper
	username  string
	token     string
	userAgent string
}

// RoundTrip implements http.RoundTripper. The request is cloned before
// mutation, as required by the RoundTripper contract.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.SetBasicAuth(t.username, t.token)
	req.Header.Set("Accept", "application/json")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(req)
}

// NewClient builds an *http.Client with the configured timeout whose
// transport injects the Atlassian basic-auth credentials into every
// request. There is no retry layer; each request is a single attempt.
func NewClient(cfg types.ClientConfig) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &authTransport{
			base:      http.DefaultTransport,
			username:  cfg.Username,
			token:     cfg.APIToken,
			userAgent: cfg.UserAgent,
		},
	}
}
