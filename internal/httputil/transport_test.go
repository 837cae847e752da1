// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/confluence-export/pkg/types"
)

func TestNewClientSetsAuthHeaders(t *testing.T) {
	var gotUser, gotPass, gotAccept, gotAgent string
	var gotOK bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(types.ClientConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "confluence-export/test",
		},
		Username: "user@example.com",
		APIToken: "secret-token",
	})

	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.True(t, gotOK, "expected basic auth header")
	assert.Equal(t, "user@example.com", gotUser)
	assert.Equal(t, "secret-token", gotPass)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "confluence-export/test", gotAgent)
	assert.Equal(t, 5*time.Second, client.Timeout)
}

func TestRoundTripDoesNotMutateOriginalRequest(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(types.ClientConfig{
		Username: "u",
		APIToken: "t",
	})

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, req.Header.Get("Authorization"))
}
