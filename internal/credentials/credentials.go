// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package credentials loads the Atlassian API credentials from the
// environment, honoring a local .env file. Credentials are loaded once at
// startup into an explicit struct and passed by parameter; nothing reads
// the environment after startup.
package credentials

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables holding the required credentials.
const (
	EnvAPIToken = "CONFLUENCE_API_TOKEN"
	EnvUserName = "CONFLUENCE_USER_NAME"
)

// Credentials holds the Atlassian account used for basic auth.
type Credentials struct {
	Username string
	APIToken string
}

// Load reads credentials from the environment after loading envFile (or
// ./.env when envFile is empty). A missing .env file is not an error;
// variables already set in the environment take precedence over the file.
// Missing credentials are a fatal configuration error reported before any
// fetch.
func Load(envFile string) (Credentials, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return Credentials{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	creds := Credentials{
		Username: strings.TrimSpace(os.Getenv(EnvUserName)),
		APIToken: strings.TrimSpace(os.Getenv(EnvAPIToken)),
	}

	var missing []string
	if creds.Username == "" {
		missing = append(missing, EnvUserName)
	}
	if creds.APIToken == "" {
		missing = append(missing, EnvAPIToken)
	}
	if len(missing) > 0 {
		return Credentials{}, fmt.Errorf("missing required credentials: set %s (in the environment or a .env file)",
			strings.Join(missing, " and "))
	}

	return creds, nil
}
