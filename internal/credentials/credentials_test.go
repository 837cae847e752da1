// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvUserName, "user@example.com")
	t.Setenv(EnvAPIToken, "token-123")

	creds, err := Load(filepath.Join(t.TempDir(), "no-such.env"))
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", creds.Username)
	assert.Equal(t, "token-123", creds.APIToken)
}

func TestLoadFromDotenvFile(t *testing.T) {
	t.Setenv(EnvUserName, "")
	t.Setenv(EnvAPIToken, "")
	os.Unsetenv(EnvUserName)
	os.Unsetenv(EnvAPIToken)

	envFile := filepath.Join(t.TempDir(), ".env")
	content := EnvUserName + "=file-user@example.com\n" + EnvAPIToken + "=file-token\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	creds, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "file-user@example.com", creds.Username)
	assert.Equal(t, "file-token", creds.APIToken)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	t.Setenv(EnvUserName, "env-user@example.com")
	t.Setenv(EnvAPIToken, "env-token")

	envFile := filepath.Join(t.TempDir(), ".env")
	content := EnvUserName + "=file-user@example.com\n" + EnvAPIToken + "=file-token\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	creds, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "env-user@example.com", creds.Username)
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv(EnvUserName, "")
	t.Setenv(EnvAPIToken, "")
	os.Unsetenv(EnvUserName)
	os.Unsetenv(EnvAPIToken)

	_, err := Load(filepath.Join(t.TempDir(), "no-such.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvUserName)
	assert.Contains(t, err.Error(), EnvAPIToken)
}
