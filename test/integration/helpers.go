//go:build integration

package integration

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/team-magi/web3game-go/pkg/web3api"
	"github.com/team-magi/web3game-go/pkg/web3client"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIKey  string
	BaseURL string
	UID     string
	TxnHash string
	TokenID string
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:  os.Getenv("WEB3API_API_KEY"),
		BaseURL: os.Getenv("WEB3API_BASE_URL"),
		UID:     os.Getenv("WEB3API_TEST_UID"),
		TxnHash: os.Getenv("WEB3API_TEST_TXN_HASH"),
		TokenID: os.Getenv("WEB3API_TEST_TOKEN_ID"),
	}
}

// SkipIfMissingConfig skips the test unless an API key and a test account
// are configured.
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.APIKey == "" || c.UID == "" {
		t.Skip("WEB3API_API_KEY and WEB3API_TEST_UID must be set for integration tests")
	}
}

// NewClient builds a client against the configured endpoint.
func (c *TestConfig) NewClient(t *testing.T) web3api.Client {
	t.Helper()

	client, err := web3client.New(&web3api.Config{
		APIKey:  c.APIKey,
		BaseURL: c.BaseURL,
	})
	require.NoError(t, err)

	return client
}
