package web3client

import (
	"fmt"
	"strings"

	"github.com/team-magi/web3game-go/internal/client"
	"github.com/team-magi/web3game-go/internal/constants"
	"github.com/team-magi/web3game-go/pkg/web3api"
)

// New creates a new Web3 game API client. The config is copied; the caller's
// value is left untouched.
func New(config *web3api.Config) (web3api.Client, error) {
	if config == nil {
		return nil, web3api.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = NormalizeBaseURL(config.BaseURL)

	err := normalized.Validate()
	if err != nil {
		return nil, err
	}

	// Use the internal client implementation
	web3Client, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return web3Client, nil
}

// NormalizeBaseURL trims a trailing slash and adds "https://" when no scheme
// is given. An empty URL becomes the production endpoint.
func NormalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewWithAPIKey creates a client for the production endpoint. An empty key
// creates a client that sends no x-api-key header.
func NewWithAPIKey(apiKey string) (web3api.Client, error) {
	return New(&web3api.Config{
		APIKey: apiKey,
	})
}

// NewWithBaseURL creates a client for a non-default endpoint, such as staging.
func NewWithBaseURL(baseURL, apiKey string) (web3api.Client, error) {
	return New(&web3api.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
}
