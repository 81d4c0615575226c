package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"
	"github.com/team-magi/web3game-go/internal/constants"
	"github.com/team-magi/web3game-go/pkg/web3api"
	"github.com/team-magi/web3game-go/pkg/web3client"
)

// createClient builds an API client from the current configuration. Log
// output and warnings go to stderr.
func createClient(ctx context.Context, stderr io.Writer) (web3api.Client, *zapLogger, error) {
	config := loadConfig()
	logger := newLogger(stderr, viper.GetBool("verbose"))

	catalogue, err := loadCatalogueFile(config.Catalogue)
	if err != nil {
		return nil, nil, err
	}

	if config.APIKey == "" {
		logger.Warn(constants.ErrNoAPIKeyConfigured.Error(), nil)
	}

	clientConfig := &web3api.Config{
		APIKey:              config.APIKey,
		BaseURL:             config.BaseURL,
		Catalogue:           catalogue,
		RetryMax:            config.RetryMax,
		Debug:               viper.GetBool("verbose"),
		Logger:              logger,
		RequestInterceptors: []web3api.RequestInterceptor{web3api.RequestIDInterceptor()},
	}

	if config.RateLimit > 0 {
		limiter, err := web3api.RateLimitInterceptor(ctx, config.RateLimit)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to configure rate limit: %w", err)
		}

		clientConfig.RequestInterceptors = append(clientConfig.RequestInterceptors, limiter)
	}

	client, err := web3client.New(clientConfig)
	if err != nil {
		return nil, nil, err
	}

	return client, logger, nil
}

// loadCatalogueFile reads a YAML catalogue. An empty path selects the
// built-in catalogue.
func loadCatalogueFile(path string) (web3api.Catalogue, error) {
	if path == "" {
		return web3api.DefaultCatalogue(), nil
	}

	// #nosec G304 -- the path is chosen by the user running the CLI
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalogue: %w", err)
	}
	defer func() { _ = file.Close() }()

	catalogue, err := web3api.LoadCatalogue(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogue %s: %w", path, err)
	}

	return catalogue, nil
}
