package web3api

import (
	"context"
	"fmt"
	"time"
)

// Invoker issues a single endpoint call.
type Invoker interface {
	Invoke(ctx context.Context, endpoint Endpoint, params Params) (*Result, error)
}

// AccountsClient defines operations for game accounts.
type AccountsClient interface {
	CreateAccount(ctx context.Context, params Params) (*Result, error)
	ActivateAccount(ctx context.Context, params Params) (*Result, error)
	GetAccount(ctx context.Context, params Params) (*Result, error)
}

// NFTsClient defines operations for NFTs held by accounts.
type NFTsClient interface {
	GetNFTs(ctx context.Context, params Params) (*Result, error)
	GetNFTsCount(ctx context.Context, params Params) (*Result, error)
	ClaimNFT(ctx context.Context, params Params) (*Result, error)
	WithdrawNFT(ctx context.Context, params Params) (*Result, error)
}

// MetadataClient defines operations for token metadata.
type MetadataClient interface {
	GetMetadata(ctx context.Context, params Params) (*Result, error)
	UpdateMetadata(ctx context.Context, params Params) (*Result, error)
}

// TransactionsClient defines operations for on-chain transactions.
type TransactionsClient interface {
	GetTransactions(ctx context.Context, params Params) (*Result, error)
	GetTransactionsConfirmations(ctx context.Context, params Params) (*Result, error)
}

// ResourceClients provides access to the per-group clients.
type ResourceClients interface {
	Accounts() AccountsClient
	NFTs() NFTsClient
	Metadata() MetadataClient
	Transactions() TransactionsClient
}

type Client interface {
	ResourceClients
	Invoker

	// Call looks up group.operation in the client's catalogue and invokes it.
	Call(ctx context.Context, group, operation string, params Params) (*Result, error)

	// Catalogue returns the endpoint table the client dispatches on.
	Catalogue() Catalogue
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// Only APIKey is needed for normal use. When set, it is sent as the x-api-key
// header on every request; an empty key sends no header.
//
// # Timeouts and retries
//
// Per-request deadlines belong on the context passed to each call. Retries are
// off unless RetryMax is positive, in which case transient failures (5xx,
// 429, connection errors) are retried by the transport with backoff between
// RetryWaitMin and RetryWaitMax.
type Config struct {
	// APIKey: static key attached to every request.
	APIKey string
	// BaseURL: API root; defaults to the production endpoint. web3client.New
	// trims a trailing slash and adds "https://" when no scheme is given.
	BaseURL string `validate:"omitempty,url"`
	// Catalogue: endpoint table; defaults to DefaultCatalogue().
	Catalogue Catalogue

	// HTTPTimeout: overall timeout of the underlying http.Client.
	HTTPTimeout time.Duration `validate:"gte=0"`
	// RetryMax: retries for transient failures; 0 disables retrying.
	RetryMax int `validate:"gte=0"`
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration `validate:"gte=0"`
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration `validate:"gte=0"`
	// Debug: logs every request and response when a Logger is provided.
	Debug bool
	// Logger: optional structured logger.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// RequestInterceptors run, in order, before each request is sent.
	RequestInterceptors []RequestInterceptor
	// ResponseInterceptors run, in order, after each response is received.
	ResponseInterceptors []ResponseInterceptor
}

// Validate checks the field constraints of the config and its catalogue.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}

	err := validate.Struct(c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Catalogue != nil {
		err = c.Catalogue.Validate()
		if err != nil {
			return err
		}
	}

	return nil
}
