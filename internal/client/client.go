package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"time"

	"github.com/team-magi/web3game-go/internal/constants"
	"github.com/team-magi/web3game-go/internal/http"
	"github.com/team-magi/web3game-go/pkg/web3api"
)

// Client implements the web3api.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	catalogue  web3api.Catalogue
	logger     web3api.Logger

	// Resource clients
	accounts     web3api.AccountsClient
	nfts         web3api.NFTsClient
	metadata     web3api.MetadataClient
	transactions web3api.TransactionsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *web3api.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.APIKey != "" {
		httpOpts = append(httpOpts, http.WithHeader(constants.HeaderAPIKey, config.APIKey))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if len(config.RequestInterceptors) > 0 || len(config.ResponseInterceptors) > 0 {
		chain := web3api.NewInterceptorChain()

		for _, interceptor := range config.RequestInterceptors {
			chain.AddRequestInterceptor(interceptor)
		}

		for _, interceptor := range config.ResponseInterceptors {
			chain.AddResponseInterceptor(interceptor)
		}

		httpOpts = append(httpOpts, http.WithInterceptors(chain))
	}

	return httpOpts
}

// New creates a Web3 API client. config.BaseURL must already be normalized;
// an empty catalogue falls back to web3api.DefaultCatalogue.
func New(config *web3api.Config) (*Client, error) {
	if config == nil {
		return nil, web3api.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, web3api.ErrBaseURLRequired
	}

	catalogue := config.Catalogue
	if len(catalogue) == 0 {
		catalogue = web3api.DefaultCatalogue()
	}

	httpClient := http.NewClient(config.BaseURL, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
		catalogue:  catalogue,
		logger:     config.Logger,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.accounts = NewAccountsClient(c)
	c.nfts = NewNFTsClient(c)
	c.metadata = NewMetadataClient(c)
	c.transactions = NewTransactionsClient(c)
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Catalogue implements web3api.Client.Catalogue.
func (c *Client) Catalogue() web3api.Catalogue {
	return c.catalogue
}

// Call implements web3api.Client.Call.
func (c *Client) Call(ctx context.Context, group, operation string, params web3api.Params) (*web3api.Result, error) {
	endpoint, err := c.catalogue.Lookup(group, operation)
	if err != nil {
		return nil, err
	}

	return c.Invoke(ctx, endpoint, params)
}

// Invoke implements web3api.Invoker. Path placeholders are filled from params,
// declared body params form the JSON body and whatever is left is sent as the
// query string. params is never modified.
//
// Placeholder and body errors are returned as is, before any request is made.
// Request failures are returned as *web3api.APIError.
func (c *Client) Invoke(ctx context.Context, endpoint web3api.Endpoint, params web3api.Params) (*web3api.Result, error) {
	path, remaining, err := web3api.ResolveURL(endpoint.URL, params.Clone())
	if err != nil {
		return nil, err
	}

	body, remaining, err := web3api.BuildBody(remaining, endpoint.BodyParams)
	if err != nil {
		return nil, err
	}

	c.logDebug("Request body", map[string]interface{}{
		"endpoint": endpoint.String(),
		"body":     body,
	})

	method := endpoint.Method
	if method == "" {
		method = "GET"
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:   method,
		Path:     path,
		Query:    toQuery(remaining),
		Body:     body,
		Metadata: map[string]interface{}{web3api.MetadataEndpoint: endpoint.String()},
	})
	if err != nil {
		return nil, c.normalizeError(endpoint, err)
	}

	result, err := web3api.NewResult(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}

	next, ok := web3api.NextParams(&result.PageInfo, params)
	if ok {
		result.SetNext(web3api.Call{Endpoint: endpoint, Params: next})
	}

	return result, nil
}

// normalizeError turns a failed request into an *web3api.APIError. The message
// is the server's "message" field when present, else the error text, else a
// generic message naming the endpoint URL.
func (c *Client) normalizeError(endpoint web3api.Endpoint, err error) error {
	c.logError("Web3 API request failed", map[string]interface{}{
		"endpoint": endpoint.String(),
		"url":      endpoint.URL,
		"error":    err.Error(),
	})

	apiErr := &web3api.APIError{
		StatusCode: web3api.StatusCode(err),
		URL:        endpoint.URL,
		Err:        err,
	}

	respErr := &web3api.ResponseError{}

	switch {
	case errors.As(err, &respErr) && respErr.Message != "":
		apiErr.Message = respErr.Message
	case err.Error() != "":
		apiErr.Message = err.Error()
	default:
		// Custom transports may fail with an error that has no text.
		apiErr.Message = "Web3 API error while calling " + endpoint.URL
	}

	return apiErr
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

func (c *Client) logError(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Error(msg, fields)
	}
}

// toQuery encodes leftover params. nil values are dropped, slices repeat the
// key and maps or structs are sent as JSON.
func toQuery(params web3api.Params) url.Values {
	if len(params) == 0 {
		return nil
	}

	query := url.Values{}

	for key, value := range params {
		if value == nil {
			continue
		}

		rv := reflect.ValueOf(value)

		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := range rv.Len() {
				query.Add(key, queryValue(rv.Index(i).Interface()))
			}
		default:
			query.Set(key, queryValue(value))
		}
	}

	return query
}

func queryValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	}

	switch reflect.Indirect(reflect.ValueOf(value)).Kind() {
	case reflect.Map, reflect.Struct:
		data, err := json.Marshal(value)
		if err == nil {
			return string(data)
		}
	}

	return fmt.Sprint(value)
}

// loggerAdapter adapts web3api.Logger to http.Logger.
type loggerAdapter struct {
	logger web3api.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

// Resource client accessors

// Accounts implements web3api.Client.Accounts.
func (c *Client) Accounts() web3api.AccountsClient {
	return c.accounts
}

// NFTs implements web3api.Client.NFTs.
func (c *Client) NFTs() web3api.NFTsClient {
	return c.nfts
}

// Metadata implements web3api.Client.Metadata.
func (c *Client) Metadata() web3api.MetadataClient {
	return c.metadata
}

// Transactions implements web3api.Client.Transactions.
func (c *Client) Transactions() web3api.TransactionsClient {
	return c.transactions
}

var _ web3api.Client = (*Client)(nil)
