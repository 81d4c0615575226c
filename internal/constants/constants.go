package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API defaults.
const (
	// DefaultBaseURL is the Web3 game API root every endpoint path is appended to.
	DefaultBaseURL = "https://sdk-api.dev2023.site/v1"

	// DefaultPageLimit is the page size assumed for offset pagination when the
	// caller did not pass a limit.
	DefaultPageLimit = 500

	// DefaultUserAgent is sent unless Config.UserAgent overrides it.
	DefaultUserAgent = "web3game-go/1.0"
)

// Header names and values.
const (
	// HeaderAPIKey carries the static API key.
	HeaderAPIKey = "x-api-key"

	// HeaderRequestID carries the per-request correlation ID.
	HeaderRequestID = "X-Request-Id"

	// ContentTypeJSON is used for both Accept and Content-Type.
	ContentTypeJSON = "application/json"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are disabled unless a caller opts in.
const (
	// DefaultRetryWaitMin is the minimum wait between opted-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Output formats.
const (
	// FormatJSON represents JSON output format.
	FormatJSON = "json"

	// FormatYAML represents YAML output format.
	FormatYAML = "yaml"

	// FormatTable represents table output format.
	FormatTable = "table"

	// JSONIndentSize is the indent used for pretty-printed JSON.
	JSONIndentSize = 2
)

// Boolean string values.
const (
	// BooleanTrue represents the string "true".
	BooleanTrue = "true"

	// BooleanFalse represents the string "false".
	BooleanFalse = "false"

	// MaskedSecret is printed in place of secrets.
	MaskedSecret = "***"

	// NotAvailable is printed for empty values.
	NotAvailable = "N/A"
)

// Metrics.
const (
	// MetricsNamespace prefixes every client-side prometheus metric.
	MetricsNamespace = "web3api"

	// MetricsSubsystem groups the HTTP client metrics.
	MetricsSubsystem = "client"
)
