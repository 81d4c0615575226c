package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'web3api config set-api-key' to set one")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrEmptyAPIKey        = errors.New("API key must not be empty")
)

// Argument errors.
var (
	ErrInvalidParamFormat = errors.New("invalid parameter format, expected key=value")
	ErrInvalidDataFormat  = errors.New("invalid --data value, expected JSON or @file")
	ErrUnknownOutput      = errors.New("unknown output format")
	ErrPublishSubject     = errors.New("--publish requires --subject")
	ErrTrailingData       = errors.New("unexpected data after JSON value")
)
