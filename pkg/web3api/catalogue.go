package web3api

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Endpoint groups.
const (
	GroupAccounts     = "accounts"
	GroupNFTs         = "nfts"
	GroupMetadata     = "metadata"
	GroupTransactions = "transactions"
)

// Operation names within their groups.
const (
	OpCreateAccount                = "createAccount"
	OpActivateAccount              = "activateAccount"
	OpGetAccount                   = "getAccount"
	OpGetNFTs                      = "getNfts"
	OpGetNFTsCount                 = "getNftsCount"
	OpClaimNFT                     = "claimNft"
	OpWithdrawNFT                  = "withdrawNft"
	OpGetMetadata                  = "getMetadata"
	OpUpdateMetadata               = "updateMetadata"
	OpGetTransactions              = "getTransactions"
	OpGetTransactionsConfirmations = "getTransactionsConfirmations"
)

// ParamData is the body parameter the write endpoints take their payload from.
const ParamData = "data"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("bodyparamkind", func(fl validator.FieldLevel) bool {
		kind := BodyParamKind(fl.Field().String())

		return kind == BodyParamSetBody || kind == BodyParamProperty
	})

	return v
}

// Catalogue maps group -> operation -> endpoint. Treat it as read-only once a
// client has been built from it.
type Catalogue map[string]map[string]Endpoint

var dataBody = []BodyParam{{Key: ParamData, Kind: BodyParamSetBody}}

// DefaultCatalogue returns a fresh copy of the Web3 API endpoint table.
func DefaultCatalogue() Catalogue {
	return Catalogue{
		GroupAccounts: {
			OpCreateAccount:   post(GroupAccounts, OpCreateAccount, "/accounts/create"),
			OpActivateAccount: post(GroupAccounts, OpActivateAccount, "/accounts/activate"),
			OpGetAccount:      get(GroupAccounts, OpGetAccount, "/accounts/:uid"),
		},
		GroupNFTs: {
			OpGetNFTs:      get(GroupNFTs, OpGetNFTs, "/nfts/account/:uid"),
			OpGetNFTsCount: get(GroupNFTs, OpGetNFTsCount, "/nfts/account/:uid/count"),
			OpClaimNFT:     post(GroupNFTs, OpClaimNFT, "/nfts/claim"),
			OpWithdrawNFT:  post(GroupNFTs, OpWithdrawNFT, "/nfts/withdraw"),
		},
		GroupMetadata: {
			OpGetMetadata:    get(GroupMetadata, OpGetMetadata, "/metadata/:token_id"),
			OpUpdateMetadata: post(GroupMetadata, OpUpdateMetadata, "/metadata/data"),
		},
		GroupTransactions: {
			OpGetTransactions:              get(GroupTransactions, OpGetTransactions, "/transactions/by_hash/:txn_hash"),
			OpGetTransactionsConfirmations: get(GroupTransactions, OpGetTransactionsConfirmations, "/transactions/confirmations/:txn_hash"),
		},
	}
}

func get(group, name, url string) Endpoint {
	return Endpoint{Group: group, Name: name, Method: http.MethodGet, URL: url}
}

func post(group, name, url string) Endpoint {
	return Endpoint{Group: group, Name: name, Method: http.MethodPost, URL: url, BodyParams: slices.Clone(dataBody)}
}

// Lookup returns the endpoint registered under group and name.
func (c Catalogue) Lookup(group, name string) (Endpoint, error) {
	operations, ok := c[group]
	if !ok {
		return Endpoint{}, fmt.Errorf("%w: %s", ErrUnknownGroup, group)
	}

	endpoint, ok := operations[name]
	if !ok {
		return Endpoint{}, fmt.Errorf("%w: %s.%s", ErrUnknownEndpoint, group, name)
	}

	return endpoint, nil
}

// Groups returns the group names in sorted order.
func (c Catalogue) Groups() []string {
	return slices.Sorted(maps.Keys(c))
}

// Operations returns the operation names of group in sorted order.
func (c Catalogue) Operations(group string) []string {
	return slices.Sorted(maps.Keys(c[group]))
}

// Endpoints returns every endpoint ordered by group, then operation.
func (c Catalogue) Endpoints() []Endpoint {
	var endpoints []Endpoint

	for _, group := range c.Groups() {
		for _, name := range c.Operations(group) {
			endpoints = append(endpoints, c[group][name])
		}
	}

	return endpoints
}

// Validate checks every endpoint definition. Besides field validation it
// rejects endpoints declaring more than one set body param and entries whose
// group or name disagree with their position in the table.
func (c Catalogue) Validate() error {
	var errs []error

	for _, endpoint := range c.Endpoints() {
		errs = append(errs, validateEndpoint(endpoint))
	}

	for group, operations := range c {
		for name, endpoint := range operations {
			if endpoint.Group != group || endpoint.Name != name {
				errs = append(errs, fmt.Errorf("%s.%s: registered as %s.%s", endpoint.Group, endpoint.Name, group, name))
			}
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogue, err)
	}

	return nil
}

func validateEndpoint(endpoint Endpoint) error {
	err := validate.Struct(endpoint)
	if err != nil {
		return fmt.Errorf("%s: %w", endpoint, err)
	}

	setBodies := 0

	for _, param := range endpoint.BodyParams {
		if param.Kind == BodyParamSetBody {
			setBodies++
		}
	}

	if setBodies > 1 {
		return fmt.Errorf("%s: %w", endpoint, ErrMultipleSetBody)
	}

	return nil
}

// LoadCatalogue reads a YAML catalogue of the form
//
//	accounts:
//	  getAccount:
//	    method: GET
//	    url: /accounts/:uid
//
// Group and name default to their map keys; the result is validated.
func LoadCatalogue(r io.Reader) (Catalogue, error) {
	var raw Catalogue

	err := yaml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("decoding catalogue: %w", err)
	}

	catalogue := make(Catalogue, len(raw))

	for group, operations := range raw {
		catalogue[group] = make(map[string]Endpoint, len(operations))

		for name, endpoint := range operations {
			if endpoint.Group == "" {
				endpoint.Group = group
			}

			if endpoint.Name == "" {
				endpoint.Name = name
			}

			if endpoint.Method == "" {
				endpoint.Method = http.MethodGet
			}

			catalogue[group][name] = endpoint
		}
	}

	err = catalogue.Validate()
	if err != nil {
		return nil, err
	}

	return catalogue, nil
}
