package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/team-magi/web3game-go/pkg/web3api"
)

func TestAccounts_CreateAccount(t *testing.T) {
	t.Parallel()

	tests := []TestOperation{
		{
			Name:         "data becomes the body",
			Params:       web3api.Params{"data": map[string]any{"uid": "u-1", "email": "player@example.com"}},
			ExpectedVerb: "POST",
			ExpectedPath: "/accounts/create",
			ExpectedBody: map[string]any{"uid": "u-1", "email": "player@example.com"},
			StatusCode:   http.StatusCreated,
			Response:     map[string]any{"uid": "u-1"},
		},
		{
			Name:          "other params go to the query",
			Params:        web3api.Params{"data": map[string]any{"uid": "u-1"}, "referrer": "u-0"},
			ExpectedVerb:  "POST",
			ExpectedPath:  "/accounts/create",
			ExpectedQuery: "referrer=u-0",
			ExpectedBody:  map[string]any{"uid": "u-1"},
		},
		{
			Name:          "without data the body is an empty object",
			Params:        web3api.Params{"referrer": "u-0"},
			ExpectedVerb:  "POST",
			ExpectedPath:  "/accounts/create",
			ExpectedQuery: "referrer=u-0",
			ExpectedBody:  map[string]any{},
		},
		{
			Name:         "no params sends no body",
			ExpectedVerb: "POST",
			ExpectedPath: "/accounts/create",
		},
		{
			Name:         "server rejection",
			Params:       web3api.Params{"data": map[string]any{"uid": "u-1"}},
			ExpectedVerb: "POST",
			ExpectedPath: "/accounts/create",
			ExpectedBody: map[string]any{"uid": "u-1"},
			StatusCode:   http.StatusConflict,
			Response:     map[string]any{"message": "account already exists"},
			WantErr:      true,
			ErrMessage:   "account already exists",
		},
	}

	RunOperationTests(t, tests, func(c *Client) func(context.Context, web3api.Params) (*web3api.Result, error) {
		return c.Accounts().CreateAccount
	})
}

func TestAccounts_ActivateAccount(t *testing.T) {
	t.Parallel()

	tests := []TestOperation{
		{
			Name:         "activate",
			Params:       web3api.Params{"data": map[string]any{"uid": "u-1", "code": "123456"}},
			ExpectedVerb: "POST",
			ExpectedPath: "/accounts/activate",
			ExpectedBody: map[string]any{"uid": "u-1", "code": "123456"},
			Response:     map[string]any{"active": true},
		},
	}

	RunOperationTests(t, tests, func(c *Client) func(context.Context, web3api.Params) (*web3api.Result, error) {
		return c.Accounts().ActivateAccount
	})
}

func TestAccounts_GetAccount(t *testing.T) {
	t.Parallel()

	tests := []TestOperation{
		{
			Name:          "get by uid",
			Params:        web3api.Params{"uid": "0x1", "extra": "q"},
			ExpectedVerb:  "GET",
			ExpectedPath:  "/accounts/0x1",
			ExpectedQuery: "extra=q",
			Response:      map[string]any{"uid": "0x1"},
		},
		{
			Name:       "missing uid",
			Params:     web3api.Params{"extra": "q"},
			WantErr:    true,
			ErrMessage: "required param uid not provided",
		},
		{
			Name:         "not found",
			Params:       web3api.Params{"uid": "0x2"},
			ExpectedVerb: "GET",
			ExpectedPath: "/accounts/0x2",
			StatusCode:   http.StatusNotFound,
			Response:     map[string]any{"message": "account not found"},
			WantErr:      true,
			ErrMessage:   "account not found",
		},
	}

	RunOperationTests(t, tests, func(c *Client) func(context.Context, web3api.Params) (*web3api.Result, error) {
		return c.Accounts().GetAccount
	})
}
