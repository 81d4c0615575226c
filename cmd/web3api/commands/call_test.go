package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-magi/web3game-go/internal/constants"
	"github.com/team-magi/web3game-go/pkg/web3api"
)

// useTestServer configures viper to call server with a test key and JSON output.
func useTestServer(t *testing.T, server *httptest.Server) {
	t.Helper()

	useTempConfig(t)
	viper.Set("base_url", server.URL)
	viper.Set("api_key", "test-key")
	viper.Set("output", constants.FormatJSON)
}

func TestNewCallCommand(t *testing.T) {
	cmd := NewCallCommand()
	assert.Equal(t, "call GROUP OPERATION", cmd.Use)
	assert.Equal(t, "Call an API endpoint", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	flags := []string{"param", "data", "all", "max-pages", "publish", "subject", "nats-url"}
	for _, flagName := range flags {
		flag := cmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "Flag %s should exist", flagName)
	}

	assert.Equal(t, "p", cmd.Flags().Lookup("param").Shorthand)
	assert.Equal(t, "d", cmd.Flags().Lookup("data").Shorthand)
	assert.Equal(t, defaultNATSURL, cmd.Flags().Lookup("nats-url").DefValue)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCallCommand(t *testing.T) {
	t.Run("resolves the path and sends the API key", func(t *testing.T) {
		var gotPath, gotQuery, gotKey, gotRequestID string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			gotKey = r.Header.Get(constants.HeaderAPIKey)
			gotRequestID = r.Header.Get(constants.HeaderRequestID)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"uid":"42","wallet":"0xabc"}`))
		}))
		defer server.Close()

		useTestServer(t, server)

		var out bytes.Buffer

		cmd := NewCallCommand()
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})

		require.NoError(t, executeCommand(t, cmd, "accounts", "getAccount", "-p", "uid=42", "-p", "expand=true"))

		assert.Equal(t, "/accounts/42", gotPath)
		assert.Equal(t, "expand=true", gotQuery)
		assert.Equal(t, "test-key", gotKey)
		assert.NotEmpty(t, gotRequestID)

		var body map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &body))
		assert.Equal(t, "0xabc", body["wallet"])
	})

	t.Run("sends --data as the request body", func(t *testing.T) {
		var gotMethod string

		var gotBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_, _ = w.Write([]byte(`{"success":true}`))
		}))
		defer server.Close()

		useTestServer(t, server)

		path := filepath.Join(t.TempDir(), "metadata.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"token_id":7,"name":"Sword"}`), constants.ConfigFilePerm))

		cmd := NewCallCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		require.NoError(t, executeCommand(t, cmd, "metadata", "updateMetadata", "--data", "@"+path))
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, map[string]any{"token_id": float64(7), "name": "Sword"}, gotBody)
	})

	t.Run("follows pagination with --all", func(t *testing.T) {
		var requests atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)

			if r.URL.Query().Get("offset") == "" {
				_, _ = w.Write([]byte(`{"page":0,"page_size":1,"total":2,"nfts":["a"]}`))

				return
			}

			assert.Equal(t, "1", r.URL.Query().Get("offset"))
			_, _ = w.Write([]byte(`{"page":1,"page_size":1,"total":2,"nfts":["b"]}`))
		}))
		defer server.Close()

		useTestServer(t, server)

		var out bytes.Buffer

		cmd := NewCallCommand()
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})

		require.NoError(t, executeCommand(t, cmd, "nfts", "getNfts", "-p", "uid=7", "-p", "limit:=1", "--all"))
		assert.Equal(t, int32(2), requests.Load())

		var pages []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &pages))
		require.Len(t, pages, 2)
		assert.Equal(t, []any{"b"}, pages[1]["nfts"])
	})

	t.Run("--max-pages stops early", func(t *testing.T) {
		var requests atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n := requests.Add(1)
			_, _ = fmt.Fprintf(w, `{"page":0,"page_size":1,"total":100,"cursor":"c%d"}`, n)
		}))
		defer server.Close()

		useTestServer(t, server)

		cmd := NewCallCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		require.NoError(t, executeCommand(t, cmd, "nfts", "getNfts", "-p", "uid=7", "--all", "--max-pages", "3"))
		assert.Equal(t, int32(3), requests.Load())
	})

	t.Run("missing path parameter fails before any request", func(t *testing.T) {
		var requests atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
		}))
		defer server.Close()

		useTestServer(t, server)

		cmd := NewCallCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		err := executeCommand(t, cmd, "accounts", "getAccount")
		require.Error(t, err)
		assert.True(t, web3api.IsMissingParameter(err))
		assert.Zero(t, requests.Load())
	})

	t.Run("server errors carry the API message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"account not found"}`))
		}))
		defer server.Close()

		useTestServer(t, server)

		cmd := NewCallCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})

		err := executeCommand(t, cmd, "accounts", "getAccount", "-p", "uid=404")
		require.Error(t, err)

		var apiErr *web3api.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "account not found", apiErr.Message)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})

	t.Run("warns when no API key is configured", func(t *testing.T) {
		var gotKey []string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Values(constants.HeaderAPIKey)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		useTestServer(t, server)
		viper.Set("api_key", "")

		var stderr bytes.Buffer

		cmd := NewCallCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&stderr)

		require.NoError(t, executeCommand(t, cmd, "transactions", "getTransactions", "-p", "txn_hash=0x1"))
		assert.Empty(t, gotKey)
		assert.Contains(t, stderr.String(), "no API key configured")
	})

	t.Run("hints at --all when more pages exist", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"page":0,"page_size":1,"total":5}`))
		}))
		defer server.Close()

		useTestServer(t, server)

		var stderr bytes.Buffer

		cmd := NewCallCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&stderr)

		require.NoError(t, executeCommand(t, cmd, "nfts", "getNfts", "-p", "uid=7"))
		assert.Contains(t, stderr.String(), "rerun with --all")
	})
}

func TestCallCommandArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "bad param",
			args:    []string{"accounts", "getAccount", "-p", "uid"},
			wantErr: constants.ErrInvalidParamFormat,
		},
		{
			name:    "bad data",
			args:    []string{"accounts", "createAccount", "--data", "{nope"},
			wantErr: constants.ErrInvalidDataFormat,
		},
		{
			name:    "publish without subject",
			args:    []string{"nfts", "getNfts", "-p", "uid=1", "--publish"},
			wantErr: constants.ErrPublishSubject,
		},
		{
			name:    "unknown operation",
			args:    []string{"accounts", "deleteAccount"},
			wantErr: web3api.ErrUnknownEndpoint,
		},
		{
			name:    "unknown group",
			args:    []string{"games", "list"},
			wantErr: web3api.ErrUnknownGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useTempConfig(t)
			viper.Set("base_url", "http://127.0.0.1:1")

			cmd := NewCallCommand()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			err := executeCommand(t, cmd, tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCallCommandCustomCatalogue(t *testing.T) {
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	useTestServer(t, server)

	path := filepath.Join(t.TempDir(), "catalogue.yml")
	catalogue := strings.Join([]string{
		"games:",
		"  getLeaderboard:",
		"    url: /games/:game_id/leaderboard",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(catalogue), constants.ConfigFilePerm))
	viper.Set("catalogue", path)

	cmd := NewCallCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, executeCommand(t, cmd, "games", "getLeaderboard", "-p", "game_id=chess"))
	assert.Equal(t, "/games/chess/leaderboard", gotPath)
}
