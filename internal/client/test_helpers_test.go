package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team-magi/web3game-go/pkg/web3api"
)

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&web3api.Config{BaseURL: baseURL, APIKey: "test-key"})
	require.NoError(t, err)

	return client
}

// TestOperation represents a catalogue operation test case.
type TestOperation struct {
	Name          string
	Params        web3api.Params
	ExpectedVerb  string
	ExpectedPath  string
	ExpectedQuery string
	ExpectedBody  interface{} // nil means no body is sent
	StatusCode    int
	Response      interface{}
	WantErr       bool
	ErrMessage    string
}

// RunOperationTests runs a series of operation tests against an httptest server.
func RunOperationTests(
	t *testing.T,
	tests []TestOperation,
	operation func(*Client) func(context.Context, web3api.Params) (*web3api.Result, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedVerb, request.Method)
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, testCase.ExpectedQuery, request.URL.RawQuery)
				assert.Equal(t, "test-key", request.Header.Get("x-api-key"))

				data, err := io.ReadAll(request.Body)
				assert.NoError(t, err)

				if testCase.ExpectedBody == nil {
					assert.Empty(t, data)
				} else {
					expected, err := json.Marshal(testCase.ExpectedBody)
					assert.NoError(t, err)
					assert.JSONEq(t, string(expected), string(data))
				}

				statusCode := testCase.StatusCode
				if statusCode == 0 {
					statusCode = http.StatusOK
				}

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(statusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)
			result, err := operation(client)(context.Background(), testCase.Params)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// recordingLogger captures log entries for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

func (l *recordingLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }
func (l *recordingLogger) Info(msg string, fields map[string]interface{})  { l.add("info", msg, fields) }
func (l *recordingLogger) Warn(msg string, fields map[string]interface{})  { l.add("warn", msg, fields) }
func (l *recordingLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

func (l *recordingLogger) messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var msgs []string

	for _, entry := range l.entries {
		if entry.level == level {
			msgs = append(msgs, entry.msg)
		}
	}

	return msgs
}
