package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"github.com/team-magi/web3game-go/internal/constants"
	"github.com/team-magi/web3game-go/pkg/web3api"
	"gopkg.in/yaml.v3"
)

// outputFormat returns the configured output format, defaulting to table.
func outputFormat() string {
	output := viper.GetString("output")
	if output == "" {
		return constants.FormatTable
	}

	return output
}

// writeStructured encodes v as JSON or YAML. Any other format is rendered by
// table, which may be nil when v has no tabular form.
func writeStructured(w io.Writer, format string, v any, table func(io.Writer) error) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(v)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(v)
	case constants.FormatTable:
		if table == nil {
			return fmt.Errorf("%w: %s", constants.ErrUnknownOutput, format)
		}

		return table(w)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownOutput, format)
	}
}

// writeResults prints one or more results. JSON and YAML print a single
// result as-is and several as a list; table prints one table per page.
func writeResults(w io.Writer, format string, results []*web3api.Result) error {
	values := make([]any, 0, len(results))

	for _, result := range results {
		value, err := resultValue(result)
		if err != nil {
			return err
		}

		values = append(values, value)
	}

	var v any = values
	if len(values) == 1 {
		v = values[0]
	}

	if format == constants.FormatYAML {
		v = normalizeNumbers(v)
	}

	return writeStructured(w, format, v, func(w io.Writer) error {
		for i, result := range results {
			if len(results) > 1 {
				_, _ = fmt.Fprintf(w, "Page %d:\n", i+1)
			}

			err := renderResultTable(w, result)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// resultValue decodes the raw body preserving number precision.
func resultValue(result *web3api.Result) (any, error) {
	if len(result.Raw) == 0 {
		return nil, nil
	}

	value, err := decodeJSON(result.Raw)
	if err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}

	return value, nil
}

// normalizeNumbers replaces json.Number with int64 or float64 so YAML prints
// numbers unquoted.
func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}

		if f, err := v.Float64(); err == nil {
			return f
		}

		return v.String()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeNumbers(item)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalizeNumbers(item)
		}

		return out
	default:
		return value
	}
}

func renderResultTable(w io.Writer, result *web3api.Result) error {
	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value")

	if result.Fields == nil {
		raw := strings.TrimSpace(string(result.Raw))
		if raw == "" {
			raw = constants.NotAvailable
		}

		_ = table.Append("body", raw)
	}

	for _, key := range slices.Sorted(maps.Keys(result.Fields)) {
		_ = table.Append(key, formatValue(result.Fields[key]))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// formatValue renders a decoded JSON value for a table cell.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return constants.NotAvailable
	case string:
		return v
	case bool, float64, json.Number:
		return fmt.Sprint(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(data)
	}
}

// parseParams turns key=value flags into a parameter bag. key:=value decodes
// value as JSON so numbers, booleans, arrays and objects keep their type.
func parseParams(pairs []string) (web3api.Params, error) {
	params := web3api.Params{}

	for _, pair := range pairs {
		idx := strings.Index(pair, "=")
		if idx <= 0 {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidParamFormat, pair)
		}

		key, value := pair[:idx], pair[idx+1:]

		if strings.HasSuffix(key, ":") {
			key = strings.TrimSuffix(key, ":")
			if key == "" {
				return nil, fmt.Errorf("%w: %q", constants.ErrInvalidParamFormat, pair)
			}

			decoded, err := decodeJSON([]byte(value))
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", constants.ErrInvalidParamFormat, pair, err)
			}

			params[key] = decoded

			continue
		}

		params[key] = value
	}

	return params, nil
}

// parseData reads the --data value: inline JSON, or @path to read a file
// ("@-" reads stdin).
func parseData(data string, stdin io.Reader) (any, error) {
	raw := []byte(data)

	if path, ok := strings.CutPrefix(data, "@"); ok {
		var err error

		if path == "-" {
			raw, err = io.ReadAll(stdin)
		} else {
			// #nosec G304 -- the path is chosen by the user running the CLI
			raw, err = os.ReadFile(path)
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %w", constants.ErrInvalidDataFormat, err)
		}
	}

	value, err := decodeJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidDataFormat, err)
	}

	return value, nil
}

func decodeJSON(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value any

	err := decoder.Decode(&value)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	if decoder.More() {
		return nil, fmt.Errorf("decoding JSON: %w", constants.ErrTrailingData)
	}

	return value, nil
}
