package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/team-magi/web3game-go/internal/constants"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Configuration keys accepted by "config set" and "config unset".
const (
	keyAPIKey    = "api_key"
	keyBaseURL   = "base_url"
	keyOutput    = "output"
	keyCatalogue = "catalogue"
	keyRetryMax  = "retry_max"
	keyRateLimit = "rate_limit"
)

// Config represents the CLI configuration.
type Config struct {
	APIKey    string `json:"api_key,omitempty"   yaml:"api_key,omitempty"`
	BaseURL   string `json:"base_url,omitempty"  yaml:"base_url,omitempty"`
	Output    string `json:"output"              yaml:"output"`
	Catalogue string `json:"catalogue,omitempty" yaml:"catalogue,omitempty"`
	RetryMax  int    `json:"retry_max"           yaml:"retry_max"`
	RateLimit int    `json:"rate_limit"          yaml:"rate_limit"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage web3api CLI configuration including the API key and base URL",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigSetAPIKeyCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.APIKey != "" {
				config.APIKey = constants.MaskedSecret
			}

			return writeStructured(cmd.OutOrStdout(), outputFormat(), config, func(w io.Writer) error {
				return displayConfigTable(w, config)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value. Supported keys:
  api_key, base_url, output, catalogue, retry_max, rate_limit`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			display := args[1]
			if args[0] == keyAPIKey {
				display = constants.MaskedSecret
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", args[0], display)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Reset a configuration value to its default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigSetAPIKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-api-key [KEY]",
		Short: "Store the API key",
		Long:  "Store the API key in the config file. Without an argument the key is read from a hidden prompt.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var apiKey string

			if len(args) == 1 {
				apiKey = args[0]
			} else {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), "API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				_, _ = fmt.Fprintln(cmd.ErrOrStderr())
				apiKey = string(byteKey)
			}

			apiKey = strings.TrimSpace(apiKey)
			if apiKey == "" {
				return constants.ErrEmptyAPIKey
			}

			config := loadConfig()

			err := setConfigValue(config, keyAPIKey, apiKey)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "API key saved")

			return nil
		},
	}
}

func loadConfig() *Config {
	return &Config{
		APIKey:    viper.GetString(keyAPIKey),
		BaseURL:   viper.GetString(keyBaseURL),
		Output:    viper.GetString(keyOutput),
		Catalogue: viper.GetString(keyCatalogue),
		RetryMax:  viper.GetInt(keyRetryMax),
		RateLimit: viper.GetInt(keyRateLimit),
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keyAPIKey:
		config.APIKey = value
	case keyBaseURL:
		config.BaseURL = value
	case keyOutput:
		switch value {
		case constants.FormatJSON, constants.FormatYAML, constants.FormatTable:
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnknownOutput, value)
		}

		config.Output = value
	case keyCatalogue:
		config.Catalogue = value
	case keyRetryMax, keyRateLimit:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid value for %s: %q must be a non-negative integer", key, value)
		}

		if key == keyRetryMax {
			config.RetryMax = n
		} else {
			config.RateLimit = n
		}
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, value)

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case keyAPIKey:
		config.APIKey = ""
	case keyBaseURL:
		config.BaseURL = ""
	case keyOutput:
		config.Output = constants.FormatTable
	case keyCatalogue:
		config.Catalogue = ""
	case keyRetryMax:
		config.RetryMax = 0
	case keyRateLimit:
		config.RateLimit = 0
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, nil)

	return nil
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".web3api", "config.yml"), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displayConfigTable(w io.Writer, config *Config) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("API Key", valueOrNA(config.APIKey))
	_ = table.Append("Base URL", valueOrDefault(config.BaseURL, constants.DefaultBaseURL))
	_ = table.Append("Output", valueOrDefault(config.Output, constants.FormatTable))
	_ = table.Append("Catalogue", valueOrDefault(config.Catalogue, "built-in"))
	_ = table.Append("Retry Max", strconv.Itoa(config.RetryMax))
	_ = table.Append("Rate Limit", strconv.Itoa(config.RateLimit))

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func valueOrNA(value string) string {
	return valueOrDefault(value, constants.NotAvailable)
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
