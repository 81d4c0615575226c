package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/team-magi/web3game-go/internal/constants"
	"github.com/team-magi/web3game-go/pkg/web3api"
)

// NewEndpointsCommand creates the endpoints command.
func NewEndpointsCommand() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:     "endpoints",
		Aliases: []string{"catalogue", "ep"},
		Short:   "List API endpoints",
		Long:    "List the endpoints of the active catalogue with their method, URL template and body parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue, err := loadCatalogueFile(viper.GetString(keyCatalogue))
			if err != nil {
				return err
			}

			endpoints := catalogue.Endpoints()

			if group != "" {
				if _, ok := catalogue[group]; !ok {
					return fmt.Errorf("%w: %s", web3api.ErrUnknownGroup, group)
				}

				endpoints = filterEndpoints(endpoints, group)
			}

			return writeStructured(cmd.OutOrStdout(), outputFormat(), endpoints, func(w io.Writer) error {
				return renderEndpointsTable(w, endpoints)
			})
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "", "only list endpoints of this group")

	return cmd
}

func filterEndpoints(endpoints []web3api.Endpoint, group string) []web3api.Endpoint {
	var filtered []web3api.Endpoint

	for _, endpoint := range endpoints {
		if endpoint.Group == group {
			filtered = append(filtered, endpoint)
		}
	}

	return filtered
}

func renderEndpointsTable(w io.Writer, endpoints []web3api.Endpoint) error {
	table := tablewriter.NewWriter(w)
	table.Header("Group", "Operation", "Method", "URL", "Body")

	for _, endpoint := range endpoints {
		_ = table.Append(endpoint.Group, endpoint.Name, endpoint.Method, endpoint.URL, describeBodyParams(endpoint.BodyParams))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// describeBodyParams renders body params as "data (set body, required)".
func describeBodyParams(params []web3api.BodyParam) string {
	if len(params) == 0 {
		return constants.NotAvailable
	}

	parts := make([]string, 0, len(params))

	for _, param := range params {
		detail := string(param.Kind)
		if param.Required {
			detail += ", required"
		}

		parts = append(parts, fmt.Sprintf("%s (%s)", param.Key, detail))
	}

	return strings.Join(parts, "; ")
}
