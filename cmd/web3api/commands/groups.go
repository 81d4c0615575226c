package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/team-magi/web3game-go/pkg/web3api"
)

var groupDescriptions = map[string]string{
	web3api.GroupAccounts:     "Create, activate and look up game accounts",
	web3api.GroupNFTs:         "List, count, claim and withdraw NFTs",
	web3api.GroupMetadata:     "Read and update token metadata",
	web3api.GroupTransactions: "Look up transactions and their confirmations",
}

// NewGroupCommands creates one command per catalogue group, each with a
// subcommand per operation. Operations are also reachable in kebab case,
// e.g. "accounts get-account".
func NewGroupCommands(catalogue web3api.Catalogue) []*cobra.Command {
	commands := make([]*cobra.Command, 0, len(catalogue))

	for _, group := range catalogue.Groups() {
		short := groupDescriptions[group]
		if short == "" {
			short = fmt.Sprintf("Call %s endpoints", group)
		}

		cmd := &cobra.Command{
			Use:   group,
			Short: short,
			Long:  fmt.Sprintf("Call the %s endpoints of the Web3 game API", group),
		}

		for _, operation := range catalogue.Operations(group) {
			cmd.AddCommand(newOperationCommand(catalogue[group][operation]))
		}

		commands = append(commands, cmd)
	}

	return commands
}

func newOperationCommand(endpoint web3api.Endpoint) *cobra.Command {
	opts := &callOptions{}

	cmd := &cobra.Command{
		Use:   endpoint.Name,
		Short: fmt.Sprintf("%s %s", endpoint.Method, endpoint.URL),
		Long:  operationHelp(endpoint),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, endpoint.Group, endpoint.Name, opts)
		},
	}

	if alias := kebabCase(endpoint.Name); alias != endpoint.Name {
		cmd.Aliases = []string{alias}
	}

	addCallFlags(cmd, opts)

	return cmd
}

func operationHelp(endpoint web3api.Endpoint) string {
	var b strings.Builder

	_, _ = fmt.Fprintf(&b, "Call %s (%s %s).", endpoint.String(), endpoint.Method, endpoint.URL)

	if placeholders := web3api.Placeholders(endpoint.URL); len(placeholders) > 0 {
		_, _ = fmt.Fprintf(&b, "\n\nPath parameters: %s", strings.Join(placeholders, ", "))
	}

	if len(endpoint.BodyParams) > 0 {
		_, _ = fmt.Fprintf(&b, "\nBody parameters: %s", describeBodyParams(endpoint.BodyParams))
	}

	return b.String()
}

// kebabCase turns "getNftsCount" into "get-nfts-count".
func kebabCase(name string) string {
	var b strings.Builder

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}

			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}
