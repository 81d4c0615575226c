package commands

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"
	"github.com/team-magi/web3game-go/internal/constants"
	"github.com/team-magi/web3game-go/pkg/web3api"
)

// defaultNATSURL is used by --publish when --nats-url is not given.
const defaultNATSURL = nats.DefaultURL

type callOptions struct {
	params   []string
	data     string
	all      bool
	maxPages int
	publish  bool
	subject  string
	natsURL  string
}

// NewCallCommand creates the generic call command.
func NewCallCommand() *cobra.Command {
	opts := &callOptions{}

	cmd := &cobra.Command{
		Use:   "call GROUP OPERATION",
		Short: "Call an API endpoint",
		Long: `Call any endpoint of the catalogue by group and operation name.

Parameters matching a URL placeholder fill the path, declared body
parameters form the request body and everything else is sent as a query
parameter.

Examples:
  web3api call accounts getAccount -p uid=42
  web3api call nfts getNfts -p uid=42 -p limit:=100 --all
  web3api call metadata updateMetadata --data @metadata.json`,
		Args: cobra.ExactArgs(2), //nolint:mnd // group and operation
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, args[0], args[1], opts)
		},
	}

	addCallFlags(cmd, opts)

	return cmd
}

func addCallFlags(cmd *cobra.Command, opts *callOptions) {
	cmd.Flags().StringArrayVarP(&opts.params, "param", "p", nil, "parameter as key=value, or key:=JSON for typed values (repeatable)")
	cmd.Flags().StringVarP(&opts.data, "data", "d", "", "request payload as JSON, @file or @- for stdin")
	cmd.Flags().BoolVar(&opts.all, "all", false, "follow pagination and fetch every page")
	cmd.Flags().IntVar(&opts.maxPages, "max-pages", 0, "stop after this many pages (0 means no limit)")
	cmd.Flags().BoolVar(&opts.publish, "publish", false, "publish every page to NATS instead of printing it")
	cmd.Flags().StringVar(&opts.subject, "subject", "", "NATS subject for --publish")
	cmd.Flags().StringVar(&opts.natsURL, "nats-url", defaultNATSURL, "NATS server URL for --publish")
}

func runCall(cmd *cobra.Command, group, operation string, opts *callOptions) error {
	ctx := cmd.Context()

	params, err := parseParams(opts.params)
	if err != nil {
		return err
	}

	if opts.data != "" {
		data, err := parseData(opts.data, cmd.InOrStdin())
		if err != nil {
			return err
		}

		params[web3api.ParamData] = data
	}

	if opts.publish && opts.subject == "" {
		return constants.ErrPublishSubject
	}

	client, logger, err := createClient(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Sync()

	endpoint, err := client.Catalogue().Lookup(group, operation)
	if err != nil {
		return err
	}

	call := web3api.Call{Endpoint: endpoint, Params: params}

	if opts.publish {
		return publishCall(cmd, client, call, opts)
	}

	if opts.all {
		results, err := web3api.NewPager(client, call).All(ctx, opts.maxPages)
		if err != nil {
			return err
		}

		return writeResults(cmd.OutOrStdout(), outputFormat(), results)
	}

	result, err := client.Invoke(ctx, endpoint, params)
	if err != nil {
		return err
	}

	if result.HasNext() {
		logger.Warn("More results available, rerun with --all to fetch every page", nil)
	}

	return writeResults(cmd.OutOrStdout(), outputFormat(), []*web3api.Result{result})
}

func publishCall(cmd *cobra.Command, invoker web3api.Invoker, call web3api.Call, opts *callOptions) error {
	publisher, err := web3api.NewNATSPublisher(opts.natsURL,
		nats.Name("web3api-cli"),
		nats.Timeout(constants.ShortHTTPTimeout),
	)
	if err != nil {
		return err
	}

	maxPages := opts.maxPages
	if !opts.all && maxPages == 0 {
		maxPages = 1
	}

	published, err := web3api.PublishPages(cmd.Context(), web3api.NewPager(invoker, call), publisher, opts.subject, maxPages)

	closeErr := publisher.Close()
	if err != nil {
		return err
	}

	if closeErr != nil {
		return closeErr
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Published %d page(s) to %s\n", published, opts.subject)

	return nil
}
