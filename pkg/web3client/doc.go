// Package web3client provides the primary entry point for constructing a
// Web3 game API client that implements the web3api.Client interface.
//
// It layers configuration defaults, base URL normalization and validation on
// top of the interfaces and types defined in the web3api package. Most
// applications import web3client to build a client, then use the returned
// web3api.Client to reach the group clients Accounts(), NFTs(), Metadata()
// and Transactions(), or Call for name-based dispatch.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/team-magi/web3game-go/pkg/web3api"
//	  "github.com/team-magi/web3game-go/pkg/web3client"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Production endpoint with an API key.
//	  cli, err := web3client.NewWithAPIKey("my-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or a staging endpoint; the scheme defaults to https.
//	  cli, err = web3client.NewWithBaseURL("staging.example.com/v1", "my-key")
//	  if err != nil { log.Fatal(err) }
//
//	  account, err := cli.Accounts().GetAccount(ctx, web3api.Params{"uid": "42"})
//	  if err != nil { log.Fatal(err) }
//	  _ = account
//	}
//
// # Retries
//
// The client never retries on its own. Set Config.RetryMax to let the
// transport retry 5xx, 429 and connection failures.
//
// # Helpers
//
// NewWithAPIKey and NewWithBaseURL wrap New with the matching configuration.
package web3client
