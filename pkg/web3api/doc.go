// Package web3api provides types, interfaces, and helpers for working with the
// Web3 game REST API.
//
// # Overview
//
// Every remote operation is described by an Endpoint (method, URL template and
// declared body params) held in a Catalogue grouped by domain: accounts, nfts,
// metadata and transactions. A single invocation path serves all of them:
//
//  1. ResolveURL substitutes ":name" placeholders from the Params bag.
//  2. BuildBody takes the declared body params out of what is left.
//  3. The remaining params are sent as the query string.
//  4. NextParams inspects the response to decide whether a next page exists.
//
// Each stage returns the params it did not consume instead of mutating the
// caller's bag.
//
// Getting a client
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
//	  cli, err := web3client.New(&web3api.Config{APIKey: "my-key"})
//	  if err != nil { log.Fatal(err) }
//
//	  nfts, err := cli.NFTs().GetNFTs(ctx, web3api.Params{"uid": "0x1", "limit": 50})
//	  if err != nil { log.Fatal(err) }
//	  _ = nfts
//	}
//
// # Pagination
//
// A Result whose page_size, total and page fields show more data carries a
// Call for the next page. Submit it to Invoke yourself, or let a Pager do it:
//
//	pager := web3api.NewPager(cli, web3api.Call{Endpoint: endpoint, Params: params})
//	for pager.HasNext() {
//	  page, err := pager.Next(ctx)
//	  if err != nil { break }
//	  _ = page
//	}
//
// # Errors
//
// Missing path placeholders and missing required body fields fail before any
// request is sent, with MissingParameterError and MissingRequiredFieldError.
// Every transport failure or non-2xx response is returned as an APIError
// whose message prefers the server's own "message" field.
package web3api
