// Package remote opens authenticated GraphQL sessions against the Admin API.
//
// A Provider resolves credentials from configuration, optionally reading the
// access token from AWS Secrets Manager, and returns a GraphQLClient that posts
// documents with the fiber HTTP client. The client satisfies reconcile.Client.
//
// # Usage
//
//	provider := remote.NewProvider(secrets, logger)
//	creds, err := provider.Credentials(ctx, cfg.Remote)
//	client, err := provider.Open(ctx, creds)
//	body, err := client.Execute(ctx, query)
package remote
