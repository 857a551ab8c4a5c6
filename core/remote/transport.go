package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/multierr"
)

// AccessTokenHeader carries the Admin API token.
const AccessTokenHeader = "X-Shopify-Access-Token"

// maxErrorBody bounds how much of a failed response ends up in an error message.
const maxErrorBody = 512

type graphQLRequest struct {
	Query string `json:"query"`
}

// GraphQLClient posts GraphQL documents to one Admin API endpoint.
// It implements reconcile.Client.
type GraphQLClient struct {
	endpoint string
	token    string
	timeout  time.Duration
}

// NewGraphQLClient creates a client for endpoint authenticated with token.
func NewGraphQLClient(endpoint, token string, timeout time.Duration) *GraphQLClient {
	return &GraphQLClient{
		endpoint: endpoint,
		token:    token,
		timeout:  timeout,
	}
}

// Endpoint returns the URL requests are posted to.
func (c *GraphQLClient) Endpoint() string {
	return c.endpoint
}

// Execute posts request and returns the raw response body.
// Non-2xx statuses are returned as errors together with the start of the body.
func (c *GraphQLClient) Execute(ctx context.Context, request string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	agent := fiber.Post(c.endpoint).
		Set(AccessTokenHeader, c.token).
		JSON(graphQLRequest{Query: request})
	if c.timeout > 0 {
		agent = agent.Timeout(c.timeout)
	}
	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return "", fmt.Errorf("invalid graphql endpoint %s: %w", c.endpoint, err)
	}

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return "", fmt.Errorf("graphql request to %s failed: %w", c.endpoint, multierr.Combine(errs...))
	}
	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		return "", fmt.Errorf("graphql request to %s failed with status %d: %s", c.endpoint, status, truncate(body, maxErrorBody))
	}

	return string(body), nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
