package remote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stock-sync/core/reconcile"

	"go.uber.org/zap"
)

// DefaultAPIVersion is used when the configuration leaves the version empty.
const DefaultAPIVersion = "2024-10"

// Credentials identify one authenticated Admin API session.
type Credentials struct {
	Host        string
	AccessToken string
	APIVersion  string
	Timeout     time.Duration
}

// Provider turns configuration into ready GraphQL sessions.
type Provider struct {
	secrets SecretSource
	logger  *zap.Logger
}

// NewProvider creates a provider. secrets may be nil when tokens are always configured inline.
func NewProvider(secrets SecretSource, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{secrets: secrets, logger: logger}
}

// Credentials resolves cfg into session credentials, reading the token from the
// secret store when it is not set inline.
func (p *Provider) Credentials(ctx context.Context, cfg Config) (Credentials, error) {
	creds := Credentials{
		Host:        strings.TrimSpace(cfg.Host),
		AccessToken: strings.TrimSpace(cfg.AccessToken),
		APIVersion:  strings.TrimSpace(cfg.APIVersion),
		Timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
	if creds.APIVersion == "" {
		creds.APIVersion = DefaultAPIVersion
	}

	if creds.AccessToken == "" && cfg.AccessTokenSecretID != "" {
		if p.secrets == nil {
			return Credentials{}, reconcile.NewConfigError("access token secret %q configured but no secret store is available", cfg.AccessTokenSecretID)
		}
		token, err := p.secrets.SecretValue(ctx, cfg.AccessTokenSecretID)
		if err != nil {
			return Credentials{}, reconcile.NewConfigError("failed to resolve access token: %v", err)
		}
		p.logger.Debug("Resolved access token from secret store", zap.String("secret_id", cfg.AccessTokenSecretID))
		creds.AccessToken = token
	}

	return creds, nil
}

// Open validates creds and returns a client bound to the shop's GraphQL endpoint.
func (p *Provider) Open(_ context.Context, creds Credentials) (reconcile.Client, error) {
	if strings.TrimSpace(creds.Host) == "" {
		return nil, reconcile.NewConfigError("remote host is required")
	}
	if strings.TrimSpace(creds.AccessToken) == "" {
		return nil, reconcile.NewConfigError("remote access token is required")
	}
	version := creds.APIVersion
	if version == "" {
		version = DefaultAPIVersion
	}

	return NewGraphQLClient(EndpointURL(creds.Host, version), creds.AccessToken, creds.Timeout), nil
}

// EndpointURL builds the Admin GraphQL URL for host. Hosts without a scheme use https.
func EndpointURL(host, version string) string {
	base := strings.TrimRight(strings.TrimSpace(host), "/")
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	return fmt.Sprintf("%s/admin/api/%s/graphql.json", base, version)
}
