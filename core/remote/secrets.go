package remote

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretSource resolves a secret id to its value.
type SecretSource interface {
	SecretValue(ctx context.Context, id string) (string, error)
}

// SecretsManagerAPI is the subset of the AWS Secrets Manager client used to read tokens.
type SecretsManagerAPI interface {
	GetSecretValue(
		ctx context.Context,
		params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options),
	) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSSecrets reads secrets from AWS Secrets Manager.
type AWSSecrets struct {
	api SecretsManagerAPI
}

// NewAWSSecrets creates a source using the default AWS credential chain.
func NewAWSSecrets(ctx context.Context) (*AWSSecrets, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewAWSSecretsWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewAWSSecretsWithAPI creates a source on top of an existing API client.
func NewAWSSecretsWithAPI(api SecretsManagerAPI) *AWSSecrets {
	return &AWSSecrets{api: api}
}

// SecretValue returns the secret string (or binary) value, whitespace trimmed.
func (s *AWSSecrets) SecretValue(ctx context.Context, id string) (string, error) {
	out, err := s.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret %s: %w", id, err)
	}

	var value string
	switch {
	case out.SecretString != nil:
		value = *out.SecretString
	case len(out.SecretBinary) > 0:
		value = string(out.SecretBinary)
	default:
		return "", fmt.Errorf("secret %s has no value", id)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("secret %s is empty", id)
	}
	return value, nil
}
