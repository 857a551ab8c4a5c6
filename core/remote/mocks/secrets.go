package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/mock"
)

// SecretsManagerAPI is a mock implementation of remote.SecretsManagerAPI.
type SecretsManagerAPI struct {
	mock.Mock
}

// GetSecretValue provides a mock function.
func (m *SecretsManagerAPI) GetSecretValue(
	ctx context.Context,
	params *secretsmanager.GetSecretValueInput,
	optFns ...func(*secretsmanager.Options),
) (*secretsmanager.GetSecretValueOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*secretsmanager.GetSecretValueOutput), args.Error(1)
}

// SecretSource is a mock implementation of remote.SecretSource.
type SecretSource struct {
	mock.Mock
}

// SecretValue provides a mock function.
func (m *SecretSource) SecretValue(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
