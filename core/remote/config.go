package remote

// Config holds connection settings for the e-commerce Admin API.
type Config struct {
	// Host is the shop domain, e.g. "example.myshopify.com".
	Host string `mapstructure:"host" default:""`
	// AccessToken is the Admin API access token.
	AccessToken string `mapstructure:"access_token" default:""`
	// AccessTokenSecretID names an AWS Secrets Manager secret holding the token.
	// It is only consulted when AccessToken is empty.
	AccessTokenSecretID string `mapstructure:"access_token_secret_id" default:""`
	// APIVersion is the Admin API version segment of the endpoint.
	APIVersion string `mapstructure:"api_version" default:"2024-10"`
	// TimeoutSeconds bounds each HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
