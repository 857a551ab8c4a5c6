// Package config provides configuration management for stock-sync.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags
// of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Sync: location, stock source, batch size, pacing delay and dry run
//   - Remote: Admin API host, access token (or its secret id), API version
//   - Storage: S3/MinIO credentials for s3:// stock sources
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sync.BatchSize)
package config
