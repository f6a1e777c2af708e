// Package config provides configuration management for the server.
//
// It utilizes Viper for loading configuration from environment variables, with
// an optional .env file loaded through godotenv. Defaults come from the
// `default` struct tags of each section, so no variable is required.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: port, document root, index file, directory browsing
//   - Storage: S3/MinIO bucket used as the document root when enabled
//   - Log: Logging level and format
//
// Environment variables map to nested keys by replacing "." with "_",
// e.g. SERVER_PORT sets server.port.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
