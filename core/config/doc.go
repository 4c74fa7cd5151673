// Package config provides configuration management for formdesk.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (ports, public root, asset origin)
//   - Store: submission store backend and backing document path
//   - Database: MySQL connection details (mysql store backend)
//   - Storage: S3/MinIO credentials and bucket settings (bucket asset origin)
//   - Log: Logging level and format
//
// Defaults come from the `default` struct tags; environment variables map to
// nested keys by underscore, e.g. SERVER_STATIC_PORT -> server.static_port.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
