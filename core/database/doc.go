// Package database handles the MySQL connection for the mysql store backend.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL connections based on the application's configuration: DSN construction with
// URL-encoded credentials, connection pool limits, and a verification ping bounded
// by the configured timeout.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
