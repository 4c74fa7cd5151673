// Package server holds the HTTP server configuration and constants.
//
// While the cmd package handles the actual server startup, this package
// defines the configuration structure and valid values for server settings,
// such as the supported static asset origins.
//
// # Configuration
//
// The Config struct defines the ports for the two servers (form service and
// static asset server), the public root directory, the default document name,
// and the asset origin (local disk or object storage bucket).
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the cmd package to select the asset source at startup.
package server
