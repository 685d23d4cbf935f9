// Package config provides configuration management for Broodradar.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL/sqlite connection details
//   - Storage: S3/MinIO credentials for the snapshot archive
//   - Log: Logging level and format
//   - Ingest: snapshot ingestion defaults (query, enrichment)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
