// Package config provides functionality for managing configuration options
// for the application using command-line flags and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

// Options holds the configuration values for both binaries. Unused
// fields are simply ignored by the binary that does not need them.
type Options struct {
	// Addr is the server's listening address (ip:port).
	Addr string

	// DatabaseDSN holds the Postgres connection string for the server.
	DatabaseDSN string

	// JWTSecret signs the login tokens the server issues.
	JWTSecret string

	// APIKey is the fixed key every request must carry.
	APIKey string

	// BaseURL is the directory service endpoint the client talks to.
	BaseURL string

	// TokenFile is where the client persists its session token.
	TokenFile string

	// PageSize is how many users the client shows per page.
	PageSize int

	// FetchSize bounds how many users one refresh requests.
	FetchSize int

	// LogLevel selects the zap log level.
	LogLevel string

	// Config is the path to an optional JSON config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.JWTSecret, "jwt-secret", "", "secret for signing login tokens")
	flag.StringVar(&options.APIKey, "api-key", "reqres-free-v1", "fixed api key")
	flag.StringVar(&options.BaseURL, "url", "http://localhost:8080", "directory service base URL")
	flag.StringVar(&options.TokenFile, "token-file", ".session-token", "path to the session token file")
	flag.IntVar(&options.PageSize, "page-size", 6, "users shown per page")
	flag.IntVar(&options.FetchSize, "fetch-size", 100, "users requested per refresh")
	flag.StringVar(&options.LogLevel, "log-level", "info", "log level")
	flag.StringVar(&options.Config, "config", "", "path to config file")
	flag.StringVar(&options.Config, "c", "", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		options.JWTSecret = secret
	}
	if key := os.Getenv("API_KEY"); key != "" {
		options.APIKey = key
	}
	if url := os.Getenv("BASE_URL"); url != "" {
		options.BaseURL = url
	}

	return options
}
