package models

import (
	"net/url"
	"time"

	"github.com/rohanthewiz/serr"
)

// ============================================================================
// Application Configuration
//
// Values arrive from command-line flags bound to viper, which also reads the
// TRAVELREC_* environment (optionally seeded from a .env file).
// ============================================================================

// Config holds the settings shared by the server, the CLI search and the TUI.
type Config struct {
	Address      string        // Listen address for the web server (TRAVELREC_ADDRESS)
	BaseURL      string        // Public base URL of the page (TRAVELREC_BASE_URL)
	DataURL      string        // Dataset URL, may be relative to BaseURL (TRAVELREC_DATA_URL)
	DataFile     string        // Dataset file on disk (TRAVELREC_DATA_FILE)
	FetchTimeout time.Duration // Per-fetch timeout, 0 for none (TRAVELREC_FETCH_TIMEOUT)
	LogLevel     string        // debug, info, warn or error (TRAVELREC_LOG_LEVEL)
}

// Defaults used when a setting is not supplied
const (
	DefaultAddress  = ":8000"
	DefaultBaseURL  = "http://localhost:8000/"
	DefaultLogLevel = "info"
)

// DefaultConfig returns a config with every default applied
func DefaultConfig() *Config {
	return &Config{
		Address:  DefaultAddress,
		BaseURL:  DefaultBaseURL,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks the config before anything is started
func (c *Config) Validate() error {
	if c.Address == "" {
		return serr.New("TRAVELREC_ADDRESS must not be empty")
	}

	if c.DataURL != "" && c.DataFile != "" {
		return serr.New("TRAVELREC_DATA_URL and TRAVELREC_DATA_FILE are mutually exclusive")
	}

	if c.DataURL != "" {
		ref, err := url.Parse(c.DataURL)
		if err != nil {
			return serr.Wrap(err, "invalid TRAVELREC_DATA_URL")
		}
		if !ref.IsAbs() {
			base, err := url.Parse(c.BaseURL)
			if err != nil || !base.IsAbs() {
				return serr.New("TRAVELREC_BASE_URL must be an absolute URL when TRAVELREC_DATA_URL is relative")
			}
		}
	}

	if c.FetchTimeout < 0 {
		return serr.New("TRAVELREC_FETCH_TIMEOUT must not be negative")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return serr.New("TRAVELREC_LOG_LEVEL must be one of debug, info, warn, error")
	}

	return nil
}
