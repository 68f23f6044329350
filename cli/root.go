package cli

import (
	"strings"

	"travelrec/models"
	"travelrec/web"

	"github.com/joho/godotenv"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "travelrec",
	Short: "Travel recommendation search",
	Long: `travelrec serves a travel recommendation page that searches a published
dataset of countries, temples and beaches. The same search is available from
the command line and as a terminal UI.`,
	SilenceUsage:  true,
	SilenceErrors: true, // main reports the returned error
	RunE:          runServe,
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := models.DefaultConfig()
	rootCmd.PersistentFlags().String("address", defaults.Address, "Listen address for the web server")
	rootCmd.PersistentFlags().String("base-url", defaults.BaseURL, "Public base URL; relative data URLs resolve against it")
	rootCmd.PersistentFlags().String("data-url", "", "Dataset URL, absolute or relative to base-url (default: bundled dataset)")
	rootCmd.PersistentFlags().String("data-file", "", "Dataset file on disk (default: bundled dataset)")
	rootCmd.PersistentFlags().Duration("fetch-timeout", 0, "Timeout for one dataset fetch, 0 for none")
	rootCmd.PersistentFlags().String("log-level", defaults.LogLevel, "Log level: debug, info, warn, error")

	// Bind flags to viper
	viper.BindPFlags(rootCmd.PersistentFlags())
}

// envKeyReplacer maps flag names to env names: base-url -> TRAVELREC_BASE_URL
var envKeyReplacer = strings.NewReplacer("-", "_")

// initConfig wires the environment into viper. A .env file, when present,
// is loaded first; real environment variables win over it.
func initConfig() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", "reason", err.Error())
	}

	viper.SetEnvPrefix("TRAVELREC")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig builds and validates the config from flags and environment,
// then applies the log level.
func loadConfig() (*models.Config, error) {
	cfg := &models.Config{
		Address:      viper.GetString("address"),
		BaseURL:      viper.GetString("base-url"),
		DataURL:      viper.GetString("data-url"),
		DataFile:     viper.GetString("data-file"),
		FetchTimeout: viper.GetDuration("fetch-timeout"),
		LogLevel:     viper.GetString("log-level"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, serr.Wrap(err, "invalid configuration")
	}

	logger.SetLogLevel(cfg.LogLevel)
	return cfg, nil
}

// newSearcher loads the config and builds the searcher over the configured
// dataset; the bundled copy is the fallback.
func newSearcher() (*models.Config, *models.Searcher, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	src, err := models.NewDataSource(cfg, web.StaticFS())
	if err != nil {
		return nil, nil, serr.Wrap(err, "failed to set up dataset source")
	}
	logger.Debug("Dataset source", "source", src.String())

	return cfg, models.NewSearcher(src), nil
}
