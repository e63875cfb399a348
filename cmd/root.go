package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/getbloomy/bloomgo/bloom"
	"github.com/getbloomy/bloomgo/config"
	"github.com/getbloomy/bloomgo/filter"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *bloom.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	filterExpr string
	preset     string
	userID     int64
	meetingID  int64
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bloomgo",
	Short: "A CLI for working with Bloom Growth meetings, goals, todos and issues",
	Long: `bloomgo is a CLI tool for the Bloom Growth platform. It lists and filters
your meetings, goals, todos and issues, and imports records in bulk from
YAML files.`,
}

// SetVersion records the build information stamped in at link time.
func SetVersion(v, t string) {
	version = v
	buildTime = t
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, t)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Bloom client
	opts := []bloom.Option{
		bloom.WithBaseURL(cfg.Bloom.URL),
		bloom.WithLogger(logger),
	}
	if cfg.Bloom.UserID != 0 {
		opts = append(opts, bloom.WithUserID(cfg.Bloom.UserID))
	}

	client, err = bloom.NewClient(cfg.Bloom.APIKey, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Bloom client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only when writing to a terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// getFilter compiles the filter to apply, or nil when no filter was
// requested. The command line expression wins over a config preset.
func getFilter() (*filter.Filter, error) {
	expression := filterExpr
	if expression == "" && preset != "" {
		p, ok := cfg.Filter[preset]
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		expression = p
	}

	if expression == "" {
		return nil, nil
	}

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}
