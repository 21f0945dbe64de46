package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/lidarrctl/config"
	"github.com/s0up4200/lidarrctl/lidarr"
	"github.com/s0up4200/lidarrctl/library"
)

var (
	cfgFile      string
	cfg          *config.Config
	logger       zerolog.Logger
	lidarrClient *lidarr.Client
	manager      *library.Manager

	// Persistent connection overrides
	flagURL     string
	flagAPIKey  string
	flagTimeout int
	flagRetries int

	// Command flags shared between list/export
	filterExpr string
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion records the build metadata injected by the linker.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lidarrctl",
	Short: "A tool to search, manage and monitor a Lidarr library",
	Long: `lidarrctl is a CLI tool for Lidarr. It can search and add artists,
list and bulk-edit the library with filter expressions, export and import
artist lists, run health checks and manage backups and the blocklist.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "interrupted")
			return 130
		}
		if errors.Is(err, errHealthCritical) {
			return 2
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/lidarrctl/config.json)")
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "Lidarr base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Lidarr API key (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "request timeout in seconds (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRetries, "retries", 0, "max retries per request (overrides config)")
}

// initializeApp loads the configuration, applies flag overrides and builds
// the Lidarr client. Commands that talk to the server use it as PreRunE.
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	if cmd.Flags().Changed("url") {
		cfg.Connection.BaseURL = flagURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.Connection.APIKey = flagAPIKey
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Connection.Timeout = flagTimeout
	}
	if cmd.Flags().Changed("retries") {
		cfg.Connection.Retries = flagRetries
	}

	lidarrClient, err = lidarr.NewClient(cfg.Connection.BaseURL, cfg.Connection.APIKey, logger,
		lidarr.WithTimeout(time.Duration(cfg.Connection.Timeout)*time.Second),
		lidarr.WithMaxRetries(cfg.Connection.Retries),
		lidarr.WithBackoffFactor(cfg.Connection.BackoffFactor),
		lidarr.WithRateLimit(cfg.Connection.RateLimit),
	)
	if err != nil {
		return fmt.Errorf("failed to create Lidarr client: %w", err)
	}

	manager = library.NewManager(lidarrClient, logger)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
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

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// newTable returns a table writer mirroring to stdout in the shared style.
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	return t
}

// configPath returns the file the defaults command should write to.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultPath()
}
