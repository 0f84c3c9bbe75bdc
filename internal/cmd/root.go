package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"repocards/pkg/config"
	"repocards/pkg/github"
	"repocards/pkg/portfolio"
)

var (
	configPath  string
	username    string
	excludeName string
	apiURL      string
	verbose     bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "repocards",
	Short: "Show a GitHub user's public repositories as project cards",
	Long: `Repocards fetches the public repositories of a GitHub user, hides the
user's portfolio site repository and presents the rest as project cards,
most recently updated first.

Cards can be written as a static HTML page with live search and language
filtering, listed in the terminal, or picked interactively and opened in
the browser.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration file (default ~/.repocards/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&username, "username", "u", "", "GitHub user whose repositories are shown")
	rootCmd.PersistentFlags().StringVar(&excludeName, "exclude", "", "Repository to hide (default <username>.github.io)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "GitHub API base URL")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(pickCmd)
}

// setupLogger builds the stderr logger shared by every subcommand
func setupLogger(_ *cobra.Command, _ []string) error {
	l, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = l
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// loadSettings reads the configuration file and applies the persistent flags
func loadSettings() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadConfigFromPath(configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if username != "" {
		cfg.GitHub.Username = username
	}
	if excludeName != "" {
		cfg.GitHub.Exclude = excludeName
	}
	if apiURL != "" {
		cfg.GitHub.APIURL = apiURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug("configuration loaded",
		zap.String("username", cfg.GitHub.Username),
		zap.String("exclude", cfg.GitHub.ExcludedRepository()),
		zap.String("api_url", cfg.GitHub.APIURL),
		zap.Duration("timeout", cfg.GitHub.Timeout),
	)

	return cfg, nil
}

// newClient creates the GitHub client described by cfg
func newClient(cfg *config.Config) (*github.Client, error) {
	client, err := github.NewClient(cfg.GitHub.Timeout,
		github.WithBaseURL(cfg.GitHub.APIURL),
		github.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	return client, nil
}

// newController wires the client, renderer and initial filter together
func newController(cfg *config.Config, renderer portfolio.Renderer, criteria portfolio.Criteria) (*portfolio.Controller, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}

	return portfolio.NewController(client, renderer,
		cfg.GitHub.Username,
		cfg.GitHub.ExcludedRepository(),
		portfolio.WithControllerLogger(logger),
		portfolio.WithCriteria(criteria),
	), nil
}
