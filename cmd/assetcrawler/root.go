package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"assetcrawler/internal/models"
	"assetcrawler/internal/service"
)

var (
	errArgCount = errors.New("arguments are incorrect: expected exactly one start url")
)

// NewRootCmd creates the assetcrawler command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assetcrawler <start-url>",
		Short: "List the static assets of every page of a site",
		Long: `assetcrawler visits every page reachable from the start URL whose address
contains the start page's address, breadth first, and prints a JSON array
with one object per page listing its image, script and stylesheet URLs.

Examples:
  assetcrawler https://example.com/
  assetcrawler --legacy-format --timeout 10s https://example.com/`,
		Version:       getVersion(),
		Args:          exactlyOneArg,
		RunE:          runRootCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().DurationP("timeout", "t", models.DefaultRequestTimeout,
		"Timeout for each HTTP request")
	cmd.Flags().StringP("user-agent", "u", models.DefaultUserAgent,
		"User-Agent header sent with each request")
	cmd.Flags().Int64("max-body-size", models.DefaultMaxBodySize,
		"Maximum response body size in bytes")
	cmd.Flags().BoolP("legacy-format", "l", false,
		"Print the historical output layout (trailing commas, not valid JSON)")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging on stderr")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func exactlyOneArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w, got %d", errArgCount, len(args))
	}
	return nil
}

func runRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	slog := logger.Sugar()
	slog.Debugw("read config", "config", cfg)

	srv, err := service.NewService(cfg, nil, cmd.OutOrStdout(), slog)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx)
}

func buildConfig(cmd *cobra.Command, args []string) (models.Config, error) {
	cfg := models.NewConfig()
	cfg.StartURL = args[0]

	var err error
	if cfg.RequestTimeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return cfg, err
	}
	if cfg.UserAgent, err = cmd.Flags().GetString("user-agent"); err != nil {
		return cfg, err
	}
	if cfg.MaxBodySize, err = cmd.Flags().GetInt64("max-body-size"); err != nil {
		return cfg, err
	}
	if cfg.LegacyFormat, err = cmd.Flags().GetBool("legacy-format"); err != nil {
		return cfg, err
	}
	if cfg.Verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// newLogger builds a production logger writing to stderr so stdout only
// carries the report.
func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}
