// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/barrosoj/copilot-licenses-enterprise/internal/config"
	apperrors "github.com/barrosoj/copilot-licenses-enterprise/internal/errors"
	"github.com/barrosoj/copilot-licenses-enterprise/internal/github"
	"github.com/barrosoj/copilot-licenses-enterprise/internal/output"
	"github.com/barrosoj/copilot-licenses-enterprise/internal/report"
	"github.com/barrosoj/copilot-licenses-enterprise/internal/seats"
	"github.com/barrosoj/copilot-licenses-enterprise/pkg/version"
)

// exportOptions collects the flag values for one run. Zero values mean the
// flag was not set and the config layer decides.
type exportOptions struct {
	enterprise string
	token      string
	output     string
	format     string
	summary    bool
	billing    bool
	perPage    int
	maxPages   int
	apiURL     string
	configPath string
	quiet      bool
}

// newRootCommand builds the copilot-seats command. The root command runs the
// export directly; the flag surface is flat.
func newRootCommand() *cobra.Command {
	var opts exportOptions

	cmd := &cobra.Command{
		Use:   "copilot-seats",
		Short: "Export Copilot seat assignments for a GitHub enterprise",
		Long: `copilot-seats retrieves every Copilot seat assignment of a GitHub
enterprise from the billing API and exports the normalized result as JSON
or CSV.

Authentication is required via GitHub token:
  - Use --token flag to provide the token directly
  - Or set the GITHUB_TOKEN environment variable

The enterprise slug can likewise come from --enterprise or the
GITHUB_ENTERPRISE environment variable.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.enterprise, "enterprise", "e", "", "Enterprise slug (overrides GITHUB_ENTERPRISE env var)")
	cmd.Flags().StringVarP(&opts.token, "token", "t", "", "GitHub token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout for json, required for csv)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: json or csv (default: json)")
	cmd.Flags().BoolVarP(&opts.summary, "summary", "s", false, "Print a human-readable report to stderr")
	cmd.Flags().BoolVarP(&opts.billing, "billing", "b", false, "Include the enterprise billing summary in the export")
	cmd.Flags().IntVar(&opts.perPage, "per-page", 0, "Seats requested per page (API caps at 100)")
	cmd.Flags().IntVar(&opts.maxPages, "max-pages", 0, "Abort if pagination exceeds this many pages")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "GitHub API base URL (for GitHub Enterprise Server)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress progress logging")

	return cmd
}

// runExport executes one export end to end: resolve configuration, retrieve
// and normalize all seats, optionally attach the billing summary, serialize,
// and optionally print the console report.
func runExport(ctx context.Context, opts exportOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	enterprise := getEnterprise(opts.enterprise, cfg)
	if enterprise == "" {
		return fmt.Errorf("no enterprise specified, set --enterprise or GITHUB_ENTERPRISE: %w",
			apperrors.ErrMissingEnterprise)
	}

	token := getToken(opts.token, cfg.GitHub.TokenEnv)
	if token == "" {
		return fmt.Errorf("no token found, set --token or %s: %w",
			cfg.GitHub.TokenEnv, apperrors.ErrMissingToken)
	}

	// Resolve the serializer before any network call so a bad format or a
	// missing output path fails fast.
	format := output.Format(cfg.Defaults.Format)
	serializer, err := output.ForFormat(format)
	if err != nil {
		return err
	}
	if format == output.FormatCSV && opts.output == "" {
		return fmt.Errorf("csv output requires --output: %w", apperrors.ErrMissingOutput)
	}

	logger := newLogger(opts.quiet)
	defer func() { _ = logger.Sync() }()

	client := github.NewRESTClient(token, cfg.GitHub.APIEndpoint, logger)
	collector := seats.NewCollector(client, logger, seats.CollectorOptions{
		PerPage:  cfg.Defaults.PerPage,
		MaxPages: cfg.Defaults.MaxPages,
	})

	logger.Info("retrieving copilot seats", zap.String("enterprise", enterprise))
	collection, err := collector.Retrieve(ctx, enterprise)
	if err != nil {
		return err
	}

	if opts.billing {
		attachBillingSummary(ctx, client, enterprise, collection, logger)
	}

	if err := writeOutput(serializer, collection, opts.output, logger); err != nil {
		return err
	}

	if opts.summary {
		report.PrintSummary(os.Stderr, collection)
	}

	logger.Info("export complete",
		zap.Int("seats", collection.TotalSeats),
		zap.String("format", string(format)),
	)
	return nil
}

// applyFlagOverrides copies set flags over the loaded configuration. Flags
// have the highest precedence.
func applyFlagOverrides(cfg *config.Config, opts exportOptions) {
	if opts.format != "" {
		cfg.Defaults.Format = opts.format
	}
	if opts.perPage > 0 {
		cfg.Defaults.PerPage = opts.perPage
	}
	if opts.maxPages > 0 {
		cfg.Defaults.MaxPages = opts.maxPages
	}
	if opts.apiURL != "" {
		cfg.GitHub.APIEndpoint = opts.apiURL
	}
}

// getEnterprise returns the enterprise slug from flag, environment, or
// config file, in that order.
func getEnterprise(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("GITHUB_ENTERPRISE"); env != "" {
		return env
	}
	return cfg.GitHub.Enterprise
}

// getToken returns the GitHub token from the flag or the configured
// environment variable.
func getToken(flagToken, tokenEnv string) string {
	if flagToken != "" {
		return flagToken
	}
	if tokenEnv == "" {
		tokenEnv = "GITHUB_TOKEN"
	}
	return os.Getenv(tokenEnv)
}

// attachBillingSummary adds the billing summary to the collection. A failure
// here never aborts the run: the error is logged and an empty object takes
// the summary's place, so the rest of the pipeline proceeds.
func attachBillingSummary(ctx context.Context, client github.Client, enterprise string, collection *seats.SeatCollection, logger *zap.Logger) {
	summary, err := client.FetchBillingSummary(ctx, enterprise)
	if err != nil {
		logger.Warn("billing summary unavailable, continuing with an empty summary", zap.Error(err))
		collection.BillingSummary = json.RawMessage(`{}`)
		return
	}
	collection.BillingSummary = summary
}

// writeOutput serializes the collection and writes it to the output path, or
// to stdout when no path is given. Serialization happens into a buffer first
// so an empty CSV export never creates the file.
func writeOutput(serializer output.Serializer, collection *seats.SeatCollection, outputPath string, logger *zap.Logger) error {
	var buf bytes.Buffer
	if err := serializer.Serialize(collection, &buf); err != nil {
		if errors.Is(err, apperrors.ErrNoData) {
			logger.Warn("no seats retrieved, skipping output file", zap.Error(err))
			return nil
		}
		return err
	}

	if outputPath == "" {
		if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("wrote output file", zap.String("path", outputPath), zap.Int("bytes", buf.Len()))
	return nil
}

// newLogger builds a console logger writing to stderr so data output on
// stdout stays clean. Quiet mode raises the level to warnings.
func newLogger(quiet bool) *zap.Logger {
	level := zapcore.InfoLevel
	if quiet {
		level = zapcore.WarnLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}

// mapErrorToExitCode maps internal errors to appropriate exit codes.
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	var statusErr *apperrors.StatusError
	if errors.As(err, &statusErr) && statusErr.IsAuthError() {
		return 2 // Authentication/authorization errors
	}

	if errors.Is(err, apperrors.ErrRequestTimeout) {
		return 3 // Network errors
	}

	return 1 // General error
}
