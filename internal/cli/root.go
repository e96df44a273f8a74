// Package cli implements voucherctl, a terminal front end for the sales voucher store.
package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/adithyasudev/entry-voucher-forge/internal/adapters/remote"
	portssvc "github.com/adithyasudev/entry-voucher-forge/internal/core/ports/services"
	"github.com/adithyasudev/entry-voucher-forge/internal/core/services"
	"github.com/adithyasudev/entry-voucher-forge/internal/middleware"
	"github.com/adithyasudev/entry-voucher-forge/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

type rootOptions struct {
	baseURL string
	timeout time.Duration
	company string
	verbose bool

	logger *slog.Logger
}

// NewRootCmd builds the voucherctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "voucherctl",
		Short: "Inspect, validate, print and submit sales vouchers",
		Long: `voucherctl works with sales vouchers stored as JSON files.

A voucher file holds a header and its detail rows, either as
{"header": {...}, "details": [...]} or in the submission layout
{"header_table": {...}, "detail_table": [...]}.

Defaults for --base-url, --timeout and --company come from REMOTE_BASE_URL,
HTTP_CLIENT_TIMEOUT and COMPANY_NAME (a .env file is honoured).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.complete(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "Voucher service base URL")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout for voucher service calls")
	rootCmd.PersistentFlags().StringVar(&opts.company, "company", "", "Company name printed on the voucher")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "V", false, "Log progress to stderr")

	rootCmd.AddCommand(
		newItemsCmd(opts),
		newPrintCmd(opts),
		newValidateCmd(opts),
		newSubmitCmd(opts),
	)
	return rootCmd
}

// complete fills unset flags from configuration.
func (o *rootOptions) complete(cmd *cobra.Command) error {
	decimal.MarshalJSONWithoutQuotes = true

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if o.baseURL != "" && o.timeout > 0 && o.company != "" {
		return nil
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if o.baseURL == "" {
		o.baseURL = cfg.RemoteBaseURL
	}
	if o.timeout <= 0 {
		o.timeout = cfg.HTTPClientTimeout
	}
	if o.company == "" {
		o.company = cfg.CompanyName
	}
	return nil
}

func (o *rootOptions) commandContext(cmd *cobra.Command) context.Context {
	return middleware.WithLogger(cmd.Context(), o.logger)
}

// newStore returns a record store backed by the remote voucher service.
func (o *rootOptions) newStore() portssvc.RecordStoreSvcFacade {
	client := remote.NewClient(o.baseURL, o.timeout)
	return services.NewRecordStore(
		services.WithItemCatalog(client),
		services.WithVoucherGateway(client),
	)
}

// Execute runs voucherctl and exits non-zero on failure.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
