package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newSubmitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "submit FILE",
		Short: "Validate a voucher file and save it to the voucher service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := opts.newStore()
			if err := loadVoucherFile(store, args[0]); err != nil {
				return err
			}

			opts.logger.Debug("Submitting voucher", slog.String("file", args[0]), slog.String("base_url", opts.baseURL))
			ack, err := store.Submit(opts.commandContext(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(ack))
			return nil
		},
	}
}
