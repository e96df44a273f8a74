package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Run the pre-submit checks on a voucher file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := opts.newStore()
			if err := loadVoucherFile(store, args[0]); err != nil {
				return err
			}
			if err := store.Validate(); err != nil {
				return err
			}

			snap := store.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Voucher %d is valid: %d row(s), total %s\n",
				snap.Header.VoucherNumber, len(snap.Details), snap.Header.AccountAmount.StringFixed(2))
			return nil
		},
	}
}
