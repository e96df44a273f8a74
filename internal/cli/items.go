package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newItemsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List the item master of the voucher service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := opts.newStore()
			if err := store.RefreshReferenceData(opts.commandContext(cmd)); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ITEM CODE\tITEM NAME")
			for _, it := range store.Items() {
				fmt.Fprintf(tw, "%s\t%s\n", it.ItemCode, it.ItemName)
			}
			return tw.Flush()
		},
	}
}
