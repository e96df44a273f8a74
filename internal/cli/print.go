package cli

import (
	"time"

	"github.com/adithyasudev/entry-voucher-forge/internal/printing"
	"github.com/spf13/cobra"
)

func newPrintCmd(opts *rootOptions) *cobra.Command {
	var asHTML bool

	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Render a voucher file for printing",
		Long: `Render a voucher file as plain text, or as the A4 HTML print page with --html.
The voucher must pass validation to be printed.`,
		Example: `  voucherctl print voucher.json
  voucherctl print voucher.json --html > voucher.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := opts.newStore()
			if err := loadVoucherFile(store, args[0]); err != nil {
				return err
			}

			rec, err := store.PrintableRecord()
			if err != nil {
				return err
			}

			view := printing.NewVoucherView(rec, opts.company, time.Now())
			if asHTML {
				return printing.RenderHTML(cmd.OutOrStdout(), view)
			}
			return printing.RenderText(cmd.OutOrStdout(), view)
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "Write the HTML print page instead of text")
	return cmd
}
