package printing

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// RenderText writes a plain-text version of the print view, for terminals.
func RenderText(w io.Writer, view VoucherView) error {
	title := strings.TrimSpace(view.CompanyName)
	if _, err := fmt.Fprintf(w, "%s\nSales Voucher\n\n", title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Vr NO:\t%d\tVr Date:\t%s\n", view.VoucherNumber, view.VoucherDate)
	fmt.Fprintf(tw, "Status:\t%s\tAC Amt:\t%s\n", view.Status, view.AccountAmount)
	fmt.Fprintf(tw, "AC Name:\t%s\t\t\n", view.AccountName)
	if err := tw.Flush(); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Sr NO\tItem Code\tItem Name\tDescription\tQty\tRate\tAmount\t")
	for _, r := range view.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.SerialNumber, r.ItemCode, r.ItemName, r.Description, r.Quantity, r.Rate, r.Amount)
	}
	fmt.Fprintf(tw, "\t\t\t\t\tTotal:-\t%s\t\n", view.Total)
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nGenerated on: %s\n", view.GeneratedOn)
	return err
}
