// Package printing renders a voucher record as a print-ready document.
package printing

import (
	"time"

	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
)

const defaultCompanyName = "Your Company Name"

// VoucherView is the read-only, pre-formatted form of a record used by both renderers.
type VoucherView struct {
	CompanyName   string
	VoucherNumber int64
	VoucherDate   string
	Status        string
	AccountAmount string
	AccountName   string
	Rows          []RowView
	Total         string
	GeneratedOn   string
}

// RowView is a single detail line with numbers already fixed to print precision.
type RowView struct {
	SerialNumber int
	ItemCode     string
	ItemName     string
	Description  string
	Quantity     string
	Rate         string
	Amount       string
}

// NewVoucherView formats rec for printing. The footer total is summed from the
// rows rather than taken from the header.
func NewVoucherView(rec domain.Record, companyName string, generatedAt time.Time) VoucherView {
	if companyName == "" {
		companyName = defaultCompanyName
	}

	rows := make([]RowView, len(rec.Details))
	for i, d := range rec.Details {
		rows[i] = RowView{
			SerialNumber: d.SerialNumber,
			ItemCode:     d.ItemCode,
			ItemName:     d.ItemName,
			Description:  d.Description,
			Quantity:     d.Quantity.StringFixed(3),
			Rate:         d.Rate.StringFixed(2),
			Amount:       d.Amount.StringFixed(2),
		}
	}

	return VoucherView{
		CompanyName:   companyName,
		VoucherNumber: rec.Header.VoucherNumber,
		VoucherDate:   rec.Header.VoucherDate,
		Status:        rec.Header.Status.Label(),
		AccountAmount: rec.Header.AccountAmount.StringFixed(2),
		AccountName:   rec.Header.AccountName,
		Rows:          rows,
		Total:         domain.Total(rec.Details).StringFixed(2),
		GeneratedOn:   generatedAt.Format("2006-01-02 15:04:05"),
	}
}
