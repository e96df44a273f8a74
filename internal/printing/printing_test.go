package printing_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
	"github.com/adithyasudev/entry-voucher-forge/internal/printing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func sampleRecord() domain.Record {
	rec := domain.NewRecord(generatedAt)
	rec.Load(domain.SampleVoucher())
	return *rec
}

func TestNewVoucherView(t *testing.T) {
	view := printing.NewVoucherView(sampleRecord(), "Acme Traders", generatedAt)

	assert.Equal(t, "Acme Traders", view.CompanyName)
	assert.Equal(t, int64(1001), view.VoucherNumber)
	assert.Equal(t, "2024-01-15", view.VoucherDate)
	assert.Equal(t, "Active", view.Status)
	assert.Equal(t, "3575.00", view.AccountAmount)
	assert.Equal(t, "3575.00", view.Total)
	assert.Equal(t, "2024-01-15 10:30:00", view.GeneratedOn)

	require.Len(t, view.Rows, 3)
	assert.Equal(t, printing.RowView{
		SerialNumber: 1,
		ItemCode:     "ITEM001",
		ItemName:     "Laptop Computer",
		Description:  "High performance laptop for office work with 16GB RAM and 512GB SSD",
		Quantity:     "2.000",
		Rate:         "1200.00",
		Amount:       "2400.00",
	}, view.Rows[0])
}

func TestNewVoucherView_TotalFromRows(t *testing.T) {
	rec := sampleRecord()
	rec.Header.AccountAmount = decimal.NewFromInt(1)
	rec.Header.Status = domain.StatusInactive

	view := printing.NewVoucherView(rec, "", generatedAt)

	assert.Equal(t, "Your Company Name", view.CompanyName)
	assert.Equal(t, "Inactive", view.Status)
	assert.Equal(t, "1.00", view.AccountAmount)
	assert.Equal(t, "3575.00", view.Total)
}

func TestRenderHTML(t *testing.T) {
	rec := sampleRecord()
	rec.Header.AccountName = "<b>Smith & Sons</b>"
	var buf bytes.Buffer

	require.NoError(t, printing.RenderHTML(&buf, printing.NewVoucherView(rec, "Acme Traders", generatedAt)))

	out := buf.String()
	assert.Contains(t, out, "<h1>Acme Traders</h1>")
	assert.Contains(t, out, "Sales Voucher")
	assert.Contains(t, out, "Total:-")
	assert.Contains(t, out, "<strong>3575.00</strong>")
	assert.Contains(t, out, "Generated on: 2024-01-15 10:30:00")
	assert.Contains(t, out, "@media print")
	assert.Contains(t, out, "&lt;b&gt;Smith &amp; Sons&lt;/b&gt;")
	assert.NotContains(t, out, "<b>Smith")
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printing.RenderText(&buf, printing.NewVoucherView(sampleRecord(), "Acme Traders", generatedAt)))

	out := buf.String()
	assert.Contains(t, out, "Acme Traders\nSales Voucher\n")
	assert.Contains(t, out, "ABC Corporation Ltd.")
	assert.Contains(t, out, "1200.00")
	assert.Contains(t, out, "2.000")
	assert.Contains(t, out, "Total:-")
	assert.Contains(t, out, "3575.00")
	assert.Contains(t, out, "Generated on: 2024-01-15 10:30:00")
}
