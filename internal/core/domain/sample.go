package domain

import "github.com/shopspring/decimal"

// SampleItems is the demo item catalog installed when no catalog backend is reachable.
func SampleItems() []Item {
	return []Item{
		{ItemCode: "ITEM001", ItemName: "Laptop Computer"},
		{ItemCode: "ITEM002", ItemName: "Wireless Mouse"},
		{ItemCode: "ITEM100", ItemName: "Office Chair"},
		{ItemCode: "ITEM145", ItemName: "Monitor 24 inch"},
		{ItemCode: "ITEM170", ItemName: "Keyboard Mechanical"},
		{ItemCode: "ITEM200", ItemName: "Desk Lamp LED"},
		{ItemCode: "ITEM250", ItemName: "USB Cable Type-C"},
		{ItemCode: "ITEM300", ItemName: "Notebook A4"},
	}
}

// SampleVoucher returns a filled-in voucher for demos and manual testing.
// The header amount is left at zero; loading the record computes it.
func SampleVoucher() (Header, []DetailRow) {
	header := Header{
		VoucherNumber: 1001,
		VoucherDate:   "2024-01-15",
		AccountName:   "ABC Corporation Ltd.",
		AccountAmount: decimal.Zero,
		Status:        StatusActive,
	}
	details := []DetailRow{
		sampleRow(1, "ITEM001", "Laptop Computer", "High performance laptop for office work with 16GB RAM and 512GB SSD", 2, "1200.00"),
		sampleRow(2, "ITEM002", "Wireless Mouse", "Ergonomic wireless mouse with USB receiver", 5, "25.00"),
		sampleRow(3, "ITEM100", "Office Chair", "Comfortable office chair with lumbar support and adjustable height", 3, "350.00"),
	}
	return header, details
}

func sampleRow(serial int, code, name, description string, qty int64, rate string) DetailRow {
	q := decimal.NewFromInt(qty)
	r := decimal.RequireFromString(rate)
	return DetailRow{
		SerialNumber: serial,
		ItemCode:     code,
		ItemName:     name,
		Description:  description,
		Quantity:     q,
		Rate:         r,
		Amount:       q.Mul(r),
	}
}
