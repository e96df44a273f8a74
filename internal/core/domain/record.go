package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is a sales voucher being edited: one header and at least one detail row.
// Every mutation leaves the derived fields (row amounts, account amount, serial
// numbers) consistent before returning. Record is not safe for concurrent use.
type Record struct {
	Header  Header
	Details []DetailRow
}

// NewRecord returns the initial record: one empty row, a zero account amount,
// Active status and the given date.
func NewRecord(today time.Time) *Record {
	return &Record{
		Header:  emptyHeader(today),
		Details: []DetailRow{emptyRow(1)},
	}
}

func emptyHeader(today time.Time) Header {
	return Header{
		VoucherDate:   today.Format(DateLayout),
		AccountAmount: decimal.Zero,
		Status:        StatusActive,
	}
}

func emptyRow(serial int) DetailRow {
	return DetailRow{
		SerialNumber: serial,
		Quantity:     decimal.Zero,
		Rate:         decimal.Zero,
		Amount:       decimal.Zero,
	}
}

// UpdateHeader merges the patch into the header. The account amount is never touched.
func (r *Record) UpdateHeader(p HeaderPatch) {
	if p.VoucherNumber != nil {
		r.Header.VoucherNumber = *p.VoucherNumber
	}
	if p.VoucherDate != nil {
		r.Header.VoucherDate = *p.VoucherDate
	}
	if p.AccountName != nil {
		r.Header.AccountName = *p.AccountName
	}
	if p.Status != nil {
		r.Header.Status = *p.Status
	}
}

// UpdateDetail sets one field of the row at index. Out of range indices and
// non-editable fields are ignored. Numeric values that do not parse, or that
// CheckDecimal rejects, are stored as zero.
// The item name is joined from lookup when the item code changes; an unknown code
// keeps the previous name.
func (r *Record) UpdateDetail(index int, field DetailField, value string, lookup map[string]string) {
	if index < 0 || index >= len(r.Details) {
		return
	}
	row := &r.Details[index]

	switch field {
	case FieldItemCode:
		row.ItemCode = value
		if name, ok := lookup[value]; ok {
			row.ItemName = name
		}
	case FieldDescription:
		row.Description = value
	case FieldQuantity:
		row.Quantity = parseDecimalOrZero(value, QuantityPlaces)
		row.Amount = row.Quantity.Mul(row.Rate)
	case FieldRate:
		row.Rate = parseDecimalOrZero(value, RatePlaces)
		row.Amount = row.Quantity.Mul(row.Rate)
	default:
		return
	}

	r.recalculateAccountAmount()
}

// AddRow appends an empty row numbered after the last one.
func (r *Record) AddRow() {
	r.Details = append(r.Details, emptyRow(len(r.Details)+1))
}

// RemoveRow deletes the row at index and renumbers the rest. The last remaining
// row is never removed.
func (r *Record) RemoveRow(index int) {
	if len(r.Details) <= 1 || index < 0 || index >= len(r.Details) {
		return
	}
	r.Details = append(r.Details[:index], r.Details[index+1:]...)
	for i := range r.Details {
		r.Details[i].SerialNumber = i + 1
	}
	r.recalculateAccountAmount()
}

// Reset returns the record to its initial shape.
func (r *Record) Reset(today time.Time) {
	r.Header = emptyHeader(today)
	r.Details = []DetailRow{emptyRow(1)}
}

// Load replaces header and details wholesale. Row amounts are taken as given;
// the account amount is recomputed from them. An empty detail list is replaced
// by a single empty row.
func (r *Record) Load(header Header, details []DetailRow) {
	r.Header = header
	if len(details) == 0 {
		r.Details = []DetailRow{emptyRow(1)}
	} else {
		r.Details = append([]DetailRow(nil), details...)
	}
	r.recalculateAccountAmount()
}

// NormalizeRows returns a copy of details with amounts recomputed from
// quantity and rate and serial numbers renumbered 1..N. Callers use it on rows
// from outside sources before handing them to Load.
func NormalizeRows(details []DetailRow) []DetailRow {
	out := make([]DetailRow, len(details))
	for i, d := range details {
		d.SerialNumber = i + 1
		d.Amount = d.Quantity.Mul(d.Rate)
		out[i] = d
	}
	return out
}

// Clone returns a deep copy safe to hand to other goroutines.
func (r *Record) Clone() Record {
	return Record{
		Header:  r.Header,
		Details: append([]DetailRow(nil), r.Details...),
	}
}

// Total sums the amounts of all detail rows.
func Total(details []DetailRow) decimal.Decimal {
	sum := decimal.Zero
	for _, d := range details {
		sum = sum.Add(d.Amount)
	}
	return sum
}

func (r *Record) recalculateAccountAmount() {
	r.Header.AccountAmount = Total(r.Details)
}

func parseDecimalOrZero(value string, places int32) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil || CheckDecimal(d, places) != nil {
		return decimal.Zero
	}
	return d
}
