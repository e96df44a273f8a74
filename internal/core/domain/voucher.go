package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// VoucherStatus is the lifecycle flag of a sales voucher.
type VoucherStatus string

const (
	StatusActive   VoucherStatus = "A"
	StatusInactive VoucherStatus = "I"
)

// Label returns the printable name of the status.
func (s VoucherStatus) Label() string {
	if s == StatusActive {
		return "Active"
	}
	return "Inactive"
}

// IsValid reports whether s is one of the known statuses.
func (s VoucherStatus) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// DateLayout is the encoding used for voucher dates.
const DateLayout = "2006-01-02"

// Header holds the voucher-level fields of a sales voucher.
type Header struct {
	VoucherNumber int64           `json:"vr_no"`   // User assigned, uniqueness not enforced here
	VoucherDate   string          `json:"vr_date"` // YYYY-MM-DD
	AccountName   string          `json:"ac_name"`
	AccountAmount decimal.Decimal `json:"ac_amt"` // Derived: sum of detail amounts
	Status        VoucherStatus   `json:"status"`
}

// HeaderPatch carries a partial header update. Nil fields are left untouched.
// The account amount is derived and therefore has no field here.
type HeaderPatch struct {
	VoucherNumber *int64
	VoucherDate   *string
	AccountName   *string
	Status        *VoucherStatus
}

// DetailRow is one line item of a sales voucher.
type DetailRow struct {
	SerialNumber int             `json:"sr_no"` // 1-based, dense
	ItemCode     string          `json:"item_code"`
	ItemName     string          `json:"item_name"` // Derived from the item lookup
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"qty"`
	Rate         decimal.Decimal `json:"rate"`
	Amount       decimal.Decimal `json:"amount"` // Derived: qty * rate
}

// DetailField names an editable column of a detail row.
type DetailField string

const (
	FieldItemCode    DetailField = "item_code"
	FieldDescription DetailField = "description"
	FieldQuantity    DetailField = "qty"
	FieldRate        DetailField = "rate"
)

// IsEditable reports whether the field can be set by a user.
func (f DetailField) IsEditable() bool {
	switch f {
	case FieldItemCode, FieldDescription, FieldQuantity, FieldRate:
		return true
	}
	return false
}

// IsNumeric reports whether the field holds a decimal value.
func (f DetailField) IsNumeric() bool {
	return f == FieldQuantity || f == FieldRate
}

// Item is an entry of the reference item catalog.
type Item struct {
	ItemCode string `json:"item_code"`
	ItemName string `json:"item_name"`
}

// SubmittedRow is a detail row stamped with its voucher number for submission.
type SubmittedRow struct {
	DetailRow
	VoucherNumber int64 `json:"vr_no"`
}

// Submission is the body handed to the persistence gateway.
type Submission struct {
	Header  Header         `json:"header_table"`
	Details []SubmittedRow `json:"detail_table"`
}

// NewSubmission stamps every row with the header's voucher number.
func NewSubmission(header Header, details []DetailRow) Submission {
	rows := make([]SubmittedRow, len(details))
	for i, d := range details {
		rows[i] = SubmittedRow{DetailRow: d, VoucherNumber: header.VoucherNumber}
	}
	return Submission{Header: header, Details: rows}
}

// StoreSnapshot is a consistent copy of the editing session's state.
type StoreSnapshot struct {
	Header    Header          `json:"header"`
	Details   []DetailRow     `json:"details"`
	Items     []Item          `json:"itemMaster"`
	Loading   bool            `json:"loading"`
	Error     string          `json:"error,omitempty"`
	LastSaved json.RawMessage `json:"lastSavedData,omitempty"`
}
