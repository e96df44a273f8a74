package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateHeaderRequest is a partial header update. ac_amt is derived and
// silently ignored if sent.
type UpdateHeaderRequest struct {
	VoucherNumber *int64  `json:"vr_no,omitempty" example:"1001"`
	VoucherDate   *string `json:"vr_date,omitempty" binding:"omitempty,datetime=2006-01-02" example:"2024-01-15"`
	AccountName   *string `json:"ac_name,omitempty" example:"ABC Corporation Ltd."`
	Status        *string `json:"status,omitempty" binding:"omitempty,oneof=A I" example:"A"`
}

// ToHeaderPatch converts the request into a domain patch.
func (r UpdateHeaderRequest) ToHeaderPatch() domain.HeaderPatch {
	patch := domain.HeaderPatch{
		VoucherNumber: r.VoucherNumber,
		VoucherDate:   r.VoucherDate,
		AccountName:   r.AccountName,
	}
	if r.Status != nil {
		status := domain.VoucherStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// UpdateDetailRequest sets one editable column of a detail row. Value may be a
// JSON string or number.
type UpdateDetailRequest struct {
	Field string          `json:"field" binding:"required,oneof=item_code description qty rate" example:"qty"`
	Value json.RawMessage `json:"value" swaggertype:"string" example:"2"`
}

// ValueText returns the value as text. Numeric fields must hold a decimal
// within domain.CheckDecimal's range or be empty; empty clears the column to zero.
func (r UpdateDetailRequest) ValueText() (string, error) {
	raw := bytes.TrimSpace(r.Value)
	var text string
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		text = ""
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return "", fmt.Errorf("value must be a string or number: %w", err)
		}
	default:
		var num json.Number
		if err := json.Unmarshal(raw, &num); err != nil {
			return "", fmt.Errorf("value must be a string or number: %w", err)
		}
		text = num.String()
	}

	field := domain.DetailField(r.Field)
	if field.IsNumeric() && strings.TrimSpace(text) != "" {
		d, err := decimal.NewFromString(strings.TrimSpace(text))
		if err != nil {
			return "", fmt.Errorf("%s must be numeric, got %q", r.Field, text)
		}
		if err := domain.CheckDecimal(d, field.Places()); err != nil {
			return "", fmt.Errorf("%s: %w", r.Field, err)
		}
	}
	return text, nil
}

// LoadHeaderRequest is the header of a wholesale load. ac_amt is derived from
// the rows and ignored if sent.
type LoadHeaderRequest struct {
	VoucherNumber int64  `json:"vr_no" example:"1001"`
	VoucherDate   string `json:"vr_date" binding:"omitempty,datetime=2006-01-02" example:"2024-01-15"`
	AccountName   string `json:"ac_name" example:"ABC Corporation Ltd."`
	Status        string `json:"status" binding:"omitempty,oneof=A I" example:"A"`
}

// LoadRecordRequest replaces the whole record being edited.
type LoadRecordRequest struct {
	Header  LoadHeaderRequest  `json:"header" binding:"required"`
	Details []domain.DetailRow `json:"details"`
}

// ToDomain checks the numeric columns of every row and returns the header and
// renumbered rows ready for loading. A missing status means Active.
func (r LoadRecordRequest) ToDomain() (domain.Header, []domain.DetailRow, error) {
	if err := domain.CheckRows(r.Details); err != nil {
		return domain.Header{}, nil, err
	}
	header := domain.Header{
		VoucherNumber: r.Header.VoucherNumber,
		VoucherDate:   r.Header.VoucherDate,
		AccountName:   r.Header.AccountName,
		Status:        domain.VoucherStatus(r.Header.Status),
	}
	if header.Status == "" {
		header.Status = domain.StatusActive
	}
	return header, domain.NormalizeRows(r.Details), nil
}

// ItemRequest is one entry of a replacement item catalog.
type ItemRequest struct {
	ItemCode string `json:"item_code" binding:"required" example:"ITEM001"`
	ItemName string `json:"item_name" example:"Laptop Computer"`
}

// SetItemsRequest replaces the item lookup table.
type SetItemsRequest struct {
	Items []ItemRequest `json:"items" binding:"required,dive"`
}

// ToDomain converts the request into catalog entries.
func (r SetItemsRequest) ToDomain() []domain.Item {
	items := make([]domain.Item, len(r.Items))
	for i, it := range r.Items {
		items[i] = domain.Item{ItemCode: it.ItemCode, ItemName: it.ItemName}
	}
	return items
}

// ValidationResponse reports the outcome of the pre-submit checks.
type ValidationResponse struct {
	Valid   bool   `json:"valid"`
	Field   string `json:"field,omitempty"`
	Row     int    `json:"row,omitempty"`
	Message string `json:"message,omitempty"`
}

// SubmitResponse carries the gateway acknowledgment and the state after submission.
type SubmitResponse struct {
	Acknowledgment json.RawMessage      `json:"acknowledgment" swaggertype:"object"`
	Snapshot       domain.StoreSnapshot `json:"snapshot"`
}

// ItemListResponse wraps the lookup table.
type ItemListResponse struct {
	Items []domain.Item `json:"items"`
	Count int           `json:"count"`
}

// NewItemListResponse builds an ItemListResponse, never returning a null list.
func NewItemListResponse(items []domain.Item) ItemListResponse {
	if items == nil {
		items = []domain.Item{}
	}
	return ItemListResponse{Items: items, Count: len(items)}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
