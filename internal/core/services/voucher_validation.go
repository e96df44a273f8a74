package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/adithyasudev/entry-voucher-forge/internal/apperrors"
	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidationError reports the first field that blocks submission.
// Row is 1-based for detail rows and 0 for header fields.
type ValidationError struct {
	Field   string
	Row     int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return apperrors.ErrValidation
}

// Field order decides which failure is reported first.
type headerRules struct {
	AccountName   string `validate:"required"`
	VoucherNumber int64  `validate:"gt=0"`
	VoucherDate   string `validate:"required,datetime=2006-01-02"`
}

type rowRules struct {
	ItemCode string          `validate:"required"`
	Quantity decimal.Decimal `validate:"gt=0"`
	Rate     decimal.Decimal `validate:"gt=0"`
}

var voucherValidator = newVoucherValidator()

func newVoucherValidator() *validator.Validate {
	v := validator.New()
	// Decimals are compared by sign so gt=0 stays exact for any magnitude.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return int64(d.Sign())
		}
		return nil
	}, decimal.Decimal{})
	return v
}

var headerMessages = map[string]string{
	"AccountName.required": "Account Name is required",
	"VoucherNumber.gt":     "Voucher Number must be greater than 0",
	"VoucherDate.required": "Voucher Date is required",
	"VoucherDate.datetime": "Voucher Date must use the YYYY-MM-DD format",
}

var rowMessages = map[string]string{
	"ItemCode.required": "Item Code is required for row %d",
	"Quantity.gt":       "Quantity must be greater than 0 for row %d",
	"Rate.gt":           "Rate must be greater than 0 for row %d",
}

const rangeMessage = "%s is out of range for row %d (at most %d integer digits and %d decimal places)"

// ValidateVoucher checks a record before it may be submitted. It stops at the
// first problem, header before rows, rows in order.
func ValidateVoucher(header domain.Header, details []domain.DetailRow) error {
	hr := headerRules{
		AccountName:   strings.TrimSpace(header.AccountName),
		VoucherNumber: header.VoucherNumber,
		VoucherDate:   header.VoucherDate,
	}
	if fe := firstFieldError(voucherValidator.Struct(hr)); fe != nil {
		key := fe.StructField() + "." + fe.Tag()
		return &ValidationError{Field: fe.StructField(), Message: headerMessages[key]}
	}

	for i, d := range details {
		rr := rowRules{ItemCode: d.ItemCode, Quantity: d.Quantity, Rate: d.Rate}
		if fe := firstFieldError(voucherValidator.Struct(rr)); fe != nil {
			key := fe.StructField() + "." + fe.Tag()
			return &ValidationError{Field: fe.StructField(), Row: i + 1, Message: fmt.Sprintf(rowMessages[key], i+1)}
		}
		if verr := checkRowRange(d, i+1); verr != nil {
			return verr
		}
	}
	return nil
}

// checkRowRange rejects values the persistence layer would have to round.
func checkRowRange(d domain.DetailRow, row int) *ValidationError {
	if domain.CheckDecimal(d.Quantity, domain.QuantityPlaces) != nil {
		return &ValidationError{Field: "Quantity", Row: row, Message: fmt.Sprintf(rangeMessage, "Quantity", row, domain.MaxIntegerDigits, domain.QuantityPlaces)}
	}
	if domain.CheckDecimal(d.Rate, domain.RatePlaces) != nil {
		return &ValidationError{Field: "Rate", Row: row, Message: fmt.Sprintf(rangeMessage, "Rate", row, domain.MaxIntegerDigits, domain.RatePlaces)}
	}
	return nil
}

func firstFieldError(err error) validator.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0]
	}
	return nil
}
