package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Limits on the numeric detail fields. They match the sales_details columns
// so a stored value never needs rounding.
const (
	MaxIntegerDigits = 15
	QuantityPlaces   = 3
	RatePlaces       = 4
)

// ErrDecimalOutOfRange is returned when a quantity or rate is too large or
// carries more decimal places than its column holds.
var ErrDecimalOutOfRange = errors.New("decimal out of range")

// Places returns the number of decimal places a numeric field keeps.
// Non-numeric fields return 0.
func (f DetailField) Places() int32 {
	switch f {
	case FieldQuantity:
		return QuantityPlaces
	case FieldRate:
		return RatePlaces
	}
	return 0
}

// CheckDecimal reports whether d has at most MaxIntegerDigits integer digits
// and at most places significant decimal places. Trailing zeros are allowed.
// Only the exponent and coefficient length are inspected before any rescaling,
// so hostile exponents are rejected in constant time.
func CheckDecimal(d decimal.Decimal, places int32) error {
	if d.IsZero() {
		return nil
	}
	exp := int64(d.Exponent())
	digits := int64(d.NumDigits())
	if digits+exp > MaxIntegerDigits {
		return fmt.Errorf("%w: more than %d integer digits", ErrDecimalOutOfRange, MaxIntegerDigits)
	}
	if exp >= -int64(places) {
		return nil
	}
	if extra := -exp - int64(places); extra > digits || !d.Equal(d.Truncate(places)) {
		return fmt.Errorf("%w: more than %d decimal places", ErrDecimalOutOfRange, places)
	}
	return nil
}

// CheckRow applies CheckDecimal to the quantity and rate of one row.
func CheckRow(row DetailRow) error {
	if err := CheckDecimal(row.Quantity, QuantityPlaces); err != nil {
		return fmt.Errorf("qty: %w", err)
	}
	if err := CheckDecimal(row.Rate, RatePlaces); err != nil {
		return fmt.Errorf("rate: %w", err)
	}
	return nil
}

// CheckRows runs CheckRow over details, naming the first offending row by
// its position.
func CheckRows(details []DetailRow) error {
	for i, row := range details {
		if err := CheckRow(row); err != nil {
			return fmt.Errorf("row %d %w", i+1, err)
		}
	}
	return nil
}
