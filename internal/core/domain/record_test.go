package domain_test

import (
	"testing"
	"time"

	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertConsistent checks amounts, account total and serial numbering.
func assertConsistent(t *testing.T, r *domain.Record) {
	t.Helper()
	require.NotEmpty(t, r.Details)
	sum := decimal.Zero
	for i, d := range r.Details {
		assert.Equal(t, i+1, d.SerialNumber, "serial of row %d", i)
		assert.True(t, d.Amount.Equal(d.Quantity.Mul(d.Rate)), "row %d amount %s != %s*%s", i, d.Amount, d.Quantity, d.Rate)
		sum = sum.Add(d.Amount)
	}
	assert.True(t, r.Header.AccountAmount.Equal(sum), "account amount %s != %s", r.Header.AccountAmount, sum)
}

func TestNewRecord(t *testing.T) {
	r := domain.NewRecord(today)

	require.Len(t, r.Details, 1)
	assert.Equal(t, "2026-10-15", r.Header.VoucherDate)
	assert.Equal(t, domain.StatusActive, r.Header.Status)
	assert.True(t, r.Header.AccountAmount.IsZero())
	assert.Equal(t, 1, r.Details[0].SerialNumber)
	assert.True(t, r.Details[0].Quantity.IsZero())
	assert.True(t, r.Details[0].Rate.IsZero())
	assert.True(t, r.Details[0].Amount.IsZero())
}

func TestUpdateDetail_AmountFollowsQuantityAndRate(t *testing.T) {
	edits := []struct {
		field domain.DetailField
		value string
	}{
		{domain.FieldQuantity, "2"},
		{domain.FieldRate, "1200.00"},
		{domain.FieldQuantity, "0.125"},
		{domain.FieldRate, "3.3"},
		{domain.FieldQuantity, "abc"},
		{domain.FieldQuantity, "7"},
		{domain.FieldRate, ""},
	}

	r := domain.NewRecord(today)
	r.AddRow()
	for _, e := range edits {
		r.UpdateDetail(1, e.field, e.value, nil)
		assertConsistent(t, r)
	}
	assert.True(t, r.Details[1].Quantity.Equal(dec("7")))
	assert.True(t, r.Details[1].Rate.IsZero())
}

func TestUpdateDetail_OutOfRangeIgnored(t *testing.T) {
	r := domain.NewRecord(today)
	before := r.Clone()

	r.UpdateDetail(5, domain.FieldQuantity, "3", nil)
	r.UpdateDetail(-1, domain.FieldRate, "3", nil)

	assert.Equal(t, before, r.Clone())
}

func TestUpdateDetail_DerivedFieldsNotSettable(t *testing.T) {
	r := domain.NewRecord(today)
	r.UpdateDetail(0, "amount", "99", nil)
	r.UpdateDetail(0, "item_name", "Forged", nil)
	r.UpdateDetail(0, "sr_no", "9", nil)

	assert.True(t, r.Details[0].Amount.IsZero())
	assert.Empty(t, r.Details[0].ItemName)
	assert.Equal(t, 1, r.Details[0].SerialNumber)
}

func TestUpdateDetail_ItemCodeJoinsName(t *testing.T) {
	lookup := map[string]string{"ITEM001": "Laptop Computer"}
	r := domain.NewRecord(today)

	r.UpdateDetail(0, domain.FieldItemCode, "ITEM001", lookup)
	assert.Equal(t, "ITEM001", r.Details[0].ItemCode)
	assert.Equal(t, "Laptop Computer", r.Details[0].ItemName)

	r.UpdateDetail(0, domain.FieldItemCode, "ITEM999", lookup)
	assert.Equal(t, "ITEM999", r.Details[0].ItemCode)
	assert.Equal(t, "Laptop Computer", r.Details[0].ItemName, "unknown code keeps the previous name")
}

func TestRowEditingScenario(t *testing.T) {
	r := domain.NewRecord(today)

	r.UpdateDetail(0, domain.FieldQuantity, "2", nil)
	r.UpdateDetail(0, domain.FieldRate, "1200.00", nil)
	assert.True(t, r.Details[0].Amount.Equal(dec("2400.00")))
	assert.True(t, r.Header.AccountAmount.Equal(dec("2400.00")))

	r.AddRow()
	assertConsistent(t, r)
	r.UpdateDetail(1, domain.FieldQuantity, "5", nil)
	r.UpdateDetail(1, domain.FieldRate, "25.00", nil)
	assert.True(t, r.Details[1].Amount.Equal(dec("125.00")))
	assert.True(t, r.Header.AccountAmount.Equal(dec("2525.00")))

	r.RemoveRow(0)
	require.Len(t, r.Details, 1)
	assert.Equal(t, 1, r.Details[0].SerialNumber)
	assert.True(t, r.Header.AccountAmount.Equal(dec("125.00")))
	assertConsistent(t, r)
}

func TestAddRemoveRow_SerialsStayDense(t *testing.T) {
	r := domain.NewRecord(today)
	for i := 0; i < 5; i++ {
		r.AddRow()
		r.UpdateDetail(i+1, domain.FieldQuantity, "1", nil)
		r.UpdateDetail(i+1, domain.FieldRate, decimal.NewFromInt(int64(i+1)).String(), nil)
		assertConsistent(t, r)
	}
	require.Len(t, r.Details, 6)

	for _, idx := range []int{2, 0, 3, 1} {
		r.RemoveRow(idx)
		assertConsistent(t, r)
	}
	assert.Len(t, r.Details, 2)
}

func TestRemoveRow_LastRowKept(t *testing.T) {
	r := domain.NewRecord(today)
	r.UpdateDetail(0, domain.FieldQuantity, "4", nil)
	r.UpdateDetail(0, domain.FieldRate, "2.5", nil)
	before := r.Clone()

	r.RemoveRow(0)

	assert.Equal(t, before, r.Clone())
}

func TestUpdateHeader_IgnoresAccountAmount(t *testing.T) {
	r := domain.NewRecord(today)
	r.UpdateDetail(0, domain.FieldQuantity, "2", nil)
	r.UpdateDetail(0, domain.FieldRate, "10", nil)

	vrNo := int64(42)
	name := "Acme"
	status := domain.StatusInactive
	r.UpdateHeader(domain.HeaderPatch{VoucherNumber: &vrNo, AccountName: &name, Status: &status})

	assert.Equal(t, int64(42), r.Header.VoucherNumber)
	assert.Equal(t, "Acme", r.Header.AccountName)
	assert.Equal(t, domain.StatusInactive, r.Header.Status)
	assert.Equal(t, "2026-10-15", r.Header.VoucherDate)
	assert.True(t, r.Header.AccountAmount.Equal(dec("20")))
}

func TestReset(t *testing.T) {
	r := domain.NewRecord(today)
	header, details := domain.SampleVoucher()
	r.Load(header, details)
	r.AddRow()

	later := today.AddDate(0, 0, 3)
	r.Reset(later)

	require.Len(t, r.Details, 1)
	assert.Equal(t, "2026-10-18", r.Header.VoucherDate)
	assert.True(t, r.Header.AccountAmount.IsZero())
	assert.Equal(t, domain.StatusActive, r.Header.Status)
	assert.Empty(t, r.Header.AccountName)
	assert.Zero(t, r.Header.VoucherNumber)
	assert.True(t, r.Details[0].Quantity.IsZero())
	assert.True(t, r.Details[0].Rate.IsZero())
	assert.True(t, r.Details[0].Amount.IsZero())
}

func TestLoad_RecomputesAccountAmount(t *testing.T) {
	r := domain.NewRecord(today)
	header := domain.Header{VoucherNumber: 7, VoucherDate: "2024-01-15", AccountName: "X", AccountAmount: dec("999"), Status: domain.StatusActive}
	details := []domain.DetailRow{
		{SerialNumber: 1, ItemCode: "ITEM001", Quantity: dec("2"), Rate: dec("1200"), Amount: dec("2400.00")},
		{SerialNumber: 2, ItemCode: "ITEM002", Quantity: dec("5"), Rate: dec("25"), Amount: dec("125.00")},
	}

	r.Load(header, details)

	assert.True(t, r.Header.AccountAmount.Equal(dec("2525.00")))
	details[0].Description = "changed by caller"
	assert.Empty(t, r.Details[0].Description, "load copies the caller's slice")
}

func TestLoad_EmptyDetailsKeepsOneRow(t *testing.T) {
	r := domain.NewRecord(today)
	r.Load(domain.Header{VoucherNumber: 1, Status: domain.StatusActive}, nil)

	require.Len(t, r.Details, 1)
	assert.True(t, r.Header.AccountAmount.IsZero())
}

func TestNormalizeRows(t *testing.T) {
	in := []domain.DetailRow{
		{SerialNumber: 4, ItemCode: "ITEM001", Quantity: dec("2"), Rate: dec("1200"), Amount: dec("0")},
		{SerialNumber: 9, ItemCode: "ITEM002", Quantity: dec("0.5"), Rate: dec("25"), Amount: dec("777")},
	}

	out := domain.NormalizeRows(in)

	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].SerialNumber)
	assert.Equal(t, 2, out[1].SerialNumber)
	assert.True(t, out[0].Amount.Equal(dec("2400")))
	assert.True(t, out[1].Amount.Equal(dec("12.5")))
	assert.Equal(t, 4, in[0].SerialNumber, "input is left untouched")
}

func TestSampleVoucherTotal(t *testing.T) {
	r := domain.NewRecord(today)
	r.Load(domain.SampleVoucher())

	assert.True(t, r.Header.AccountAmount.Equal(dec("3575.00")))
	assertConsistent(t, r)
}

func TestNewSubmission_StampsVoucherNumber(t *testing.T) {
	header, details := domain.SampleVoucher()
	sub := domain.NewSubmission(header, details)

	require.Len(t, sub.Details, 3)
	for _, row := range sub.Details {
		assert.Equal(t, int64(1001), row.VoucherNumber)
	}
}

func TestVoucherStatusLabel(t *testing.T) {
	assert.Equal(t, "Active", domain.StatusActive.Label())
	assert.Equal(t, "Inactive", domain.StatusInactive.Label())
}
