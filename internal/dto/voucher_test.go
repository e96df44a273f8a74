package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
	"github.com/adithyasudev/entry-voucher-forge/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateDetailRequest_ValueText(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		want    string
		wantErr bool
	}{
		{name: "string item code", field: "item_code", value: `"ITEM001"`, want: "ITEM001"},
		{name: "number qty", field: "qty", value: `2.5`, want: "2.5"},
		{name: "string qty", field: "qty", value: `"1200.00"`, want: "1200.00"},
		{name: "empty qty clears", field: "qty", value: `""`, want: ""},
		{name: "null description", field: "description", value: `null`, want: ""},
		{name: "non numeric rate", field: "rate", value: `"abc"`, wantErr: true},
		{name: "object value", field: "description", value: `{"a":1}`, wantErr: true},
		{name: "free text description", field: "description", value: `"abc"`, want: "abc"},
		{name: "huge exponent qty", field: "qty", value: `1e2000000000`, wantErr: true},
		{name: "huge exponent rate as string", field: "rate", value: `"1e2000000000"`, wantErr: true},
		{name: "qty finer than three places", field: "qty", value: `"0.0001"`, wantErr: true},
		{name: "rate with four places", field: "rate", value: `"0.0001"`, want: "0.0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.UpdateDetailRequest{Field: tt.field, Value: json.RawMessage(tt.value)}
			got, err := req.ValueText()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateHeaderRequest_ToHeaderPatch(t *testing.T) {
	var req dto.UpdateHeaderRequest
	require.NoError(t, json.Unmarshal([]byte(`{"ac_name":"Acme","status":"I","ac_amt":99}`), &req))

	patch := req.ToHeaderPatch()

	require.NotNil(t, patch.AccountName)
	assert.Equal(t, "Acme", *patch.AccountName)
	require.NotNil(t, patch.Status)
	assert.Equal(t, domain.StatusInactive, *patch.Status)
	assert.Nil(t, patch.VoucherNumber)
	assert.Nil(t, patch.VoucherDate)
}

func TestLoadRecordRequest_ToDomain(t *testing.T) {
	var req dto.LoadRecordRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"header": {"vr_no": 7, "vr_date": "2024-02-01", "ac_name": "Acme", "ac_amt": 999},
		"details": [
			{"sr_no": 4, "item_code": "ITEM001", "qty": 2, "rate": "1.25", "amount": 0},
			{"sr_no": 9, "item_code": "ITEM002", "qty": "0.5", "rate": 10}
		]
	}`), &req))

	header, rows, err := req.ToDomain()

	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, header.Status)
	assert.Equal(t, int64(7), header.VoucherNumber)
	assert.True(t, header.AccountAmount.IsZero())
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].SerialNumber)
	assert.Equal(t, 2, rows[1].SerialNumber)
	assert.Equal(t, "2.5", rows[0].Amount.String())
	assert.Equal(t, "5", rows[1].Amount.String())
}

func TestLoadRecordRequest_ToDomainRejectsOutOfRangeRows(t *testing.T) {
	var req dto.LoadRecordRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"header": {"vr_no": 7},
		"details": [{"item_code": "ITEM001", "qty": 1e2000000000, "rate": 1}]
	}`), &req))

	_, _, err := req.ToDomain()

	assert.ErrorIs(t, err, domain.ErrDecimalOutOfRange)
}

func TestNewItemListResponse_NeverNull(t *testing.T) {
	body, err := json.Marshal(dto.NewItemListResponse(nil))

	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"count":0}`, string(body))
}
