package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleVoucherJSON = `{
	"header_table": {"vr_no": 1001, "vr_date": "2024-01-15", "ac_name": "ABC Corporation Ltd.", "ac_amt": 0, "status": "A"},
	"detail_table": [
		{"sr_no": 1, "item_code": "ITEM001", "item_name": "Laptop Computer", "description": "", "qty": 2, "rate": 1200, "amount": 0, "vr_no": 1001},
		{"sr_no": 2, "item_code": "ITEM002", "item_name": "Wireless Mouse", "description": "", "qty": 5, "rate": 25, "amount": 0, "vr_no": 1001}
	]
}`

func writeVoucher(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voucher.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func runCLI(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--base-url", baseURL, "--timeout", "2s", "--company", "Acme Traders"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestItemsCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/item", r.URL.Path)
		_, _ = io.WriteString(w, `[{"item_code":"ITEM001","item_name":"Laptop Computer"}]`)
	}))
	defer srv.Close()

	out, err := runCLI(t, srv.URL, "items")

	require.NoError(t, err)
	assert.Contains(t, out, "ITEM CODE")
	assert.Contains(t, out, "ITEM001")
	assert.Contains(t, out, "Laptop Computer")
}

func TestItemsCommand_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := runCLI(t, srv.URL, "items")

	assert.ErrorContains(t, err, "failed to fetch item master")
}

func TestValidateCommand(t *testing.T) {
	out, err := runCLI(t, "http://unused.invalid", "validate", writeVoucher(t, sampleVoucherJSON))

	require.NoError(t, err)
	assert.Equal(t, "Voucher 1001 is valid: 2 row(s), total 2525.00\n", out)
}

func TestValidateCommand_Invalid(t *testing.T) {
	body := `{"header":{"vr_no":1001,"vr_date":"2024-01-15","ac_name":"Acme"},"details":[{"sr_no":1,"item_code":"","qty":1,"rate":1}]}`

	_, err := runCLI(t, "http://unused.invalid", "validate", writeVoucher(t, body))

	assert.EqualError(t, err, "Item Code is required for row 1")
}

func TestValidateCommand_MissingHeader(t *testing.T) {
	_, err := runCLI(t, "http://unused.invalid", "validate", writeVoucher(t, `{"details":[]}`))

	assert.ErrorContains(t, err, "has no header")
}

func TestValidateCommand_RejectsUnreadableValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "unknown status",
			body:    `{"header":{"vr_no":1001,"vr_date":"2024-01-15","ac_name":"Acme","status":"X"},"details":[]}`,
			wantErr: `unknown status "X"`,
		},
		{
			name:    "huge exponent quantity",
			body:    `{"header":{"vr_no":1001,"vr_date":"2024-01-15","ac_name":"Acme"},"details":[{"item_code":"ITEM001","qty":1e2000000000,"rate":1}]}`,
			wantErr: "row 1 qty: decimal out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, "http://unused.invalid", "validate", writeVoucher(t, tt.body))

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestPrintCommand(t *testing.T) {
	path := writeVoucher(t, sampleVoucherJSON)

	out, err := runCLI(t, "http://unused.invalid", "print", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Acme Traders\nSales Voucher")
	assert.Contains(t, out, "2525.00")
	assert.Contains(t, out, "Total:-")

	out, err = runCLI(t, "http://unused.invalid", "print", "--html", path)
	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Acme Traders</h1>")
	assert.Contains(t, out, "@media print")
}

func TestPrintCommand_RefusesInvalidVoucher(t *testing.T) {
	body := `{"header":{"vr_no":0,"vr_date":"2024-01-15","ac_name":"Acme"},"details":[]}`

	_, err := runCLI(t, "http://unused.invalid", "print", writeVoucher(t, body))

	assert.ErrorContains(t, err, "save the voucher before printing")
}

func TestSubmitCommand(t *testing.T) {
	var received map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/header/multiple", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = io.WriteString(w, `{"message":"Inserted"}`)
	}))
	defer srv.Close()

	out, err := runCLI(t, srv.URL, "submit", writeVoucher(t, sampleVoucherJSON))

	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Inserted"}`, out)
	require.Contains(t, received, "header_table")
	var header struct {
		AccountAmount json.Number `json:"ac_amt"`
	}
	require.NoError(t, json.Unmarshal(received["header_table"], &header))
	assert.Equal(t, "2525", header.AccountAmount.String())
}
