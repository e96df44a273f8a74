package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
	portssvc "github.com/adithyasudev/entry-voucher-forge/internal/core/ports/services"
)

// voucherFile accepts both the editing layout and the submission layout.
type voucherFile struct {
	Header      *domain.Header     `json:"header"`
	HeaderTable *domain.Header     `json:"header_table"`
	Details     []domain.DetailRow `json:"details"`
	DetailTable []domain.DetailRow `json:"detail_table"`
}

func readVoucherFile(path string) (domain.Header, []domain.DetailRow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Header{}, nil, fmt.Errorf("failed to read voucher file: %w", err)
	}

	var vf voucherFile
	if err := json.Unmarshal(raw, &vf); err != nil {
		return domain.Header{}, nil, fmt.Errorf("failed to parse voucher file %s: %w", path, err)
	}

	header := vf.Header
	if header == nil {
		header = vf.HeaderTable
	}
	if header == nil {
		return domain.Header{}, nil, fmt.Errorf("voucher file %s has no header or header_table", path)
	}
	if header.Status == "" {
		header.Status = domain.StatusActive
	}
	if !header.Status.IsValid() {
		return domain.Header{}, nil, fmt.Errorf("voucher file %s has unknown status %q", path, header.Status)
	}

	details := vf.Details
	if details == nil {
		details = vf.DetailTable
	}
	if err := domain.CheckRows(details); err != nil {
		return domain.Header{}, nil, fmt.Errorf("voucher file %s: %w", path, err)
	}
	return *header, domain.NormalizeRows(details), nil
}

// loadVoucherFile reads path into store, recomputing every derived field.
func loadVoucherFile(store portssvc.RecordWriterSvc, path string) error {
	header, details, err := readVoucherFile(path)
	if err != nil {
		return err
	}
	store.LoadRecord(header, details)
	return nil
}
