package gateways

import (
	"context"
	"encoding/json"

	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
)

// ItemCatalog supplies the reference list of sellable items.
type ItemCatalog interface {
	// FetchItems returns the current item catalog.
	FetchItems(ctx context.Context) ([]domain.Item, error)
}

// VoucherGateway durably stores a completed voucher.
type VoucherGateway interface {
	// SubmitVoucher persists the submission and returns the service's acknowledgment as-is.
	SubmitVoucher(ctx context.Context, submission domain.Submission) (json.RawMessage, error)
}
