package services

import (
	"context"
	"encoding/json"

	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
)

// RecordReaderSvc exposes read access to the voucher being edited.
type RecordReaderSvc interface {
	// Snapshot returns a copy of the whole session state.
	Snapshot() domain.StoreSnapshot

	// Items returns the current item lookup table.
	Items() []domain.Item

	// Validate runs the pre-submit checks against the current record.
	Validate() error

	// PrintableRecord returns the record for printing, provided it was saved or is valid.
	PrintableRecord() (domain.Record, error)
}

// RecordWriterSvc exposes the synchronous mutations of the voucher being edited.
type RecordWriterSvc interface {
	SetReferenceData(items []domain.Item)
	UpdateHeaderFields(patch domain.HeaderPatch)
	UpdateDetailField(index int, field domain.DetailField, value string)
	AddDetailRow()
	RemoveDetailRow(index int)
	ResetRecord()
	LoadRecord(header domain.Header, details []domain.DetailRow)
	LoadSample()
}

// RecordSyncSvc covers the operations that talk to remote collaborators.
type RecordSyncSvc interface {
	// RefreshReferenceData fetches the item catalog and installs it as the lookup table.
	RefreshReferenceData(ctx context.Context) error

	// Submit validates the record and hands it to the voucher gateway.
	Submit(ctx context.Context) (json.RawMessage, error)
}

// RecordStoreSvcFacade combines every record store capability.
type RecordStoreSvcFacade interface {
	RecordReaderSvc
	RecordWriterSvc
	RecordSyncSvc
}
