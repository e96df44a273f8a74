package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/adithyasudev/entry-voucher-forge/internal/apperrors"
	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
	"github.com/adithyasudev/entry-voucher-forge/internal/core/ports/gateways"
	portssvc "github.com/adithyasudev/entry-voucher-forge/internal/core/ports/services"
	"github.com/adithyasudev/entry-voucher-forge/internal/middleware"
)

var (
	ErrSubmitInProgress = fmt.Errorf("%w: a voucher submission is already in flight", apperrors.ErrConflict)
	ErrNotPrintable     = fmt.Errorf("%w: save the voucher before printing", apperrors.ErrConflict)
	ErrNoCatalog        = errors.New("no item catalog configured")
	ErrNoGateway        = errors.New("no voucher gateway configured")
)

const (
	fetchItemsFailedMsg  = "Failed to fetch item master"
	saveVoucherFailedMsg = "Failed to save sales data"
)

// recordStore owns the single voucher being edited in this session.
// Every method runs under one mutex so mutations never interleave; remote
// calls happen outside the lock on a snapshot.
type recordStore struct {
	mu sync.Mutex

	record     *domain.Record
	items      []domain.Item
	lookup     map[string]string
	inFlight   int
	submitting bool
	lastErr    string
	lastSaved  json.RawMessage

	catalog gateways.ItemCatalog
	gateway gateways.VoucherGateway
	now     func() time.Time
}

// RecordStoreOption configures a record store.
type RecordStoreOption func(*recordStore)

// WithItemCatalog sets the reference data provider.
func WithItemCatalog(catalog gateways.ItemCatalog) RecordStoreOption {
	return func(s *recordStore) {
		s.catalog = catalog
	}
}

// WithVoucherGateway sets the persistence gateway.
func WithVoucherGateway(gateway gateways.VoucherGateway) RecordStoreOption {
	return func(s *recordStore) {
		s.gateway = gateway
	}
}

// WithClock overrides the time source used for default voucher dates.
func WithClock(now func() time.Time) RecordStoreOption {
	return func(s *recordStore) {
		s.now = now
	}
}

// NewRecordStore creates a store holding the initial empty record.
func NewRecordStore(opts ...RecordStoreOption) portssvc.RecordStoreSvcFacade {
	s := &recordStore{
		lookup: map[string]string{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.record = domain.NewRecord(s.now())
	return s
}

var _ portssvc.RecordStoreSvcFacade = (*recordStore)(nil)

func (s *recordStore) Snapshot() domain.StoreSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record.Clone()
	return domain.StoreSnapshot{
		Header:    rec.Header,
		Details:   rec.Details,
		Items:     append([]domain.Item(nil), s.items...),
		Loading:   s.inFlight > 0,
		Error:     s.lastErr,
		LastSaved: append(json.RawMessage(nil), s.lastSaved...),
	}
}

func (s *recordStore) Items() []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Item(nil), s.items...)
}

func (s *recordStore) Validate() error {
	s.mu.Lock()
	rec := s.record.Clone()
	s.mu.Unlock()
	return ValidateVoucher(rec.Header, rec.Details)
}

func (s *recordStore) PrintableRecord() (domain.Record, error) {
	s.mu.Lock()
	rec := s.record.Clone()
	saved := len(s.lastSaved) > 0
	s.mu.Unlock()

	if saved {
		return rec, nil
	}
	if err := ValidateVoucher(rec.Header, rec.Details); err != nil {
		return domain.Record{}, fmt.Errorf("%w (%s)", ErrNotPrintable, err.Error())
	}
	return rec, nil
}

// SetReferenceData replaces the lookup table. Existing rows keep their names;
// only later item code edits join against the new table.
func (s *recordStore) SetReferenceData(items []domain.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.installItems(items)
}

func (s *recordStore) installItems(items []domain.Item) {
	s.items = append([]domain.Item(nil), items...)
	s.lookup = make(map[string]string, len(items))
	for _, it := range items {
		if _, dup := s.lookup[it.ItemCode]; !dup {
			s.lookup[it.ItemCode] = it.ItemName
		}
	}
}

func (s *recordStore) UpdateHeaderFields(patch domain.HeaderPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.UpdateHeader(patch)
}

func (s *recordStore) UpdateDetailField(index int, field domain.DetailField, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.UpdateDetail(index, field, value, s.lookup)
}

func (s *recordStore) AddDetailRow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.AddRow()
}

func (s *recordStore) RemoveDetailRow(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.RemoveRow(index)
}

func (s *recordStore) ResetRecord() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.Reset(s.now())
	s.lastErr = ""
}

func (s *recordStore) LoadRecord(header domain.Header, details []domain.DetailRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record.Load(header, details)
}

func (s *recordStore) LoadSample() {
	s.LoadRecord(domain.SampleVoucher())
}

// RefreshReferenceData fetches the catalog. On failure the previous lookup
// table stays in place and the error message is kept on the store.
func (s *recordStore) RefreshReferenceData(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if s.catalog == nil {
		return ErrNoCatalog
	}

	s.begin()
	items, err := s.catalog.FetchItems(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	if err != nil {
		s.lastErr = failureMessage(err, fetchItemsFailedMsg)
		logger.Error("Failed to fetch item catalog", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", apperrors.ErrUpstream, err)
	}
	s.installItems(items)
	logger.Info("Item catalog refreshed", slog.Int("count", len(items)))
	return nil
}

// Submit validates the current record and sends it to the voucher gateway.
// Only one submission may be in flight; a concurrent call gets ErrSubmitInProgress.
func (s *recordStore) Submit(ctx context.Context) (json.RawMessage, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if s.gateway == nil {
		return nil, ErrNoGateway
	}

	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		logger.Warn("Rejected duplicate voucher submission")
		return nil, ErrSubmitInProgress
	}
	rec := s.record.Clone()
	if err := ValidateVoucher(rec.Header, rec.Details); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.submitting = true
	s.inFlight++
	s.mu.Unlock()

	logger = logger.With(slog.Int64("vr_no", rec.Header.VoucherNumber))
	ack, err := s.gateway.SubmitVoucher(ctx, domain.NewSubmission(rec.Header, rec.Details))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--
	s.submitting = false
	if err != nil {
		s.lastErr = failureMessage(err, saveVoucherFailedMsg)
		logger.Error("Failed to submit voucher", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUpstream, err)
	}
	s.lastSaved = append(json.RawMessage(nil), ack...)
	s.lastErr = ""
	logger.Info("Voucher submitted", slog.Int("rows", len(rec.Details)))
	return ack, nil
}

func (s *recordStore) begin() {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()
}

func failureMessage(err error, fallback string) string {
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}
