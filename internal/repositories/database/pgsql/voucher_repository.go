package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
	"github.com/adithyasudev/entry-voucher-forge/internal/core/ports/gateways"
	"github.com/adithyasudev/entry-voucher-forge/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxVoucherRepository stores submitted vouchers in sales_headers and sales_details.
type PgxVoucherRepository struct {
	BaseRepository
}

func newPgxVoucherRepository(pool *pgxpool.Pool) *PgxVoucherRepository {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ gateways.VoucherGateway = (*PgxVoucherRepository)(nil)

// SaveAcknowledgment is returned to callers after a voucher is stored.
type SaveAcknowledgment struct {
	VoucherNumber int64     `json:"vr_no"`
	Rows          int       `json:"rows"`
	SavedAt       time.Time `json:"saved_at"`
}

// SubmitVoucher writes the header and all rows in one transaction.
func (r *PgxVoucherRepository) SubmitVoucher(ctx context.Context, submission domain.Submission) (json.RawMessage, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	header := submission.Header
	savedAt := time.Now().UTC()

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save sales data: %w", err)
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to roll back voucher transaction", slog.String("error", rbErr.Error()))
		}
	}()

	headerQuery := `
		INSERT INTO sales_headers (vr_no, vr_date, ac_name, ac_amt, status, saved_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (vr_no) DO UPDATE SET
			vr_date = EXCLUDED.vr_date,
			ac_name = EXCLUDED.ac_name,
			ac_amt = EXCLUDED.ac_amt,
			status = EXCLUDED.status,
			saved_at = EXCLUDED.saved_at;
	`
	if _, err := tx.Exec(ctx, headerQuery,
		header.VoucherNumber,
		header.VoucherDate,
		header.AccountName,
		header.AccountAmount.String(),
		string(header.Status),
		savedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to save sales data: header %d: %w", header.VoucherNumber, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sales_details WHERE vr_no = $1;`, header.VoucherNumber); err != nil {
		return nil, fmt.Errorf("failed to save sales data: clearing rows of %d: %w", header.VoucherNumber, err)
	}

	// Decimals go over the wire as text so the server parses them exactly.
	batch := &pgx.Batch{}
	for _, d := range submission.Details {
		batch.Queue(`
			INSERT INTO sales_details (vr_no, sr_no, item_code, item_name, description, qty, rate, amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
		`, d.VoucherNumber, d.SerialNumber, d.ItemCode, d.ItemName, d.Description,
			d.Quantity.String(), d.Rate.String(), d.Amount.String())
	}
	if err := r.execBatch(ctx, tx, batch); err != nil {
		return nil, fmt.Errorf("failed to save sales data: rows of %d: %w", header.VoucherNumber, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to save sales data: %w", err)
	}

	ack, err := json.Marshal(SaveAcknowledgment{VoucherNumber: header.VoucherNumber, Rows: len(submission.Details), SavedAt: savedAt})
	if err != nil {
		return nil, fmt.Errorf("failed to encode acknowledgment: %w", err)
	}
	logger.Info("Voucher stored", slog.Int64("vr_no", header.VoucherNumber), slog.Int("rows", len(submission.Details)))
	return ack, nil
}

func (r *PgxVoucherRepository) execBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch) error {
	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return err
		}
	}
	return br.Close()
}
