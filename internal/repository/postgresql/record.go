package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/record"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type recordRepository struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) record.RecordReader {
	return &recordRepository{db: db}
}

// ListRecords implements record.RecordReader.
func (r *recordRepository) ListRecords(ctx context.Context, window period.Window, limit, offset int) ([]record.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, created_at, amount::text, invoice_number, receipt_number, credit_note_number, description
		FROM records
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at, id
		LIMIT $3 OFFSET $4
	`

	rows, err := q.Query(ctx, query, window.Start.UTC(), window.End.UTC(), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []record.Record
	for rows.Next() {
		var (
			rec    record.Record
			amount string
		)
		if err := rows.Scan(
			&rec.ID, &rec.CreatedAt, &amount,
			&rec.InvoiceNumber, &rec.ReceiptNumber, &rec.CreditNoteNumber, &rec.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if rec.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("failed to parse amount of record %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// CountRecords implements record.RecordReader.
func (r *recordRepository) CountRecords(ctx context.Context, window period.Window) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM records WHERE created_at >= $1 AND created_at < $2`

	var total int64
	if err := q.QueryRow(ctx, query, window.Start.UTC(), window.End.UTC()).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return total, nil
}
