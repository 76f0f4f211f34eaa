package record

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/record"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type RecordQueryServiceImpl struct {
	record.RecordReader
	resolver     period.Resolver
	defaultLimit int
}

func NewRecordQueryService(recordReader record.RecordReader, resolver period.Resolver, defaultLimit int) record.RecordQueryService {
	if defaultLimit < 1 {
		defaultLimit = 20
	}
	return &RecordQueryServiceImpl{
		RecordReader: recordReader,
		resolver:     resolver,
		defaultLimit: defaultLimit,
	}
}

// QueryPeriod implements record.RecordQueryService.
func (s *RecordQueryServiceImpl) QueryPeriod(ctx context.Context, p period.Period, pagination record.Pagination) (record.Page, error) {
	res, err := s.resolver.Describe(p)
	if err != nil {
		return record.Page{}, err
	}
	return s.query(ctx, res.Window, res.DateFilter, pagination)
}

// Query implements record.RecordQueryService. The descriptor of an arbitrary window carries the
// custom range label.
func (s *RecordQueryServiceImpl) Query(ctx context.Context, window period.Window, pagination record.Pagination) (record.Page, error) {
	if !window.Start.Before(window.End) {
		return record.Page{}, period.ErrInvalidPeriod
	}

	return s.query(ctx, window, s.resolver.DescribeWindow(window), pagination)
}

func (s *RecordQueryServiceImpl) query(ctx context.Context, window period.Window, filter period.DateFilter, pagination record.Pagination) (record.Page, error) {
	pagination = s.normalize(pagination)

	var (
		items []record.Record
		total int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.RecordReader.ListRecords(gCtx, window, pagination.Limit, pagination.Offset())
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}
		items = list
		return nil
	})

	g.Go(func() error {
		count, err := s.RecordReader.CountRecords(gCtx, window)
		if err != nil {
			return fmt.Errorf("failed to count records: %w", err)
		}
		total = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return record.Page{}, err
	}

	loc := s.resolver.Location()
	responses := make([]record.RecordResponse, 0, len(items))
	pageAmount := decimal.Zero
	for _, r := range items {
		if err := r.Validate(); err != nil {
			slog.Warn("record violates document type rule", "record_id", r.ID, "error", err)
		}
		pageAmount = pageAmount.Add(r.Amount)
		responses = append(responses, mapRecordToResponse(r, loc))
	}

	totalPages := int(math.Ceil(float64(total) / float64(pagination.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", pagination.Offset()+1, min(pagination.Offset()+len(items), int(total)), total)
	if total == 0 || len(items) == 0 {
		showing = fmt.Sprintf("0 of %d", total)
	}

	return record.Page{
		Items:      responses,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		PageAmount: pageAmount,
		DateFilter: filter,
	}, nil
}

func (s *RecordQueryServiceImpl) normalize(p record.Pagination) record.Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > record.MaxPage {
		p.Page = record.MaxPage
	}
	if p.Limit < 1 {
		p.Limit = s.defaultLimit
	}
	if p.Limit > record.MaxPageLimit {
		p.Limit = record.MaxPageLimit
	}
	return p
}

func mapRecordToResponse(r record.Record, loc *time.Location) record.RecordResponse {
	return record.RecordResponse{
		ID:             r.ID,
		CreatedAt:      r.CreatedAt.In(loc).Format(time.RFC3339),
		Amount:         r.Amount,
		DocumentType:   r.DocumentType(),
		DocumentNumber: r.DocumentNumber(),
		Description:    r.Description,
	}
}
