package record

import (
	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	MaxPageLimit = 100
	// MaxPage keeps (page-1)*limit far from int overflow.
	MaxPage = 1_000_000
)

type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Offset() int {
	page := min(max(p.Page, 1), MaxPage)
	limit := min(max(p.Limit, 0), MaxPageLimit)
	return (page - 1) * limit
}

// ParsePagination never fails: missing, non-numeric or non-positive values fall back to
// page 1 and defaultLimit. Limits above MaxPageLimit and pages above MaxPage are capped.
func ParsePagination(pageRaw, limitRaw string, defaultLimit int) Pagination {
	if defaultLimit < 1 {
		defaultLimit = 20
	}
	p := Pagination{
		Page:  validator.PositiveIntOr(pageRaw, 1),
		Limit: validator.PositiveIntOr(limitRaw, defaultLimit),
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	return p
}

type RecordResponse struct {
	ID             string          `json:"id"`
	CreatedAt      string          `json:"created_at"`
	Amount         decimal.Decimal `json:"amount"`
	DocumentType   string          `json:"document_type,omitempty"`
	DocumentNumber string          `json:"document_number,omitempty"`
	Description    *string         `json:"description,omitempty"`
}

type Page struct {
	Items      []RecordResponse  `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Showing    string            `json:"showing"`
	PageAmount decimal.Decimal   `json:"page_amount"`
	DateFilter period.DateFilter `json:"date_filter"`
}
