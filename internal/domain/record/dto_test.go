package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		limit string
		want  Pagination
	}{
		{"defaults", "", "", Pagination{Page: 1, Limit: 20}},
		{"explicit", "3", "15", Pagination{Page: 3, Limit: 15}},
		{"non-numeric", "abc", "x1", Pagination{Page: 1, Limit: 20}},
		{"zero", "0", "0", Pagination{Page: 1, Limit: 20}},
		{"negative", "-2", "-10", Pagination{Page: 1, Limit: 20}},
		{"padded", " 2 ", " 5", Pagination{Page: 2, Limit: 5}},
		{"capped", "1", "500", Pagination{Page: 1, Limit: MaxPageLimit}},
		{"huge page", "92233720368547758", "100", Pagination{Page: MaxPage, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePagination(tt.page, tt.limit, 20))
		})
	}

	assert.Equal(t, 40, Pagination{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, (MaxPage-1)*MaxPageLimit, Pagination{Page: 92233720368547758, Limit: 100}.Offset())
	assert.Equal(t, 0, Pagination{Page: -5, Limit: 20}.Offset())
}

func TestRecord_Validate(t *testing.T) {
	inv, rcpt, empty := "INV-001", "RCP-001", ""

	assert.NoError(t, Record{InvoiceNumber: &inv}.Validate())
	assert.NoError(t, Record{ReceiptNumber: &rcpt, CreditNoteNumber: &empty}.Validate())
	assert.ErrorIs(t, Record{}.Validate(), ErrAmbiguousDocumentType)
	assert.ErrorIs(t, Record{InvoiceNumber: &inv, ReceiptNumber: &rcpt}.Validate(), ErrAmbiguousDocumentType)

	r := Record{CreditNoteNumber: &inv}
	assert.Equal(t, DocumentCreditNote, r.DocumentType())
	assert.Equal(t, "INV-001", r.DocumentNumber())
	assert.Equal(t, "", Record{}.DocumentNumber())
}
