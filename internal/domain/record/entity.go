package record

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is a dated financial document. Exactly one of InvoiceNumber, ReceiptNumber and
// CreditNoteNumber identifies it.
type Record struct {
	ID               string
	CreatedAt        time.Time
	Amount           decimal.Decimal
	InvoiceNumber    *string
	ReceiptNumber    *string
	CreditNoteNumber *string
	Description      *string
}

// DocumentType reports which identifier is set, or "" when the record carries none or several.
func (r Record) DocumentType() string {
	var kind string
	set := 0
	for name, v := range map[string]*string{
		DocumentInvoice:    r.InvoiceNumber,
		DocumentReceipt:    r.ReceiptNumber,
		DocumentCreditNote: r.CreditNoteNumber,
	} {
		if v != nil && *v != "" {
			kind = name
			set++
		}
	}
	if set != 1 {
		return ""
	}
	return kind
}

// Validate enforces the single document type rule.
func (r Record) Validate() error {
	if r.DocumentType() == "" {
		return ErrAmbiguousDocumentType
	}
	return nil
}

func (r Record) DocumentNumber() string {
	switch r.DocumentType() {
	case DocumentInvoice:
		return *r.InvoiceNumber
	case DocumentReceipt:
		return *r.ReceiptNumber
	case DocumentCreditNote:
		return *r.CreditNoteNumber
	}
	return ""
}

const (
	DocumentInvoice    = "invoice"
	DocumentReceipt    = "receipt"
	DocumentCreditNote = "credit-note"
)
