package record

import "errors"

var ErrAmbiguousDocumentType = errors.New("record must carry exactly one of invoice, receipt or credit note number")
