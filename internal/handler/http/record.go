package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/record"
	"github.com/cmlabs-hris/hris-attendance-core/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RecordHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type recordHandlerImpl struct {
	recordService record.RecordQueryService
	defaultLimit  int
}

func NewRecordHandler(recordService record.RecordQueryService, defaultLimit int) RecordHandler {
	return &recordHandlerImpl{
		recordService: recordService,
		defaultLimit:  defaultLimit,
	}
}

// List handles GET /records/{period}
func (h *recordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p, err := periodFromQuery(r, chi.URLParam(r, "period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	q := r.URL.Query()
	pagination := record.ParsePagination(q.Get("page"), q.Get("limit"), h.defaultLimit)

	result, err := h.recordService.QueryPeriod(r.Context(), p, pagination)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.Total,
		TotalPages: result.TotalPages,
	})
}
