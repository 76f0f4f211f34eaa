package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-core/internal/domain/period"
	"github.com/cmlabs-hris/hris-attendance-core/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PeriodHandler interface {
	Resolve(w http.ResponseWriter, r *http.Request)
}

type periodHandlerImpl struct {
	resolver period.Resolver
}

func NewPeriodHandler(resolver period.Resolver) PeriodHandler {
	return &periodHandlerImpl{
		resolver: resolver,
	}
}

// Resolve handles GET /periods/{period}
func (h *periodHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	p, err := periodFromQuery(r, chi.URLParam(r, "period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	res, err := h.resolver.Describe(p)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, res)
}

// periodFromQuery parses a period name with the days, start and end query parameters.
func periodFromQuery(r *http.Request, name string) (period.Period, error) {
	q := r.URL.Query()
	return period.Parse(name, q.Get("days"), q.Get("start"), q.Get("end"))
}
