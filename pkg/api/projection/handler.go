package projection

import (
	"fmt"
	"net/http"

	"financial_planner/pkg/api/respond"
	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/projection"
	"financial_planner/pkg/core/report"

	"k8s.io/klog/v2"
)

// Handler serves the calculation endpoints. Every endpoint takes an
// assumption set as the request body.
type Handler struct {
	engine *projection.Engine
}

// NewHandler creates a new projection handler
func NewHandler(engine *projection.Engine) *Handler {
	return &Handler{engine: engine}
}

type calculateFunc func(assumption.AssumptionSet) (*projection.Result, error)

func (h *Handler) serve(calc calculateFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := respond.DecodeAssumptions(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		res, err := calc(a)
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		respond.JSON(w, http.StatusOK, res)
	}
}

// HandleCalculate runs the full projection.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	h.serve(h.engine.Calculate)(w, r)
}

// HandleRevenue returns users and revenue.
func (h *Handler) HandleRevenue(w http.ResponseWriter, r *http.Request) {
	h.serve(h.engine.CalculateRevenue)(w, r)
}

// HandleCosts returns costs.
func (h *Handler) HandleCosts(w http.ResponseWriter, r *http.Request) {
	h.serve(h.engine.CalculateCosts)(w, r)
}

// HandleScenarios returns the three-scenario comparison.
func (h *Handler) HandleScenarios(w http.ResponseWriter, r *http.Request) {
	h.serve(h.engine.CalculateScenarios)(w, r)
}

// HandleReport renders the full projection as ?format=markdown|html|csv.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	format, err := report.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respond.Error(w, r, fmt.Errorf("%w: %v", respond.ErrBadRequest, err))
		return
	}
	a, err := respond.DecodeAssumptions(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	res, err := h.engine.Calculate(a)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if format == report.FormatCSV {
		w.Header().Set("Content-Disposition", `attachment; filename="projection.csv"`)
	}
	if err := report.Write(w, format, a, res); err != nil {
		klog.Errorf("[API] failed to write %s report: %v", format, err)
	}
}
