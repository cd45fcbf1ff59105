package assistant

import (
	"net/http"

	"financial_planner/pkg/api/respond"
	"financial_planner/pkg/core/advisor"
	"financial_planner/pkg/core/projection"
)

// Handler provides HTTP handlers for AI Assistant functionality
type Handler struct {
	engine  *projection.Engine
	advisor *advisor.Advisor
}

// NewHandler creates a new assistant handler
func NewHandler(engine *projection.Engine, adv *advisor.Advisor) *Handler {
	return &Handler{engine: engine, advisor: adv}
}

// CommentaryResponse pairs the advisor's commentary with the key figures it
// was written from.
type CommentaryResponse struct {
	advisor.Commentary
	Result *projection.Result `json:"result,omitempty"`
}

// HandleCommentary projects the posted set and returns investor-style
// commentary. Add ?include_result=true to echo the projection.
func (h *Handler) HandleCommentary(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.advisor.Advise(r.Context(), a, res)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := CommentaryResponse{Commentary: c}
	if r.URL.Query().Get("include_result") == "true" {
		resp.Result = res
	}
	respond.JSON(w, http.StatusOK, resp)
}
