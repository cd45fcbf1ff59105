package config

import (
	"encoding/json"
	"fmt"
	"net/http"

	"financial_planner/pkg/api/respond"
	"financial_planner/pkg/core/agent"
	"financial_planner/pkg/core/projection"
)

type Response struct {
	ActiveProvider   string                           `json:"active_provider"`
	Available        []string                         `json:"available"`
	StrictValidation bool                             `json:"strict_validation"`
	Calibration      map[string]float64               `json:"calibration"`
	Scenarios        map[string]projection.Multiplier `json:"scenarios"`
}

type SwitchRequest struct {
	Provider string `json:"provider"`
}

// Handler holds dependencies for config endpoints
type Handler struct {
	AgentMgr *agent.Manager
	Strict   bool
}

// NewHandler creates a new config handler
func NewHandler(agentMgr *agent.Manager, strict bool) *Handler {
	return &Handler{
		AgentMgr: agentMgr,
		Strict:   strict,
	}
}

func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	scenarios := make(map[string]projection.Multiplier, len(projection.ScenarioNames))
	for _, name := range projection.ScenarioNames {
		scenarios[name] = projection.MultiplierFor(name)
	}

	respond.JSON(w, http.StatusOK, Response{
		ActiveProvider:   h.AgentMgr.GetActiveProvider(),
		Available:        h.AgentMgr.Available(),
		StrictValidation: h.Strict,
		Calibration:      projection.Calibration(),
		Scenarios:        scenarios,
	})
}

func (h *Handler) HandleSwitch(w http.ResponseWriter, r *http.Request) {
	var req SwitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, fmt.Errorf("%w: invalid request body", respond.ErrBadRequest))
		return
	}

	if err := h.AgentMgr.SetGlobalProvider(req.Provider); err != nil {
		respond.Error(w, r, fmt.Errorf("%w: %v", respond.ErrBadRequest, err))
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"active_provider": req.Provider})
}
