package inputs

import (
	"net/http"
	"time"

	"financial_planner/pkg/api/respond"
	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/store"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"k8s.io/klog/v2"
)

// Handler serves stored assumption sets.
type Handler struct {
	repo      store.AssumptionRepository
	listLimit int
}

// NewHandler creates a new inputs handler
func NewHandler(repo store.AssumptionRepository, listLimit int) *Handler {
	return &Handler{repo: repo, listLimit: listLimit}
}

// HandleDefault returns the default assumption set.
func (h *Handler) HandleDefault(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, assumption.Default())
}

// HandleCreate stores the posted set under a fresh id.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	a, err := respond.DecodeAssumptions(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now

	if err := h.repo.Save(r.Context(), a); err != nil {
		respond.Error(w, r, err)
		return
	}
	klog.Infof("[API] saved assumption set %s (%q)", a.ID, a.Name)
	respond.JSON(w, http.StatusOK, a)
}

// HandleList returns stored sets, oldest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	sets, err := h.repo.List(r.Context(), h.listLimit)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if sets == nil {
		sets = []assumption.AssumptionSet{}
	}
	respond.JSON(w, http.StatusOK, sets)
}

// HandleGet returns one set by id.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	a, err := h.repo.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, a)
}
