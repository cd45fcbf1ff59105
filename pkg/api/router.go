// Package api wires the HTTP handlers into a gorilla/mux router.
package api

import (
	"net/http"
	"strings"

	"financial_planner/pkg/api/assistant"
	"financial_planner/pkg/api/config"
	"financial_planner/pkg/api/inputs"
	projectionapi "financial_planner/pkg/api/projection"
	"financial_planner/pkg/api/respond"
	"financial_planner/pkg/core/advisor"
	"financial_planner/pkg/core/agent"
	"financial_planner/pkg/core/projection"
	"financial_planner/pkg/core/store"

	"github.com/gorilla/mux"
)

// Version is reported by GET /api/.
const Version = "1.0.0"

// Deps are the services the handlers need.
type Deps struct {
	Repo        store.AssumptionRepository
	Engine      *projection.Engine
	Agents      *agent.Manager
	Advisor     *advisor.Advisor
	CORSOrigins []string
	ListLimit   int
	Strict      bool
}

// NewRouter registers every endpoint on a new router.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()
	router.Use(CORSMiddleware(d.CORSOrigins))

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{
			"message": "Financial Master Planner API",
			"version": Version,
		})
	}).Methods("GET", "OPTIONS")
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods("GET", "OPTIONS")

	inputsHandler := inputs.NewHandler(d.Repo, d.ListLimit)
	api.HandleFunc("/inputs/default", inputsHandler.HandleDefault).Methods("GET", "OPTIONS")
	api.HandleFunc("/inputs", inputsHandler.HandleCreate).Methods("POST", "OPTIONS")
	api.HandleFunc("/inputs", inputsHandler.HandleList).Methods("GET")
	api.HandleFunc("/inputs/{id}", inputsHandler.HandleGet).Methods("GET", "OPTIONS")

	projectionHandler := projectionapi.NewHandler(d.Engine)
	api.HandleFunc("/calculate", projectionHandler.HandleCalculate).Methods("POST", "OPTIONS")
	api.HandleFunc("/calculate/revenue", projectionHandler.HandleRevenue).Methods("POST", "OPTIONS")
	api.HandleFunc("/calculate/costs", projectionHandler.HandleCosts).Methods("POST", "OPTIONS")
	api.HandleFunc("/calculate/scenarios", projectionHandler.HandleScenarios).Methods("POST", "OPTIONS")
	api.HandleFunc("/calculate/report", projectionHandler.HandleReport).Methods("POST", "OPTIONS")

	assistantHandler := assistant.NewHandler(d.Engine, d.Advisor)
	api.HandleFunc("/assistant/commentary", assistantHandler.HandleCommentary).Methods("POST", "OPTIONS")

	configHandler := config.NewHandler(d.Agents, d.Strict)
	api.HandleFunc("/config", configHandler.HandleConfig).Methods("GET", "OPTIONS")
	api.HandleFunc("/config/switch", configHandler.HandleSwitch).Methods("POST", "OPTIONS")

	return router
}

// CORSMiddleware allows the configured origins. "*" (or an empty list)
// allows any origin. Preflight requests are answered directly.
func CORSMiddleware(origins []string) mux.MiddlewareFunc {
	allowAll := len(origins) == 0
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[strings.TrimRight(o, "/")] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case allowAll:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && allowed[origin]:
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
