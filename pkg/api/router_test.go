package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"financial_planner/pkg/core/advisor"
	"financial_planner/pkg/core/agent"
	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/projection"
	"financial_planner/pkg/core/store"
)

func newTestServer(t *testing.T, strict bool) *httptest.Server {
	t.Helper()
	repo, err := store.NewFileRepo(filepath.Join(t.TempDir(), "inputs"))
	if err != nil {
		t.Fatal(err)
	}
	router := NewRouter(Deps{
		Repo:        repo,
		Engine:      projection.NewEngine(projection.Options{Strict: strict}),
		Agents:      agent.NewManager(agent.Config{}),
		Advisor:     advisor.New(nil),
		CORSOrigins: []string{"http://localhost:3000"},
		ListLimit:   10,
		Strict:      strict,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, data
}

func decode(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
}

func TestRoot_AndHealth(t *testing.T) {
	srv := newTestServer(t, false)

	resp, body := do(t, srv, "GET", "/api/", "")
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), Version) {
		t.Errorf("root: %d %s", resp.StatusCode, body)
	}

	resp, body = do(t, srv, "GET", "/api/health", "")
	var health map[string]string
	decode(t, body, &health)
	if resp.StatusCode != http.StatusOK || health["status"] != "healthy" {
		t.Errorf("health: %d %v", resp.StatusCode, health)
	}
}

func TestInputs_CRUD(t *testing.T) {
	srv := newTestServer(t, false)

	resp, body := do(t, srv, "GET", "/api/inputs/default", "")
	var def assumption.AssumptionSet
	decode(t, body, &def)
	if resp.StatusCode != http.StatusOK || def.Name != assumption.DefaultName {
		t.Fatalf("default: %d %q", resp.StatusCode, def.Name)
	}

	resp, body = do(t, srv, "POST", "/api/inputs", `{"name": "Seed plan", "id": "client-chosen"}`)
	var created assumption.AssumptionSet
	decode(t, body, &created)
	if resp.StatusCode != http.StatusOK || created.Name != "Seed plan" {
		t.Fatalf("create: %d %s", resp.StatusCode, body)
	}
	if created.ID == "" || created.ID == "client-chosen" {
		t.Errorf("server should assign a fresh id, got %q", created.ID)
	}
	if created.Timeline.RevenueStartMonth != def.Timeline.RevenueStartMonth {
		t.Error("omitted sections should take defaults")
	}

	resp, body = do(t, srv, "GET", "/api/inputs/"+created.ID, "")
	var fetched assumption.AssumptionSet
	decode(t, body, &fetched)
	if resp.StatusCode != http.StatusOK || fetched.ID != created.ID {
		t.Errorf("get: %d %s", resp.StatusCode, body)
	}

	resp, body = do(t, srv, "GET", "/api/inputs", "")
	var list []assumption.AssumptionSet
	decode(t, body, &list)
	if resp.StatusCode != http.StatusOK || len(list) != 1 {
		t.Errorf("list: %d, %d sets", resp.StatusCode, len(list))
	}

	resp, _ = do(t, srv, "GET", "/api/inputs/does-not-exist", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing id: expected 404, got %d", resp.StatusCode)
	}

	resp, _ = do(t, srv, "POST", "/api/inputs", `{"name": `)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad body: expected 400, got %d", resp.StatusCode)
	}
}

func TestInputs_EmptyList(t *testing.T) {
	srv := newTestServer(t, false)
	_, body := do(t, srv, "GET", "/api/inputs", "")
	if strings.TrimSpace(string(body)) != "[]" {
		t.Errorf("expected [], got %s", body)
	}
}

func TestCalculate(t *testing.T) {
	srv := newTestServer(t, false)

	resp, body := do(t, srv, "POST", "/api/calculate", `{}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("calculate: %d %s", resp.StatusCode, body)
	}
	var full map[string]json.RawMessage
	decode(t, body, &full)
	for _, key := range []string{"users", "revenue", "costs", "pnl", "cashflow", "unit_economics", "key_metrics", "scenarios"} {
		if _, ok := full[key]; !ok {
			t.Errorf("calculate response missing %q", key)
		}
	}

	_, body = do(t, srv, "POST", "/api/calculate/revenue", `{}`)
	var rev map[string]json.RawMessage
	decode(t, body, &rev)
	if _, ok := rev["revenue"]; !ok {
		t.Error("revenue endpoint missing revenue")
	}
	if _, ok := rev["pnl"]; ok {
		t.Error("revenue endpoint should not include pnl")
	}

	_, body = do(t, srv, "POST", "/api/calculate/costs", `{}`)
	var costs map[string]json.RawMessage
	decode(t, body, &costs)
	if len(costs) != 1 || costs["costs"] == nil {
		t.Errorf("costs endpoint returned keys %v", costs)
	}

	_, body = do(t, srv, "POST", "/api/calculate/scenarios", `{}`)
	var sc struct {
		Scenarios map[string]projection.ScenarioSummary `json:"scenarios"`
	}
	decode(t, body, &sc)
	if len(sc.Scenarios) != 3 {
		t.Errorf("expected 3 scenarios, got %d", len(sc.Scenarios))
	}

	resp, _ = do(t, srv, "POST", "/api/calculate", `not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCalculate_StrictValidation(t *testing.T) {
	body := `{"timeline": {"revenue_start_month": 13}}`

	resp, _ := do(t, newTestServer(t, false), "POST", "/api/calculate", body)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("lenient server: expected 200, got %d", resp.StatusCode)
	}

	resp, data := do(t, newTestServer(t, true), "POST", "/api/calculate", body)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("strict server: expected 422, got %d", resp.StatusCode)
	}
	var e struct {
		Detail string             `json:"detail"`
		Issues []assumption.Issue `json:"issues"`
	}
	decode(t, data, &e)
	if len(e.Issues) != 1 || e.Issues[0].Field != "timeline.revenue_start_month" {
		t.Errorf("unexpected issues %+v", e.Issues)
	}
}

func TestReport(t *testing.T) {
	srv := newTestServer(t, false)

	tests := []struct {
		format      string
		status      int
		contentType string
		contains    string
	}{
		{"", http.StatusOK, "text/markdown", "## Revenue"},
		{"html", http.StatusOK, "text/html", "<table"},
		{"csv", http.StatusOK, "text/csv", "section,line,Y1"},
		{"xlsx", http.StatusBadRequest, "application/json", "unsupported"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			resp, body := do(t, srv, "POST", "/api/calculate/report?format="+tt.format, `{}`)
			if resp.StatusCode != tt.status {
				t.Fatalf("status %d, want %d", resp.StatusCode, tt.status)
			}
			if !strings.HasPrefix(resp.Header.Get("Content-Type"), tt.contentType) {
				t.Errorf("content type %q", resp.Header.Get("Content-Type"))
			}
			if !strings.Contains(string(body), tt.contains) {
				t.Errorf("body lacks %q", tt.contains)
			}
		})
	}
}

func TestCommentary_RuleFallback(t *testing.T) {
	srv := newTestServer(t, false)
	resp, body := do(t, srv, "POST", "/api/assistant/commentary", `{}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("commentary: %d %s", resp.StatusCode, body)
	}
	var c struct {
		Source string          `json:"source"`
		Text   string          `json:"text"`
		Flags  []advisor.Flag  `json:"flags"`
		Result json.RawMessage `json:"result"`
	}
	decode(t, body, &c)
	if c.Source != advisor.SourceRules || c.Text == "" || len(c.Flags) == 0 {
		t.Errorf("unexpected commentary %+v", c)
	}
	if c.Result != nil {
		t.Error("result should only be echoed on request")
	}
}

func TestConfig(t *testing.T) {
	srv := newTestServer(t, true)

	_, body := do(t, srv, "GET", "/api/config", "")
	var cfg struct {
		ActiveProvider   string             `json:"active_provider"`
		Available        []string           `json:"available"`
		StrictValidation bool               `json:"strict_validation"`
		Calibration      map[string]float64 `json:"calibration"`
	}
	decode(t, body, &cfg)
	if cfg.ActiveProvider != agent.ProviderGemini || len(cfg.Available) != 2 || !cfg.StrictValidation {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Calibration["gross_margin_rate"] != projection.GrossMarginRate {
		t.Errorf("calibration missing gross margin: %v", cfg.Calibration)
	}

	resp, _ := do(t, srv, "POST", "/api/config/switch", `{"provider": "deepseek"}`)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("switch: %d", resp.StatusCode)
	}
	_, body = do(t, srv, "GET", "/api/config", "")
	decode(t, body, &cfg)
	if cfg.ActiveProvider != agent.ProviderDeepSeek {
		t.Errorf("switch not applied: %q", cfg.ActiveProvider)
	}

	resp, _ = do(t, srv, "POST", "/api/config/switch", `{"provider": "openai"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown provider: expected 400, got %d", resp.StatusCode)
	}
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, false)

	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/calculate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("preflight: %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allowed origin not echoed: %q", got)
	}

	req, _ = http.NewRequest(http.MethodGet, srv.URL+"/api/health", nil)
	req.Header.Set("Origin", "http://evil.test")
	resp, err = srv.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unknown origin should not be allowed, got %q", got)
	}
}
