package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/calc"
	"financial_planner/pkg/core/projection"
	"financial_planner/pkg/core/prompt"
)

type mockExecutor struct {
	reply  string
	err    error
	prompt string
	agent  string
}

func (m *mockExecutor) ExecutePrompt(_ context.Context, agentType string, prompt string, _ string, _ map[string]interface{}) (string, string, error) {
	m.agent = agentType
	m.prompt = prompt
	return m.reply, "mock", m.err
}

// healthyResult has positive cash, long runway, break-even in month 14 and
// a year-5 rule of 40 of 45.
func healthyResult() *projection.Result {
	cf := &projection.CashflowSeries{}
	for i := range cf.Annual.CumulativeCash {
		cf.Annual.CumulativeCash[i] = 1000000
	}
	cf.Monthly.RunwayMonths[11] = projection.RunwaySentinel

	km := &calc.KeyMetrics{}
	km.RuleOf40[4] = 45
	km.BurnMultiple[1] = 1.5

	return &projection.Result{
		PnL:           &projection.PnLSeries{},
		Cashflow:      cf,
		KeyMetrics:    km,
		UnitEconomics: &calc.UnitEconomics{BreakEvenMonth: 14, BreakEvenYear: 2},
	}
}

func codes(flags []Flag) []string {
	var out []string
	for _, f := range flags {
		out = append(out, f.Code)
	}
	return out
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *projection.Result)
		want   []string
	}{
		{
			name: "healthy",
			want: []string{"break_even", "rule_of_40"},
		},
		{
			name:   "funding gap",
			mutate: func(r *projection.Result) { r.Cashflow.Annual.CumulativeCash[2] = -5 },
			want:   []string{"funding_gap", "break_even", "rule_of_40"},
		},
		{
			name:   "short runway",
			mutate: func(r *projection.Result) { r.Cashflow.Monthly.RunwayMonths[11] = 3 },
			want:   []string{"short_runway", "break_even", "rule_of_40"},
		},
		{
			name: "no break-even and expensive growth",
			mutate: func(r *projection.Result) {
				r.UnitEconomics.BreakEvenMonth = 0
				r.UnitEconomics.BreakEvenYear = 0
				r.KeyMetrics.BurnMultiple[2] = 3.5
				r.KeyMetrics.RuleOf40[4] = 12
			},
			want: []string{"no_break_even", "burn_multiple", "rule_of_40"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := healthyResult()
			if tt.mutate != nil {
				tt.mutate(r)
			}
			got := codes(Evaluate(r))
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_Messages(t *testing.T) {
	r := healthyResult()
	r.Cashflow.Annual.CumulativeCash[3] = -1
	r.KeyMetrics.BurnMultiple[2] = 3.5
	r.KeyMetrics.RuleOf40[4] = 12

	flags := Evaluate(r)
	want := map[string]string{
		"funding_gap":   "year 4",
		"break_even":    "month 14 (year 2)",
		"burn_multiple": "3.50x in year 3",
		"rule_of_40":    "missed in year 5 (12.0)",
	}
	for _, f := range flags {
		if sub, ok := want[f.Code]; ok && !strings.Contains(f.Message, sub) {
			t.Errorf("%s message %q lacks %q", f.Code, f.Message, sub)
		}
	}
	if flags[0].Severity != SeverityCritical {
		t.Errorf("funding gap should be critical, got %s", flags[0].Severity)
	}
}

func TestAdvise_UsesLLM(t *testing.T) {
	exec := &mockExecutor{reply: "```markdown\n## Verdict\nSolid plan.\n```"}
	c, err := New(exec).Advise(context.Background(), assumption.Default(), healthyResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Source != SourceLLM || c.Provider != "mock" {
		t.Errorf("unexpected source %q/%q", c.Source, c.Provider)
	}
	if c.Text != "## Verdict\nSolid plan." {
		t.Errorf("fences not stripped: %q", c.Text)
	}
	if exec.agent != AgentType {
		t.Errorf("routed as %q", exec.agent)
	}
	if !strings.Contains(exec.prompt, "Break-even month: 14") || !strings.Contains(exec.prompt, "Automated checks:") {
		t.Errorf("prompt lacks figures:\n%s", exec.prompt)
	}
}

func TestAdvise_FallsBackToRules(t *testing.T) {
	tests := []struct {
		name string
		exec Executor
	}{
		{"no executor", nil},
		{"llm error", &mockExecutor{err: errors.New("quota exceeded")}},
		{"empty reply", &mockExecutor{reply: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.exec).Advise(context.Background(), assumption.Default(), healthyResult())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Source != SourceRules || c.Fallback == "" {
				t.Errorf("expected rules fallback, got %+v", c)
			}
			if !strings.Contains(c.Text, "**info**: break-even in month 14") {
				t.Errorf("unexpected rule text:\n%s", c.Text)
			}
		})
	}
}

func TestAdvise_RealProjection(t *testing.T) {
	a := assumption.Default()
	res, err := projection.NewEngine(projection.Options{}).Calculate(a)
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(nil).Advise(context.Background(), a, res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Flags) == 0 || !strings.HasPrefix(c.Text, "## "+a.Name) {
		t.Errorf("unexpected commentary %+v", c)
	}
}

func TestAdvise_IncompleteProjection(t *testing.T) {
	_, err := New(nil).Advise(context.Background(), assumption.Default(), &projection.Result{})
	if !errors.Is(err, ErrIncompleteProjection) {
		t.Errorf("expected ErrIncompleteProjection, got %v", err)
	}
}

type capturingExecutor struct {
	system, user string
}

func (c *capturingExecutor) ExecutePrompt(_ context.Context, _ string, user string, system string, _ map[string]interface{}) (string, string, error) {
	c.system, c.user = system, user
	return "Fine.", "mock", nil
}

func TestAdvise_PromptLibraryOverride(t *testing.T) {
	reg := prompt.NewRegistry()
	if err := reg.Register(&prompt.Template{
		ID:             PromptID,
		SystemPrompt:   "You are a skeptical angel investor.",
		UserPromptTmpl: "Plan {{.Plan}} ({{.Scenario}})\n{{.Figures}}",
	}); err != nil {
		t.Fatal(err)
	}

	exec := &capturingExecutor{}
	a := assumption.Default()
	if _, err := New(exec).WithPrompts(reg).Advise(context.Background(), a, healthyResult()); err != nil {
		t.Fatal(err)
	}
	if exec.system != "You are a skeptical angel investor." {
		t.Errorf("system prompt not overridden: %q", exec.system)
	}
	if !strings.HasPrefix(exec.user, "Plan "+a.Name+" (base)\nPlan: ") {
		t.Errorf("user template not applied: %q", exec.user)
	}
}
