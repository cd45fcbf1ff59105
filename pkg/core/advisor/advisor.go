// Package advisor turns a projection into investor-style commentary. It asks
// the configured LLM first and falls back to rule-based notes when no model
// answers.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"financial_planner/pkg/core/agent"
	"financial_planner/pkg/core/assumption"
	"financial_planner/pkg/core/projection"
	"financial_planner/pkg/core/prompt"
	"financial_planner/pkg/core/utils"

	"k8s.io/klog/v2"
)

// AgentType is the agent name used for provider routing.
const AgentType = "advisor"

// PromptID is the prompt library entry that overrides the built-in prompts.
const PromptID = "advisor.commentary"

// Commentary sources.
const (
	SourceLLM   = "llm"
	SourceRules = "rules"
)

// ErrIncompleteProjection is returned when the result lacks the statements
// commentary is built from.
var ErrIncompleteProjection = errors.New("projection lacks pnl, cashflow or metrics")

// Commentary is the advisor's answer.
type Commentary struct {
	Source   string `json:"source"`
	Provider string `json:"provider,omitempty"`
	Text     string `json:"text"`
	Flags    []Flag `json:"flags"`
	// Fallback holds the reason the rule-based text was used.
	Fallback string `json:"fallback_reason,omitempty"`
}

// Executor runs a prompt for an agent. *agent.Manager satisfies it.
type Executor interface {
	ExecutePrompt(ctx context.Context, agentType string, prompt string, systemPrompt string, options map[string]interface{}) (string, string, error)
}

var _ Executor = (*agent.Manager)(nil)

type Advisor struct {
	exec    Executor
	prompts *prompt.Registry
}

// New creates an advisor. A nil executor always uses the rules.
func New(exec Executor) *Advisor {
	return &Advisor{exec: exec}
}

// WithPrompts makes the advisor read its prompts from r when r has them.
func (a *Advisor) WithPrompts(r *prompt.Registry) *Advisor {
	a.prompts = r
	return a
}

// Advise returns commentary for res. LLM failures are not errors; they
// produce rule-based commentary with Fallback set.
func (a *Advisor) Advise(ctx context.Context, in assumption.AssumptionSet, res *projection.Result) (Commentary, error) {
	if res == nil || res.PnL == nil || res.Cashflow == nil || res.KeyMetrics == nil || res.UnitEconomics == nil {
		return Commentary{}, ErrIncompleteProjection
	}

	flags := Evaluate(res)
	fallback := func(reason string) Commentary {
		return Commentary{Source: SourceRules, Text: RuleText(in, flags), Flags: flags, Fallback: reason}
	}

	if a.exec == nil {
		return fallback("no llm configured"), nil
	}

	system, user := a.prompt(in, res, flags)
	text, provider, err := a.exec.ExecutePrompt(ctx, AgentType, user, system, nil)
	if err != nil {
		klog.Warningf("[ADVISOR] llm commentary failed, using rules: %v", err)
		return fallback(err.Error()), nil
	}

	text = utils.CleanMarkdown(text)
	if !utils.ValidateMarkdown(text) {
		klog.Warningf("[ADVISOR] %s returned empty commentary, using rules", provider)
		return fallback("empty llm response"), nil
	}

	return Commentary{Source: SourceLLM, Provider: provider, Text: text, Flags: flags}, nil
}

func (a *Advisor) prompt(in assumption.AssumptionSet, res *projection.Result, flags []Flag) (string, string) {
	figures := BuildPrompt(in, res, flags)
	system := a.prompts.SystemPrompt(PromptID, systemPrompt)

	tmpl, ok := a.prompts.Get(PromptID)
	if !ok || tmpl.UserPromptTmpl == "" {
		return system, figures
	}
	user, err := prompt.RenderUserPrompt(tmpl, map[string]interface{}{
		"Plan":     in.Name,
		"Scenario": in.Timeline.Scenario,
		"Figures":  figures,
	})
	if err != nil {
		klog.Warningf("[ADVISOR] %s template failed, using built-in prompt: %v", PromptID, err)
		return system, figures
	}
	return system, user
}

// RuleText writes the deterministic commentary from flags.
func RuleText(in assumption.AssumptionSet, flags []Flag) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s: %s scenario\n\n", in.Name, in.Timeline.Scenario)

	for _, sev := range []Severity{SeverityCritical, SeverityWarning, SeverityInfo} {
		for _, f := range flags {
			if f.Severity == sev {
				fmt.Fprintf(&b, "- **%s**: %s\n", sev, f.Message)
			}
		}
	}
	if len(flags) == 0 {
		b.WriteString("- No notable risks in the five-year plan.\n")
	}
	return b.String()
}
