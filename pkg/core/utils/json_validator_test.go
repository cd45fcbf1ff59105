package utils

import (
	"encoding/json"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantKey string
		wantErr bool
	}{
		{"Standard JSON", `{"name": "plan"}`, "name", false},
		{"Hjson with comments", "{\n  # planning name\n  name: plan\n}", "name", false},
		{"Trailing comma", `{"name": "plan",}`, "name", false},
		{"Empty", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Normalize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", out)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var m map[string]interface{}
			if err := json.Unmarshal([]byte(out), &m); err != nil {
				t.Fatalf("output is not JSON: %v (%s)", err, out)
			}
			if _, ok := m[tt.wantKey]; !ok {
				t.Errorf("expected key %q in %s", tt.wantKey, out)
			}
		})
	}
}

func TestCleanMarkdown(t *testing.T) {
	in := "```markdown\n# Outlook\nSteady.\n```"
	if got := CleanMarkdown(in); got != "# Outlook\nSteady." {
		t.Errorf("unexpected cleaned markdown: %q", got)
	}
	if !ValidateMarkdown("# Title") {
		t.Error("expected heading to validate")
	}
	if ValidateMarkdown("  ") {
		t.Error("expected blank input to fail validation")
	}
}
