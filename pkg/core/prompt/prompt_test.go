package prompt

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writePrompt(t *testing.T, base, rel, body string) {
	t.Helper()
	path := filepath.Join(base, "prompts", rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDir(t *testing.T) {
	base := t.TempDir()
	writePrompt(t, base, "advisor/commentary.json", `{"system_prompt": "You are a CFO."}`)
	writePrompt(t, base, "custom.json", `{"id": "explicit.id", "system_prompt": "x"}`)
	writePrompt(t, base, "advisor/notes.txt", `ignored`)

	r, err := LoadDir(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := r.IDs(); !reflect.DeepEqual(got, []string{"advisor.commentary", "explicit.id"}) {
		t.Errorf("unexpected ids %v", got)
	}
	tmpl, ok := r.Get("advisor.commentary")
	if !ok || tmpl.Category != "advisor" {
		t.Errorf("unexpected template %+v", tmpl)
	}
	if got := r.SystemPrompt("advisor.commentary", "fallback"); got != "You are a CFO." {
		t.Errorf("SystemPrompt = %q", got)
	}
	if got := r.SystemPrompt("missing", "fallback"); got != "fallback" {
		t.Errorf("missing id should fall back, got %q", got)
	}
}

func TestLoadDir_Errors(t *testing.T) {
	if _, err := LoadDir(t.TempDir()); err == nil {
		t.Error("expected error for a missing prompts directory")
	}

	base := t.TempDir()
	writePrompt(t, base, "bad.json", `{`)
	if _, err := LoadDir(base); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestNilRegistryFallsBack(t *testing.T) {
	var r *Registry
	if got := r.SystemPrompt("advisor.commentary", "builtin"); got != "builtin" {
		t.Errorf("got %q", got)
	}
}

func TestRenderUserPrompt(t *testing.T) {
	tmpl := &Template{ID: "t", UserPromptTmpl: "Review {{.Plan}}:\n{{.Figures}}"}
	out, err := RenderUserPrompt(tmpl, map[string]interface{}{"Plan": "Seed", "Figures": "Y1 | 10"})
	if err != nil {
		t.Fatal(err)
	}
	if out != "Review Seed:\nY1 | 10" {
		t.Errorf("unexpected render %q", out)
	}

	if _, err := RenderUserPrompt(tmpl, map[string]interface{}{"Plan": "Seed"}); err == nil {
		t.Error("expected error for a missing variable")
	}
}
