package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// LoadDir loads every .json template under baseDir/prompts.
// Expected structure:
//
//	baseDir/
//	  prompts/
//	    advisor/
//	      commentary.json   -> id "advisor.commentary"
func LoadDir(baseDir string) (*Registry, error) {
	r := NewRegistry()
	dir := filepath.Join(baseDir, "prompts")
	if _, err := os.Stat(dir); err != nil {
		return r, fmt.Errorf("prompts directory not found: %w", err)
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		var t Template
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if t.ID == "" {
			t.ID = idFromPath(path, dir)
		}
		if t.Category == "" {
			t.Category = categoryFromPath(path, dir)
		}
		return r.Register(&t)
	})
	if err != nil {
		return r, fmt.Errorf("failed to load prompts: %w", err)
	}
	return r, nil
}

// idFromPath maps "prompts/advisor/commentary.json" to "advisor.commentary".
func idFromPath(path, baseDir string) string {
	rel, _ := filepath.Rel(baseDir, path)
	rel = strings.TrimSuffix(rel, ".json")
	return strings.ReplaceAll(rel, string(filepath.Separator), ".")
}

func categoryFromPath(path, baseDir string) string {
	rel, _ := filepath.Rel(baseDir, path)
	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) > 1 {
		return parts[0]
	}
	return "default"
}

// RenderUserPrompt executes the user prompt template with vars.
func RenderUserPrompt(t *Template, vars map[string]interface{}) (string, error) {
	if t.UserPromptTmpl == "" {
		return "", nil
	}
	tmpl, err := template.New(t.ID).Option("missingkey=error").Parse(t.UserPromptTmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
