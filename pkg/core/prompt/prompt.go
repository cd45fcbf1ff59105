// Package prompt loads LLM prompt templates from JSON files so wording can be
// changed without a rebuild.
package prompt

import (
	"fmt"
	"sort"
	"sync"
)

// Template is a reusable prompt with metadata.
type Template struct {
	ID             string `json:"id"`                   // e.g. "advisor.commentary"
	Name           string `json:"name"`                 // Human-readable name
	Category       string `json:"category"`             // Folder name when omitted
	Description    string `json:"description"`          // What the prompt is for
	SystemPrompt   string `json:"system_prompt"`        // The system prompt content
	UserPromptTmpl string `json:"user_prompt_template"` // text/template for the user prompt
	Version        string `json:"version"`
}

// Registry holds loaded templates by id.
type Registry struct {
	mu      sync.RWMutex
	prompts map[string]*Template
}

func NewRegistry() *Registry {
	return &Registry{prompts: make(map[string]*Template)}
}

// Register adds or replaces a template.
func (r *Registry) Register(t *Template) error {
	if t.ID == "" {
		return fmt.Errorf("prompt ID cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prompts[t.ID] = t
	return nil
}

// Get retrieves a template by id.
func (r *Registry) Get(id string) (*Template, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.prompts[id]
	return t, ok
}

// SystemPrompt returns the system prompt of id, or fallback when the
// registry is nil or lacks a non-empty prompt under that id.
func (r *Registry) SystemPrompt(id, fallback string) string {
	if t, ok := r.Get(id); ok && t.SystemPrompt != "" {
		return t.SystemPrompt
	}
	return fallback
}

// IDs returns every registered id in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.prompts))
	for id := range r.prompts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of registered prompts
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prompts)
}
