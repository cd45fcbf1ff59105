package agent

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"financial_planner/pkg/core/llm"

	"k8s.io/klog/v2"
)

// Provider names registered by NewManager.
const (
	ProviderGemini   = "gemini"
	ProviderDeepSeek = "deepseek"
)

type Config struct {
	ActiveProvider string                        `yaml:"active_provider"`
	Agents         map[string]AgentConfig        `yaml:"agents"`
	Providers      map[string]llm.ProviderConfig `yaml:"providers"`
}

type AgentConfig struct {
	Provider    string                 `yaml:"provider"` // Optional override
	Description string                 `yaml:"description"`
	Options     map[string]interface{} `yaml:"options"`
}

// Manager routes agent prompts to the configured LLM provider. The active
// provider can be switched at runtime.
type Manager struct {
	mu        sync.RWMutex
	config    Config
	providers map[string]llm.Provider
}

func NewManager(config Config) *Manager {
	if config.ActiveProvider == "" {
		config.ActiveProvider = ProviderGemini
	}
	return &Manager{
		config: config,
		providers: map[string]llm.Provider{
			ProviderGemini:   llm.NewGeminiProvider(config.Providers[ProviderGemini]),
			ProviderDeepSeek: llm.NewDeepSeekProvider(config.Providers[ProviderDeepSeek]),
		},
	}
}

// Register adds or replaces a provider under name.
func (m *Manager) Register(name string, p llm.Provider) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.providers[name] = p
}

// GetProvider resolves the provider for an agent: its own override first,
// then the global active provider. The second return value is the name.
func (m *Manager) GetProvider(agentType string) (llm.Provider, string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if agentConfig, ok := m.config.Agents[agentType]; ok && agentConfig.Provider != "" {
		if p, ok := m.providers[agentConfig.Provider]; ok {
			return p, agentConfig.Provider
		}
		klog.Warningf("[AGENT] %s override %q is not registered, using %q", agentType, agentConfig.Provider, m.config.ActiveProvider)
	}

	if p, ok := m.providers[m.config.ActiveProvider]; ok {
		return p, m.config.ActiveProvider
	}
	return nil, ""
}

// ExecutePrompt handles instruction adaptation before sending to the model.
// Per-agent options from the config are merged under the caller's options.
func (m *Manager) ExecutePrompt(ctx context.Context, agentType string, rawPrompt string, rawSystemPrompt string, options map[string]interface{}) (string, string, error) {
	provider, name := m.GetProvider(agentType)
	if provider == nil {
		return "", "", fmt.Errorf("no provider available for agent %q: %w", agentType, llm.ErrNotConfigured)
	}

	merged := map[string]interface{}{}
	m.mu.RLock()
	for k, v := range m.config.Agents[agentType].Options {
		merged[k] = v
	}
	m.mu.RUnlock()
	for k, v := range options {
		merged[k] = v
	}

	klog.V(2).Infof("[AGENT] %s -> %s", agentType, name)
	adaptedSystemPrompt := provider.AdaptInstructions(rawSystemPrompt)

	out, err := provider.GenerateResponse(ctx, rawPrompt, adaptedSystemPrompt, merged)
	return out, name, err
}

func (m *Manager) SetGlobalProvider(newProvider string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.providers[newProvider]; !ok {
		return fmt.Errorf("provider %s not found", newProvider)
	}
	m.config.ActiveProvider = newProvider
	klog.Infof("[AGENT] global provider set to %s", newProvider)
	return nil
}

func (m *Manager) GetActiveProvider() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.ActiveProvider
}

// Available lists registered provider names in sorted order.
func (m *Manager) Available() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.providers))
	for name := range m.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
