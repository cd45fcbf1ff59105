package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	defaultDeepSeekModel = "deepseek-chat"
	defaultDeepSeekURL   = "https://api.deepseek.com/chat/completions"
)

// DeepSeekProvider talks to the OpenAI-compatible DeepSeek chat endpoint.
type DeepSeekProvider struct {
	Model     string
	APIKeyEnv string // defaults to DEEPSEEK_API_KEY
	BaseURL   string
	Client    *http.Client
}

var _ Provider = (*DeepSeekProvider)(nil)

// NewDeepSeekProvider builds the provider from its config block.
func NewDeepSeekProvider(cfg ProviderConfig) *DeepSeekProvider {
	return &DeepSeekProvider{
		Model:     cfg.Model,
		APIKeyEnv: cfg.APIKeyEnv,
		BaseURL:   cfg.BaseURL,
		Client:    &http.Client{Timeout: 60 * time.Second},
	}
}

type DeepSeekRequest struct {
	Messages       []Message      `json:"messages"`
	Model          string         `json:"model"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat ResponseFormat `json:"response_format"`
	Stream         bool           `json:"stream"`
	Temperature    float64        `json:"temperature"`
}

type Message struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type DeepSeekResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *DeepSeekProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	keyEnv := p.APIKeyEnv
	if keyEnv == "" {
		keyEnv = "DEEPSEEK_API_KEY"
	}
	apiKey := stringOption(options, "api_key", os.Getenv(keyEnv))
	if apiKey == "" {
		return "", fmt.Errorf("deepseek: %w (%s not set)", ErrNotConfigured, keyEnv)
	}

	model := p.Model
	if model == "" {
		model = defaultDeepSeekModel
	}
	url := p.BaseURL
	if url == "" {
		url = defaultDeepSeekURL
	}

	var messages []Message
	if systemPrompt != "" {
		messages = append(messages, Message{Content: systemPrompt, Role: "system"})
	}
	messages = append(messages, Message{Content: prompt, Role: "user"})

	reqBody := DeepSeekRequest{
		Messages:       messages,
		Model:          stringOption(options, "model", model),
		MaxTokens:      int(floatOption(options, "max_tokens", 2048)),
		ResponseFormat: ResponseFormat{Type: "text"},
		Temperature:    floatOption(options, "temperature", 0.3),
	}

	jsonBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("DEEPSEEK_MARSHAL_ERROR: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBytes))
	if err != nil {
		return "", fmt.Errorf("DEEPSEEK_REQ_CREATE_ERROR: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("DEEPSEEK_API_CALL_ERROR: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("DEEPSEEK_READ_BODY_ERROR: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("DEEPSEEK_API_ERROR: status=%d body=%s", res.StatusCode, string(body))
	}

	var response DeepSeekResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("DEEPSEEK_UNMARSHAL_ERROR: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("DEEPSEEK_NO_CHOICES: %s", string(body))
	}

	return response.Choices[0].Message.Content, nil
}

func (p *DeepSeekProvider) AdaptInstructions(raw string) string {
	return raw
}
