package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"inkwell/internal/modules/assist/domain"
	assistout "inkwell/internal/modules/assist/port/out"
	apperrors "inkwell/internal/platform/errors"
)

const systemPrompt = "You are a writing assistant inside a note taking app. Reply with plain markdown and no preamble."

type OllamaTransformer struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllamaTransformer(baseURL, model string) assistout.TextTransformer {
	return &OllamaTransformer{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (t *OllamaTransformer) Name() string {
	return "ollama"
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

func (t *OllamaTransformer) Transform(ctx context.Context, action domain.Action, text string) (string, error) {
	payload, err := json.Marshal(ollamaChatRequest{
		Model: t.model,
		Messages: []ollamaMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: action.Prompt + "\n\n" + text},
		},
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	decoded := ollamaChatResponse{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	return strings.TrimSpace(decoded.Message.Content), nil
}

func (t *OllamaTransformer) Doctor(ctx context.Context) []domain.ProviderCheck {
	check := domain.ProviderCheck{Target: fmt.Sprintf("ollama %s (%s)", t.baseURL, t.model)}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/api/tags", nil)
	if err != nil {
		check.Detail = err.Error()
		return []domain.ProviderCheck{check}
	}
	resp, err := t.client.Do(req)
	if err != nil {
		check.Detail = err.Error()
		return []domain.ProviderCheck{check}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		check.Detail = fmt.Sprintf("status %d", resp.StatusCode)
		return []domain.ProviderCheck{check}
	}
	check.OK = true
	check.Detail = "ok"
	return []domain.ProviderCheck{check}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
