package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultEndpoint is the GitHub Models inference endpoint.
	DefaultEndpoint = "https://models.github.ai/inference"
	// DefaultModel is the fixed model identifier used for plan generation.
	DefaultModel = "openai/gpt-4.1"

	// Fixed sampling parameters for every completion.
	temperature = 0.7
	topP        = 0.9
	maxTokens   = 2000
)

type githubProvider struct {
	client   *http.Client
	endpoint string
	token    string
	model    string
}

// NewGitHubProvider returns a Provider backed by the GitHub Models
// chat-completions API (OpenAI wire format).
func NewGitHubProvider(endpoint, token, model string) Provider {
	return &githubProvider{
		client:   &http.Client{Timeout: 60 * time.Second},
		endpoint: endpoint,
		token:    token,
		model:    model,
	}
}

type chatCompletionResponse struct {
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

func (p *githubProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	reqBody := CompletionRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   maxTokens,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Status: resp.StatusCode, Message: upstreamMessage(respBody)}
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", fmt.Errorf("could not decode response: %s", string(respBody))
	}
	if completion.Error != nil {
		return "", &APIError{Status: resp.StatusCode, Message: completion.Error.Message}
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty completion from provider")
	}

	return completion.Choices[0].Message.Content, nil
}

// upstreamMessage extracts the provider's error message from a non-200 body,
// falling back to the raw body text.
func upstreamMessage(body []byte) string {
	var wrapped struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Error.Message != "" {
		return wrapped.Error.Message
	}
	return string(body)
}
