package llm

import (
	"context"
	"fmt"
)

// Message is a role-tagged chat turn in the provider's wire format.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the chat-completions request body. Sampling parameters
// are always sent explicitly; the gateway uses one fixed set per deployment.
type CompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	TopP        float64   `json:"top_p"`
	MaxTokens   int       `json:"max_tokens"`
}

// Provider is the outbound interface to a hosted chat-completion API.
// Complete returns the text of the first completion choice.
type Provider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// APIError is a non-success response from the provider. It keeps the upstream
// HTTP status so failures can be classified on structured fields instead of
// message text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ai inference api error: %d - %s", e.Status, e.Message)
}

// StatusCode reports the upstream HTTP status.
func (e *APIError) StatusCode() int { return e.Status }
