package service

import (
	"context"
	"encoding/json"
	"log/slog"

	app_errors "weekwise/backend/internal/errors"
	"weekwise/backend/internal/i18n"
	"weekwise/backend/internal/llm"
	"weekwise/backend/internal/model"
	"weekwise/backend/internal/prompt"
	"weekwise/backend/internal/repository"
)

// ChatService is the prompt/response gateway core: it shapes the message list
// for the provider, parses the completion, and degrades schema mismatches to
// plain replies. It holds no per-conversation state; the transcript always
// arrives with the request.
type ChatService struct {
	llm  llm.Provider
	repo repository.Repository
}

// ChatRequest carries one user turn plus the prior transcript.
type ChatRequest struct {
	Message  string
	History  []model.ChatMessage
	Language i18n.Language
}

func NewChatService(provider llm.Provider, repo repository.Repository) *ChatService {
	return &ChatService{llm: provider, repo: repo}
}

// Chat forwards a conversation turn to the model and returns the two-variant
// result. Provider failures come back as *errors.Classified.
func (s *ChatService) Chat(ctx context.Context, req *ChatRequest) (*model.GenerationResult, error) {
	messages := prompt.Build(req.Language, req.History, req.Message)
	return s.complete(ctx, messages)
}

// GeneratePlan drives a one-shot generation with no history. An empty prompt
// falls back to the language's default request phrase.
func (s *ChatService) GeneratePlan(ctx context.Context, userPrompt string, lang i18n.Language) (*model.GenerationResult, error) {
	if userPrompt == "" {
		userPrompt = i18n.DefaultPlanPrompt(lang)
	}
	messages := prompt.Build(lang, nil, userPrompt)
	return s.complete(ctx, messages)
}

func (s *ChatService) complete(ctx context.Context, messages []llm.Message) (*model.GenerationResult, error) {
	completion, err := s.llm.Complete(ctx, messages)
	if err != nil {
		return nil, app_errors.Classify(err)
	}

	result := parseCompletion(completion)
	if result.Kind == model.StructuredPlan {
		// Stage the plan in the hand-off slot so the board picks it up on its
		// next load. A storage failure must not fail the chat response.
		if err := s.repo.PutPlan(ctx, result.Plan); err != nil {
			slog.Error("Failed to stage generated plan in hand-off slot", "error", err)
		}
	}
	return result, nil
}

// parseCompletion attempts strict JSON parsing of the completion text. Schema
// compliance by the model is not guaranteed: anything that does not decode as
// the {response, trainingPlan} object is absorbed as a plain reply carrying
// the raw text unaltered. This fallback is deliberate and observable, not an
// error path.
func parseCompletion(completion string) *model.GenerationResult {
	var wire struct {
		Response     string              `json:"response"`
		TrainingPlan *model.TrainingPlan `json:"trainingPlan"`
	}
	if err := json.Unmarshal([]byte(completion), &wire); err != nil {
		slog.Debug("Completion is not schema JSON, degrading to plain reply", "error", err)
		return model.NewPlainReply(completion)
	}
	if wire.TrainingPlan == nil {
		return model.NewPlainReply(wire.Response)
	}
	return model.NewStructuredPlan(wire.Response, wire.TrainingPlan)
}
