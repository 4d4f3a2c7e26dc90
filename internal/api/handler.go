package api

import (
	"encoding/json"
	"net/http"
	"time"

	"weekwise/backend/internal/config"
	app_errors "weekwise/backend/internal/errors"
	"weekwise/backend/internal/i18n"
	"weekwise/backend/internal/interfaces"
	"weekwise/backend/internal/model"
	"weekwise/backend/internal/service"
)

// ChatHandler handles the gateway endpoints: chat, direct plan generation,
// and the health check.
type ChatHandler struct {
	service interfaces.ChatService
	cfg     *config.Config
}

func NewChatHandler(svc interfaces.ChatService, cfg *config.Config) *ChatHandler {
	return &ChatHandler{service: svc, cfg: cfg}
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message  string              `json:"message" validate:"required"`
	History  []model.ChatMessage `json:"history"`
	Language string              `json:"language"`
}

// GeneratePlanRequest is the body of POST /api/generate-plan. Both fields are
// optional; an omitted prompt is replaced by the language's default phrase.
type GeneratePlanRequest struct {
	Prompt   string `json:"prompt"`
	Language string `json:"language"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status      string      `json:"status"`
	Timestamp   string      `json:"timestamp"`
	AzureConfig AzureConfig `json:"azureConfig"`
}

// AzureConfig reports the inference endpoint configuration, without the token
// itself.
type AzureConfig struct {
	Endpoint string `json:"endpoint"`
	Model    string `json:"model"`
	HasToken bool   `json:"hasToken"`
}

// HandleChat godoc
// @Summary      Send a chat message
// @Description  Forwards a message plus conversation history to the model and returns the reply, with a training plan when the model emits one.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        chatRequest  body      ChatRequest  true  "Message, history and language"
// @Success      200          {object}  model.GenerationResult
// @Failure      400          {object}  ErrorResponse
// @Failure      401          {object}  ErrorResponse
// @Failure      429          {object}  ErrorResponse
// @Failure      503          {object}  ErrorResponse
// @Router       /chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	lang := i18n.DefaultLang
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, lang, validationError(err))
		return
	}
	lang = i18n.Normalize(req.Language)

	if err := validateRequest(&req); err != nil {
		respondWithError(w, lang, err)
		return
	}

	result, err := h.service.Chat(r.Context(), chatServiceRequest(&req, lang))
	if err != nil {
		respondWithError(w, lang, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// HandleGeneratePlan godoc
// @Summary      Generate a training plan directly
// @Description  Runs a one-shot plan generation. When no prompt is supplied the language's default request phrase is used.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        generateRequest  body      GeneratePlanRequest  true  "Optional prompt and language"
// @Success      200              {object}  model.GenerationResult
// @Failure      401              {object}  ErrorResponse
// @Failure      429              {object}  ErrorResponse
// @Failure      503              {object}  ErrorResponse
// @Router       /generate-plan [post]
func (h *ChatHandler) HandleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req GeneratePlanRequest
	lang := i18n.DefaultLang
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, lang, validationError(err))
		return
	}
	lang = i18n.Normalize(req.Language)

	result, err := h.service.GeneratePlan(r.Context(), req.Prompt, lang)
	if err != nil {
		respondWithError(w, lang, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// validationError wraps a body decode failure so it maps to a 400.
func validationError(err error) error {
	return app_errors.New(app_errors.TypeValidation, err)
}

func chatServiceRequest(req *ChatRequest, lang i18n.Language) *service.ChatRequest {
	return &service.ChatRequest{
		Message:  req.Message,
		History:  req.History,
		Language: lang,
	}
}

// HandleHealth godoc
// @Summary      Health check
// @Description  Reports service health and the inference endpoint configuration.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *ChatHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		AzureConfig: AzureConfig{
			Endpoint: h.cfg.AIEndpoint,
			Model:    h.cfg.AIModel,
			HasToken: h.cfg.GitHubToken != "",
		},
	})
}
