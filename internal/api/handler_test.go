// The `_test` suffix creates a "black box" test package: the tests exercise
// only the handlers' exported surface, the same way the router does.
package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"weekwise/backend/internal/api"
	"weekwise/backend/internal/config"
	app_errors "weekwise/backend/internal/errors"
	"weekwise/backend/internal/i18n"
	"weekwise/backend/internal/llm"
	"weekwise/backend/internal/model"
	"weekwise/backend/internal/service"
)

func setupChatHandler(t *testing.T) (*api.ChatHandler, *MockChatService) {
	t.Helper()
	mockSvc := new(MockChatService)
	cfg := &config.Config{
		AIEndpoint:  llm.DefaultEndpoint,
		AIModel:     llm.DefaultModel,
		GitHubToken: "secret-token",
	}
	return api.NewChatHandler(mockSvc, cfg), mockSvc
}

func TestChatHandler_HandleChat(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("Chat", mock.Anything, mock.MatchedBy(func(req *service.ChatRequest) bool {
			return req.Message == "hello" && req.Language == i18n.LangEN
		})).Return(model.NewPlainReply("hi there"), nil).Once()

		body := `{"message": "hello", "language": "en"}`
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result model.GenerationResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.Equal(t, "hi there", result.Response)
		assert.Nil(t, result.Plan)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing message is a 400 with the validation type", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"language": "zh"}`))
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var errResp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
		assert.Equal(t, "validation", errResp.ErrorType)
		// The user-facing text is localized for the request's language.
		assert.Equal(t, i18n.T("error.validation", i18n.LangZH), errResp.Error)

		mockSvc.AssertNotCalled(t, "Chat", mock.Anything, mock.Anything)
	})

	t.Run("Malformed JSON body is a 400", func(t *testing.T) {
		handler, _ := setupChatHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{not json`))
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Unknown language falls back to the default", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("Chat", mock.Anything, mock.MatchedBy(func(req *service.ChatRequest) bool {
			return req.Language == i18n.DefaultLang
		})).Return(model.NewPlainReply("ok"), nil).Once()

		body := `{"message": "hola", "language": "es"}`
		req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleChat(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Classified provider errors map to their status codes", func(t *testing.T) {
		cases := []struct {
			kind       app_errors.Type
			wantStatus int
		}{
			{app_errors.TypeRateLimit, http.StatusTooManyRequests},
			{app_errors.TypeQuotaExceeded, http.StatusTooManyRequests},
			{app_errors.TypeAuthError, http.StatusUnauthorized},
			{app_errors.TypeServiceUnavailable, http.StatusServiceUnavailable},
			{app_errors.TypeUnknown, http.StatusInternalServerError},
		}

		for _, tc := range cases {
			t.Run(string(tc.kind), func(t *testing.T) {
				handler, mockSvc := setupChatHandler(t)
				mockSvc.On("Chat", mock.Anything, mock.Anything).
					Return(nil, app_errors.New(tc.kind, assert.AnError)).Once()

				req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "hi"}`))
				rr := httptest.NewRecorder()
				handler.HandleChat(rr, req)

				assert.Equal(t, tc.wantStatus, rr.Code)

				var errResp api.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.Equal(t, string(tc.kind), errResp.ErrorType)
			})
		}
	})
}

func TestChatHandler_HandleGeneratePlan(t *testing.T) {
	t.Run("Success with explicit prompt", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)

		generated := &model.TrainingPlan{Title: "Swim Week"}
		mockSvc.On("GeneratePlan", mock.Anything, "a plan for swimmers", i18n.LangEN).
			Return(model.NewStructuredPlan("done", generated), nil).Once()

		body := `{"prompt": "a plan for swimmers", "language": "en"}`
		req := httptest.NewRequest(http.MethodPost, "/api/generate-plan", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.HandleGeneratePlan(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var result model.GenerationResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		require.NotNil(t, result.Plan)
		assert.Equal(t, "Swim Week", result.Plan.Title)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Empty body forwards an empty prompt", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("GeneratePlan", mock.Anything, "", i18n.DefaultLang).
			Return(model.NewPlainReply("ok"), nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/generate-plan", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		handler.HandleGeneratePlan(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestChatHandler_HandleHealth(t *testing.T) {
	handler, _ := setupChatHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	handler.HandleHealth(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var health api.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.NotEmpty(t, health.Timestamp)
	assert.Equal(t, llm.DefaultEndpoint, health.AzureConfig.Endpoint)
	assert.Equal(t, llm.DefaultModel, health.AzureConfig.Model)
	// Only the presence of the token is reported, never its value.
	assert.True(t, health.AzureConfig.HasToken)
	assert.NotContains(t, rr.Body.String(), "secret-token")
}
